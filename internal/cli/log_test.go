/*
 * log_test.go, part of spaghetti.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
 */

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(Te *testing.T) {
	cases := []struct {
		name  string
		level log.Level
		debug bool
	}{
		{"info", log.InfoLevel, false},
		{"debug", log.DebugLevel, true},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, c.level)
			l.Debug("hidden unless debugging")
			if got := strings.Contains(buf.String(), "hidden"); got != c.debug {
				Te.Errorf("debug message logged: %v, expected %v", got, c.debug)
			}
			l.Info("reading")
			if !strings.Contains(buf.String(), "reading") || !strings.Contains(buf.String(), appName) {
				Te.Errorf("unexpected log output %q", buf.String())
			}
		})
	}
}

func TestProgress(Te *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("read bands", "file", "case.spaghetti_ene")
	out := buf.String()
	for _, want := range []string{"read bands", "case.spaghetti_ene", "took"} {
		if !strings.Contains(out, want) {
			Te.Errorf("%q not in %q", want, out)
		}
	}
}

func TestLoggerContext(Te *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		Te.Error("expected the default logger in an empty context")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		Te.Error("logger not found in the context")
	}
}
