/*
 * errors.go, part of spaghetti.
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

package spaghetti

import (
	"errors"
	"fmt"
)

//Sentinel kinds. Every error returned by the readers in this package
//wraps exactly one of them, so callers can tell them apart with errors.Is.
var (
	//A required file is absent, or nothing with the expected extension
	//lives in the searched directory.
	ErrNotFound = errors.New("file not found")
	//A row has an unexpected number of fields, a field can't be parsed or
	//a reshape can't be performed because the counts don't divide evenly.
	ErrShape = errors.New("unexpected data shape")
	//Lengths of sequences that must agree don't, either within a file
	//(declared vs. found records) or across files.
	ErrMismatch = errors.New("inconsistent data across files")
	//A plot was requested but one of the inputs it needs was not given and
	//could not be located.
	ErrMissingInput = errors.New("missing input")
)

//Error is the error type for all the readers in this package.
//It keeps the file that caused the problem and a trail of the functions
//the error went through on its way up.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("%s: %s", err.kind, err.message)
	}
	return fmt.Sprintf("%s %s: %s", err.filename, err.kind, err.message)
}

//Unwrap returns the sentinel kind of the error.
func (err *Error) Unwrap() error { return err.kind }

//Decorate adds the caller deco to the trail, and returns the trail.
//An empty string just returns the current trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error.
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
//No error in this package is recoverable.
func (err *Error) Critical() bool { return err.critical }

//NewError returns an error of the given kind, raised by caller while
//reading filename (which can be empty).
func NewError(kind error, filename, caller, format string, args ...any) *Error {
	return &Error{
		message:  fmt.Sprintf(format, args...),
		filename: filename,
		deco:     []string{caller},
		critical: true,
		kind:     kind,
	}
}

//Decorate adds caller to the trail of err if it is an *Error, and attaches
//filename if the error didn't have one yet. Other errors are returned untouched.
func Decorate(err error, caller, filename string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		if e.filename == "" {
			e.filename = filename
		}
	}
	return err
}
