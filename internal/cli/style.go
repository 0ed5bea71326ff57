/*
 * style.go, part of spaghetti.
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
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
)

func newStyleCmd(o *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Manage the style file with the look of the figures",
	}
	cmd.AddCommand(newStyleInstallCmd(), newStylePathCmd(), newStyleShowCmd(o))
	return cmd
}

func newStyleInstallCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write the default style to the user configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.ErrOrStderr()
			if force {
				path, err := bandplot.StylePath()
				if err != nil {
					return err
				}
				if err := bandplot.DefaultStyle().Save(path); err != nil {
					return err
				}
				printSuccess(w, "wrote %s", path)
				return nil
			}
			path, written, err := bandplot.InstallStyle()
			if err != nil {
				return err
			}
			if !written {
				printFile(w, path)
				return fmt.Errorf("a style is already installed, use --force to overwrite it")
			}
			printSuccess(w, "wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an installed style")
	return cmd
}

func newStylePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the style file is looked for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := bandplot.StylePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newStyleShowCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the style in use, as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(o.style)
		},
	}
}
