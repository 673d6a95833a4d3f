// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/fiber/config"
)

func typesCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the types that documents can use, in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Types(c, output(cmd))
		},
	}
}

// Types prints the catalogue names with their auto attach slots.
func Types(c *config.Config, out *termenv.Output) error {
	r, _, err := NewRenderer(c)
	if err != nil {
		return err
	}
	for _, nm := range r.Catalogue.Names() {
		line := nm
		for _, rule := range r.AutoAttach {
			if rule.Suffix != "" && strings.HasSuffix(nm, rule.Suffix) {
				line += " " + out.String("@"+rule.Slot).Foreground(out.Color("3")).String()
				break
			}
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
