// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/config"
	"cogentcore.org/fiber/scenefile"
)

func buildCmd(c *config.Config) *cobra.Command {
	var format string
	var verify bool
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Mount a scene document and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Build(c, output(cmd), args[0], format, verify)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml or msgpack (default from config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the structural invariants of the tree")
	return cmd
}

// Build mounts the given scene document and writes the tree in the given
// format, or the configured one if it is empty. Nodes that can not be
// mounted are logged and skipped. If verify is set, the structural
// invariants of the tree are checked.
func Build(c *config.Config, out *termenv.Output, file, format string, verify bool) error {
	doc, err := scenefile.Open(file)
	if err != nil {
		return err
	}
	r, st, err := NewRenderer(c)
	if err != nil {
		return err
	}
	_, err = scenefile.Mount(r, st, doc)
	errors.Log(err)
	if verify {
		if err := r.Verify(st.Scene); err != nil {
			return err
		}
	}
	if format == "" {
		format = c.Format
	}
	return Write(out, r.Snapshot(st.Scene), format)
}
