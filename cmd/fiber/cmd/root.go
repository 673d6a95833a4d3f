// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the fiber tool.
package cmd

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/fiber/config"
	"cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/logx"
	"cogentcore.org/fiber/xyz"
)

// NewRoot returns the root command of the fiber tool.
func NewRoot() *cobra.Command {
	c := config.Default()
	var file string
	var v, vv, q bool
	root := &cobra.Command{
		Use:          "fiber",
		Short:        "Mount declarative scene documents into a scene graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lc, err := config.Load(file)
			if err != nil {
				return err
			}
			*c = *lc
			c.Verbose = c.Verbose || v
			c.VeryVerbose = c.VeryVerbose || vv
			c.Quiet = c.Quiet || q
			logx.UserLevel = c.Level()
			logx.SetDefaultLogger()
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&file, "config", "", "config file (default "+config.DefaultFile+")")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose logging")
	pf.BoolVar(&vv, "vv", false, "very verbose logging of every structural operation")
	pf.BoolVarP(&q, "quiet", "q", false, "only log errors")
	root.AddCommand(typesCmd(c), buildCmd(c), watchCmd(c))
	return root
}

// output returns the styled output of the given command.
func output(cmd *cobra.Command) *termenv.Output {
	return termenv.NewOutput(cmd.OutOrStdout())
}

// NewRenderer returns a renderer of the xyz types configured by c,
// and the store of a new scene.
func NewRenderer(c *config.Config) (*fiber.Renderer, *fiber.Store, error) {
	cat := fiber.NewCatalogue()
	for _, e := range xyz.Namespace() {
		cat.Set(e.Name, fiber.Constructor(e.New))
	}
	r := fiber.NewRenderer(cat)
	c.Apply(r)
	st, err := r.CreateRoot(xyz.NewScene())
	if err != nil {
		return nil, nil, err
	}
	return r, st, nil
}
