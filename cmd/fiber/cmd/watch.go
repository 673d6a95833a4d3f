// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/config"
	"cogentcore.org/fiber/scenefile"
)

func watchCmd(c *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Mount a scene document and patch the tree whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Watch(cmd.Context(), c, output(cmd), args[0])
		},
	}
}

// Session is a scene document mounted for watching.
type Session struct {
	File string
	Tree *scenefile.Tree
	Out  *termenv.Output
}

// NewSession mounts the given file and reports the tree.
func NewSession(c *config.Config, out *termenv.Output, file string) (*Session, error) {
	r, st, err := NewRenderer(c)
	if err != nil {
		return nil, err
	}
	s := &Session{File: file, Tree: &scenefile.Tree{Renderer: r, Store: st, Root: &scenefile.Mounted{Inst: st.Scene}}, Out: out}
	return s, s.Reload()
}

// Reload reads the file again, patches the tree to it, and reports the
// pending frames and the tree. The pending frames are then consumed.
// A file that can not be read leaves the tree as it is.
func (s *Session) Reload() error {
	doc, err := scenefile.Open(s.File)
	if err != nil {
		return err
	}
	errors.Log(s.Tree.Patch(doc))
	st := s.Tree.Store
	fmt.Fprintf(s.Out, "%s: %d frames\n", s.File, st.Frames())
	for st.Advance() {
	}
	return Write(s.Out, s.Tree.Renderer.Snapshot(st.Scene), "text")
}

// Watch mounts the given file and patches the tree every time the file
// changes, until the context is done. Changes are debounced by the
// configured delay.
func Watch(ctx context.Context, c *config.Config, out *termenv.Output, file string) error {
	s, err := NewSession(c, out, file)
	if err != nil {
		return err
	}
	target, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file on save, so watch its directory
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(c.Debounce())
			} else {
				timer.Reset(c.Debounce())
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("fiber watch", "err", err)
		case <-fire:
			fire = nil
			errors.Log(s.Reload())
		}
	}
}
