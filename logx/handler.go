// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the ANSI colors used for each level name.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "12",
	slog.LevelInfo:  "10",
	slog.LevelWarn:  "11",
	slog.LevelError: "9",
}

// NewHandler returns a text [slog.Handler] that writes to the given writer,
// filtering at [UserLevel] and coloring the level names when the writer
// is a terminal that supports it. The time attribute is dropped, as these
// logs are meant to be read interactively.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(ColorLevel(out, lv))
			}
			return a
		},
	})
}

// ColorLevel returns the name of the given level styled for the given output.
// The name is returned unstyled for outputs without color support.
func ColorLevel(out *termenv.Output, lv slog.Level) string {
	c, ok := levelColors[lv]
	if !ok {
		return lv.String()
	}
	return out.String(lv.String()).Foreground(out.Color(c)).Bold().String()
}

// SetDefaultLogger sets the default [slog] logger to one that writes
// to [os.Stderr] through [NewHandler] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
