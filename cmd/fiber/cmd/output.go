// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"cogentcore.org/fiber/fiber"
)

// Formats are the output formats of [Write].
var Formats = []string{"text", "json", "yaml", "msgpack"}

// Write writes the snapshot in the given format. The text format is an
// indented tree with attached and listed objects before native children.
// JSON and YAML are highlighted on terminals with color support.
func Write(out *termenv.Output, sn *fiber.Snapshot, format string) error {
	switch format {
	case "", "text":
		writeText(out, sn, 0)
		return nil
	case "json":
		b, err := json.MarshalIndent(sn, "", "  ")
		if err != nil {
			return err
		}
		return highlight(out, string(b)+"\n", "json")
	case "yaml":
		b, err := yaml.Marshal(sn)
		if err != nil {
			return err
		}
		return highlight(out, string(b), "yaml")
	case "msgpack":
		b, err := msgpack.Marshal(sn)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}
	return fmt.Errorf("unknown format %q: must be one of %s", format, strings.Join(Formats, ", "))
}

func highlight(out *termenv.Output, src, lexer string) error {
	if out.Profile == termenv.Ascii {
		_, err := io.WriteString(out, src)
		return err
	}
	return quick.Highlight(out, src, lexer, "terminal256", "monokai")
}

func writeText(out *termenv.Output, sn *fiber.Snapshot, depth int) {
	if sn == nil {
		return
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(out.String(sn.Type).Foreground(out.Color("6")).String())
	if sn.Name != "" {
		b.WriteString(" " + out.String(sn.Name).Bold().String())
	}
	if sn.Slot != "" {
		b.WriteString(" " + out.String("@"+sn.Slot).Foreground(out.Color("3")).String())
	}
	switch sn.Relation {
	case fiber.Unmanaged:
		b.WriteString(" " + out.String("(unmanaged)").Faint().String())
	case fiber.ListedChild.String():
		b.WriteString(" " + out.String("(listed)").Faint().String())
	}
	if sn.Primitive {
		b.WriteString(" " + out.String("(primitive)").Faint().String())
	}
	fmt.Fprintln(out, b.String())
	for _, o := range sn.Objects {
		writeText(out, o, depth+1)
	}
	for _, k := range sn.Children {
		writeText(out, k, depth+1)
	}
}
