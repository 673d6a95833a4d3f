// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads declarative scene documents and mounts them
// into a [fiber.Renderer], reconciling the mounted tree by key when the
// document changes.
package scenefile

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/fiber"
)

// Version is the version of the document format written by this package.
const Version = "1.0.0"

// Compatible is the constraint that the version of a document must meet.
const Compatible = "^1.0"

var (
	// ErrVersion is returned for a document with an unsupported version.
	ErrVersion = errors.New("unsupported document version")

	// ErrDuplicateKey is returned when two siblings have the same key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoType is returned for a node without a type.
	ErrNoType = errors.New("node has no type")
)

// Document is a declarative scene document. JSON documents are also
// valid, since JSON is a subset of YAML.
type Document struct {

	// Version is the format version of the document; empty means [Version].
	Version string `yaml:"version,omitempty"`

	// Scene are the props applied to the scene at the root.
	Scene map[string]any `yaml:"scene,omitempty"`

	// Children are the top-level nodes under the scene.
	Children []*Node `yaml:"children,omitempty"`
}

// Node is a node of a [Document], describing one instance.
type Node struct {

	// Type is the declarative type name, such as mesh or boxGeometry.
	Type string `yaml:"type"`

	// Key identifies the node among its siblings across updates. Nodes
	// without a key are identified by their type and position among
	// siblings of the same type.
	Key string `yaml:"key,omitempty"`

	// Args are the constructor arguments.
	Args []any `yaml:"args,omitempty"`

	// Attach is the slot of the parent the instance is attached to.
	Attach string `yaml:"attach,omitempty"`

	// Props are the other props of the instance.
	Props map[string]any `yaml:"props,omitempty"`

	// Children are the child nodes.
	Children []*Node `yaml:"children,omitempty"`
}

// Parse parses a document from YAML or JSON bytes.
func Parse(b []byte) (*Document, error) {
	return Read(bytes.NewReader(b))
}

// Read reads a document from YAML or JSON, checking its version and keys.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scenefile.Read: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Open reads the document in the given file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// Validate checks the version of the document and that every node has
// a type and a key that is unique among its siblings.
func (d *Document) Validate() error {
	if d.Version != "" {
		v, err := semver.NewVersion(d.Version)
		if err != nil {
			return fmt.Errorf("scenefile.Document.Validate: %w %q: %w", ErrVersion, d.Version, err)
		}
		c := errors.Must1(semver.NewConstraint(Compatible))
		if !c.Check(v) {
			return fmt.Errorf("scenefile.Document.Validate: %w %s: need %s", ErrVersion, v, Compatible)
		}
	}
	return validate(d.Children, "")
}

func validate(nodes []*Node, path string) error {
	keys := Keys(nodes)
	seen := make(map[string]bool, len(keys))
	for i, n := range nodes {
		np := path + "/" + keys[i]
		if n == nil || n.Type == "" {
			return fmt.Errorf("scenefile: %s: %w", np, ErrNoType)
		}
		if seen[keys[i]] {
			return fmt.Errorf("scenefile: %s: %w", np, ErrDuplicateKey)
		}
		seen[keys[i]] = true
		if err := validate(n.Children, np); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the keys of the given sibling nodes: the key of each node
// that has one, and else its canonical type name followed by "#" and the
// index of the node among the keyless siblings of that type.
func Keys(nodes []*Node) []string {
	keys := make([]string, len(nodes))
	counts := map[string]int{}
	for i, n := range nodes {
		switch {
		case n == nil:
			keys[i] = "#" + strconv.Itoa(i)
		case n.Key != "":
			keys[i] = n.Key
		default:
			typ := fiber.CanonicalName(n.Type)
			keys[i] = typ + "#" + strconv.Itoa(counts[typ])
			counts[typ]++
		}
	}
	return keys
}

// InstanceProps returns the props of the node for [fiber.Renderer.CreateInstance]:
// its props plus its args and attach, and its key as the name if it has
// a key and no name prop.
func (n *Node) InstanceProps() fiber.Props {
	p := make(fiber.Props, len(n.Props)+3)
	maps.Copy(p, n.Props)
	if n.Args != nil {
		p["args"] = n.Args
	}
	if n.Attach != "" {
		p["attach"] = n.Attach
	}
	if _, has := p["name"]; !has && n.Key != "" {
		p["name"] = n.Key
	}
	return p
}
