// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/fiber/base/errors"
)

// DefaultFile is the config file used when no file is given.
const DefaultFile = "~/.config/fiber/config.toml"

// Read decodes a config from TOML, failing on unknown fields.
// Includes are not opened.
func Read(r io.Reader) (*Config, error) {
	c := &Config{}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("config.Read: %w", err)
	}
	return c, nil
}

// Open reads the config in the given file on top of the [Default]
// config. The files it includes are applied first, in order, so that
// the including file overrides them. Only non-empty values override.
func Open(file string) (*Config, error) {
	c := Default()
	if err := openWithIncludes(c, file, map[string]bool{}); err != nil {
		return nil, err
	}
	c.Includes = nil
	return c, nil
}

// Load opens the given file, or the [DefaultFile] if file is empty and
// it exists, or else returns the [Default] config.
func Load(file string) (*Config, error) {
	if file == "" {
		file = errors.Log1(homedir.Expand(DefaultFile))
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
	}
	return Open(file)
}

// openWithIncludes merges the config in the given file, after the files
// it includes, into c.
func openWithIncludes(c *Config, file string, seen map[string]bool) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return err
	}
	if seen[path] {
		return fmt.Errorf("config.Open: %s includes itself", path)
	}
	seen[path] = true
	defer delete(seen, path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	fc, err := Read(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, inc := range fc.Includes {
		if inc == "" {
			continue
		}
		if !filepath.IsAbs(inc) && inc[0] != '~' {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		if err := openWithIncludes(c, inc, seen); err != nil {
			return err
		}
	}
	return Merge(c, fc)
}

// Merge copies the non-empty values of src into dst. Lists replace
// the lists of dst as a whole.
func Merge(dst, src *Config) error {
	if err := copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	dst.Includes = slices.Clone(dst.Includes)
	dst.AutoAttach = slices.Clone(dst.AutoAttach)
	return nil
}
