// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/fiber/base/ordmap"
)

// Constructor makes a new object from constructor arguments.
type Constructor func(args ...any) (any, error)

// Catalogue maps public type names to constructors. It is filled by the
// host application before use; setting a name again replaces its
// constructor but keeps its original position. Names can not be removed.
// It is safe for concurrent use.
type Catalogue struct {
	mu    sync.RWMutex
	types *ordmap.Map[string, Constructor]
}

// NewCatalogue returns a new empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{types: ordmap.New[string, Constructor]()}
}

// DefaultCatalogue is the catalogue used by renderers that
// do not have their own.
var DefaultCatalogue = NewCatalogue()

// Extend adds the given constructors to the [DefaultCatalogue].
func Extend(ctors map[string]Constructor) {
	DefaultCatalogue.Extend(ctors)
}

// Set sets the constructor for the given name.
func (c *Catalogue) Set(name string, ctor Constructor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.types == nil {
		c.types = ordmap.New[string, Constructor]()
	}
	c.types.Add(name, ctor)
}

// Extend sets all of the given constructors, adding new names
// in sorted order.
func (c *Catalogue) Extend(ctors map[string]Constructor) {
	names := make([]string, 0, len(ctors))
	for nm := range ctors {
		names = append(names, nm)
	}
	slices.Sort(names)
	for _, nm := range names {
		c.Set(nm, ctors[nm])
	}
}

// Lookup returns the constructor for the given canonical name.
func (c *Catalogue) Lookup(name string) (Constructor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil {
		return nil, false
	}
	return c.types.ValueByKeyTry(name)
}

// Names returns the registered names in the order they were first added.
func (c *Catalogue) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil {
		return nil
	}
	return c.types.Keys()
}

// SuggestThreshold is the minimum similarity of a name returned by
// [Catalogue.Suggest].
const SuggestThreshold = 0.6

// Suggest returns the registered name that is most similar to the given
// unknown name, if any is similar enough.
func (c *Catalogue) Suggest(name string) (string, bool) {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, score := "", SuggestThreshold
	for _, nm := range c.Names() {
		if sim := strutil.Similarity(name, nm, lev); sim >= score {
			best, score = nm, sim
		}
	}
	return best, best != ""
}

// Len returns the number of registered names.
func (c *Catalogue) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil {
		return 0
	}
	return c.types.Len()
}

// CanonicalName returns the catalogue name for the given declarative type
// name: the first character is upper-cased and the rest is unchanged, so
// that "boxGeometry" becomes "BoxGeometry".
func CanonicalName(typ string) string {
	r, sz := utf8.DecodeRuneInString(typ)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return typ
	}
	return string(unicode.ToUpper(r)) + typ[sz:]
}
