// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExportedName returns the given property name with its first letter
// upper-cased, which is how lowerCamel property names map to exported
// Go field names (position -> Position).
func ExportedName(name string) string {
	r, sz := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[sz:]
}

// fieldByName returns the struct field of v with the given property name,
// trying the exact name, the exported name, and then a case-insensitive match.
func fieldByName(v reflect.Value, name string) reflect.Value {
	if f := v.FieldByName(name); f.IsValid() {
		return f
	}
	if en := ExportedName(name); en != name {
		if f := v.FieldByName(en); f.IsValid() {
			return f
		}
	}
	return v.FieldByNameFunc(func(fn string) bool {
		return strings.EqualFold(fn, name)
	})
}

// member returns the element of v named by the given path segment,
// going through any pointers and interfaces first. Structs are indexed
// by field, maps with string keys by key, and slices and arrays by
// integer index.
func member(v reflect.Value, seg string) (reflect.Value, error) {
	uv := UnderlyingValue(v)
	if !uv.IsValid() {
		return reflect.Value{}, fmt.Errorf("nil value at %q", seg)
	}
	switch uv.Kind() {
	case reflect.Struct:
		f := fieldByName(uv, seg)
		if !f.IsValid() {
			return reflect.Value{}, fmt.Errorf("%s has no field %q", uv.Type(), seg)
		}
		return f, nil
	case reflect.Map:
		if uv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("%s does not have string keys", uv.Type())
		}
		e := uv.MapIndex(reflect.ValueOf(seg).Convert(uv.Type().Key()))
		if !e.IsValid() {
			return reflect.Value{}, fmt.Errorf("%s has no key %q", uv.Type(), seg)
		}
		return e, nil
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= uv.Len() {
			return reflect.Value{}, fmt.Errorf("invalid index %q for %s of length %d", seg, uv.Type(), uv.Len())
		}
		return uv.Index(i), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot index %s with %q", uv.Type(), seg)
}

// resolve walks all but the last segment of the given dot-separated path
// starting from obj, returning the container value and the last segment.
func resolve(obj any, path string) (reflect.Value, string, error) {
	if path == "" {
		return reflect.Value{}, "", fmt.Errorf("empty path")
	}
	segs := strings.Split(path, ".")
	cur := reflect.ValueOf(obj)
	for _, seg := range segs[:len(segs)-1] {
		nv, err := member(cur, seg)
		if err != nil {
			return reflect.Value{}, "", err
		}
		cur = nv
	}
	return cur, segs[len(segs)-1], nil
}

// GetPath returns the value at the given dot-separated property path
// on the given object, such as "material.color".
func GetPath(obj any, path string) (any, error) {
	cont, last, err := resolve(obj, path)
	if err != nil {
		return nil, fmt.Errorf("reflectx.GetPath %q: %w", path, err)
	}
	v, err := member(cont, last)
	if err != nil {
		return nil, fmt.Errorf("reflectx.GetPath %q: %w", path, err)
	}
	return v.Interface(), nil
}

// HasPath returns whether the given dot-separated property path
// resolves on the given object.
func HasPath(obj any, path string) bool {
	_, err := GetPath(obj, path)
	return err == nil
}

// SetPath sets the value at the given dot-separated property path on the
// given object using [SetValue]. The object must be a pointer (or hold
// pointers along the path) for struct fields to be settable. Map entries
// are set directly, creating the key if needed.
func SetPath(obj any, path string, value any) error {
	cont, last, err := resolve(obj, path)
	if err != nil {
		return fmt.Errorf("reflectx.SetPath %q: %w", path, err)
	}
	if uc := UnderlyingValue(cont); uc.IsValid() && uc.Kind() == reflect.Map {
		if uc.IsNil() || uc.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("reflectx.SetPath %q: cannot set key on %s", path, uc.Type())
		}
		ev := reflect.New(uc.Type().Elem()).Elem()
		if err := SetValue(ev, value); err != nil {
			return fmt.Errorf("reflectx.SetPath %q: %w", path, err)
		}
		uc.SetMapIndex(reflect.ValueOf(last).Convert(uc.Type().Key()), ev)
		return nil
	}
	f, err := member(cont, last)
	if err != nil {
		return fmt.Errorf("reflectx.SetPath %q: %w", path, err)
	}
	if err := SetValue(f, value); err != nil {
		return fmt.Errorf("reflectx.SetPath %q: %w", path, err)
	}
	return nil
}

// SetPathIndex sets element i of the slice at the given property path,
// growing the slice with zero values as needed. It returns the previous
// element value, or nil if the slice did not reach index i.
func SetPathIndex(obj any, path string, i int, value any) (previous any, err error) {
	if i < 0 {
		return nil, fmt.Errorf("reflectx.SetPathIndex %q: negative index %d", path, i)
	}
	cont, last, err := resolve(obj, path)
	if err != nil {
		return nil, fmt.Errorf("reflectx.SetPathIndex %q: %w", path, err)
	}
	f, err := member(cont, last)
	if err != nil {
		return nil, fmt.Errorf("reflectx.SetPathIndex %q: %w", path, err)
	}
	if f.Kind() != reflect.Slice || !f.CanSet() {
		return nil, fmt.Errorf("reflectx.SetPathIndex %q: %s is not a settable slice", path, f.Type())
	}
	if i < f.Len() {
		previous = f.Index(i).Interface()
	} else {
		f.Set(reflect.AppendSlice(f, reflect.MakeSlice(f.Type(), i+1-f.Len(), i+1-f.Len())))
	}
	if err := SetValue(f.Index(i), value); err != nil {
		return nil, fmt.Errorf("reflectx.SetPathIndex %q: %w", path, err)
	}
	return previous, nil
}
