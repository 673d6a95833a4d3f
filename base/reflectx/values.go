// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
)

// Setter is implemented by value types that know how to set themselves
// from loosely typed input, such as a vector being set from a list of
// numbers or a color from a hex string. It must be implemented on the
// pointer receiver.
type Setter interface {
	SetValue(v any) error
}

// ToSlice returns the elements of the given slice or array value as a
// []any. Strings and byte slices are not considered sequences. It returns
// false if the value is not a sequence.
func ToSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	s := make([]any, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

// ToFloat64 converts the given numeric value (or numeric string) to a float64.
func ToFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("reflectx.ToFloat64: %w", err)
		}
		return f, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("reflectx.ToFloat64: %T is not a number", v)
}

// ToFloat32 converts the given numeric value to a float32.
func ToFloat32(v any) (float32, error) {
	f, err := ToFloat64(v)
	return float32(f), err
}

// ToInt converts the given numeric value to an int, truncating
// any fractional part.
func ToInt(v any) (int, error) {
	f, err := ToFloat64(v)
	return int(f), err
}

// ToFloat32s converts the given sequence of numbers to a []float32.
// A single number is returned as a one-element slice.
func ToFloat32s(v any) ([]float32, error) {
	s, ok := ToSlice(v)
	if !ok {
		f, err := ToFloat32(v)
		if err != nil {
			return nil, err
		}
		return []float32{f}, nil
	}
	fs := make([]float32, len(s))
	for i, e := range s {
		f, err := ToFloat32(e)
		if err != nil {
			return nil, fmt.Errorf("reflectx.ToFloat32s: element %d: %w", i, err)
		}
		fs[i] = f
	}
	return fs, nil
}

func isNumberKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// SetValue sets the given settable value from the given loosely typed
// value. A nil value sets the zero value. Types implementing [Setter]
// on their pointer receiver are given the value unless it is directly
// assignable. Numbers are converted between numeric kinds, and
// sequences are converted element by element into slice targets.
func SetValue(to reflect.Value, from any) error {
	if !to.CanSet() {
		return fmt.Errorf("reflectx.SetValue: cannot set unaddressable or unexported value of type %s", to.Type())
	}
	if from == nil {
		to.SetZero()
		return nil
	}
	fv := reflect.ValueOf(from)
	if fv.Type().AssignableTo(to.Type()) {
		to.Set(fv)
		return nil
	}
	if st, ok := to.Addr().Interface().(Setter); ok {
		return st.SetValue(from)
	}
	tk := to.Kind()
	switch {
	case isNumberKind(tk):
		f, err := ToFloat64(from)
		if err != nil {
			return fmt.Errorf("reflectx.SetValue: %s: %w", to.Type(), err)
		}
		switch {
		case tk >= reflect.Int && tk <= reflect.Int64:
			to.SetInt(int64(f))
		case tk >= reflect.Uint && tk <= reflect.Uintptr:
			to.SetUint(uint64(f))
		default:
			to.SetFloat(f)
		}
		return nil
	case tk == reflect.String && fv.Kind() == reflect.String:
		to.SetString(fv.String())
		return nil
	case tk == reflect.Bool && fv.Kind() == reflect.Bool:
		to.SetBool(fv.Bool())
		return nil
	case tk == reflect.Slice:
		s, ok := ToSlice(from)
		if !ok {
			break
		}
		ns := reflect.MakeSlice(to.Type(), len(s), len(s))
		for i, e := range s {
			if err := SetValue(ns.Index(i), e); err != nil {
				return err
			}
		}
		to.Set(ns)
		return nil
	}
	return fmt.Errorf("reflectx.SetValue: cannot set %s from %T", to.Type(), from)
}
