// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import "cogentcore.org/fiber/base/errors"

// Errors returned by [Renderer.CreateInstance] and [Renderer.SwitchInstance],
// wrapped with context. Match them with [errors.Is].
var (
	// ErrUnknownType is returned for a type name that is not in the
	// [Catalogue] and is not the primitive type.
	ErrUnknownType = errors.New("unknown type")

	// ErrMissingObject is returned for a primitive without an object.
	ErrMissingObject = errors.New("primitive requires an object")

	// ErrManagedObject is returned for a primitive whose object is
	// already managed by an instance that is not a primitive.
	ErrManagedObject = errors.New("object is managed by a non-primitive instance")

	// ErrInvalidArgs is returned when args is not a sequence, or when
	// the constructor rejects the args.
	ErrInvalidArgs = errors.New("invalid args")

	// ErrMissingRoot is returned when an instance is created without a root.
	ErrMissingRoot = errors.New("missing root")

	// ErrInvalidAttach is returned for an attach prop that is neither a
	// slot name nor an [Attach] descriptor.
	ErrInvalidAttach = errors.New("invalid attach")
)
