// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/fiber/tree"

// Camera is the interface for all cameras.
type Camera interface {
	Node

	// AsCamera returns the [CameraBase] of the camera.
	AsCamera() *CameraBase

	// SetAspect updates the camera for a view with the given
	// width / height ratio.
	SetAspect(aspect float32)
}

// CameraBase holds the properties shared by all cameras.
type CameraBase struct {
	Object3D

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	// Zoom is the zoom factor of the camera.
	Zoom float32
}

// AsCamera returns the [CameraBase] for this camera.
func (cb *CameraBase) AsCamera() *CameraBase {
	return cb
}

// PerspectiveCamera projects with perspective, like the human eye.
type PerspectiveCamera struct {
	CameraBase

	// Fov is the vertical field of view in degrees.
	Fov float32

	// Aspect is the width / height ratio of the view.
	Aspect float32
}

// NewPerspectiveCamera returns a new perspective camera.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	cm := &PerspectiveCamera{Fov: fov, Aspect: aspect}
	cm.Defaults()
	tree.InitNode(cm)
	cm.Near, cm.Far, cm.Zoom = near, far, 1
	return cm
}

// SetAspect sets the aspect ratio.
func (cm *PerspectiveCamera) SetAspect(aspect float32) {
	cm.Aspect = aspect
}

// OrthographicCamera projects without perspective, so that sizes
// do not depend on distance.
type OrthographicCamera struct {
	CameraBase
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// NewOrthographicCamera returns a new orthographic camera with the given frustum.
func NewOrthographicCamera(left, right, top, bottom, near, far float32) *OrthographicCamera {
	cm := &OrthographicCamera{Left: left, Right: right, Top: top, Bottom: bottom}
	cm.Defaults()
	tree.InitNode(cm)
	cm.Near, cm.Far, cm.Zoom = near, far, 1
	return cm
}

// SetAspect widens or narrows the frustum to the given aspect ratio,
// keeping its height.
func (cm *OrthographicCamera) SetAspect(aspect float32) {
	h := cm.Top - cm.Bottom
	cx := (cm.Left + cm.Right) / 2
	cm.Left = cx - h*aspect/2
	cm.Right = cx + h*aspect/2
}

// test for impl
var (
	_ Camera = &PerspectiveCamera{}
	_ Camera = &OrthographicCamera{}
)
