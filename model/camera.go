package model

import (
	"fmt"
	"log"

	vm "local/vector_math"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

// Camera is a scene node carrying a projection. Its own node transform places it in the world, the
// view matrix is derived from that transform or, if a target is set, from looking at the target.
type Camera struct {
	*Object3D
	ProjectionType int

	// Projection matrix precursors
	Fov         float32 // vertical field of view in degree
	Aspect      float32
	Near        float32
	Far         float32
	OrthoWidth  float32
	OrthoHeight float32

	LookTarget *vm.Vec3
	Up         vm.Vec3

	Projection     vm.Mat4
	View           vm.Mat4
	ViewProjection vm.Mat4
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	c := &Camera{
		Object3D:       NewObject3D("camera"),
		Fov:            fov,
		Aspect:         1,
		Near:           near,
		Far:            far,
		OrthoWidth:     2,
		OrthoHeight:    2,
		Up:             vm.Vec3Up,
		View:           vm.NewMat4(),
		ViewProjection: vm.NewMat4(),
	}
	c.Projection = c.GetProjection()
	return c
}

func (c *Camera) SetAspect(aspect float32) *Camera {
	c.Aspect = aspect
	return c
}

func (c *Camera) SetNear(near float32) *Camera {
	c.Near = near
	return c
}

func (c *Camera) SetFar(far float32) *Camera {
	c.Far = far
	return c
}

func (c *Camera) SetFieldOfView(fov float32) *Camera {
	c.Fov = fov
	return c
}

func (c *Camera) Move(v vm.Vec3) {
	c.TranslateByVec(v)
}

func (c *Camera) Turn(deg float64, axis vm.Vec3) {
	c.Rotate(vm.ToRad(deg), axis)
}

func (c *Camera) SetTarget(v vm.Vec3) {
	c.LookTarget = &v
}

// GetProjection builds a fresh projection matrix from the current camera settings.
func (c *Camera) GetProjection() vm.Mat4 {
	var m vm.Mat4
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		m.Perspective(vm.ToRad(float64(c.Fov)), c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		// Setting the orthographic volume to the aspect of the viewport avoids stretching.
		w := c.OrthoWidth / 2 * c.Aspect
		h := c.OrthoHeight / 2
		m.Ortho(-w, w, -h, h, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type %d, returning identity.", c.ProjectionType)
		m.Identity()
	}
	return m
}

// GetView returns the world to camera transform.
func (c *Camera) GetView() (vm.Mat4, error) {
	if c.LookTarget != nil {
		return vm.NewLookAt(c.Position(), *c.LookTarget, c.Up), nil
	}
	view := c.WorldMatrix()
	if _, err := view.Invert(); err != nil {
		return view, fmt.Errorf("camera '%s' has no view: %w", c.Name, err)
	}
	return view, nil
}

// Update rebuilds projection and view and composes them into ViewProjection. If the camera transform
// is singular the previous View and ViewProjection are kept and the error is returned.
func (c *Camera) Update() error {
	c.Projection = c.GetProjection()
	view, err := c.GetView()
	if err != nil {
		return err
	}
	c.View = view
	c.ViewProjection = c.Projection
	c.ViewProjection.Mul(&c.View)
	return nil
}
