package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

const (
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 1000.0
)

// Projection describes a camera lens. FovY is in degrees.
type Projection struct {
	Kind   rl.CameraProjection
	Aspect float32
	FovY   float32
	Near   float32
	Far    float32
}

// Perspective returns a perspective lens with the default clip planes.
func Perspective(aspect, fovDeg float32) Projection {
	return Projection{
		Kind:   rl.CameraPerspective,
		Aspect: aspect,
		FovY:   fovDeg,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() rl.Matrix {
	if p.Kind == rl.CameraOrthographic {
		halfH := p.FovY / 2.0
		halfW := halfH * p.Aspect
		return rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, p.Near, p.Far)
	}
	return rl.MatrixPerspective(p.FovY*rl.Deg2rad, p.Aspect, p.Near, p.Far)
}

type Camera struct {
	Projection Projection
	IsMain     bool // If true, this is the active camera
}

func NewCamera(p Projection) Camera {
	return Camera{Projection: p, IsMain: true}
}

// Raylib builds the raylib camera for an eye placed at t.
func (c Camera) Raylib(t engine.Transform) rl.Camera3D {
	return rl.Camera3D{
		Position:   t.Position,
		Target:     rl.Vector3Add(t.Position, t.Forward()),
		Up:         rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, t.Rotation),
		Fovy:       c.Projection.FovY,
		Projection: c.Projection.Kind,
	}
}
