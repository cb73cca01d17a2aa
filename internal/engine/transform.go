package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is an entity's local placement. There is no hierarchy, so local
// and world space coincide.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Position: rl.Vector3{},
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Translated returns the identity transform moved to pos.
func Translated(pos rl.Vector3) Transform {
	t := NewTransform()
	t.Position = pos
	return t
}

// Matrix composes scale, then rotation, then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

func (t Transform) IsIdentity() bool {
	return t.Position == (rl.Vector3{}) &&
		t.Scale == (rl.Vector3{X: 1, Y: 1, Z: 1}) &&
		t.Rotation == rl.QuaternionIdentity()
}

// Forward returns the -Z axis rotated by t.Rotation.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, t.Rotation)
}

// GlobalTransform is the world matrix the render pass reads. It is derived
// from Transform by SyncGlobalTransforms.
type GlobalTransform struct {
	Matrix rl.Matrix
}

func NewGlobalTransform() GlobalTransform {
	return GlobalTransform{Matrix: rl.MatrixIdentity()}
}

// Translation returns the translation column of the world matrix.
func (g GlobalTransform) Translation() rl.Vector3 {
	return rl.Vector3{X: g.Matrix.M12, Y: g.Matrix.M13, Z: g.Matrix.M14}
}

// SyncGlobalTransforms writes every Transform's matrix into the entity's
// GlobalTransform and returns how many were updated.
func SyncGlobalTransforms(w *World) int {
	n := 0
	Each(w, func(e Entity, g *GlobalTransform) {
		if t, ok := Get[Transform](w, e); ok {
			g.Matrix = t.Matrix()
			n++
		}
	})
	return n
}
