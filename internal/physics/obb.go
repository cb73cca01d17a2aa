package physics

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented box in world space.
type OBB struct {
	Center   rl.Vector3
	HalfSize rl.Vector3
	Axes     [3]rl.Vector3
}

// NewOBB orients a box of the given half extents by rot around center.
func NewOBB(center, halfSize rl.Vector3, rot rl.Quaternion) OBB {
	m := rl.QuaternionToMatrix(rl.QuaternionNormalize(rot))
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}),
			rl.Vector3Normalize(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}),
			rl.Vector3Normalize(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}),
		},
	}
}

// Bound returns the axis-aligned box enclosing o.
func (o OBB) Bound() AABB {
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		a := o.Axes[i]
		ext.X += math32.Abs(a.X) * h
		ext.Y += math32.Abs(a.Y) * h
		ext.Z += math32.Abs(a.Z) * h
	}
	return NewAABBFromHalfExtents(o.Center, ext)
}

func (o OBB) project(axis rl.Vector3) float32 {
	return o.HalfSize.X*math32.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*math32.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*math32.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
}

// separatingAxes lists the 15 SAT candidates; near-zero edge crosses are skipped.
func (a OBB) separatingAxes(b OBB) []rl.Vector3 {
	axes := make([]rl.Vector3, 0, 15)
	axes = append(axes, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			if rl.Vector3Length(axis) > 0.0001 {
				axes = append(axes, rl.Vector3Normalize(axis))
			}
		}
	}
	return axes
}

// Penetration runs the separating axis test. When the boxes overlap it
// returns the minimum translation that pushes a out of b.
func (a OBB) Penetration(b OBB) (rl.Vector3, bool) {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minDepth := float32(math.MaxFloat32)
	var mtv rl.Vector3

	for _, axis := range a.separatingAxes(b) {
		dist := rl.Vector3DotProduct(t, axis)
		depth := a.project(axis) + b.project(axis) - math32.Abs(dist)
		if depth < 0 {
			return rl.Vector3Zero(), false
		}
		if depth < minDepth {
			minDepth = depth
			if dist < 0 {
				mtv = rl.Vector3Scale(axis, depth)
			} else {
				mtv = rl.Vector3Scale(axis, -depth)
			}
		}
	}
	return mtv, true
}

func (a OBB) Intersects(b OBB) bool {
	_, ok := a.Penetration(b)
	return ok
}

// ClosestPoint returns the point of o nearest to p.
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(p, o.Center)
	result := o.Center
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		d := clampf(rl.Vector3DotProduct(local, o.Axes[i]), -h, h)
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], d))
	}
	return result
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
