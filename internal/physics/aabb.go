package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromHalfExtents creates an AABB reaching half in each direction from center.
func NewAABBFromHalfExtents(center, half rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Valid reports whether Min <= Max on every axis.
func (a AABB) Valid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Translate moves the box by offset.
func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, offset), Max: rl.Vector3Add(a.Max, offset)}
}

// Contains reports whether b lies entirely inside a (touching faces count).
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Max.X >= b.Max.X &&
		a.Min.Y <= b.Min.Y && a.Max.Y >= b.Max.Y &&
		a.Min.Z <= b.Min.Z && a.Max.Z >= b.Max.Z
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the shortest axis-aligned push that moves a out of b, or
// zero when they do not overlap. On ties the earlier axis wins, +X first.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}
	up := [3]float32{b.Max.X - a.Min.X, b.Max.Y - a.Min.Y, b.Max.Z - a.Min.Z}
	down := [3]float32{a.Max.X - b.Min.X, a.Max.Y - b.Min.Y, a.Max.Z - b.Min.Z}

	depth, axis, sign := up[0], 0, float32(1)
	for i := range up {
		if up[i] < depth {
			depth, axis, sign = up[i], i, 1
		}
		if down[i] < depth {
			depth, axis, sign = down[i], i, -1
		}
	}
	var push [3]float32
	push[axis] = sign * depth
	return rl.Vector3{X: push[0], Y: push[1], Z: push[2]}
}
