package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionStrategy selects how contacts involving a shape are handled.
type CollisionStrategy uint8

const (
	// FullResolution generates contacts and lets the solver separate bodies.
	FullResolution CollisionStrategy = iota
	// CollisionOnly reports proximity without resolving it.
	CollisionOnly
)

func (s CollisionStrategy) String() string {
	if s == CollisionOnly {
		return "CollisionOnly"
	}
	return "FullResolution"
}

// CollisionMode selects discrete per-tick sampling or continuous sweeps.
type CollisionMode uint8

const (
	Discrete CollisionMode = iota
	Continuous
)

func (m CollisionMode) String() string {
	if m == Continuous {
		return "Continuous"
	}
	return "Discrete"
}

// Primitive is a collision geometry in body-local space.
type Primitive interface {
	// Bound returns the local-space AABB enclosing the primitive.
	Bound() AABB
	// OBB places the primitive at pose.
	OBB(pose BodyPose) OBB
}

// Cuboid is a box centered on the body origin.
type Cuboid struct {
	HalfExtents rl.Vector3
}

// NewCuboid takes half extents along each axis.
func NewCuboid(hx, hy, hz float32) Cuboid {
	return Cuboid{HalfExtents: rl.Vector3{X: hx, Y: hy, Z: hz}}
}

func (c Cuboid) Bound() AABB {
	return NewAABBFromHalfExtents(rl.Vector3Zero(), c.HalfExtents)
}

func (c Cuboid) OBB(pose BodyPose) OBB {
	return NewOBB(pose.Position, c.HalfExtents, pose.Rotation)
}

// Valid reports whether every half extent is positive and finite.
func (c Cuboid) Valid() bool {
	for _, h := range [3]float32{c.HalfExtents.X, c.HalfExtents.Y, c.HalfExtents.Z} {
		if h <= 0 || math32.IsInf(h, 0) || math32.IsNaN(h) {
			return false
		}
	}
	return true
}

// CollisionShape bundles a primitive with how it collides and the category
// it collides as. Bound is the local-space bounding volume.
type CollisionShape struct {
	Strategy  CollisionStrategy
	Mode      CollisionMode
	Primitive Primitive
	Bound     AABB
	Tag       ObjectType
}

// NewSimpleWithType builds a single-primitive shape and derives its bound.
func NewSimpleWithType(strategy CollisionStrategy, mode CollisionMode, prim Primitive, tag ObjectType) CollisionShape {
	return CollisionShape{
		Strategy:  strategy,
		Mode:      mode,
		Primitive: prim,
		Bound:     prim.Bound(),
		Tag:       tag,
	}
}

// Valid reports whether the shape has a primitive and a well-formed bound
// that encloses it.
func (s CollisionShape) Valid() bool {
	if s.Primitive == nil || !s.Bound.Valid() {
		return false
	}
	if c, ok := s.Primitive.(Cuboid); ok && !c.Valid() {
		return false
	}
	return s.Bound.Contains(s.Primitive.Bound())
}

// WorldOBB places the primitive at pose.
func (s CollisionShape) WorldOBB(pose BodyPose) OBB {
	return s.Primitive.OBB(pose)
}

// WorldBound returns the world-space AABB of the shape at pose. Unrotated
// poses just move the local bound.
func (s CollisionShape) WorldBound(pose BodyPose) AABB {
	if pose.AxisAligned() {
		return s.Bound.Translate(pose.Position)
	}
	return s.WorldOBB(pose).Bound()
}
