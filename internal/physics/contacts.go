package physics

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

// Spatial grid cell size - bodies sharing a cell are checked against each other
const CellSize = 5.0

// CellKey for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: floorDiv(pos.X),
		Y: floorDiv(pos.Y),
		Z: floorDiv(pos.Z),
	}
}

func floorDiv(v float32) int {
	c := v / CellSize
	i := int(c)
	if c < 0 && float32(i) != c {
		i--
	}
	return i
}

// pair holds two entity IDs, smaller first
type pair struct {
	a, b uint32
}

func makePair(a, b uint32) pair {
	if a > b {
		return pair{a: b, b: a}
	}
	return pair{a: a, b: b}
}

type collidable struct {
	entity  engine.Entity
	tag     ObjectType
	obb     OBB
	bound   AABB
	aligned bool
}

// penetration pushes a out of b. Two unrotated boxes are resolved on their
// bounds; anything else goes through the separating axis test.
func penetration(a, b collidable) (mtv rl.Vector3, point rl.Vector3, hit bool) {
	if a.aligned && b.aligned {
		mtv = a.bound.Resolve(b.bound)
		return mtv, b.obb.ClosestPoint(a.bound.Center()), true
	}
	mtv, hit = a.obb.Penetration(b.obb)
	return mtv, b.obb.ClosestPoint(a.obb.Center), hit
}

// DetectContacts runs a broad phase over every entity with a shape and a
// pose and writes one ContactEvent per overlapping pair whose tags accept
// each other. Events are written in ascending (A, B) order. It returns the
// number of events written; contacts are dropped if Setup never ran.
func DetectContacts(w *engine.World) int {
	ch, ok := Contacts(w)
	if !ok {
		return 0
	}

	bodies := make(map[uint32]collidable)
	grid := make(map[CellKey][]uint32)
	engine.Each(w, func(e engine.Entity, shape *CollisionShape) {
		pose, ok := engine.Get[BodyPose](w, e)
		if !ok || shape.Primitive == nil {
			return
		}
		c := collidable{
			entity:  e,
			tag:     shape.Tag,
			obb:     shape.WorldOBB(pose),
			bound:   shape.WorldBound(pose),
			aligned: pose.AxisAligned(),
		}
		bodies[e.ID] = c

		lo, hi := posToCell(c.bound.Min), posToCell(c.bound.Max)
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					key := CellKey{x, y, z}
					grid[key] = append(grid[key], e.ID)
				}
			}
		}
	})

	candidates := make(map[pair]bool)
	for _, ids := range grid {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				candidates[makePair(ids[i], ids[j])] = true
			}
		}
	}

	pairs := make([]pair, 0, len(candidates))
	for p := range candidates {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	written := 0
	for _, p := range pairs {
		a, b := bodies[p.a], bodies[p.b]
		if !a.tag.ShouldGenerateContacts(b.tag) {
			continue
		}
		if !a.bound.Intersects(b.bound) {
			continue
		}
		mtv, point, hit := penetration(a, b)
		if !hit {
			continue
		}
		ev := ContactEvent{
			A:     a.entity,
			B:     b.entity,
			Point: point,
			Depth: rl.Vector3Length(mtv),
		}
		if ev.Depth > 0 {
			ev.Normal = rl.Vector3Scale(mtv, 1/ev.Depth)
		}
		ch.Write(ev)
		written++
	}
	return written
}
