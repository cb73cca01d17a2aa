package world

import (
	"errors"
	"fmt"
	"log"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/assets"
	"voxelfield/internal/components"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/voxel"
)

var ErrInvalidCell = errors.New("world: voxel position is not finite")

// VoxelHalfExtent is the half-size of every voxel's collision cuboid.
const VoxelHalfExtent float32 = 1.0

// Setup registers every component type a voxel scene uses, physics included.
// It is idempotent.
func Setup(w *engine.World) physics.ContactChannel {
	engine.Register[components.Camera](w)
	engine.Register[components.FlyControlTag](w)
	engine.Register[components.FlyControl](w)
	engine.Register[components.MeshRenderer](w)
	engine.Register[engine.Transform](w)
	engine.Register[engine.GlobalTransform](w)
	engine.Register[voxel.Coord](w)
	return physics.Setup(w)
}

// VoxelShape is the collision shape shared by every voxel.
func VoxelShape() physics.CollisionShape {
	return physics.NewSimpleWithType(
		physics.FullResolution,
		physics.Discrete,
		physics.NewCuboid(VoxelHalfExtent, VoxelHalfExtent, VoxelHalfExtent),
		physics.Box,
	)
}

func finite(v rl.Vector3) bool {
	for _, x := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func voxelPose(c voxel.Cell, mode PoseMode) physics.BodyPose {
	if mode == PoseCell {
		return physics.NewBodyPose(c.Transform.Position, c.Transform.Rotation)
	}
	return physics.OriginPose()
}

// BuildVoxels turns generated cells into static rigid-body entities sharing
// one mesh. Each entity gets its own solid-color material. If any entity
// fails to build, the ones already built are destroyed and the error is
// returned.
func BuildVoxels(w *engine.World, store *assets.Store, mesh assets.MeshHandle, cells []voxel.Cell, mode PoseMode) ([]engine.Entity, error) {
	if !mesh.Valid() {
		return nil, fmt.Errorf("world: build voxels: %w", assets.ErrInvalidHandle)
	}
	Setup(w)

	shape := VoxelShape()
	out := make([]engine.Entity, 0, len(cells))
	warned := false
	rollback := func() {
		for _, done := range out {
			w.Destroy(done)
		}
	}
	for _, c := range cells {
		if !finite(c.Transform.Position) {
			rollback()
			return nil, fmt.Errorf("%w: %v at %v", ErrInvalidCell, c.Coord, c.Transform.Position)
		}
		pose := voxelPose(c, mode)
		if !warned && pose.Position != c.Transform.Position {
			log.Printf("World: voxel bodies are anchored at the origin but drawn at their cells (pose mode %q)", mode)
			warned = true
		}

		mat := store.MaterialFromColor(c.Color.RGBA())
		e, err := w.Create().
			With(
				engine.Component(components.NewMeshRenderer(mesh, mat)),
				engine.Component(c.Transform),
				engine.Component(engine.GlobalTransform{Matrix: c.Transform.Matrix()}),
				engine.Component(c.Coord),
			).
			WithBundle(physics.WithStaticRigidBody(shape, pose, physics.NewRigidBody(), physics.InfiniteMass())).
			Build()
		if err != nil {
			rollback()
			return nil, fmt.Errorf("world: voxel %v: %w", c.Coord, err)
		}
		out = append(out, e)
	}
	log.Printf("World: built %d voxels", len(out))
	return out, nil
}
