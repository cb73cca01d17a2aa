package world

import (
	"errors"
	"fmt"
	"log"

	"voxelfield/internal/assets"
	"voxelfield/internal/components"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/voxel"
)

var errNoCells = errors.New("world: grid produced no cells")

// AmbientColor is the scene-wide ambient light resource.
type AmbientColor struct {
	voxel.Color
}

// Scene is the result of a successful Bootstrap.
type Scene struct {
	World    *engine.World
	Store    *assets.Store
	Config   Config
	Camera   engine.Entity
	Mesh     assets.MeshHandle
	Voxels   []engine.Entity
	Contacts physics.ContactChannel
}

// Bootstrap lays out a voxel scene in w: it validates cfg, loads the mesh,
// creates the camera rig, generates the lattice, builds one static body per
// cell and stores the ambient color. Validation and mesh errors are
// reported before any voxel entity exists; on any later error the camera
// and voxels built so far are destroyed again.
func Bootstrap(w *engine.World, store *assets.Store, cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mesh, err := store.LoadMesh(cfg.Mesh)
	if err != nil {
		return nil, fmt.Errorf("world: load mesh: %w", err)
	}

	contacts := Setup(w)
	w.SetStrict(true)

	cam, err := InitCamera(w, components.Perspective(cfg.Aspect, cfg.FovY))
	if err != nil {
		return nil, err
	}

	cells, err := cfg.Grid().Generate()
	if err == nil && len(cells) == 0 {
		err = errNoCells
	}
	if err != nil {
		w.Destroy(cam)
		return nil, err
	}
	voxels, err := BuildVoxels(w, store, mesh, cells, cfg.PoseMode)
	if err != nil {
		w.Destroy(cam)
		return nil, err
	}

	engine.SetResource(w, AmbientColor{cfg.Ambient})

	log.Printf("World: scene ready, radius %d, %d entities", cfg.Radius, w.Len())
	return &Scene{
		World:    w,
		Store:    store,
		Config:   cfg,
		Camera:   cam,
		Mesh:     mesh,
		Voxels:   voxels,
		Contacts: contacts,
	}, nil
}

// Ambient returns the ambient color resource, white if none was set.
func Ambient(w *engine.World) voxel.Color {
	if a, ok := engine.Resource[AmbientColor](w); ok {
		return a.Color
	}
	return DefaultConfig().Ambient
}
