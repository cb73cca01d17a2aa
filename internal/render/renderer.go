package render

import (
	"log"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/assets"
	"voxelfield/internal/components"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/voxel"
	"voxelfield/internal/world"
)

// DefaultCullRadius bounds entities that carry no collision shape.
const DefaultCullRadius float32 = 1.8

// Item is one entity that survived culling.
type Item struct {
	Entity engine.Entity
	Mesh   assets.MeshHandle
	Tint   rl.Color
	Matrix rl.Matrix
}

// Stats counts the last frame's draw work.
type Stats struct {
	Drawn  int
	Culled int
}

// Collect returns every visible mesh entity inside f, tinted by its albedo
// and the world's ambient color.
func Collect(w *engine.World, store *assets.Store, f Frustum) ([]Item, Stats) {
	var stats Stats
	ambient := world.Ambient(w)
	items := make([]Item, 0, engine.Count[components.MeshRenderer](w))

	engine.Each(w, func(e engine.Entity, mr *components.MeshRenderer) {
		if mr.Hidden {
			return
		}
		gt, ok := engine.Get[engine.GlobalTransform](w, e)
		if !ok {
			return
		}
		if !f.ContainsSphere(gt.Translation(), cullRadius(w, e)) {
			stats.Culled++
			return
		}
		albedo, err := store.TextureColor(mr.Material.Albedo)
		if err != nil {
			albedo = rl.White
		}
		items = append(items, Item{
			Entity: e,
			Mesh:   mr.Mesh,
			Tint:   modulate(albedo, ambient),
			Matrix: gt.Matrix,
		})
		stats.Drawn++
	})
	return items, stats
}

func cullRadius(w *engine.World, e engine.Entity) float32 {
	shape, ok := engine.Get[physics.CollisionShape](w, e)
	if !ok || !shape.Bound.Valid() {
		return DefaultCullRadius
	}
	return rl.Vector3Length(shape.Bound.Size()) / 2
}

func modulate(c rl.Color, ambient voxel.Color) rl.Color {
	return rl.NewColor(scale(c.R, ambient.R), scale(c.G, ambient.G), scale(c.B, ambient.B), scale(c.A, ambient.A))
}

func scale(v uint8, k float32) uint8 {
	x := float32(v)*k + 0.5
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// Renderer owns the GPU models behind mesh handles. It needs an open window.
type Renderer struct {
	store  *assets.Store
	root   string
	models map[assets.MeshHandle]rl.Model
	Stats  Stats
}

// NewRenderer resolves mesh paths relative to root on disk.
func NewRenderer(store *assets.Store, root string) *Renderer {
	return &Renderer{
		store:  store,
		root:   root,
		models: make(map[assets.MeshHandle]rl.Model),
	}
}

func (r *Renderer) model(h assets.MeshHandle) rl.Model {
	if m, ok := r.models[h]; ok {
		return m
	}
	var m rl.Model
	if p, err := r.store.MeshPath(h); err == nil {
		m = rl.LoadModel(filepath.Join(r.root, filepath.FromSlash(p)))
	}
	if m.MeshCount == 0 {
		log.Printf("Renderer: mesh %v unavailable, drawing a unit cube", h)
		size := 2 * world.VoxelHalfExtent
		m = rl.LoadModelFromMesh(rl.GenMeshCube(size, size, size))
	}
	r.models[h] = m
	return m
}

// Draw renders every visible mesh entity from the camera entity's view.
func (r *Renderer) Draw(w *engine.World, camera engine.Entity) {
	cam, ok := engine.Get[components.Camera](w, camera)
	if !ok {
		return
	}
	t, _ := engine.Get[engine.Transform](w, camera)
	rlCam := cam.Raylib(t)

	items, stats := Collect(w, r.store, FrustumFor(rlCam, cam.Projection))
	r.Stats = stats

	rl.BeginMode3D(rlCam)
	for _, it := range items {
		m := r.model(it.Mesh)
		m.Transform = it.Matrix
		rl.DrawModel(m, rl.Vector3Zero(), 1, it.Tint)
	}
	rl.EndMode3D()
}

func (r *Renderer) Unload() {
	for h, m := range r.models {
		rl.UnloadModel(m)
		delete(r.models, h)
	}
}
