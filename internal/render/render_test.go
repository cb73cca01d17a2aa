package render

import (
	"testing"
	"testing/fstest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelfield/internal/assets"
	"voxelfield/internal/components"
	"voxelfield/internal/engine"
	"voxelfield/internal/voxel"
	"voxelfield/internal/world"
)

func forwardCamera() (rl.Camera3D, components.Projection) {
	proj := components.Perspective(1.3, 60)
	cam := components.NewCamera(proj).Raylib(engine.NewTransform())
	return cam, proj
}

func TestFrustumFacesNegativeZ(t *testing.T) {
	cam, proj := forwardCamera()
	f := FrustumFor(cam, proj)

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: -10}, 0))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: 10}, 0), "behind the eye")
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: -2000}, 0), "past the far plane")
	assert.False(t, f.ContainsSphere(rl.Vector3{X: 50, Z: -10}, 0))
	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 1}, 2), "sphere straddling the near plane")
}

func TestCollectCullsAndTints(t *testing.T) {
	store := assets.NewStore(fstest.MapFS{"cube.obj": {Data: []byte("v 0 0 0\n")}})
	w := engine.NewWorld()
	cfg := world.DefaultConfig()
	cfg.Radius = 2
	cfg.CellSize = 10
	cfg.PoseMode = world.PoseCell
	scene, err := world.Bootstrap(w, store, cfg)
	require.NoError(t, err)

	cam, proj := forwardCamera()
	items, stats := Collect(w, store, FrustumFor(cam, proj))

	assert.Equal(t, len(scene.Voxels), stats.Drawn+stats.Culled)
	assert.NotZero(t, stats.Culled)
	assert.Len(t, items, stats.Drawn)
	for _, it := range items {
		assert.Equal(t, scene.Mesh, it.Mesh)
		assert.LessOrEqual(t, it.Matrix.M14, float32(0), "voxels behind the eye are culled")
		coord, _ := engine.Get[voxel.Coord](w, it.Entity)
		assert.Equal(t, voxel.ColorAt(coord, 2).RGBA(), it.Tint)
	}
}

func TestCollectSkipsHidden(t *testing.T) {
	store := assets.NewStore(fstest.MapFS{"cube.obj": {Data: []byte("v 0 0 0\n")}})
	w := engine.NewWorld()
	cfg := world.DefaultConfig()
	cfg.Radius = 1
	scene, err := world.Bootstrap(w, store, cfg)
	require.NoError(t, err)

	for _, e := range scene.Voxels {
		engine.Mut[components.MeshRenderer](w, e).Hidden = true
	}
	cam, proj := forwardCamera()
	items, stats := Collect(w, store, FrustumFor(cam, proj))
	assert.Empty(t, items)
	assert.Zero(t, stats.Culled)
}

func TestModulateByAmbient(t *testing.T) {
	white := voxel.Color{R: 1, G: 1, B: 1, A: 1}
	assert.Equal(t, rl.NewColor(200, 100, 50, 255), modulate(rl.NewColor(200, 100, 50, 255), white))

	half := voxel.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	assert.Equal(t, rl.NewColor(100, 50, 25, 255), modulate(rl.NewColor(200, 100, 50, 255), half))

	dark := voxel.Color{R: 0, G: 0, B: 0, A: 1}
	got := modulate(rl.NewColor(200, 100, 50, 255), dark)
	assert.Equal(t, uint8(0), got.R)
	assert.Equal(t, uint8(255), got.A)
}
