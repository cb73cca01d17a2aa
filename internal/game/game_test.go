package game

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelfield/internal/components"
	"voxelfield/internal/config"
	"voxelfield/internal/engine"
	"voxelfield/internal/session"
	"voxelfield/internal/world"
)

func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.obj"), []byte("v 0 0 0\n"), 0o644))

	cfg := config.Defaults()
	cfg.Assets.Dir = dir
	cfg.Scene.Radius = 1
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func cameraPos(g *Game) rl.Vector3 {
	t, _ := engine.Get[engine.Transform](g.World, g.Scene.Camera)
	return t.Position
}

func TestNewBootstrapsScene(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Fly.Speed = 5 })
	assert.Len(t, g.Scene.Voxels, 8)
	assert.Equal(t, session.Running, g.Router.State())

	fc, _ := engine.Get[components.FlyControl](g.World, g.Scene.Camera)
	assert.Equal(t, float32(5), fc.Speed)
}

func TestNewMissingMesh(t *testing.T) {
	cfg := config.Defaults()
	cfg.Assets.Dir = t.TempDir()
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestStepExitKeyEndsSession(t *testing.T) {
	g := newTestGame(t, nil)

	assert.True(t, g.Step([]session.Event{session.KeyPress(rl.KeyW)}, 0))
	assert.False(t, g.Step([]session.Event{session.KeyPress(session.KeyEscape)}, 0))
	assert.Equal(t, session.Terminating, g.Router.State())
}

func TestStepCloseRequest(t *testing.T) {
	g := newTestGame(t, nil)
	assert.False(t, g.Step([]session.Event{session.WindowEvent{Kind: session.WindowCloseRequested}}, 0))
}

func TestStepFliesCamera(t *testing.T) {
	g := newTestGame(t, nil)

	require.True(t, g.Step([]session.Event{session.KeyPress(rl.KeyD)}, 0.5))
	assert.InDelta(t, 10, cameraPos(g).X, 1e-4, "speed 20 for half a second")

	// Still held: keeps moving without a new event.
	require.True(t, g.Step(nil, 0.5))
	assert.InDelta(t, 20, cameraPos(g).X, 1e-4)

	require.True(t, g.Step([]session.Event{session.KeyRelease(rl.KeyD), session.KeyPress(rl.KeyW)}, 0.5))
	pos := cameraPos(g)
	assert.InDelta(t, 20, pos.X, 1e-4)
	assert.InDelta(t, -10, pos.Z, 1e-4, "W flies forward along -Z")

	gt, _ := engine.Get[engine.GlobalTransform](g.World, g.Scene.Camera)
	assert.Equal(t, pos, gt.Translation())
}

func TestDebugAndContactKeys(t *testing.T) {
	g := newTestGame(t, nil)

	require.True(t, g.Step([]session.Event{session.KeyPress(rl.KeyF1)}, 0))
	assert.True(t, g.DebugMode)

	require.True(t, g.Step([]session.Event{session.KeyPress(rl.KeyF2)}, 0))
	assert.Zero(t, g.Contacts, "same-tag voxels never generate contacts")
}

func TestExportSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scene.snap.zst")
	g := newTestGame(t, func(c *config.Config) { c.Snapshot.Path = out })
	require.NoError(t, g.ExportSnapshot())

	snap, err := world.ReadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, 8, snap.Header.Voxels)
}
