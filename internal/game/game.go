package game

import (
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/assets"
	"voxelfield/internal/components"
	"voxelfield/internal/config"
	"voxelfield/internal/engine"
	"voxelfield/internal/physics"
	"voxelfield/internal/render"
	"voxelfield/internal/session"
	"voxelfield/internal/world"
)

// Game hosts one voxel session: it owns the world, routes input and drives
// the frame loop.
type Game struct {
	cfg      config.Config
	World    *engine.World
	Scene    *world.Scene
	Store    *assets.Store
	Router   *session.Router
	Renderer *render.Renderer

	bindings session.Bindings
	keys     session.KeyState
	reader   engine.ReaderID

	DebugMode bool
	Contacts  int // contacts found by the last on-demand pass

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New bootstraps the scene described by cfg. It does not open a window.
func New(cfg config.Config) (*Game, error) {
	wc, err := cfg.World()
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	store := assets.NewStore(os.DirFS(cfg.Assets.Dir))
	w := engine.NewWorld()
	scene, err := world.Bootstrap(w, store, wc)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if fc := engine.Mut[components.FlyControl](w, scene.Camera); fc != nil {
		*fc = cfg.FlyControl()
	}

	return &Game{
		cfg:      cfg,
		World:    w,
		Scene:    scene,
		Store:    store,
		Router:   session.NewRouter(cfg.ExitKey()),
		bindings: bindings,
		keys:     make(session.KeyState),
		reader:   scene.Contacts.Register(),
	}, nil
}

// ExportSnapshot writes the scene to the configured snapshot path, if any.
func (g *Game) ExportSnapshot() error {
	if g.cfg.Snapshot.Path == "" {
		return nil
	}
	if err := world.ExportSnapshot(g.cfg.Snapshot.Path, g.Scene); err != nil {
		return err
	}
	log.Printf("Game: snapshot written to %s", g.cfg.Snapshot.Path)
	return nil
}

func (g *Game) Run() {
	d := g.cfg.Display
	var flags uint32
	if d.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	if d.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(d.Width, d.Height, d.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(d.TargetFPS)
	// Escape must reach the router instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.DisableCursor()

	g.Renderer = render.NewRenderer(g.Store, g.cfg.Assets.Dir)
	defer g.Renderer.Unload()

	watch := append(g.bindings.Keys(), g.Router.ExitKey)
	poller := session.NewPoller(watch...)

	for {
		updateStart := time.Now()
		if !g.Step(poller.Poll(), rl.GetFrameTime()) {
			break
		}
		g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
		g.Draw()
	}
	log.Printf("Game: session ended (%s)", g.Router.State())
}

// Step applies one frame of events and advances the camera by dt. It
// returns false once the session should end.
func (g *Game) Step(events []session.Event, dt float32) bool {
	var look rl.Vector2
	for _, ev := range events {
		g.keys.Apply(ev)
		switch e := ev.(type) {
		case session.DeviceEvent:
			look = rl.Vector2Add(look, e.MouseDelta)
		case session.WindowEvent:
			if e.Kind == session.WindowCloseRequested {
				return false
			}
			if e.Kind == session.WindowKeyboardInput && e.Input.State == session.Pressed && !e.Input.Repeat {
				g.handleKey(e.Input.Key)
			}
		}
		if g.Router.Handle(ev) == session.Quit {
			return false
		}
	}

	cam := g.Scene.Camera
	if t := engine.Mut[engine.Transform](g.World, cam); t != nil {
		fc, _ := engine.Get[components.FlyControl](g.World, cam)
		fc.Step(t, components.FlyInput{
			Move: rl.Vector3{
				X: g.bindings.Value(fc.AxisX, g.keys),
				Y: g.bindings.Value(fc.AxisY, g.keys),
				Z: g.bindings.Value(fc.AxisZ, g.keys),
			},
			Look: look,
		}, dt)
	}
	engine.SyncGlobalTransforms(g.World)
	return true
}

func (g *Game) handleKey(k session.Key) {
	switch k {
	case rl.KeyF1:
		g.DebugMode = !g.DebugMode
	case rl.KeyF2:
		g.DetectContacts()
	}
}

// DetectContacts runs the broad-phase once and drains the contact channel.
func (g *Game) DetectContacts() int {
	physics.DetectContacts(g.World)
	g.Contacts = len(g.Scene.Contacts.Read(g.reader))
	log.Printf("Game: %d contacts", g.Contacts)
	return g.Contacts
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(g.cfg.ClearColor().RGBA())
	g.Renderer.Draw(g.World, g.Scene.Camera)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if g.cfg.Display.HUD {
		g.DrawUI()
	}
	rl.EndDrawing()
}
