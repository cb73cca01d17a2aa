package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"voxelfield/internal/components"
	"voxelfield/internal/session"
	"voxelfield/internal/voxel"
	"voxelfield/internal/world"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "voxelfield.schema.json"

type Config struct {
	Display  Display  `yaml:"display"`
	Assets   Assets   `yaml:"assets"`
	Scene    Scene    `yaml:"scene"`
	Camera   Camera   `yaml:"camera"`
	Fly      Fly      `yaml:"fly"`
	Input    Input    `yaml:"input"`
	Snapshot Snapshot `yaml:"snapshot"`
}

type Display struct {
	Title      string    `yaml:"title"`
	Width      int32     `yaml:"width"`
	Height     int32     `yaml:"height"`
	VSync      bool      `yaml:"vsync"`
	HighDPI    bool      `yaml:"high_dpi"`
	TargetFPS  int32     `yaml:"target_fps"` // 0 = unlimited
	ClearColor []float32 `yaml:"clear_color"`
	HUD        bool      `yaml:"hud"`
}

type Assets struct {
	Dir  string `yaml:"dir"`
	Mesh string `yaml:"mesh"`
}

type Scene struct {
	Radius   int       `yaml:"radius"`
	CellSize float32   `yaml:"cell_size"`
	PoseMode string    `yaml:"pose_mode"`
	Ambient  []float32 `yaml:"ambient"`
}

type Camera struct {
	Aspect float32 `yaml:"aspect"`
	FovDeg float32 `yaml:"fov_deg"`
}

type Fly struct {
	Speed        float32 `yaml:"speed"`
	SensitivityX float32 `yaml:"sensitivity_x"`
	SensitivityY float32 `yaml:"sensitivity_y"`
}

// Binding maps an input axis to a positive and a negative key.
type Binding struct {
	Pos string `yaml:"pos"`
	Neg string `yaml:"neg"`
}

type Input struct {
	ExitKey string             `yaml:"exit_key"`
	Axes    map[string]Binding `yaml:"axes"`
}

type Snapshot struct {
	Path string `yaml:"path"`
}

func Defaults() Config {
	fly := components.NewFlyControl()
	scene := world.DefaultConfig()
	return Config{
		Display: Display{
			Title:      "voxelfield",
			Width:      1280,
			Height:     960,
			HighDPI:    true,
			ClearColor: []float32{1.0, 0.6, 0.8, 1.0},
			HUD:        true,
		},
		Assets: Assets{Dir: "assets", Mesh: scene.Mesh},
		Scene: Scene{
			Radius:   scene.Radius,
			CellSize: scene.CellSize,
			PoseMode: string(scene.PoseMode),
			Ambient:  []float32{1, 1, 1, 1},
		},
		Camera: Camera{Aspect: scene.Aspect, FovDeg: scene.FovY},
		Fly: Fly{
			Speed:        fly.Speed,
			SensitivityX: fly.SensitivityX,
			SensitivityY: fly.SensitivityY,
		},
		Input: Input{
			ExitKey: "escape",
			Axes: map[string]Binding{
				fly.AxisX: {Pos: "d", Neg: "a"},
				fly.AxisY: {Pos: "e", Neg: "q"},
				fly.AxisZ: {Pos: "s", Neg: "w"},
			},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, cfg.Validate()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg, err = Parse(b)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse checks raw YAML against the schema and decodes it over the defaults.
func Parse(raw []byte) (Config, error) {
	cfg := Defaults()
	if err := checkSchema(raw); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var (
	schemaOnce sync.Once
	compiled   *jsonschema.Schema
	compileErr error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// checkSchema round-trips the YAML document through JSON so the validator
// sees plain JSON values.
func checkSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not JSON-compatible: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s, err := schema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	return s.Validate(v)
}

// Validate checks what the schema cannot: key names and the scene as a whole.
func (c Config) Validate() error {
	if _, err := session.ParseKey(c.Input.ExitKey); err != nil {
		return fmt.Errorf("input.exit_key: %w", err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if _, err := c.World(); err != nil {
		return err
	}
	return nil
}

// World returns the bootstrap configuration for the scene.
func (c Config) World() (world.Config, error) {
	mode, err := world.ParsePoseMode(c.Scene.PoseMode)
	if err != nil {
		return world.Config{}, err
	}
	wc := world.Config{
		Radius:   c.Scene.Radius,
		CellSize: c.Scene.CellSize,
		Mesh:     c.Assets.Mesh,
		Aspect:   c.Camera.Aspect,
		FovY:     c.Camera.FovDeg,
		Ambient:  colorOf(c.Scene.Ambient),
		PoseMode: mode,
	}
	return wc, wc.Validate()
}

// FlyControl returns the fly settings with the configured tuning.
func (c Config) FlyControl() components.FlyControl {
	fc := components.NewFlyControl()
	fc.Speed = c.Fly.Speed
	fc.SensitivityX = c.Fly.SensitivityX
	fc.SensitivityY = c.Fly.SensitivityY
	return fc
}

// ClearColor returns the display clear color.
func (c Config) ClearColor() voxel.Color {
	return colorOf(c.Display.ClearColor)
}

// colorOf reads 3 or 4 channels; alpha defaults to 1.
func colorOf(ch []float32) voxel.Color {
	col := voxel.Color{A: 1}
	dst := []*float32{&col.R, &col.G, &col.B, &col.A}
	for i := 0; i < len(ch) && i < len(dst); i++ {
		*dst[i] = ch[i]
	}
	return col
}

// ExitKey returns the key that ends the session.
func (c Config) ExitKey() session.Key {
	k, err := session.ParseKey(c.Input.ExitKey)
	if err != nil {
		return session.KeyEscape
	}
	return k
}

// Bindings resolves the configured axes into key codes.
func (c Config) Bindings() (session.Bindings, error) {
	out := make(session.Bindings, len(c.Input.Axes))
	for name, b := range c.Input.Axes {
		pos, err := session.ParseKey(b.Pos)
		if err != nil {
			return nil, fmt.Errorf("input.axes.%s.pos: %w", name, err)
		}
		neg, err := session.ParseKey(b.Neg)
		if err != nil {
			return nil, fmt.Errorf("input.axes.%s.neg: %w", name, err)
		}
		out[name] = session.Axis{Pos: pos, Neg: neg}
	}
	return out, nil
}
