package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

// FlyControlTag marks the entity free-fly input moves.
type FlyControlTag struct{}

// FlyControl holds free-fly tuning. Axis names refer to input bindings that
// the host resolves into FlyInput.
type FlyControl struct {
	Speed        float32 // units per second
	SensitivityX float32 // degrees per mouse unit
	SensitivityY float32
	AxisX        string
	AxisY        string
	AxisZ        string
}

func NewFlyControl() FlyControl {
	return FlyControl{
		Speed:        20.0,
		SensitivityX: 0.3,
		SensitivityY: 0.3,
		AxisX:        "move_x",
		AxisY:        "move_y",
		AxisZ:        "move_z",
	}
}

// FlyInput is one frame of resolved input. Move components are axis values
// in [-1, 1] in camera space; Look is the mouse delta.
type FlyInput struct {
	Move rl.Vector3
	Look rl.Vector2
}

// Step turns t by the look delta (yaw about world up, pitch about the local
// right axis) and then moves it along its rotated axes.
func (f FlyControl) Step(t *engine.Transform, in FlyInput, dt float32) {
	if in.Look.X != 0 || in.Look.Y != 0 {
		yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, -in.Look.X*f.SensitivityX*rl.Deg2rad)
		pitch := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -in.Look.Y*f.SensitivityY*rl.Deg2rad)
		t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(rl.QuaternionMultiply(yaw, t.Rotation), pitch))
	}

	move := rl.Vector3{
		X: clampAxis(in.Move.X),
		Y: clampAxis(in.Move.Y),
		Z: clampAxis(in.Move.Z),
	}
	if rl.Vector3Length(move) == 0 || dt <= 0 {
		return
	}
	dir := rl.Vector3RotateByQuaternion(rl.Vector3Normalize(move), t.Rotation)
	t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(dir, f.Speed*dt))
}

func clampAxis(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(-1, math32.Min(1, v))
}
