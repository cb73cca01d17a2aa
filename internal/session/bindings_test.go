package session

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func flyBindings() Bindings {
	return Bindings{
		"move_x": {Pos: rl.KeyD, Neg: rl.KeyA},
		"move_z": {Pos: rl.KeyS, Neg: rl.KeyW},
	}
}

func TestBindingsValue(t *testing.T) {
	b := flyBindings()
	keys := KeyState{}

	assert.Zero(t, b.Value("move_x", keys))

	keys.Apply(KeyPress(rl.KeyD))
	assert.Equal(t, float32(1), b.Value("move_x", keys))

	keys.Apply(KeyPress(rl.KeyA))
	assert.Zero(t, b.Value("move_x", keys), "opposing keys cancel")

	keys.Apply(KeyRelease(rl.KeyD))
	assert.Equal(t, float32(-1), b.Value("move_x", keys))

	assert.Zero(t, b.Value("move_y", keys), "unbound axis")
}

func TestKeyStateIgnoresNonKeyboard(t *testing.T) {
	keys := KeyState{}
	keys.Apply(DeviceEvent{MouseDelta: rl.Vector2{X: 3}})
	keys.Apply(WindowEvent{Kind: WindowResized})
	assert.Empty(t, keys)
}

func TestBindingsKeys(t *testing.T) {
	b := flyBindings()
	b["alt"] = Axis{Pos: rl.KeyD, Neg: rl.KeyW}
	assert.Equal(t, []Key{rl.KeyA, rl.KeyD, rl.KeyS, rl.KeyW}, b.Keys())
}
