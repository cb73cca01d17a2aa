package session

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poller turns raylib's per-frame keyboard and window state into Events.
// It must run on the thread that owns the window.
type Poller struct {
	watch []Key
}

// NewPoller reports presses of any key and releases and repeats of the
// watched keys.
func NewPoller(watch ...Key) *Poller {
	return &Poller{watch: watch}
}

func modifiers() Modifiers {
	var m Modifiers
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		m |= ModSuper
	}
	return m
}

// Poll drains this frame's input. Call once per frame after EndDrawing.
func (p *Poller) Poll() []Event {
	var out []Event
	mods := modifiers()

	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		out = append(out, WindowEvent{
			Kind:  WindowKeyboardInput,
			Input: KeyboardInput{Key: Key(k), State: Pressed, Modifiers: mods},
		})
	}

	for _, key := range p.watch {
		if rl.IsKeyPressedRepeat(int32(key)) {
			out = append(out, WindowEvent{
				Kind:  WindowKeyboardInput,
				Input: KeyboardInput{Key: key, State: Pressed, Modifiers: mods, Repeat: true},
			})
		}
		if rl.IsKeyReleased(int32(key)) {
			out = append(out, WindowEvent{
				Kind:  WindowKeyboardInput,
				Input: KeyboardInput{Key: key, State: Released, Modifiers: mods},
			})
		}
	}

	if rl.IsWindowResized() {
		out = append(out, WindowEvent{
			Kind: WindowResized,
			Size: rl.Vector2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())},
		})
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		out = append(out, DeviceEvent{MouseDelta: d})
	}
	if rl.WindowShouldClose() {
		out = append(out, WindowEvent{Kind: WindowCloseRequested})
	}
	return out
}
