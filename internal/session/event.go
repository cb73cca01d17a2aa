package session

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Key is a raylib key code.
type Key int32

const (
	KeyNull   Key = rl.KeyNull
	KeyEscape Key = rl.KeyEscape
)

// ElementState is whether a key went down or came up.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Released {
		return "Released"
	}
	return "Pressed"
}

// Modifiers is the set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// KeyboardInput is one key transition.
type KeyboardInput struct {
	Key       Key
	State     ElementState
	Modifiers Modifiers
	Repeat    bool
}

// WindowEventKind enumerates window-level events.
type WindowEventKind uint8

const (
	WindowKeyboardInput WindowEventKind = iota
	WindowResized
	WindowFocused
	WindowCloseRequested
)

// Event is anything the host delivers: window events or raw device events.
type Event interface {
	isEvent()
}

// WindowEvent carries Input when Kind is WindowKeyboardInput.
type WindowEvent struct {
	Kind  WindowEventKind
	Input KeyboardInput
	Size  rl.Vector2
}

// DeviceEvent is raw device motion, such as mouse deltas.
type DeviceEvent struct {
	MouseDelta rl.Vector2
}

func (WindowEvent) isEvent() {}
func (DeviceEvent) isEvent() {}

// KeyPress builds the window event for a pressed key.
func KeyPress(k Key) WindowEvent {
	return WindowEvent{Kind: WindowKeyboardInput, Input: KeyboardInput{Key: k, State: Pressed}}
}

// KeyRelease builds the window event for a released key.
func KeyRelease(k Key) WindowEvent {
	return WindowEvent{Kind: WindowKeyboardInput, Input: KeyboardInput{Key: k, State: Released}}
}
