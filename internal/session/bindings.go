package session

import "sort"

// Axis is a pair of keys driving one input axis.
type Axis struct {
	Pos Key
	Neg Key
}

// Bindings maps axis names to keys.
type Bindings map[string]Axis

// Value returns 1, -1 or 0 for the named axis given which keys are down.
// Unknown axes read 0.
func (b Bindings) Value(name string, keys KeyState) float32 {
	a, ok := b[name]
	if !ok {
		return 0
	}
	var v float32
	if keys.Down(a.Pos) {
		v++
	}
	if keys.Down(a.Neg) {
		v--
	}
	return v
}

// Keys returns every bound key without duplicates, sorted by key code.
func (b Bindings) Keys() []Key {
	set := make(map[Key]bool, 2*len(b))
	for _, a := range b {
		set[a.Pos] = true
		set[a.Neg] = true
	}
	out := make([]Key, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KeyState tracks which keys are held from a stream of keyboard events.
type KeyState map[Key]bool

func (s KeyState) Apply(ev Event) {
	we, ok := ev.(WindowEvent)
	if !ok || we.Kind != WindowKeyboardInput {
		return
	}
	switch we.Input.State {
	case Pressed:
		s[we.Input.Key] = true
	case Released:
		delete(s, we.Input.Key)
	}
}

func (s KeyState) Down(k Key) bool {
	return s[k]
}
