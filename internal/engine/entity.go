package engine

import (
	"errors"
	"reflect"
)

var (
	ErrDeadEntity   = errors.New("entity is not alive")
	ErrUnregistered = errors.New("component type not registered")
	ErrDuplicate    = errors.New("component staged twice")
)

// Entity is an identity-only handle into a World. Components live in
// per-type tables keyed by ID; Gen guards against reuse of a freed slot.
type Entity struct {
	ID  uint32
	Gen uint32
}

// IsZero reports whether e is the zero handle, which never refers to a live entity.
func (e Entity) IsZero() bool {
	return e.Gen == 0
}

// World owns the entity arena, one table per component type and a set of
// typed singleton resources. It is not safe for concurrent writers; the
// build phase assumes exclusive access.
type World struct {
	gens  []uint32
	alive []bool
	free  []uint32
	live  int

	tables    map[reflect.Type]storage
	order     []reflect.Type
	resources map[reflect.Type]any

	// strict rejects components whose type was never registered.
	strict bool
}

func NewWorld() *World {
	return &World{
		gens:      make([]uint32, 0),
		alive:     make([]bool, 0),
		free:      make([]uint32, 0),
		tables:    make(map[reflect.Type]storage),
		order:     make([]reflect.Type, 0),
		resources: make(map[reflect.Type]any),
	}
}

// SetStrict toggles strict registration. In strict mode Build fails for any
// component type that was not registered with Register first.
func (w *World) SetStrict(strict bool) {
	w.strict = strict
}

func (w *World) Strict() bool {
	return w.strict
}

func (w *World) spawn() Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id] = true
		w.live++
		return Entity{ID: id, Gen: w.gens[id]}
	}
	id := uint32(len(w.gens))
	w.gens = append(w.gens, 1)
	w.alive = append(w.alive, true)
	w.live++
	return Entity{ID: id, Gen: 1}
}

// Alive reports whether e refers to a live entity of this world.
func (w *World) Alive(e Entity) bool {
	if e.IsZero() || int(e.ID) >= len(w.gens) {
		return false
	}
	return w.alive[e.ID] && w.gens[e.ID] == e.Gen
}

// Destroy removes e and all of its components. The slot is recycled with a
// bumped generation so stale handles stop resolving.
func (w *World) Destroy(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	for _, t := range w.order {
		w.tables[t].remove(e.ID)
	}
	w.alive[e.ID] = false
	w.gens[e.ID]++
	w.free = append(w.free, e.ID)
	w.live--
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.live
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.live)
	for id, ok := range w.alive {
		if ok {
			out = append(out, Entity{ID: uint32(id), Gen: w.gens[id]})
		}
	}
	return out
}
