package engine

import (
	"fmt"
	"reflect"
)

type storage interface {
	has(id uint32) bool
	remove(id uint32) bool
	len() int
}

// table is a sparse set: values and owners are packed densely, sparse maps
// an entity ID to its dense index plus one (zero means absent).
type table[T any] struct {
	sparse []int
	owners []Entity
	values []T
}

func newTable[T any]() *table[T] {
	return &table[T]{
		sparse: make([]int, 0),
		owners: make([]Entity, 0),
		values: make([]T, 0),
	}
}

func (t *table[T]) index(id uint32) (int, bool) {
	if int(id) >= len(t.sparse) {
		return 0, false
	}
	i := t.sparse[id]
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

func (t *table[T]) has(id uint32) bool {
	_, ok := t.index(id)
	return ok
}

func (t *table[T]) insert(e Entity, v T) {
	if i, ok := t.index(e.ID); ok {
		t.owners[i] = e
		t.values[i] = v
		return
	}
	for int(e.ID) >= len(t.sparse) {
		t.sparse = append(t.sparse, 0)
	}
	t.owners = append(t.owners, e)
	t.values = append(t.values, v)
	t.sparse[e.ID] = len(t.values)
}

func (t *table[T]) remove(id uint32) bool {
	i, ok := t.index(id)
	if !ok {
		return false
	}
	last := len(t.values) - 1
	if i != last {
		t.owners[i] = t.owners[last]
		t.values[i] = t.values[last]
		t.sparse[t.owners[i].ID] = i + 1
	}
	var zero T
	t.values[last] = zero
	t.owners = t.owners[:last]
	t.values = t.values[:last]
	t.sparse[id] = 0
	return true
}

func (t *table[T]) len() int {
	return len(t.values)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register creates the table for component type T. Calling it again is a no-op.
func Register[T any](w *World) {
	typ := typeOf[T]()
	if _, ok := w.tables[typ]; ok {
		return
	}
	w.tables[typ] = newTable[T]()
	w.order = append(w.order, typ)
}

// Registered reports whether T has a table in w.
func Registered[T any](w *World) bool {
	_, ok := w.tables[typeOf[T]()]
	return ok
}

func lookup[T any](w *World) *table[T] {
	s, ok := w.tables[typeOf[T]()]
	if !ok {
		return nil
	}
	return s.(*table[T])
}

func tableFor[T any](w *World) *table[T] {
	if t := lookup[T](w); t != nil {
		return t
	}
	Register[T](w)
	return lookup[T](w)
}

// Add attaches v to e, replacing any existing T. Outside strict mode the
// table is created on demand.
func Add[T any](w *World, e Entity, v T) error {
	if !w.Alive(e) {
		return ErrDeadEntity
	}
	if w.strict && !Registered[T](w) {
		return fmt.Errorf("%w: %s", ErrUnregistered, typeOf[T]())
	}
	tableFor[T](w).insert(e, v)
	return nil
}

// Get returns a copy of e's T component.
func Get[T any](w *World, e Entity) (T, bool) {
	var zero T
	if p := Mut[T](w, e); p != nil {
		return *p, true
	}
	return zero, false
}

// Mut returns a pointer into the table for in-place updates. The pointer is
// invalidated by any insert or removal on the same table.
func Mut[T any](w *World, e Entity) *T {
	if !w.Alive(e) {
		return nil
	}
	t := lookup[T](w)
	if t == nil {
		return nil
	}
	i, ok := t.index(e.ID)
	if !ok {
		return nil
	}
	return &t.values[i]
}

func Has[T any](w *World, e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	t := lookup[T](w)
	return t != nil && t.has(e.ID)
}

func Remove[T any](w *World, e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	t := lookup[T](w)
	return t != nil && t.remove(e.ID)
}

// Count returns how many entities carry T.
func Count[T any](w *World) int {
	t := lookup[T](w)
	if t == nil {
		return 0
	}
	return t.len()
}

// Each calls fn for every entity carrying T in dense order. fn must not add
// or remove T components.
func Each[T any](w *World, fn func(e Entity, v *T)) {
	t := lookup[T](w)
	if t == nil {
		return
	}
	for i := range t.values {
		fn(t.owners[i], &t.values[i])
	}
}

// With returns the entities carrying T, in dense order.
func With[T any](w *World) []Entity {
	t := lookup[T](w)
	if t == nil {
		return nil
	}
	out := make([]Entity, len(t.owners))
	copy(out, t.owners)
	return out
}
