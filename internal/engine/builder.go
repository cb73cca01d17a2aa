package engine

import (
	"fmt"
	"reflect"
)

// Part is one staged component. Build commits all parts of a Builder or none.
type Part struct {
	typ    reflect.Type
	attach func(w *World, e Entity)
}

// Component stages v as a component of type T.
func Component[T any](v T) Part {
	return Part{
		typ: typeOf[T](),
		attach: func(w *World, e Entity) {
			tableFor[T](w).insert(e, v)
		},
	}
}

// Bundle stages a related group of components. A non-nil error from Stage
// aborts the whole build.
type Bundle interface {
	Stage(b *Builder) error
}

// Builder collects components for a new entity. Nothing touches the world
// until Build validates every part.
type Builder struct {
	world *World
	parts []Part
	err   error
}

func (w *World) Create() *Builder {
	return &Builder{world: w, parts: make([]Part, 0, 8)}
}

func (b *Builder) World() *World {
	return b.world
}

func (b *Builder) With(parts ...Part) *Builder {
	b.parts = append(b.parts, parts...)
	return b
}

func (b *Builder) WithBundle(bundle Bundle) *Builder {
	if b.err != nil {
		return b
	}
	if err := bundle.Stage(b); err != nil {
		b.err = err
	}
	return b
}

// Build validates every staged part and then creates the entity with all of
// them attached. On error no entity is created.
func (b *Builder) Build() (Entity, error) {
	if b.err != nil {
		return Entity{}, b.err
	}
	seen := make(map[reflect.Type]bool, len(b.parts))
	for _, p := range b.parts {
		if seen[p.typ] {
			return Entity{}, fmt.Errorf("%w: %s", ErrDuplicate, p.typ)
		}
		seen[p.typ] = true
		if b.world.strict {
			if _, ok := b.world.tables[p.typ]; !ok {
				return Entity{}, fmt.Errorf("%w: %s", ErrUnregistered, p.typ)
			}
		}
	}
	e := b.world.spawn()
	for _, p := range b.parts {
		p.attach(b.world, e)
	}
	return e, nil
}
