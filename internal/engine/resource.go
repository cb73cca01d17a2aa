package engine

// SetResource stores v as the world's singleton of type T, replacing any previous value.
func SetResource[T any](w *World, v T) *T {
	p := &v
	w.resources[typeOf[T]()] = p
	return p
}

// Resource returns the world's singleton of type T.
func Resource[T any](w *World) (*T, bool) {
	r, ok := w.resources[typeOf[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

// EnsureResource returns the singleton of type T, creating it with init the
// first time. Later calls never invoke init.
func EnsureResource[T any](w *World, init func() T) *T {
	if p, ok := Resource[T](w); ok {
		return p
	}
	return SetResource(w, init())
}

func HasResource[T any](w *World) bool {
	_, ok := w.resources[typeOf[T]()]
	return ok
}
