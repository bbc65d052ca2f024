package ecs

import "fmt"

// SetResource stores a global value, replacing any previous one of the
// same type.
func SetResource[T any](w *World, r T) {
	w.resources[typeOf[T]()] = &r
}

// Resource returns the stored value of type T.
func Resource[T any](w *World) (*T, bool) {
	v, ok := w.resources[typeOf[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// MustResource is Resource for values a plugin registers itself. A missing
// resource is a wiring bug.
func MustResource[T any](w *World) *T {
	r, ok := Resource[T](w)
	if !ok {
		panic(fmt.Sprintf("ecs: missing resource %s", typeOf[T]()))
	}
	return r
}

// RemoveResource deletes the stored value of type T.
func RemoveResource[T any](w *World) {
	delete(w.resources, typeOf[T]())
}
