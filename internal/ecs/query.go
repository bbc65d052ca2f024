package ecs

import "golang.org/x/exp/slices"

// Filter narrows a query.
type Filter func(w *World, e Entity) bool

// With keeps entities that also hold a T.
func With[T any]() Filter {
	return func(w *World, e Entity) bool {
		return Has[T](w, e)
	}
}

// Without drops entities that hold a T.
func Without[T any]() Filter {
	return func(w *World, e Entity) bool {
		return !Has[T](w, e)
	}
}

// Query returns every entity holding a T and passing all filters, in
// ascending entity order.
func Query[T any](w *World, filters ...Filter) []Entity {
	s := w.components[typeOf[T]()]
	out := make([]Entity, 0, len(s))
next:
	for e := range s {
		for _, f := range filters {
			if !f(w, e) {
				continue next
			}
		}
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Each calls fn for every entity holding a T, in ascending entity order.
func Each[T any](w *World, fn func(e Entity, c *T), filters ...Filter) {
	for _, e := range Query[T](w, filters...) {
		c, ok := Get[T](w, e)
		if !ok {
			// removed by an earlier callback
			continue
		}
		fn(e, c)
	}
}

// Single returns the lowest entity holding a T.
func Single[T any](w *World, filters ...Filter) (Entity, *T, bool) {
	ents := Query[T](w, filters...)
	if len(ents) == 0 {
		return 0, nil, false
	}
	c, _ := Get[T](w, ents[0])
	return ents[0], c, true
}

// Count returns how many entities hold a T and pass the filters.
func Count[T any](w *World, filters ...Filter) int {
	return len(Query[T](w, filters...))
}
