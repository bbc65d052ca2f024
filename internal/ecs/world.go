// Package ecs is a small entity-component-system runtime: a World holding
// typed component stores and resources, deferred commands, double-buffered
// events, finite state machines and an App that runs plugin-provided systems
// on fixed schedules.
package ecs

import (
	"fmt"
	"reflect"
)

// Entity identifies a thing in the world. Zero is never allocated.
type Entity uint64

// World owns entities, their components and global resources.
type World struct {
	next       Entity
	entities   map[Entity]struct{}
	components map[reflect.Type]map[Entity]any // values are *T
	resources  map[reflect.Type]any           // values are *T
	commands   *Commands
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{
		entities:   make(map[Entity]struct{}),
		components: make(map[reflect.Type]map[Entity]any),
		resources:  make(map[reflect.Type]any),
	}
	w.commands = &Commands{world: w}
	return w
}

// Spawn creates an entity immediately with the given component values.
func (w *World) Spawn(components ...any) Entity {
	e := w.reserve()
	w.entities[e] = struct{}{}
	for _, c := range components {
		w.insertAny(e, c)
	}
	return e
}

// Despawn removes an entity and every component it holds. Unknown entities
// are ignored.
func (w *World) Despawn(e Entity) {
	if _, ok := w.entities[e]; !ok {
		return
	}
	for _, store := range w.components {
		delete(store, e)
	}
	delete(w.entities, e)
}

// Alive reports whether the entity exists.
func (w *World) Alive(e Entity) bool {
	_, ok := w.entities[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Commands returns the world's deferred command queue.
func (w *World) Commands() *Commands {
	return w.commands
}

func (w *World) reserve() Entity {
	w.next++
	return w.next
}

func (w *World) insertAny(e Entity, c any) {
	if !w.Alive(e) || c == nil {
		return
	}
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("ecs: component %s must be a value, not a pointer", t))
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(c))
	w.store(t)[e] = ptr.Interface()
}

func (w *World) store(t reflect.Type) map[Entity]any {
	s, ok := w.components[t]
	if !ok {
		s = make(map[Entity]any)
		w.components[t] = s
	}
	return s
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Insert adds or replaces a component on a live entity.
func Insert[T any](w *World, e Entity, c T) {
	if !w.Alive(e) {
		return
	}
	w.store(typeOf[T]())[e] = &c
}

// Get returns a pointer to the entity's component. Mutating it mutates the
// stored value.
func Get[T any](w *World, e Entity) (*T, bool) {
	s, ok := w.components[typeOf[T]()]
	if !ok {
		return nil, false
	}
	v, ok := s[e]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Has reports whether the entity holds a component of type T.
func Has[T any](w *World, e Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}

// Remove deletes the component of type T from the entity.
func Remove[T any](w *World, e Entity) {
	if s, ok := w.components[typeOf[T]()]; ok {
		delete(s, e)
	}
}
