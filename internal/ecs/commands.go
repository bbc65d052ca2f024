package ecs

// Commands queues structural changes. The App applies the queue after every
// system so the next system sees the result.
type Commands struct {
	world *World
	ops   []func(w *World)
}

// Spawn reserves an entity id now and creates the entity with the given
// components when the queue is applied.
func (c *Commands) Spawn(components ...any) Entity {
	e := c.world.reserve()
	c.ops = append(c.ops, func(w *World) {
		w.entities[e] = struct{}{}
		for _, comp := range components {
			w.insertAny(e, comp)
		}
	})
	return e
}

// Despawn removes the entity when the queue is applied.
func (c *Commands) Despawn(e Entity) {
	c.ops = append(c.ops, func(w *World) {
		w.Despawn(e)
	})
}

// Insert adds components to an existing entity when the queue is applied.
func (c *Commands) Insert(e Entity, components ...any) {
	c.ops = append(c.ops, func(w *World) {
		for _, comp := range components {
			w.insertAny(e, comp)
		}
	})
}

// Len returns the number of pending operations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Apply runs every queued operation in order and empties the queue.
func (c *Commands) Apply() {
	for len(c.ops) > 0 {
		ops := c.ops
		c.ops = nil
		for _, op := range ops {
			op(c.world)
		}
	}
}

// RemoveLater queues removal of a T from the entity.
func RemoveLater[T any](c *Commands, e Entity) {
	c.ops = append(c.ops, func(w *World) {
		Remove[T](w, e)
	})
}
