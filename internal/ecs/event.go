package ecs

type stamped[T any] struct {
	id    uint64
	value T
}

// Events is a double-buffered event queue. An event sent during tick N is
// live during ticks N and N+1 and is dropped after that.
type Events[T any] struct {
	older []stamped[T]
	newer []stamped[T]
	count uint64
}

// Send queues an event.
func (ev *Events[T]) Send(v T) {
	ev.newer = append(ev.newer, stamped[T]{id: ev.count, value: v})
	ev.count++
}

// Any reports whether at least one event is live.
func (ev *Events[T]) Any() bool {
	return len(ev.older)+len(ev.newer) > 0
}

// Len returns the number of live events.
func (ev *Events[T]) Len() int {
	return len(ev.older) + len(ev.newer)
}

// Live returns every live event, oldest first.
func (ev *Events[T]) Live() []T {
	out := make([]T, 0, ev.Len())
	for _, s := range ev.older {
		out = append(out, s.value)
	}
	for _, s := range ev.newer {
		out = append(out, s.value)
	}
	return out
}

// Clear drops every live event.
func (ev *Events[T]) Clear() {
	ev.older = nil
	ev.newer = nil
}

// Update rotates the buffers: events from the previous tick are dropped.
func (ev *Events[T]) Update() {
	ev.older = ev.newer
	ev.newer = nil
}

// Reader consumes events exactly once across ticks.
type Reader[T any] struct {
	next uint64
}

// Read returns live events this reader has not seen yet.
func (r *Reader[T]) Read(ev *Events[T]) []T {
	var out []T
	for _, buf := range [][]stamped[T]{ev.older, ev.newer} {
		for _, s := range buf {
			if s.id >= r.next {
				out = append(out, s.value)
			}
		}
	}
	r.next = ev.count
	return out
}

// Send queues an event of type T registered with AddEvent.
func Send[T any](w *World, v T) {
	MustResource[Events[T]](w).Send(v)
}

// Live reports whether an event of type T registered with AddEvent is live.
func Live[T any](w *World) bool {
	return MustResource[Events[T]](w).Any()
}
