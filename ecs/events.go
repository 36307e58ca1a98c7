package ecs

// EventKind names a gameplay event pushed by systems.
type EventKind string

const (
	EventRunStarted          EventKind = "run_started"
	EventRunEnded            EventKind = "run_ended"
	EventJump                EventKind = "jump"
	EventTookOff             EventKind = "took_off"
	EventLanded              EventKind = "landed"
	EventDirectionChanged    EventKind = "direction_changed"
	EventApex                EventKind = "vertical_direction_changed"
	EventDied                EventKind = "died"
	EventInteractableTouched EventKind = "interactable_touched"
	EventInteractableLeft    EventKind = "interactable_left"
	EventInteracted          EventKind = "interacted"
)

// Event is one frame-scoped notification. Value carries the landing speed
// for EventLanded and is zero otherwise.
type Event struct {
	Kind   EventKind
	Entity Entity
	Value  float64
}

// EventQueue is a FIFO cleared at the end of every scheduler update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits the queued events without consuming them.
func (q *EventQueue) Each(fn func(evt Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		fn(evt)
	}
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
