package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventContact carries a Contact recorded by the physics step.
	EventContact = "contact"
	// EventDamaged carries a DamageEvent after health was applied.
	EventDamaged = "damaged"
	// EventDefeated carries the defeated Entity before it is destroyed.
	EventDefeated = "defeated"
	// EventSwitchHit is raised when something strikes the wave switch.
	EventSwitchHit = "switch_hit"
)

// DamageEvent describes one damage application.
type DamageEvent struct {
	Source Entity
	Target Entity
	Amount float64
	HP     float64
}

// EventQueue is a simple FIFO queue. Unread events are dropped at the end of
// each world update.
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

// Peek returns pending events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
