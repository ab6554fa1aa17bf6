package combat

import "github.com/jakecoffman/cp"

// EventType defines the kind of combat event.
type EventType string

const (
	EventDamageApplied EventType = "damage_applied"
	EventDeath         EventType = "death"
	EventShotFired     EventType = "shot_fired"
	EventDashStarted   EventType = "dash_started"
	EventMoveExecuted  EventType = "move_executed"
	EventMoveCancelled EventType = "move_cancelled"
)

// Event is emitted by an Arbiter as its controllers change state.
type Event struct {
	Type   EventType
	Amount float64
	HP     float64
	Move   MoveID
	Dash   DashResult
	Pos    cp.Vector
	Dir    cp.Vector
}

// EventHandler handles combat events.
type EventHandler func(evt Event)

// Emitter fans an event out to every registered handler.
type Emitter struct {
	Handlers []EventHandler
}

func (e *Emitter) Subscribe(h EventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *Emitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
