package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// PhysicsSystem pushes body velocities into the space, steps it and copies
// positions back. Without an attached space bodies move kinematically.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta().Seconds()
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Body) {
		if body, ok := pw.Body(e); ok {
			body.SetVelocityVector(b.Velocity)
			return
		}
		t.Pos = t.Pos.Add(b.Velocity.Mult(dt))
	})

	if pw == nil {
		return
	}
	contacts := pw.Step(dt)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, _ *component.Body) {
		if body, ok := pw.Body(e); ok {
			t.Pos = body.Position()
		}
	})

	for _, c := range contacts {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
}
