package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

func hasContact(contacts []Contact, a, b Entity) bool {
	for _, c := range contacts {
		if (c.A == a && c.B == b) || (c.A == b && c.B == a) {
			return true
		}
	}
	return false
}

func TestPhysicsWorldActorContact(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(common.NewRect(0, 0, 200, 200))
	w.SetPhysicsWorld(pw)

	a := CreateEntity(w)
	b := CreateEntity(w)
	pw.Attach(a, cp.Vector{X: 100, Y: 100}, 10, BodyActor)
	pw.Attach(b, cp.Vector{X: 105, Y: 100}, 10, BodyGhost)

	contacts := pw.Step(1.0 / 60)
	if !hasContact(contacts, a, b) {
		t.Fatalf("expected contact between overlapping bodies, got %v", contacts)
	}
}

func TestPhysicsWorldSensorHitsWall(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(common.NewRect(0, 0, 200, 200))
	w.SetPhysicsWorld(pw)

	shot := CreateEntity(w)
	body := pw.Attach(shot, cp.Vector{X: 100, Y: 100}, 3, BodySensor)
	body.SetVelocityVector(cp.Vector{X: 600})

	hitWall := false
	for i := 0; i < 60 && !hitWall; i++ {
		for _, c := range pw.Step(1.0 / 60) {
			if c.Wall && c.A == shot {
				hitWall = true
			}
		}
	}
	if !hitWall {
		t.Fatal("expected the sensor to report the wall")
	}
}

func TestDestroyEntityRemovesBody(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(common.NewRect(0, 0, 100, 100))
	w.SetPhysicsWorld(pw)

	e := CreateEntity(w)
	pw.Attach(e, cp.Vector{X: 50, Y: 50}, 5, BodyActor)
	if _, ok := pw.Body(e); !ok {
		t.Fatal("expected body")
	}
	DestroyEntity(w, e)
	if _, ok := pw.Body(e); ok {
		t.Fatal("body should be removed with its entity")
	}
}
