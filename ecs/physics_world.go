package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeSensor
)

// Contact is one touching pair reported by a physics step. Wall is set when
// B is the arena boundary rather than an entity.
type Contact struct {
	A    Entity
	B    Entity
	Wall bool
}

// BodyKind selects how an entity's shape takes part in the simulation.
type BodyKind uint8

const (
	// BodyActor is solid against walls and other actors.
	BodyActor BodyKind = iota
	// BodyGhost is an actor that passes through other actors but not walls.
	BodyGhost
	// BodySensor overlaps everything and only reports contacts.
	BodySensor
)

type physicsEntry struct {
	body  *cp.Body
	shape *cp.Shape
	kind  BodyKind
}

// PhysicsWorld owns the Chipmunk space and the arena walls. Gravity is zero;
// actors are driven purely by velocity.
type PhysicsWorld struct {
	space  *cp.Space
	bounds common.Rect

	entries       map[Entity]*physicsEntry
	shapeToEntity map[*cp.Shape]Entity
	contacts      []Contact
}

// NewPhysicsWorld creates a space walled in by bounds.
func NewPhysicsWorld(bounds common.Rect) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		bounds:        bounds,
		entries:       make(map[Entity]*physicsEntry),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.buildWalls()
	pw.setupHandlers()
	return pw
}

// Attach creates a circular body for e at pos. Attaching twice returns the
// existing body.
func (pw *PhysicsWorld) Attach(e Entity, pos cp.Vector, radius float64, kind BodyKind) *cp.Body {
	if pw == nil || !e.Valid() {
		return nil
	}
	if entry, ok := pw.entries[e]; ok {
		return entry.body
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	switch kind {
	case BodySensor:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	default:
		shape.SetCollisionType(collisionTypeActor)
	}
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.entries[e] = &physicsEntry{body: body, shape: shape, kind: kind}
	pw.shapeToEntity[shape] = e
	return body
}

// Remove drops e's body from the space.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(entry.shape)
	pw.space.RemoveBody(entry.body)
	delete(pw.shapeToEntity, entry.shape)
	delete(pw.entries, e)
}

// Body returns e's body, if attached.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	entry, ok := pw.entries[e]
	if !ok {
		return nil, false
	}
	return entry.body, true
}

// Step advances the simulation and returns the contacts it produced.
func (pw *PhysicsWorld) Step(dt float64) []Contact {
	if pw == nil || dt <= 0 {
		return nil
	}
	pw.contacts = pw.contacts[:0]
	pw.space.Step(dt)
	out := make([]Contact, len(pw.contacts))
	copy(out, pw.contacts)
	return out
}

func (pw *PhysicsWorld) buildWalls() {
	minP, maxP := pw.bounds.Min(), pw.bounds.Max()
	if maxP.X <= minP.X || maxP.Y <= minP.Y {
		log.Printf("ecs: physics bounds %v are empty, no walls built", pw.bounds)
		return
	}
	const thickness = 2.0
	segments := [][2]cp.Vector{
		{{X: minP.X, Y: minP.Y}, {X: maxP.X, Y: minP.Y}},
		{{X: minP.X, Y: maxP.Y}, {X: maxP.X, Y: maxP.Y}},
		{{X: minP.X, Y: minP.Y}, {X: minP.X, Y: maxP.Y}},
		{{X: maxP.X, Y: minP.Y}, {X: maxP.X, Y: maxP.Y}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg[0], seg[1], thickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) entities(arb *cp.Arbiter) (Entity, bool, Entity, bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := pw.shapeToEntity[shapeA]
	b, okB := pw.shapeToEntity[shapeB]
	return a, okA, b, okB
}

func (pw *PhysicsWorld) setupHandlers() {
	actors := pw.space.NewCollisionHandler(collisionTypeActor, collisionTypeActor)
	actors.UserData = pw
	actors.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		a, okA, b, okB := world.entities(arb)
		if !okA || !okB {
			return true
		}
		world.contacts = append(world.contacts, Contact{A: a, B: b})
		// ghosts still report contacts but never push
		return world.entries[a].kind == BodyActor && world.entries[b].kind == BodyActor
	}

	sensors := pw.space.NewCollisionHandler(collisionTypeSensor, collisionTypeActor)
	sensors.UserData = pw
	sensors.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		a, okA, b, okB := world.entities(arb)
		if okA && okB {
			world.contacts = append(world.contacts, Contact{A: a, B: b})
		}
		return true
	}

	sensorWalls := pw.space.NewCollisionHandler(collisionTypeSensor, collisionTypeWall)
	sensorWalls.UserData = pw
	sensorWalls.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		a, okA, _, _ := world.entities(arb)
		if okA {
			world.contacts = append(world.contacts, Contact{A: a, Wall: true})
		}
		return true
	}
}
