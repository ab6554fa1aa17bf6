package ecs

import (
	"fmt"
	"time"

	"github.com/milk9111/arena/ecs/component"
)

// System is one step of a simulation frame.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	delta    time.Duration

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. Physics
// bodies owned by e are removed from the attached space.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	if w.physicsWorld != nil {
		w.physicsWorld.Remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches or replaces the component stored under id.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("add component %d to %s: %w", id, e, component.ErrEntityNotAlive)
	}
	w.store(id, true).Set(e.id(), value)
	return nil
}

func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(id, false)
	if !s.Has(e.id()) {
		return nil, false
	}
	return s.Get(e.id()), true
}

func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w.entities.isAlive(e) && w.store(id, false).Has(e.id())
}

func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Remove(e.id())
}

// Query returns live entities that have every listed component. The smallest
// store drives the scan.
func (w *World) Query(keys ...component.Key) []Entity {
	if w == nil || len(keys) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(keys))
	for _, k := range keys {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	driver := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < driver.Len() {
			driver = s
		}
	}

	var out []Entity
next:
	for _, id := range driver.ids() {
		for _, s := range sets {
			if !s.Has(id) {
				continue next
			}
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying key.
func (w *World) First(key component.Key) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.store(key.ID(), false).ids() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once with the given frame delta.
func (w *World) Update(delta time.Duration) {
	if w == nil {
		return
	}
	w.delta = delta
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Delta is the frame time of the update in progress.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
