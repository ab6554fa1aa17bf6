package system

import (
	"log"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/encounter"
	"github.com/milk9111/arena/items"
)

// EncounterSystem feeds defeats and switch hits to the director, collects
// drops into the actor's inventory and ends the run when the actor dies.
type EncounterSystem struct {
	director *encounter.Director
	over     bool

	OnDrops   func(stacks []items.Stack)
	OnRunOver func(r encounter.Record)
}

func NewEncounterSystem(director *encounter.Director) *EncounterSystem {
	return &EncounterSystem{director: director}
}

func (s *EncounterSystem) Director() *encounter.Director { return s.director }

func (s *EncounterSystem) Over() bool { return s.over }

func (s *EncounterSystem) Update(w *ecs.World) {
	if s == nil || s.director == nil || w == nil || s.over {
		return
	}
	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventDefeated:
			e, ok := evt.Data.(ecs.Entity)
			if !ok {
				continue
			}
			enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
			if !ok {
				continue
			}
			handle := enemy.Handle
			ecs.DestroyEntity(w, e)
			s.collect(w, s.director.OnDefeated(handle))
		case ecs.EventSwitchHit:
			s.director.SwitchHit()
		}
	}
	s.director.Update()

	if _, alive := livingActor(w); !alive {
		s.over = true
		record, ok := s.director.End()
		if ok && s.OnRunOver != nil {
			s.OnRunOver(record)
		}
	}
}

func (s *EncounterSystem) collect(w *ecs.World, drops []items.Stack) {
	if len(drops) == 0 {
		return
	}
	e, ok := w.First(component.ActorComponent.Kind())
	if !ok {
		return
	}
	a, _ := ecs.Get(w, e, component.ActorComponent.Kind())
	if a.Inventory == nil {
		return
	}
	rest, err := a.Inventory.AttemptAdd(drops...)
	if err != nil {
		log.Printf("system: %d drop stacks lost: %v", len(rest), err)
	}
	if s.OnDrops != nil {
		s.OnDrops(drops)
	}
}
