package system

import (
	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// MeleeSystem tests each open hit volume against tagged bodies in reach.
type MeleeSystem struct{}

func NewMeleeSystem() *MeleeSystem {
	return &MeleeSystem{}
}

func (s *MeleeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(attacker ecs.Entity, a *component.Actor, t *component.Transform) {
		if a.Arbiter == nil {
			return
		}
		hits := a.Arbiter.HitVolumes()
		volume, ok := hits.Active()
		if !ok || !volume.CanHit() {
			return
		}
		center := volume.Center(t.Pos)

		ecs.ForEach3(w, component.TagsComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
			func(target ecs.Entity, tags *component.Tags, tt *component.Transform, b *component.Body) {
				if target == attacker {
					return
				}
				if center.Distance(tt.Pos) > volume.Move.Radius+b.Radius {
					return
				}
				dmg, ok := hits.TryHit(combat.TargetID(target), tags.Groups)
				if !ok {
					return
				}
				if tags.Groups.Has(common.GroupSwitch) {
					w.Events().Push(ecs.Event{Type: ecs.EventSwitchHit, Data: target})
				}
				if tags.Groups.Has(common.GroupEnemy) {
					damageEnemy(w, attacker, target, dmg)
				}
			})
	})
}
