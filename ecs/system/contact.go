package system

import (
	"time"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/encounter"
)

const contactCooldown = 500 * time.Millisecond

// ContactSystem resolves the contacts of the last physics step: projectile
// hits, enemy contact damage and forge proximity.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Peek() {
		if evt.Type != ecs.EventContact {
			continue
		}
		c, ok := evt.Data.(ecs.Contact)
		if !ok {
			continue
		}
		s.resolve(w, c)
	}
}

func (s *ContactSystem) resolve(w *ecs.World, c ecs.Contact) {
	if c.Wall {
		if ecs.Has(w, c.A, component.ProjectileComponent.Kind()) {
			ecs.DestroyEntity(w, c.A)
		}
		return
	}
	if !w.IsAlive(c.A) || !w.IsAlive(c.B) {
		return
	}
	if s.projectileHit(w, c.A, c.B) || s.projectileHit(w, c.B, c.A) {
		return
	}
	if !s.touch(w, c.A, c.B) {
		s.touch(w, c.B, c.A)
	}
}

func (s *ContactSystem) projectileHit(w *ecs.World, shot, target ecs.Entity) bool {
	p, ok := ecs.Get(w, shot, component.ProjectileComponent.Kind())
	if !ok {
		return false
	}
	tags, ok := ecs.Get(w, target, component.TagsComponent.Kind())
	if !ok || !p.Targets.Has(tags.Groups) {
		return true
	}
	if tags.Groups.Has(common.GroupSwitch) {
		w.Events().Push(ecs.Event{Type: ecs.EventSwitchHit, Data: target})
	}
	if tags.Groups.Has(common.GroupEnemy) {
		damageEnemy(w, shot, target, p.Damage)
	}
	ecs.DestroyEntity(w, shot)
	return true
}

// touch handles an actor overlapping something that is not a projectile.
func (s *ContactSystem) touch(w *ecs.World, actor, other ecs.Entity) bool {
	a, ok := ecs.Get(w, actor, component.ActorComponent.Kind())
	if !ok {
		return false
	}
	if f, ok := ecs.Get(w, other, component.FixtureComponent.Kind()); ok {
		if f.Kind == encounter.FixtureForge {
			a.NearForge = true
		}
		return true
	}
	enemy, ok := ecs.Get(w, other, component.EnemyComponent.Kind())
	if !ok || enemy.ContactCooldown > 0 || enemy.Template.ContactDamage <= 0 {
		return true
	}
	if enemy.Health != nil && enemy.Health.IsDead() {
		return true
	}
	if damageActor(w, other, actor, enemy.Template.ContactDamage) {
		enemy.ContactCooldown = contactCooldown
	}
	return true
}
