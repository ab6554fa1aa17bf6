package system

import (
	"time"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

const flashTime = 80 * time.Millisecond

// damageEnemy applies amount to target's health. Defeat is announced by the
// health's death callback, not here.
func damageEnemy(w *ecs.World, source, target ecs.Entity, amount float64) bool {
	enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind())
	if !ok || enemy.Health == nil || enemy.Health.IsDead() {
		return false
	}
	hp := enemy.Health.ApplyDamage(amount)
	w.Events().Push(ecs.Event{Type: ecs.EventDamaged, Data: ecs.DamageEvent{Source: source, Target: target, Amount: amount, HP: hp}})
	_ = ecs.Add(w, target, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Remaining: flashTime})
	return true
}

// damageActor routes contact damage through the actor's arbiter so
// invincibility and death callbacks apply.
func damageActor(w *ecs.World, source, target ecs.Entity, amount float64) bool {
	actor, ok := ecs.Get(w, target, component.ActorComponent.Kind())
	if !ok || actor.Arbiter == nil || actor.Arbiter.IsDead() {
		return false
	}
	if actor.Arbiter.Health().IsInvincible() {
		return false
	}
	hp := actor.Arbiter.ApplyDamage(amount)
	w.Events().Push(ecs.Event{Type: ecs.EventDamaged, Data: ecs.DamageEvent{Source: source, Target: target, Amount: amount, HP: hp}})
	_ = ecs.Add(w, target, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Remaining: flashTime})
	return true
}
