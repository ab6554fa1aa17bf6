package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// EnemySystem steers enemies straight at the first living actor.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	delta := w.Delta()
	target, hasTarget := livingActor(w)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, t *component.Transform, b *component.Body) {
			if enemy.Health != nil {
				enemy.Health.Tick(delta)
			}
			if enemy.ContactCooldown > delta {
				enemy.ContactCooldown -= delta
			} else {
				enemy.ContactCooldown = 0
			}

			b.Velocity = cp.Vector{}
			if !hasTarget || enemy.Template.Speed <= 0 {
				return
			}
			toward := target.Sub(t.Pos)
			if toward.LengthSq() == 0 {
				return
			}
			b.Velocity = toward.Normalize().Mult(enemy.Template.Speed)
		})
}

func livingActor(w *ecs.World) (cp.Vector, bool) {
	for _, e := range w.Query(component.ActorComponent.Kind(), component.TransformComponent.Kind()) {
		a, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		if a.Arbiter == nil || a.Arbiter.IsDead() {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		return t.Pos, true
	}
	return cp.Vector{}, false
}
