package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// ActorSystem ticks each actor's arbiter, hands the resulting velocity to
// the body and turns fired shots into projectile entities.
type ActorSystem struct {
	projectiles ProjectileSource
}

func NewActorSystem(projectiles ProjectileSource) *ActorSystem {
	return &ActorSystem{projectiles: projectiles}
}

func (s *ActorSystem) SetProjectiles(projectiles ProjectileSource) {
	s.projectiles = projectiles
}

func (s *ActorSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, t *component.Transform, b *component.Body) {
			if a.Arbiter == nil {
				return
			}
			a.NearForge = false
			a.Arbiter.SetPosition(t.Pos)
			b.Velocity = a.Arbiter.Tick(w.Delta())
			for _, intent := range a.Arbiter.DrainIntents() {
				SpawnProjectile(w, intent, s.projectiles)
			}
		})
}
