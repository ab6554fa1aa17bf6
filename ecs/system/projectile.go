package system

import (
	"log"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

// ProjectileSource looks up projectile prototypes by id.
type ProjectileSource interface {
	Get(id combat.ProjectileID) (prefabs.Projectile, bool)
}

// SpawnProjectile creates the entity for a fired shot. Unknown prototypes
// are logged and dropped.
func SpawnProjectile(w *ecs.World, intent combat.ProjectileIntent, src ProjectileSource) (ecs.Entity, bool) {
	if src == nil {
		log.Printf("system: no projectile source, shot dropped")
		return 0, false
	}
	proto, ok := src.Get(intent.Projectile)
	if !ok {
		log.Printf("system: unknown projectile %d, shot dropped", intent.Projectile)
		return 0, false
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: intent.Origin, Rotation: intent.Direction.ToAngle()})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: proto.Radius, Velocity: intent.Direction.Mult(proto.Speed)})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Damage:  intent.Damage,
		Charged: intent.Charged,
		Targets: proto.Targets,
	})
	_ = ecs.Add(w, e, component.TagsComponent.Kind(), &component.Tags{Groups: common.GroupProjectile})
	_ = ecs.Add(w, e, component.ColorComponent.Kind(), &component.Color{Fill: proto.Color})
	if proto.TTL > 0 {
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: proto.TTL})
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.Attach(e, intent.Origin, proto.Radius, ecs.BodySensor)
	}
	return e, true
}
