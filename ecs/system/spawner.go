package system

import (
	"errors"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/encounter"
)

const fixtureRadius = 24

var errNoWorld = errors.New("system: spawner has no world")

// WorldSpawner realizes director spawns as entities. Handles are the entity
// values themselves.
type WorldSpawner struct {
	world  *ecs.World
	colors map[encounter.TemplateID]color.Color
}

func NewWorldSpawner(w *ecs.World, colors map[encounter.TemplateID]color.Color) *WorldSpawner {
	return &WorldSpawner{world: w, colors: colors}
}

func (s *WorldSpawner) SetColors(colors map[encounter.TemplateID]color.Color) {
	s.colors = colors
}

func (s *WorldSpawner) Spawn(d encounter.SpawnDescriptor) (encounter.SpawnHandle, error) {
	w := s.world
	if w == nil {
		return 0, errNoWorld
	}
	e := ecs.CreateEntity(w)
	health := combat.NewHealth(combat.HealthConfig{MaxHP: d.Template.Health})
	health.OnDeath = func(*combat.Health) {
		w.Events().Push(ecs.Event{Type: ecs.EventDefeated, Data: e})
	}

	fill, ok := s.colors[d.Template.ID]
	if !ok {
		fill = colornames.Indianred
	}
	handle := encounter.SpawnHandle(e)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: d.Position})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: d.Template.Radius})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Template: d.Template, Health: health, Handle: handle})
	_ = ecs.Add(w, e, component.TagsComponent.Kind(), &component.Tags{Groups: common.GroupEnemy})
	_ = ecs.Add(w, e, component.ColorComponent.Kind(), &component.Color{Fill: fill})
	if pw := w.PhysicsWorld(); pw != nil {
		pw.Attach(e, d.Position, d.Template.Radius, ecs.BodyActor)
	}
	return handle, nil
}

func (s *WorldSpawner) SpawnFixture(f encounter.Fixture) (encounter.SpawnHandle, error) {
	w := s.world
	if w == nil {
		return 0, errNoWorld
	}
	group, fill := common.GroupSwitch, color.Color(colornames.Gold)
	if f.Kind == encounter.FixtureForge {
		group, fill = common.GroupForge, colornames.Orangered
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: f.Position})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: fixtureRadius})
	_ = ecs.Add(w, e, component.FixtureComponent.Kind(), &component.Fixture{Kind: f.Kind})
	_ = ecs.Add(w, e, component.TagsComponent.Kind(), &component.Tags{Groups: group})
	_ = ecs.Add(w, e, component.ColorComponent.Kind(), &component.Color{Fill: fill})
	if pw := w.PhysicsWorld(); pw != nil {
		pw.Attach(e, f.Position, fixtureRadius, ecs.BodyGhost)
	}
	return encounter.SpawnHandle(e), nil
}

func (s *WorldSpawner) Despawn(h encounter.SpawnHandle) {
	if s.world == nil {
		return
	}
	ecs.DestroyEntity(s.world, ecs.Entity(h))
}
