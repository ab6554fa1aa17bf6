package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

// spawnMob creates an entity shaped like a spawned enemy.
func spawnMob(t *testing.T, w *World, x float64) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: cp.Vector{X: x}}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: 8}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TagsComponent.Kind(), &component.Tags{Groups: common.GroupEnemy}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestWaveEntityLifecycle(t *testing.T) {
	cases := []struct {
		name     string
		spawned  int
		defeated []int
		alive    int
	}{
		{"empty_wave", 0, nil, 0},
		{"one_defeated", 3, []int{1}, 2},
		{"all_defeated", 2, []int{0, 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var mobs []Entity
			for i := range c.spawned {
				mobs = append(mobs, spawnMob(t, w, float64(i)))
			}
			for _, i := range c.defeated {
				if !DestroyEntity(w, mobs[i]) {
					t.Fatalf("mob %d should be destroyable", i)
				}
			}
			if got := len(Entities(w)); got != c.alive {
				t.Fatalf("expected %d alive, got %d", c.alive, got)
			}
			if got := len(w.Query(component.TagsComponent.Kind())); got != c.alive {
				t.Fatalf("expected %d tagged, got %d", c.alive, got)
			}
		})
	}
}

func TestComponentsMutateInPlace(t *testing.T) {
	w := NewWorld()
	e := spawnMob(t, w, 0)

	body, ok := Get(w, e, component.BodyComponent.Kind())
	if !ok {
		t.Fatal("expected body")
	}
	body.Velocity = cp.Vector{X: 3}
	again, _ := Get(w, e, component.BodyComponent.Kind())
	if again.Velocity.X != 3 {
		t.Fatalf("write through pointer lost, got %v", again.Velocity)
	}

	if !Remove(w, e, component.BodyComponent.Kind()) {
		t.Fatal("remove should report true")
	}
	if Remove(w, e, component.BodyComponent.Kind()) {
		t.Fatal("second remove should report false")
	}
	if Has(w, e, component.BodyComponent.Kind()) {
		t.Fatal("body still present")
	}
	if !Has(w, e, component.TransformComponent.Kind()) {
		t.Fatal("removing body dropped transform")
	}
}

func TestForEachJoinsComponents(t *testing.T) {
	w := NewWorld()
	moving := spawnMob(t, w, 1)
	dead := spawnMob(t, w, 2)
	fixture := CreateEntity(w)
	_ = Add(w, fixture, component.TransformComponent.Kind(), &component.Transform{})
	_ = Add(w, fixture, component.TagsComponent.Kind(), &component.Tags{Groups: common.GroupSwitch})
	DestroyEntity(w, dead)

	var tagged []Entity
	ForEach(w, component.TagsComponent.Kind(), func(e Entity, _ *component.Tags) { tagged = append(tagged, e) })
	if len(tagged) != 2 {
		t.Fatalf("expected mob and fixture, got %v", tagged)
	}

	var bodies []Entity
	ForEach3(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.TagsComponent.Kind(),
		func(e Entity, tr *component.Transform, _ *component.Body, _ *component.Tags) {
			bodies = append(bodies, e)
			if tr.Pos.X != 1 {
				t.Fatalf("unexpected transform %v", tr.Pos)
			}
		})
	if len(bodies) != 1 || bodies[0] != moving {
		t.Fatalf("expected only the live mob, got %v", bodies)
	}

	var none []Entity
	ForEach2(w, component.BodyComponent.Kind(), component.TTLComponent.Kind(), func(e Entity, _ *component.Body, _ *component.TTL) {
		none = append(none, e)
	})
	if len(none) != 0 {
		t.Fatalf("no entity has a ttl, got %v", none)
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	if DestroyEntity(w, old) {
		t.Fatal("destroying twice should fail")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled handle must differ from the stale one")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}
	if Has(w, fresh, k) {
		t.Fatal("recycled slot inherited a component")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("b"))

	got := w.Query(ka, kb)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected [e2], got %v", got)
	}
	if len(w.Query(ka)) != 2 {
		t.Fatalf("expected two entities with ka")
	}
	if e, ok := w.First(kb); !ok || e != e2 {
		t.Fatalf("expected First to find e2, got %v %v", e, ok)
	}

	DestroyEntity(w, e2)
	if _, ok := w.First(kb); ok {
		t.Fatal("First should skip destroyed entities")
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), k, intPtr(i))
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected no live entities, got %v", Entities(w))
	}
}

type recordingSystem struct {
	name  string
	log   *[]string
	delta time.Duration
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	s.delta = w.Delta()
	w.Events().Push(Event{Type: s.name})
}

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	first := &recordingSystem{name: "first", log: &order}
	second := &recordingSystem{name: "second", log: &order}
	w.AddSystem(first)
	w.AddSystem(nil)
	w.AddSystem(second)

	w.Update(16 * time.Millisecond)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected order %v", order)
	}
	if second.delta != 16*time.Millisecond {
		t.Fatalf("expected delta to reach systems, got %v", second.delta)
	}
	if evts := w.Events().Peek(); len(evts) != 0 {
		t.Fatalf("events should be flushed after update, got %v", evts)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventContact})
	q.Push(Event{Type: EventDefeated})
	if len(q.Peek()) != 2 {
		t.Fatal("peek should not consume")
	}
	if got := q.Drain(); len(got) != 2 || got[0].Type != EventContact {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil {
		t.Fatal("queue should be empty")
	}
}
