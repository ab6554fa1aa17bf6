package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/encounter"
	"github.com/milk9111/arena/items"
	"github.com/milk9111/arena/prefabs"
)

const (
	tps       = 60
	noticeTTL = 2 * time.Second
)

type Options struct {
	Seed         uint64
	Debug        bool
	Watch        bool
	Intermission bool
}

type Game struct {
	opts   Options
	runs   uint64
	tuning *prefabs.Tuning

	world     *ecs.World
	player    ecs.Entity
	arbiter   *combat.Arbiter
	inventory *items.Inventory
	actors    *system.ActorSystem
	spawner   *system.WorldSpawner
	encounter *system.EncounterSystem
	records   *encounter.Records

	input   *Input
	watcher *prefabs.Watcher

	paused bool
	over   *encounter.Record
	ui     *ebitenui.UI

	notice    string
	noticeFor time.Duration
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("load prefabs: %w", err)
	}
	g := &Game{
		opts:    opts,
		tuning:  tuning,
		records: encounter.NewRecords(),
		input:   NewInput(float64(tuning.Arena.Height)),
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("arena: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	g.reset()
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("arena: close watcher: %v", err)
		}
	}
}

// reset builds a fresh world for a new run. Records survive.
func (g *Game) reset() {
	t := g.tuning
	rng := common.NewRand(g.opts.Seed + g.runs)
	g.runs++

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(t.Arena.AreaRect()))
	g.world = w
	g.spawner = system.NewWorldSpawner(w, t.EnemyColors)

	g.arbiter = combat.NewArbiter(t.Player, t.Moves, rng)
	if err := g.arbiter.Aim().LoadCache(t.Projectiles); err != nil {
		g.notify("aim disabled: " + err.Error())
	}
	g.arbiter.Events.Subscribe(g.onCombatEvent)
	g.inventory = items.NewInventory(t.PlayerSpec.MaxStacks)

	spawn := cp.Vector{X: t.Arena.Spawn.X, Y: t.Arena.Spawn.Y}
	radius := max(t.PlayerSpec.Radius, 4)
	g.player = ecs.CreateEntity(w)
	_ = ecs.Add(w, g.player, component.TransformComponent.Kind(), &component.Transform{Pos: spawn})
	_ = ecs.Add(w, g.player, component.BodyComponent.Kind(), &component.Body{Radius: radius})
	_ = ecs.Add(w, g.player, component.ActorComponent.Kind(), &component.Actor{Arbiter: g.arbiter, Inventory: g.inventory})
	_ = ecs.Add(w, g.player, component.TagsComponent.Kind(), &component.Tags{Groups: common.GroupPlayer})
	_ = ecs.Add(w, g.player, component.ColorComponent.Kind(), &component.Color{Fill: t.PlayerSpec.Color.Or(colornames.Lightskyblue)})
	w.PhysicsWorld().Attach(g.player, spawn, radius, ecs.BodyGhost)

	cfg := t.Director
	cfg.Intermission = cfg.Intermission && g.opts.Intermission
	director := encounter.NewDirector(cfg, encounter.NewGenerator(t.Budget, rng), t.Catalog, g.spawner, g.records, rng)
	director.OnWaveChanged = func(wave encounter.Wave) { g.notify(wave.String()) }

	g.actors = system.NewActorSystem(t.Projectiles)
	g.encounter = system.NewEncounterSystem(director)
	g.encounter.OnDrops = func(stacks []items.Stack) {
		for _, s := range stacks {
			g.notify("+" + s.String())
		}
	}
	g.encounter.OnRunOver = func(r encounter.Record) {
		g.over = &r
		g.ui = NewRunOverUI(g, r)
	}

	w.AddSystem(g.actors)
	w.AddSystem(system.NewEnemySystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewContactSystem())
	w.AddSystem(system.NewMeleeSystem())
	w.AddSystem(g.encounter)
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(system.NewWhiteFlashSystem())
	w.AddSystem(system.NewRenderSystem(t.Arena.AreaRect(), float64(t.Arena.Height)))

	if err := director.Start(); err != nil {
		log.Printf("arena: %v", err)
	}
	g.over = nil
	g.paused = false
	g.ui = nil
	g.input.Resync(g.arbiter)
}

func (g *Game) onCombatEvent(evt combat.Event) {
	if !g.opts.Debug {
		return
	}
	log.Printf("arena: %s amount=%.1f hp=%.1f", evt.Type, evt.Amount, evt.HP)
}

func (g *Game) notify(msg string) {
	g.notice = msg
	g.noticeFor = noticeTTL
}

// reload rebuilds tuning after prefab edits. Controller tunables are read
// at arbiter creation and only change on the next run.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	t, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("arena: reload %v: %v", changed, err)
		g.notify("reload failed")
		return
	}
	g.tuning = t
	g.arbiter.Combo().SetCatalog(t.Moves)
	if err := g.arbiter.Aim().LoadCache(t.Projectiles); err != nil {
		log.Printf("arena: reload projectiles: %v", err)
	}
	g.actors.SetProjectiles(t.Projectiles)
	g.spawner.SetColors(t.EnemyColors)
	g.encounter.Director().Retune(t.Catalog, t.Budget)
	log.Printf("arena: reloaded %v", changed)
	g.notify("prefabs reloaded")
}

func (g *Game) Update() error {
	g.reload()
	delta := time.Second / tps
	if g.noticeFor > 0 {
		g.noticeFor -= delta
	}

	if g.over != nil {
		g.ui.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.reset()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			g.ui = NewPauseUI(g)
		} else {
			g.resume()
		}
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.input.Update(g)
	g.world.Update(delta)
	return nil
}

func (g *Game) resume() {
	g.paused = false
	g.input.Resync(g.arbiter)
}

func (g *Game) actor() (*component.Actor, bool) {
	return ecs.Get(g.world, g.player, component.ActorComponent.Kind())
}

// craft runs recipe i if the player stands at the forge.
func (g *Game) craft(i int) {
	if i >= len(g.tuning.Recipes) {
		return
	}
	a, ok := g.actor()
	if !ok || !a.NearForge {
		g.notify("crafting needs the forge")
		return
	}
	r := g.tuning.Recipes[i]
	overflow, err := r.AttemptCraft(g.inventory)
	if err != nil {
		g.notify(err.Error())
		return
	}
	g.notify("crafted " + r.Name)
	if len(overflow) > 0 {
		log.Printf("arena: craft %s: %d stacks did not fit", r.Name, len(overflow))
	}
}

func (g *Game) useItem() {
	item, ok := g.inventory.FirstUsable()
	if !ok {
		return
	}
	if _, err := g.inventory.Use(item.Name, g.arbiter.Health()); err != nil {
		g.notify(err.Error())
		return
	}
	g.notify("used " + item.Name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.drawHUD(screen)
	if (g.paused || g.over != nil) && g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.tuning.Arena.Width, g.tuning.Arena.Height
}
