package prefabs

import (
	"fmt"
	"image/color"
	"log"
	"sort"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/encounter"
	"github.com/milk9111/arena/items"
)

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

// Projectile is a resolved projectile prototype.
type Projectile struct {
	ID      combat.ProjectileID
	Name    string
	Speed   float64
	Radius  float64
	TTL     time.Duration
	Targets common.Group
	Color   color.Color
}

// Projectiles resolves projectile names for aim caches.
type Projectiles struct {
	list   []Projectile
	byName map[string]combat.ProjectileID
}

func (p *Projectiles) ResolveProjectile(name string) (combat.ProjectileID, error) {
	if p == nil {
		return 0, fmt.Errorf("prefabs: no projectiles loaded")
	}
	id, ok := p.byName[name]
	if !ok {
		return 0, fmt.Errorf("prefabs: unknown projectile %q", name)
	}
	return id, nil
}

func (p *Projectiles) Get(id combat.ProjectileID) (Projectile, bool) {
	if p == nil || int(id) < 0 || int(id) >= len(p.list) {
		return Projectile{}, false
	}
	return p.list[id], true
}

// Tuning is everything the game reads from prefabs.
type Tuning struct {
	Player      combat.ArbiterConfig
	PlayerSpec  PlayerSpec
	Moves       combat.Moves
	MoveNames   map[string]combat.MoveID
	Projectiles *Projectiles
	Catalog     *encounter.Catalog
	EnemyColors map[encounter.TemplateID]color.Color
	Items       map[string]items.Item
	Recipes     []items.Recipe
	Arena       ArenaSpec
	Director    encounter.DirectorConfig
	Budget      encounter.Budget
}

// LoadTuning reads every spec. Missing files are errors; malformed entries
// inside a file are logged and skipped.
func LoadTuning() (*Tuning, error) {
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	moves, err := LoadSpec[MovesSpec]("moves.yaml")
	if err != nil {
		return nil, err
	}
	projectiles, err := LoadSpec[ProjectilesSpec]("projectiles.yaml")
	if err != nil {
		return nil, err
	}
	enemies, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	itemSpec, err := LoadSpec[ItemsSpec]("items.yaml")
	if err != nil {
		return nil, err
	}
	arena, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return BuildTuning(player, moves, projectiles, enemies, itemSpec, arena)
}

func BuildTuning(player PlayerSpec, moves MovesSpec, projectiles ProjectilesSpec, enemies EnemiesSpec, itemSpec ItemsSpec, arena ArenaSpec) (*Tuning, error) {
	t := &Tuning{PlayerSpec: player, Arena: arena}

	t.Moves, t.MoveNames = BuildMoves(moves)
	t.Projectiles = BuildProjectiles(projectiles)
	t.Items, t.Recipes = BuildItems(itemSpec)

	catalog, colors, err := BuildCatalog(enemies, t.Items)
	if err != nil {
		return nil, err
	}
	t.Catalog = catalog
	t.EnemyColors = colors

	t.Player = player.ArbiterConfig(t.MoveNames)
	t.Director = arena.DirectorConfig()
	t.Budget = arena.Budget()
	return t, nil
}

// ArbiterConfig converts the spec, filling zero fields from the defaults.
func (s PlayerSpec) ArbiterConfig(moves map[string]combat.MoveID) combat.ArbiterConfig {
	cfg := combat.DefaultArbiterConfig()
	if s.BaseSpeed > 0 {
		cfg.BaseSpeed = s.BaseSpeed
	}
	if s.MeleeRadius > 0 {
		cfg.MeleeRadius = s.MeleeRadius
	}
	if s.Health.MaxHP > 0 {
		cfg.Health.MaxHP = s.Health.MaxHP
	}

	a := s.Aim
	if a.MinAimMS > 0 {
		cfg.Aim.MinAimTime = ms(a.MinAimMS)
	}
	if a.MaxAimMS > 0 {
		cfg.Aim.MaxAimTime = ms(a.MaxAimMS)
	}
	if a.CooldownMS > 0 {
		cfg.Aim.Cooldown = ms(a.CooldownMS)
	}
	cfg.Aim.ChargeTime = ms(a.ChargeMS)
	if a.MaxSpread > 0 {
		cfg.Aim.MaxSpread = a.MaxSpread
	}
	if a.WalkSpeed > 0 {
		cfg.Aim.WalkSpeed = a.WalkSpeed
	}
	if a.MuzzleOffset > 0 {
		cfg.Aim.MuzzleOffset = a.MuzzleOffset
	}
	if a.Damage > 0 {
		cfg.Aim.Damage = a.Damage
	}
	if a.Projectile != "" {
		cfg.Aim.Projectile = a.Projectile
	}
	cfg.Aim.ChargedProjectile = a.ChargedProjectile

	d := s.Dash
	if d.Speed > 0 {
		cfg.Dash.Speed = d.Speed
	}
	if d.Chain != nil {
		cfg.Dash.Chain = *d.Chain
	}
	if d.DurationMS > 0 {
		cfg.Dash.Duration = ms(d.DurationMS)
	}
	if d.CooldownMS > 0 {
		cfg.Dash.Cooldown = ms(d.CooldownMS)
	}
	if d.Slowdown > 0 {
		cfg.Dash.Slowdown = d.Slowdown
	}
	if d.InvincibilityMS > 0 {
		cfg.Dash.Invincibility = ms(d.InvincibilityMS)
	}

	cfg.Combo.ChainWindow = ms(s.Combo.ChainWindowMS)
	cfg.Combo.WalkSpeed = s.Combo.WalkSpeed
	if id, ok := moves[s.Combo.InitialMove]; ok {
		cfg.Combo.InitialMove = id
	} else if s.Combo.InitialMove != "" {
		log.Printf("prefabs: player initial move %q not found", s.Combo.InitialMove)
		cfg.Combo.InitialMove = -1
	}
	return cfg
}

// BuildMoves assigns ids in file order. Broken next links are dropped.
func BuildMoves(spec MovesSpec) (combat.Moves, map[string]combat.MoveID) {
	names := make(map[string]combat.MoveID, len(spec.Moves))
	var kept []MoveSpec
	for _, m := range spec.Moves {
		if m.Name == "" {
			log.Printf("prefabs: skipping unnamed move")
			continue
		}
		if _, dup := names[m.Name]; dup {
			log.Printf("prefabs: skipping duplicate move %q", m.Name)
			continue
		}
		names[m.Name] = combat.MoveID(len(kept))
		kept = append(kept, m)
	}

	moves := make(combat.Moves, len(kept))
	for _, m := range kept {
		id := names[m.Name]
		mv := combat.DefaultMove(id)
		mv.Name = m.Name
		if m.CooldownMS > 0 {
			mv.Cooldown = ms(m.CooldownMS)
		}
		if m.HitMS > 0 {
			mv.HitDuration = ms(m.HitMS)
		}
		if m.AnimationMS > 0 {
			mv.AnimationDuration = ms(m.AnimationMS)
		}
		if m.Damage > 0 {
			mv.Damage = m.Damage
		}
		if m.MaxHits > 0 {
			mv.MaxHits = m.MaxHits
		}
		if m.Reach > 0 {
			mv.Reach = m.Reach
		}
		if m.Radius > 0 {
			mv.Radius = m.Radius
		}
		if len(m.Targets) > 0 {
			g, unknown := common.ParseGroups(m.Targets)
			for _, u := range unknown {
				log.Printf("prefabs: move %q: unknown target group %q", m.Name, u)
			}
			mv.Targets = g
		}
		if m.Next != "" {
			if next, ok := names[m.Next]; ok {
				mv.Next, mv.HasNext = next, true
			} else {
				log.Printf("prefabs: move %q links to unknown move %q", m.Name, m.Next)
			}
		}
		moves[id] = mv
	}
	return moves, names
}

func BuildProjectiles(spec ProjectilesSpec) *Projectiles {
	p := &Projectiles{byName: make(map[string]combat.ProjectileID)}
	for _, s := range spec.Projectiles {
		if s.Name == "" || s.Speed <= 0 {
			log.Printf("prefabs: skipping projectile %q", s.Name)
			continue
		}
		if _, dup := p.byName[s.Name]; dup {
			log.Printf("prefabs: skipping duplicate projectile %q", s.Name)
			continue
		}
		targets, unknown := common.ParseGroups(s.Targets)
		for _, u := range unknown {
			log.Printf("prefabs: projectile %q: unknown target group %q", s.Name, u)
		}
		id := combat.ProjectileID(len(p.list))
		p.byName[s.Name] = id
		p.list = append(p.list, Projectile{
			ID:      id,
			Name:    s.Name,
			Speed:   s.Speed,
			Radius:  max(s.Radius, 1),
			TTL:     ms(s.TTLMS),
			Targets: targets,
			Color:   s.Color.Or(color.White),
		})
	}
	return p
}

func BuildItems(spec ItemsSpec) (map[string]items.Item, []items.Recipe) {
	byName := make(map[string]items.Item, len(spec.Items))
	for _, s := range spec.Items {
		cat, err := items.ParseCategory(s.Category)
		if err != nil {
			log.Printf("prefabs: item %q: %v", s.Name, err)
			continue
		}
		effect, err := items.ParseEffect(s.Effect)
		if err != nil {
			log.Printf("prefabs: item %q: %v", s.Name, err)
			continue
		}
		byName[s.Name] = items.Item{
			Category: cat,
			Name:     s.Name,
			Desc:     s.Desc,
			Use:      items.Effect{Kind: effect, Amount: s.Amount},
		}
	}

	var recipes []items.Recipe
recipes:
	for _, r := range spec.Recipes {
		recipe := items.Recipe{Name: r.Name}
		for _, name := range sortedKeys(r.Input) {
			it, ok := byName[name]
			if !ok {
				log.Printf("prefabs: recipe %q: unknown input %q", r.Name, name)
				continue recipes
			}
			recipe.Input = append(recipe.Input, items.Ingredient{Item: it, Count: r.Input[name]})
		}
		for _, name := range sortedKeys(r.Output) {
			it, ok := byName[name]
			if !ok {
				log.Printf("prefabs: recipe %q: unknown output %q", r.Name, name)
				continue recipes
			}
			recipe.Output = append(recipe.Output, items.Stack{Item: it, Count: r.Output[name]})
		}
		recipes = append(recipes, recipe)
	}
	return byName, recipes
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildCatalog skips enemies with a non-positive cost or an id already
// taken, and drops that name unknown items.
func BuildCatalog(spec EnemiesSpec, known map[string]items.Item) (*encounter.Catalog, map[encounter.TemplateID]color.Color, error) {
	colors := make(map[encounter.TemplateID]color.Color, len(spec.Enemies))
	var templates []encounter.EnemyTemplate
	seen := make(map[int]string, len(spec.Enemies))
	for _, e := range spec.Enemies {
		if e.Cost <= 0 {
			log.Printf("prefabs: skipping enemy %q with cost %v", e.Name, e.Cost)
			continue
		}
		if prev, dup := seen[e.ID]; dup {
			log.Printf("prefabs: skipping enemy %q, id %d already used by %q", e.Name, e.ID, prev)
			continue
		}
		seen[e.ID] = e.Name
		t := encounter.EnemyTemplate{
			ID:            encounter.TemplateID(e.ID),
			Name:          e.Name,
			Cost:          e.Cost,
			Health:        e.Health,
			AvailableFrom: e.AvailableFrom,
			Speed:         e.Speed,
			ContactDamage: e.ContactDamage,
			Radius:        max(e.Radius, 4),
		}
		if t.Health <= 0 {
			t.Health = 100
		}
		for _, x := range e.Exclusions {
			t.Exclusions = append(t.Exclusions, encounter.TemplateID(x))
		}
		for _, roll := range e.Drops {
			var group items.DropGroup
			for _, d := range roll.Group {
				it, ok := known[d.Item]
				if !ok {
					log.Printf("prefabs: enemy %q drops unknown item %q", e.Name, d.Item)
					continue
				}
				group = append(group, items.WeightedDrop{
					Drop:   items.Drop{Item: it, Min: d.Min, Max: d.Max},
					Chance: d.Chance,
				})
			}
			if len(group) > 0 && roll.Count > 0 {
				t.Drops = append(t.Drops, items.GroupRoll{Group: group, Count: roll.Count})
			}
		}
		templates = append(templates, t)
		colors[t.ID] = e.Color.Or(color.RGBA{R: 200, G: 80, B: 80, A: 255})
	}
	catalog, err := encounter.NewCatalog(templates...)
	if err != nil {
		return nil, nil, fmt.Errorf("prefabs: enemies: %w", err)
	}
	return catalog, colors, nil
}

func (s ArenaSpec) AreaRect() common.Rect {
	return common.NewRect(s.Area.X, s.Area.Y, s.Area.W, s.Area.H)
}

func (s ArenaSpec) DirectorConfig() encounter.DirectorConfig {
	cfg := encounter.DirectorConfig{Area: s.AreaRect(), Intermission: s.Intermission}
	for _, f := range s.Fixtures {
		var kind encounter.FixtureKind
		switch f.Kind {
		case "switch":
			kind = encounter.FixtureSwitch
		case "forge":
			kind = encounter.FixtureForge
		default:
			log.Printf("prefabs: unknown fixture kind %q", f.Kind)
			continue
		}
		cfg.Fixtures = append(cfg.Fixtures, encounter.Fixture{Kind: kind, Position: cp.Vector{X: f.X, Y: f.Y}})
	}
	return cfg
}

// Budget returns the scripted budget when one is configured and compiles,
// and the linear curve otherwise.
func (s ArenaSpec) Budget() encounter.Budget {
	linear := encounter.DefaultBudget()
	if s.BudgetSlope != 0 || s.BudgetBase != 0 {
		linear = encounter.LinearBudget{Slope: s.BudgetSlope, Intercept: s.BudgetBase}
	}
	if s.BudgetScript == "" {
		return linear
	}
	src, err := LoadScript(s.BudgetScript)
	if err != nil {
		log.Printf("prefabs: budget script %s: %v", s.BudgetScript, err)
		return linear
	}
	b, err := encounter.NewScriptBudget(src, linear)
	if err != nil {
		log.Printf("prefabs: %v", err)
		return linear
	}
	return b
}
