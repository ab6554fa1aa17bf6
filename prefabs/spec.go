package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type HealthSpec struct {
	MaxHP float64 `yaml:"max_hp"`
}

type AimSpec struct {
	MinAimMS          int     `yaml:"min_aim_ms"`
	MaxAimMS          int     `yaml:"max_aim_ms"`
	CooldownMS        int     `yaml:"cooldown_ms"`
	ChargeMS          int     `yaml:"charge_ms"`
	MaxSpread         float64 `yaml:"max_spread"`
	WalkSpeed         float64 `yaml:"walk_speed"`
	MuzzleOffset      float64 `yaml:"muzzle_offset"`
	Damage            float64 `yaml:"damage"`
	Projectile        string  `yaml:"projectile"`
	ChargedProjectile string  `yaml:"charged_projectile"`
}

type DashSpec struct {
	Speed           float64 `yaml:"speed"`
	Chain           *int    `yaml:"chain"`
	DurationMS      int     `yaml:"duration_ms"`
	CooldownMS      int     `yaml:"cooldown_ms"`
	Slowdown        float64 `yaml:"slowdown"`
	InvincibilityMS int     `yaml:"invincibility_ms"`
}

type ComboSpec struct {
	InitialMove   string  `yaml:"initial_move"`
	ChainWindowMS int     `yaml:"chain_window_ms"`
	WalkSpeed     float64 `yaml:"walk_speed"`
}

type PlayerSpec struct {
	Name        string     `yaml:"name"`
	BaseSpeed   float64    `yaml:"base_speed"`
	MeleeRadius float64    `yaml:"melee_radius"`
	Radius      float64    `yaml:"radius"`
	Color       YAMLColor  `yaml:"color"`
	Health      HealthSpec `yaml:"health"`
	Aim         AimSpec    `yaml:"aim"`
	Dash        DashSpec   `yaml:"dash"`
	Combo       ComboSpec  `yaml:"combo"`
	MaxStacks   int        `yaml:"max_stacks"`
}

type MoveSpec struct {
	Name        string   `yaml:"name"`
	Next        string   `yaml:"next"`
	CooldownMS  int      `yaml:"cooldown_ms"`
	HitMS       int      `yaml:"hit_ms"`
	AnimationMS int      `yaml:"animation_ms"`
	Damage      float64  `yaml:"damage"`
	MaxHits     int      `yaml:"max_hits"`
	Targets     []string `yaml:"targets"`
	Reach       float64  `yaml:"reach"`
	Radius      float64  `yaml:"radius"`
}

type MovesSpec struct {
	Moves []MoveSpec `yaml:"moves"`
}

type ProjectileSpec struct {
	Name    string    `yaml:"name"`
	Speed   float64   `yaml:"speed"`
	Radius  float64   `yaml:"radius"`
	TTLMS   int       `yaml:"ttl_ms"`
	Targets []string  `yaml:"targets"`
	Color   YAMLColor `yaml:"color"`
}

type ProjectilesSpec struct {
	Projectiles []ProjectileSpec `yaml:"projectiles"`
}

type DropSpec struct {
	Item   string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
}

type DropRollSpec struct {
	Count int        `yaml:"count"`
	Group []DropSpec `yaml:"group"`
}

type EnemySpec struct {
	ID            int            `yaml:"id"`
	Name          string         `yaml:"name"`
	Cost          float64        `yaml:"cost"`
	Health        float64        `yaml:"health"`
	AvailableFrom int            `yaml:"available_from"`
	Exclusions    []int          `yaml:"exclusions"`
	Speed         float64        `yaml:"speed"`
	ContactDamage float64        `yaml:"contact_damage"`
	Radius        float64        `yaml:"radius"`
	Color         YAMLColor      `yaml:"color"`
	Drops         []DropRollSpec `yaml:"drops"`
}

type EnemiesSpec struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

type ItemSpec struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Desc     string  `yaml:"desc"`
	Effect   string  `yaml:"effect"`
	Amount   float64 `yaml:"amount"`
}

type RecipeSpec struct {
	Name   string         `yaml:"name"`
	Input  map[string]int `yaml:"input"`
	Output map[string]int `yaml:"output"`
}

type ItemsSpec struct {
	Items   []ItemSpec   `yaml:"items"`
	Recipes []RecipeSpec `yaml:"recipes"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type FixtureSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type ArenaSpec struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Area         RectSpec      `yaml:"area"`
	Spawn        FixtureSpec   `yaml:"player_spawn"`
	Intermission bool          `yaml:"intermission"`
	Fixtures     []FixtureSpec `yaml:"fixtures"`
	BudgetScript string        `yaml:"budget_script"`
	BudgetSlope  float64       `yaml:"budget_slope"`
	BudgetBase   float64       `yaml:"budget_base"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the field was absent.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
