package combat

import (
	"log"
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// AimStage is the phase of the aim state machine.
type AimStage uint8

const (
	AimIdle AimStage = iota
	AimWarmingUp
	AimCoolingDown
)

func (s AimStage) String() string {
	switch s {
	case AimWarmingUp:
		return "warming_up"
	case AimCoolingDown:
		return "cooling_down"
	default:
		return "idle"
	}
}

// AimConfig holds the tunables for an Aim controller.
type AimConfig struct {
	MinAimTime time.Duration
	MaxAimTime time.Duration
	Cooldown   time.Duration
	// ChargeTime is how long an aim must be held before the shot counts as
	// charged. Zero disables the charged variant.
	ChargeTime time.Duration
	// MaxSpread is the half-angle in radians of a snap shot.
	MaxSpread    float64
	WalkSpeed    float64
	MuzzleOffset float64
	Damage       float64

	Projectile        string
	ChargedProjectile string
}

func DefaultAimConfig() AimConfig {
	return AimConfig{
		MinAimTime:   100 * time.Millisecond,
		MaxAimTime:   3000 * time.Millisecond,
		Cooldown:     100 * time.Millisecond,
		MaxSpread:    math.Pi / 2,
		WalkSpeed:    20,
		MuzzleOffset: 20,
		Damage:       10,
		Projectile:   "bullet",
	}
}

// ProjectileID identifies a resolved projectile prototype.
type ProjectileID int

// ProjectileResolver turns configured projectile names into ids.
type ProjectileResolver interface {
	ResolveProjectile(name string) (ProjectileID, error)
}

// ProjectileIntent asks the host to spawn one projectile.
type ProjectileIntent struct {
	Origin     cp.Vector
	Direction  cp.Vector
	Damage     float64
	Projectile ProjectileID
	Charged    bool
}

type aimState struct {
	target    cp.Vector
	remaining time.Duration
	stage     AimStage
	cooldown  time.Duration
}

type aimCache struct {
	projectile ProjectileID
	charged    ProjectileID
}

// Aim is the aim, charge and fire state machine of one actor.
type Aim struct {
	cfg      AimConfig
	rng      common.Rand
	state    *aimState
	cache    aimCache
	disabled bool
}

func NewAim(cfg AimConfig, rng common.Rand) *Aim {
	if cfg.MaxAimTime <= 0 {
		cfg.MaxAimTime = DefaultAimConfig().MaxAimTime
	}
	if rng == nil {
		rng = common.NewRand(uint64(time.Now().UnixNano()))
	}
	return &Aim{cfg: cfg, rng: rng}
}

func (a *Aim) Config() AimConfig { return a.cfg }

// LoadCache resolves the projectile prototypes once. On failure aiming stays
// disabled for the lifetime of the controller.
func (a *Aim) LoadCache(r ProjectileResolver) error {
	if r == nil {
		return nil
	}
	id, err := r.ResolveProjectile(a.cfg.Projectile)
	if err != nil {
		a.disabled = true
		a.state = nil
		log.Printf("combat: aim disabled: %v", err)
		return err
	}
	a.cache.projectile = id
	a.cache.charged = id
	if a.cfg.ChargedProjectile != "" {
		charged, err := r.ResolveProjectile(a.cfg.ChargedProjectile)
		if err != nil {
			a.disabled = true
			a.state = nil
			log.Printf("combat: aim disabled: %v", err)
			return err
		}
		a.cache.charged = charged
	}
	return nil
}

func (a *Aim) Disabled() bool { return a.disabled }

// BeginAim starts warming up towards point. Re-aiming during the cooldown
// hot starts: one MinAimTime is added to the remaining timer, capped at the
// maximum.
func (a *Aim) BeginAim(point cp.Vector) {
	if a.disabled {
		return
	}
	if a.state == nil {
		a.state = &aimState{target: point, remaining: a.cfg.MaxAimTime, stage: AimWarmingUp}
		return
	}
	a.state.target = point
	if a.state.stage == AimCoolingDown {
		if a.state.remaining < a.cfg.MaxAimTime {
			a.state.remaining = common.ClampDuration(a.state.remaining+a.cfg.MinAimTime, a.cfg.MaxAimTime)
		}
		a.state.stage = AimWarmingUp
		a.state.cooldown = 0
	}
}

func (a *Aim) UpdateTarget(point cp.Vector) {
	if a.state == nil {
		return
	}
	a.state.target = point
}

func (a *Aim) Tick(delta time.Duration) {
	if a.state == nil || delta <= 0 {
		return
	}
	switch a.state.stage {
	case AimWarmingUp:
		a.state.remaining -= delta
		if a.state.remaining < 0 {
			a.state.remaining = 0
		}
	case AimCoolingDown:
		a.state.cooldown += delta
		if a.state.cooldown >= a.cfg.Cooldown {
			a.state = nil
		}
	}
}

// Spread is the current half-angle of the fire cone in radians.
func (a *Aim) Spread() float64 {
	if a.state == nil || a.state.stage != AimWarmingUp {
		return 0
	}
	return a.cfg.MaxSpread * common.Ratio(a.state.remaining, a.cfg.MaxAimTime)
}

// IsFullyCharged reports whether the current aim has been held for at least
// ChargeTime.
func (a *Aim) IsFullyCharged() bool {
	if a.state == nil || a.state.stage != AimWarmingUp || a.cfg.ChargeTime <= 0 {
		return false
	}
	return a.cfg.MaxAimTime-a.state.remaining >= a.cfg.ChargeTime
}

// Fire releases the shot from `from`. Outside of WarmingUp it does nothing
// and returns false.
func (a *Aim) Fire(from cp.Vector, damage float64) (ProjectileIntent, bool) {
	if a.state == nil || a.state.stage != AimWarmingUp {
		return ProjectileIntent{}, false
	}
	charged := a.IsFullyCharged()
	spread := a.Spread()

	ideal := a.state.target.Sub(from)
	if ideal.LengthSq() == 0 {
		ideal = cp.Vector{X: 1}
	}
	dir := ideal.Normalize()
	if spread > 0 {
		dir = dir.Rotate(cp.ForAngle(common.Uniform(a.rng, -spread, spread)))
	}

	a.state.stage = AimCoolingDown
	a.state.cooldown = 0

	intent := ProjectileIntent{
		Origin:     from.Add(dir.Mult(a.cfg.MuzzleOffset)),
		Direction:  dir,
		Damage:     damage,
		Projectile: a.cache.projectile,
		Charged:    charged,
	}
	if charged {
		intent.Projectile = a.cache.charged
	}
	return intent, true
}

func (a *Aim) Cancel() {
	a.state = nil
}

func (a *Aim) Stage() AimStage {
	if a.state == nil {
		return AimIdle
	}
	return a.state.stage
}

func (a *Aim) IsAiming() bool { return a.Stage() == AimWarmingUp }

func (a *Aim) Target() (cp.Vector, bool) {
	if a.state == nil {
		return cp.Vector{}, false
	}
	return a.state.target, true
}

// Remaining is the time left until full accuracy.
func (a *Aim) Remaining() time.Duration {
	if a.state == nil {
		return 0
	}
	return a.state.remaining
}

// Velocity is the walk contribution while warming up.
func (a *Aim) Velocity(facing common.Direction) (cp.Vector, bool) {
	if !a.IsAiming() {
		return cp.Vector{}, false
	}
	return facing.Vector().Mult(a.cfg.WalkSpeed), true
}
