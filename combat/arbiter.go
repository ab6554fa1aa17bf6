package combat

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// ArbiterConfig bundles the controller tunables of one actor.
type ArbiterConfig struct {
	Health HealthConfig
	Aim    AimConfig
	Dash   DashConfig
	Combo  ComboConfig

	BaseSpeed float64
	// MeleeRadius splits primary presses: closer than this to the actor is a
	// melee swing, further away starts aiming.
	MeleeRadius float64
}

func DefaultArbiterConfig() ArbiterConfig {
	return ArbiterConfig{
		Health:      DefaultHealthConfig(),
		Aim:         DefaultAimConfig(),
		Dash:        DefaultDashConfig(),
		Combo:       DefaultComboConfig(),
		BaseSpeed:   140,
		MeleeRadius: 30,
	}
}

// SteerKey is a movement key that shifts the facing direction.
type SteerKey uint8

const (
	SteerUp SteerKey = iota
	SteerDown
	SteerLeft
	SteerRight
)

// Arbiter owns one of each controller for an actor, ticks them in a fixed
// order and decides which one drives movement.
type Arbiter struct {
	cfg ArbiterConfig

	health *Health
	aim    *Aim
	dash   *Dash
	combo  *Combo
	hits   *HitVolumes

	facing   common.Direction
	pos      cp.Vector
	velocity cp.Vector
	intents  []ProjectileIntent

	Events Emitter
}

func NewArbiter(cfg ArbiterConfig, moves MoveCatalog, rng common.Rand) *Arbiter {
	a := &Arbiter{cfg: cfg, hits: NewHitVolumes()}
	a.health = NewHealth(cfg.Health)
	a.aim = NewAim(cfg.Aim, rng)
	a.dash = NewDash(cfg.Dash)
	a.combo = NewCombo(cfg.Combo, moves, a.hits)

	a.health.OnDamage = func(h *Health, amount float64) {
		a.Events.Emit(Event{Type: EventDamageApplied, Amount: amount, HP: h.HP(), Pos: a.pos})
	}
	a.health.OnDeath = func(h *Health) {
		a.aim.Cancel()
		a.combo.Reset()
		a.dash.Reset()
		a.Events.Emit(Event{Type: EventDeath, Pos: a.pos})
	}
	return a
}

func (a *Arbiter) Config() ArbiterConfig { return a.cfg }

func (a *Arbiter) Health() *Health { return a.health }

func (a *Arbiter) Aim() *Aim { return a.aim }

func (a *Arbiter) Dash() *Dash { return a.dash }

func (a *Arbiter) Combo() *Combo { return a.combo }

func (a *Arbiter) HitVolumes() *HitVolumes { return a.hits }

func (a *Arbiter) Facing() common.Direction { return a.facing }

func (a *Arbiter) SetFacing(d common.Direction) { a.facing = d }

func (a *Arbiter) Position() cp.Vector { return a.pos }

// SetPosition records where the actor is; fire origins and primary routing
// are measured from it.
func (a *Arbiter) SetPosition(p cp.Vector) { a.pos = p }

// Velocity is the result of the last Tick.
func (a *Arbiter) Velocity() cp.Vector { return a.velocity }

func (a *Arbiter) IsDead() bool { return a.health.IsDead() }

// Tick advances health, aim, dash and combo in that order and returns the
// velocity the actor should move with.
func (a *Arbiter) Tick(delta time.Duration) cp.Vector {
	if a.IsDead() {
		a.velocity = cp.Vector{}
		return a.velocity
	}
	a.health.Tick(delta)
	a.aim.Tick(delta)
	dv, dashing := a.dash.Tick(delta, a.facing)
	a.combo.Tick(delta)
	a.hits.Tick(delta)

	av, aiming := a.aim.Velocity(a.facing)
	mv, meleeing := a.combo.Velocity(a.facing)
	a.velocity = SelectVelocity(
		Contribute(dv, dashing),
		Contribute(av, aiming),
		Contribute(mv, meleeing),
		a.facing.Vector().Mult(a.cfg.BaseSpeed),
	)
	return a.velocity
}

func (a *Arbiter) BeginAim(point cp.Vector) {
	if a.IsDead() {
		return
	}
	a.aim.BeginAim(point)
}

// UpdateTarget moves the aim point while aiming.
func (a *Arbiter) UpdateTarget(point cp.Vector) {
	if !a.aim.IsAiming() {
		return
	}
	a.aim.UpdateTarget(point)
}

// Fire releases the current aim. The intent is also queued for
// DrainIntents.
func (a *Arbiter) Fire() (ProjectileIntent, bool) {
	if a.IsDead() {
		return ProjectileIntent{}, false
	}
	intent, ok := a.aim.Fire(a.pos, a.cfg.Aim.Damage)
	if !ok {
		return intent, false
	}
	a.intents = append(a.intents, intent)
	a.Events.Emit(Event{Type: EventShotFired, Amount: intent.Damage, Pos: intent.Origin, Dir: intent.Direction})
	return intent, true
}

// TriggerDash overrides every other action: aim and combo are dropped, the
// dash invincibility window is granted and the actor dashes where it faces.
func (a *Arbiter) TriggerDash() (DashResult, bool) {
	if a.IsDead() {
		return DashStarted, false
	}
	a.aim.Cancel()
	a.combo.Reset()
	a.health.SetInvincible(a.dash.InvincibilityWindow())
	res := a.dash.Trigger(a.facing)
	if res != DashOverdraft {
		a.Events.Emit(Event{Type: EventDashStarted, Dash: res, Pos: a.pos, Dir: a.facing.Vector()})
	}
	return res, true
}

// TriggerMelee swings towards dir and reports whether a move executed.
func (a *Arbiter) TriggerMelee(dir common.Direction) bool {
	if a.IsDead() {
		return false
	}
	if !a.combo.Trigger(dir) {
		return false
	}
	id, _ := a.combo.Current()
	a.Events.Emit(Event{Type: EventMoveExecuted, Move: id, Pos: a.pos, Dir: dir.Vector()})
	return true
}

// ResetCombo drops the combo and cancels its hit volume.
func (a *Arbiter) ResetCombo() {
	id, ok := a.combo.Current()
	a.combo.Reset()
	if ok {
		a.Events.Emit(Event{Type: EventMoveCancelled, Move: id, Pos: a.pos})
	}
}

// Primary handles a primary button press at point. Nothing happens while
// dashing; far presses begin aiming unless a combo is running and near
// presses swing in the facing direction.
func (a *Arbiter) Primary(point cp.Vector) {
	if a.IsDead() || a.dash.IsDashing() {
		return
	}
	if point.Distance(a.pos) > a.cfg.MeleeRadius {
		if !a.combo.IsActive() {
			a.BeginAim(point)
		}
		return
	}
	a.TriggerMelee(a.facing)
}

// ReleasePrimary fires if the actor is aiming.
func (a *Arbiter) ReleasePrimary() (ProjectileIntent, bool) {
	if a.IsDead() || a.dash.IsDashing() || !a.aim.IsAiming() {
		return ProjectileIntent{}, false
	}
	return a.Fire()
}

// Steer applies a movement key press or release to the facing direction.
// Releasing a key undoes its press.
func (a *Arbiter) Steer(key SteerKey, pressed bool) common.Direction {
	switch {
	case key == SteerUp && pressed, key == SteerDown && !pressed:
		a.facing = a.facing.ShiftUp()
	case key == SteerLeft && pressed, key == SteerRight && !pressed:
		a.facing = a.facing.ShiftLeft()
	case key == SteerDown && pressed, key == SteerUp && !pressed:
		a.facing = a.facing.ShiftDown()
	case key == SteerRight && pressed, key == SteerLeft && !pressed:
		a.facing = a.facing.ShiftRight()
	}
	return a.facing
}

// ApplyDamage forwards to the health controller and returns the hit points
// left.
func (a *Arbiter) ApplyDamage(amount float64) float64 {
	return a.health.ApplyDamage(amount)
}

// DrainIntents returns and clears the queued projectile intents.
func (a *Arbiter) DrainIntents() []ProjectileIntent {
	if len(a.intents) == 0 {
		return nil
	}
	out := a.intents
	a.intents = nil
	return out
}
