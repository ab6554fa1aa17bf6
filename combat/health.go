package combat

import "time"

// HealthConfig holds the tunables for a Health controller.
type HealthConfig struct {
	MaxHP float64
}

// DefaultHealthConfig matches an unconfigured actor.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{MaxHP: 100}
}

type healthState struct {
	hp         float64
	invincible time.Duration
}

// Health tracks hit points and the invincibility window of one actor. Death
// is terminal: once hit points reach zero the state is dropped and never
// comes back.
type Health struct {
	cfg   HealthConfig
	state *healthState
	dead  bool

	OnDamage func(h *Health, amount float64)
	OnDeath  func(h *Health)
}

// NewHealth creates an initialized Health controller.
func NewHealth(cfg HealthConfig) *Health {
	if cfg.MaxHP <= 0 {
		cfg.MaxHP = 1
	}
	h := &Health{cfg: cfg}
	h.Init(cfg.MaxHP)
	return h
}

// Init sets the maximum, fills hit points to it and clears invincibility.
// A non-positive maxHP keeps the configured maximum.
func (h *Health) Init(maxHP float64) {
	if h == nil || h.dead {
		return
	}
	if maxHP > 0 {
		h.cfg.MaxHP = maxHP
	}
	h.state = &healthState{hp: h.cfg.MaxHP}
}

// ApplyDamage subtracts amount unless the actor is invincible and returns
// the hit points left. A dead actor reports zero.
func (h *Health) ApplyDamage(amount float64) float64 {
	if h == nil || h.state == nil {
		return 0
	}
	if h.state.invincible > 0 || amount <= 0 {
		return h.state.hp
	}
	h.state.hp -= amount
	if h.state.hp <= 0 {
		h.state = nil
		if h.OnDamage != nil {
			h.OnDamage(h, amount)
		}
		h.die()
		return 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	return h.state.hp
}

func (h *Health) die() {
	if h.dead {
		return
	}
	h.dead = true
	if h.OnDeath != nil {
		h.OnDeath(h)
	}
}

// SetInvincible opens an invincibility window of d, replacing any current one.
func (h *Health) SetInvincible(d time.Duration) {
	if h == nil || h.state == nil || d < 0 {
		return
	}
	h.state.invincible = d
}

// Tick counts the invincibility window down, never below zero.
func (h *Health) Tick(delta time.Duration) {
	if h == nil || h.state == nil || h.state.invincible <= 0 {
		return
	}
	h.state.invincible -= delta
	if h.state.invincible < 0 {
		h.state.invincible = 0
	}
}

// Heal restores hit points up to the maximum.
func (h *Health) Heal(amount float64) {
	if h == nil || h.state == nil || amount <= 0 {
		return
	}
	h.state.hp += amount
	if h.state.hp > h.cfg.MaxHP {
		h.state.hp = h.cfg.MaxHP
	}
}

// BumpMax raises the maximum and current hit points by amount.
func (h *Health) BumpMax(amount float64) {
	if h == nil || h.state == nil || amount <= 0 {
		return
	}
	h.cfg.MaxHP += amount
	h.state.hp += amount
}

func (h *Health) IsDead() bool {
	return h == nil || h.dead
}

func (h *Health) IsInvincible() bool {
	return h != nil && h.state != nil && h.state.invincible > 0
}

// Invincibility returns what is left of the current window.
func (h *Health) Invincibility() time.Duration {
	if h == nil || h.state == nil {
		return 0
	}
	return h.state.invincible
}

func (h *Health) HP() float64 {
	if h == nil || h.state == nil {
		return 0
	}
	return h.state.hp
}

func (h *Health) MaxHP() float64 {
	if h == nil {
		return 0
	}
	return h.cfg.MaxHP
}
