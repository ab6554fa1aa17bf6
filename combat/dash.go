package combat

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// DashConfig holds the tunables for a Dash controller.
type DashConfig struct {
	Speed float64
	// Chain is how many extra legs may follow the first one.
	Chain         int
	Duration      time.Duration
	Cooldown      time.Duration
	Slowdown      float64
	Invincibility time.Duration
}

func DefaultDashConfig() DashConfig {
	return DashConfig{
		Speed:         500,
		Chain:         3,
		Duration:      200 * time.Millisecond,
		Cooldown:      50 * time.Millisecond,
		Slowdown:      15,
		Invincibility: 100 * time.Millisecond,
	}
}

// DashResult reports what a Trigger did.
type DashResult uint8

const (
	DashStarted DashResult = iota
	DashChained
	DashOverdraft
)

func (r DashResult) String() string {
	switch r {
	case DashChained:
		return "chained"
	case DashOverdraft:
		return "overdraft"
	default:
		return "started"
	}
}

type dashState struct {
	count     int
	elapsed   time.Duration
	dir       common.Direction
	overdraft bool
}

// Dash is the chained dash state machine of one actor.
type Dash struct {
	cfg   DashConfig
	state *dashState
}

func NewDash(cfg DashConfig) *Dash {
	if cfg.Chain < 0 {
		cfg.Chain = 0
	}
	return &Dash{cfg: cfg}
}

func (d *Dash) Config() DashConfig { return d.cfg }

// Trigger starts or extends a dash towards dir. Past the chain limit the
// direction is kept and the actor replays the slow tail instead.
func (d *Dash) Trigger(dir common.Direction) DashResult {
	switch {
	case d.state == nil:
		d.state = &dashState{dir: dir}
		return DashStarted
	case d.state.count < d.cfg.Chain:
		d.state = &dashState{count: d.state.count + 1, dir: dir}
		return DashChained
	default:
		d.state.elapsed = 0
		d.state.overdraft = true
		return DashOverdraft
	}
}

// Tick advances the dash and returns its velocity contribution, or false
// once the dash and its tail are over.
func (d *Dash) Tick(delta time.Duration, facing common.Direction) (cp.Vector, bool) {
	if d.state == nil {
		return cp.Vector{}, false
	}
	if delta > 0 {
		d.state.elapsed += delta
	}
	v, ok := d.Velocity(facing)
	if !ok {
		d.state = nil
	}
	return v, ok
}

// Velocity returns the contribution for the current elapsed time without
// advancing it.
func (d *Dash) Velocity(facing common.Direction) (cp.Vector, bool) {
	if d.state == nil {
		return cp.Vector{}, false
	}
	switch {
	case d.state.elapsed <= d.cfg.Duration && !d.state.overdraft:
		return d.state.dir.Vector().Mult(d.cfg.Speed), true
	case d.state.elapsed <= d.cfg.Duration+d.cfg.Cooldown:
		return facing.Vector().Mult(d.cfg.Slowdown), true
	default:
		return cp.Vector{}, false
	}
}

func (d *Dash) IsDashing() bool { return d.state != nil }

// Count is the number of chained legs of the current dash.
func (d *Dash) Count() int {
	if d.state == nil {
		return 0
	}
	return d.state.count
}

func (d *Dash) Direction() common.Direction {
	if d.state == nil {
		return common.Neutral
	}
	return d.state.dir
}

func (d *Dash) InvincibilityWindow() time.Duration { return d.cfg.Invincibility }

func (d *Dash) Reset() { d.state = nil }
