package combat

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// TargetID identifies something a hit volume can strike.
type TargetID uint64

// HitVolume is the live state of one executed move.
type HitVolume struct {
	Move Move
	Dir  common.Direction

	hit       time.Duration
	animation time.Duration
	cooldown  time.Duration
	hits      map[TargetID]int
}

// CanHit reports whether the hit window is still open.
func (v *HitVolume) CanHit() bool { return v.hit > 0 }

// Animating reports whether the swing should still be drawn.
func (v *HitVolume) Animating() bool { return v.animation > 0 }

func (v *HitVolume) finished() bool {
	return v.hit == 0 && v.animation == 0 && v.cooldown == 0
}

// Center is where the hit circle sits for an attacker at pos.
func (v *HitVolume) Center(pos cp.Vector) cp.Vector {
	return pos.Add(v.Dir.Vector().Mult(v.Move.Reach))
}

func step(d *time.Duration, delta time.Duration) {
	if *d > delta {
		*d -= delta
	} else {
		*d = 0
	}
}

// HitVolumes runs the hit window of the moves a Combo executes. It counts
// hits per target so a move never strikes the same target more than MaxHits
// times.
type HitVolumes struct {
	active *HitVolume
}

func NewHitVolumes() *HitVolumes { return &HitVolumes{} }

// Execute opens a fresh volume for m. A Neutral direction swings at nothing
// and only runs the cooldown.
func (h *HitVolumes) Execute(m Move, dir common.Direction) {
	v := &HitVolume{Move: m, Dir: dir, cooldown: m.Cooldown, hits: make(map[TargetID]int)}
	if dir != common.Neutral {
		v.hit = m.HitDuration
		v.animation = m.AnimationDuration
	}
	h.active = v
}

// Cancel closes the volume if it belongs to id.
func (h *HitVolumes) Cancel(id MoveID) {
	if h.active != nil && h.active.Move.ID == id {
		h.active = nil
	}
}

func (h *HitVolumes) Tick(delta time.Duration) {
	if h.active == nil {
		return
	}
	step(&h.active.hit, delta)
	step(&h.active.animation, delta)
	step(&h.active.cooldown, delta)
	if h.active.finished() {
		h.active = nil
	}
}

// Active returns the open volume.
func (h *HitVolumes) Active() (*HitVolume, bool) {
	return h.active, h.active != nil
}

// TryHit records a hit on target if the window is open, the target is in one
// of the move's groups and has not been struck MaxHits times. It returns the
// damage to apply.
func (h *HitVolumes) TryHit(target TargetID, groups common.Group) (float64, bool) {
	v := h.active
	if v == nil || !v.CanHit() || !v.Move.Targets.Has(groups) {
		return 0, false
	}
	if v.Move.MaxHits > 0 && v.hits[target] >= v.Move.MaxHits {
		return 0, false
	}
	v.hits[target]++
	return v.Move.Damage, true
}
