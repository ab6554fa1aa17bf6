package combat

import (
	"log"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// ComboConfig holds the tunables for a Combo controller.
type ComboConfig struct {
	InitialMove MoveID
	// ChainWindow is how long past a move's cooldown the combo survives
	// without input. Zero drops the chain as soon as elapsed exceeds the
	// cooldown, which is the strict chain rule; the default keeps a short
	// grace period.
	ChainWindow time.Duration
	WalkSpeed   float64
}

func DefaultComboConfig() ComboConfig {
	return ComboConfig{InitialMove: 0, ChainWindow: 250 * time.Millisecond}
}

type comboState struct {
	move    Move
	elapsed time.Duration
}

// Combo chains melee moves. Input during a move's cooldown is dropped; input
// after it advances to the linked move.
type Combo struct {
	cfg     ComboConfig
	catalog MoveCatalog
	exec    MoveExecutor
	state   *comboState
}

func NewCombo(cfg ComboConfig, catalog MoveCatalog, exec MoveExecutor) *Combo {
	return &Combo{cfg: cfg, catalog: catalog, exec: exec}
}

func (c *Combo) Config() ComboConfig { return c.cfg }

// SetCatalog swaps the move catalog, clearing any active combo.
func (c *Combo) SetCatalog(catalog MoveCatalog) {
	c.Reset()
	c.catalog = catalog
}

func (c *Combo) resolve(id MoveID) (Move, bool) {
	if c.catalog == nil {
		log.Printf("combat: no move catalog, move %d unresolved", id)
		return Move{}, false
	}
	mv, ok := c.catalog.Move(id)
	if !ok {
		log.Printf("combat: unknown move %d", id)
	}
	return mv, ok
}

// Trigger attacks towards dir. It reports whether a move was executed.
func (c *Combo) Trigger(dir common.Direction) bool {
	next := c.cfg.InitialMove
	if c.state != nil {
		if c.state.elapsed < c.state.move.Cooldown {
			return false
		}
		if c.state.move.HasNext {
			next = c.state.move.Next
		}
	}
	mv, ok := c.resolve(next)
	if !ok {
		c.state = nil
		return false
	}
	if c.exec != nil {
		c.exec.Execute(mv, dir)
	}
	c.state = &comboState{move: mv}
	return true
}

func (c *Combo) Tick(delta time.Duration) {
	if c.state == nil || delta <= 0 {
		return
	}
	c.state.elapsed += delta
	if c.state.elapsed > c.state.move.Cooldown+c.cfg.ChainWindow {
		c.state = nil
	}
}

// Reset drops the combo and cancels the active move.
func (c *Combo) Reset() {
	if c.state == nil {
		return
	}
	id := c.state.move.ID
	c.state = nil
	if c.exec != nil {
		c.exec.Cancel(id)
	}
}

func (c *Combo) IsActive() bool { return c.state != nil }

// Current returns the id of the move the combo is on.
func (c *Combo) Current() (MoveID, bool) {
	if c.state == nil {
		return 0, false
	}
	return c.state.move.ID, true
}

func (c *Combo) Elapsed() time.Duration {
	if c.state == nil {
		return 0
	}
	return c.state.elapsed
}

// Velocity holds the actor to WalkSpeed while a combo is active.
func (c *Combo) Velocity(facing common.Direction) (cp.Vector, bool) {
	if c.state == nil {
		return cp.Vector{}, false
	}
	return facing.Vector().Mult(c.cfg.WalkSpeed), true
}
