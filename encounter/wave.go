package encounter

import (
	"fmt"
	"time"
)

// Wave is one round of opponents. Index counts from zero.
type Wave struct {
	Index int
	Start time.Time
}

func InitialWave(now time.Time) Wave {
	return Wave{Index: 0, Start: now}
}

func (w Wave) Successor(now time.Time) Wave {
	return Wave{Index: w.Index + 1, Start: now}
}

// Number is the 1-based wave number shown to players and used for drops.
func (w Wave) Number() int { return w.Index + 1 }

func (w Wave) String() string { return fmt.Sprintf("wave %d", w.Number()) }
