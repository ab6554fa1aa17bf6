package combat

import (
	"fmt"
	"sort"
	"time"

	"github.com/milk9111/arena/common"
)

// MoveID identifies a combo move in a MoveCatalog.
type MoveID int

// Move is one attack in a combo chain.
type Move struct {
	ID   MoveID
	Name string

	Cooldown          time.Duration
	HitDuration       time.Duration
	AnimationDuration time.Duration

	// Next is followed when the move chains; HasNext false wraps to the
	// initial move.
	Next    MoveID
	HasNext bool

	Damage  float64
	MaxHits int
	Targets common.Group
	// Reach is the distance from the attacker to the center of the hit
	// circle and Radius its size.
	Reach  float64
	Radius float64
}

// DefaultMove returns a move with the stock timings.
func DefaultMove(id MoveID) Move {
	return Move{
		ID:                id,
		Cooldown:          500 * time.Millisecond,
		HitDuration:       300 * time.Millisecond,
		AnimationDuration: 500 * time.Millisecond,
		Damage:            10,
		MaxHits:           1,
		Targets:           common.GroupEnemy,
		Reach:             24,
		Radius:            18,
	}
}

// MoveCatalog resolves move ids.
type MoveCatalog interface {
	Move(id MoveID) (Move, bool)
}

// Moves is a MoveCatalog backed by a map.
type Moves map[MoveID]Move

func (m Moves) Move(id MoveID) (Move, bool) {
	mv, ok := m[id]
	return mv, ok
}

// NewMoves builds a catalog and checks that every Next link resolves.
func NewMoves(moves ...Move) (Moves, error) {
	out := make(Moves, len(moves))
	for _, mv := range moves {
		if _, dup := out[mv.ID]; dup {
			return nil, fmt.Errorf("combat: duplicate move id %d", mv.ID)
		}
		out[mv.ID] = mv
	}
	for _, mv := range out {
		if mv.HasNext {
			if _, ok := out[mv.Next]; !ok {
				return nil, fmt.Errorf("combat: move %d links to unknown move %d", mv.ID, mv.Next)
			}
		}
	}
	return out, nil
}

// IDs returns the catalog ids in ascending order.
func (m Moves) IDs() []MoveID {
	ids := make([]MoveID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MoveExecutor carries out moves picked by a Combo.
type MoveExecutor interface {
	Execute(m Move, dir common.Direction)
	Cancel(id MoveID)
}
