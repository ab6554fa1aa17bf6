package items

import "github.com/milk9111/arena/common"

// Drop yields a stack of Item whose size grows with the wave number:
// uniform in [wave + Min*(wave-1), Max*wave).
type Drop struct {
	Item Item
	Min  int
	Max  int
}

// Roll draws a stack for the 1-based wave number.
func (d Drop) Roll(wave int, rng common.Rand) Stack {
	if wave < 1 {
		wave = 1
	}
	lo := wave + d.Min*(wave-1)
	hi := d.Max * wave
	count := lo
	if hi > lo {
		count = lo + rng.IntN(hi-lo)
	}
	return Stack{Item: d.Item, Count: count}
}

// WeightedDrop is a Drop with its relative chance inside a group.
type WeightedDrop struct {
	Drop   Drop
	Chance float64
}

// DropGroup picks one of its drops by weight.
type DropGroup []WeightedDrop

func (g DropGroup) Roll(wave int, rng common.Rand) (Stack, bool) {
	var sum float64
	for _, d := range g {
		if d.Chance > 0 {
			sum += d.Chance
		}
	}
	if sum <= 0 {
		return Stack{}, false
	}
	bucket := rng.Float64() * sum
	last := -1
	for i, d := range g {
		if d.Chance <= 0 {
			continue
		}
		last = i
		if bucket < d.Chance {
			return d.Drop.Roll(wave, rng), true
		}
		bucket -= d.Chance
	}
	// rounding can leave a sliver of bucket past the final weight
	return g[last].Drop.Roll(wave, rng), true
}

// GroupRoll rolls Group Count times.
type GroupRoll struct {
	Group DropGroup
	Count int
}

// DropTable is the full reward definition of an enemy.
type DropTable []GroupRoll

// Generate rolls every group and returns the non-empty stacks.
func (t DropTable) Generate(wave int, rng common.Rand) []Stack {
	var out []Stack
	for _, gr := range t {
		for i := 0; i < gr.Count; i++ {
			if s, ok := gr.Group.Roll(wave, rng); ok && s.Count > 0 {
				out = append(out, s)
			}
		}
	}
	return out
}
