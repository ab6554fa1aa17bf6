package encounter

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/common"
)

// MaxSpawnsPerWave bounds a single wave no matter how large its budget is.
const MaxSpawnsPerWave = 256

// SpawnDescriptor asks the spawner for one enemy at Position.
type SpawnDescriptor struct {
	Template EnemyTemplate
	Position cp.Vector
}

// Generator turns a wave's point budget into spawn descriptors.
type Generator struct {
	Budget Budget
	rng    common.Rand
}

func NewGenerator(budget Budget, rng common.Rand) *Generator {
	if budget == nil {
		budget = DefaultBudget()
	}
	if rng == nil {
		rng = common.NewRand(1)
	}
	return &Generator{Budget: budget, rng: rng}
}

// Generate picks templates uniformly from the ones eligible at the wave
// until the budget is spent. A template is eligible when it is available at
// the wave index and its cost fits the whole wave budget; the last pick may
// still overshoot what is left. Picking a template drops everything it
// excludes, and everything excluding it, from the rest of the wave.
func (g *Generator) Generate(wave Wave, catalog *Catalog, area common.Rect) []SpawnDescriptor {
	budget := g.Budget.Points(wave.Index)
	if math.IsNaN(budget) || math.IsInf(budget, 0) {
		log.Printf("encounter: warning: budget %v for %s, skipping wave", budget, wave)
		return nil
	}
	remaining := budget
	var eligible []EnemyTemplate
	for _, t := range catalog.Eligible(wave.Index) {
		if t.Cost <= budget {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		log.Printf("encounter: warning: no templates available for %s", wave)
		return nil
	}

	var out []SpawnDescriptor
	for remaining > 0 && len(eligible) > 0 {
		if len(out) == MaxSpawnsPerWave {
			log.Printf("encounter: warning: %s capped at %d spawns", wave, MaxSpawnsPerWave)
			break
		}
		t := eligible[g.rng.IntN(len(eligible))]
		remaining -= t.Cost
		out = append(out, SpawnDescriptor{Template: t, Position: area.Sample(g.rng)})
		eligible = prune(eligible, t)
	}
	return out
}

func prune(eligible []EnemyTemplate, picked EnemyTemplate) []EnemyTemplate {
	if len(picked.Exclusions) == 0 {
		hit := false
		for _, t := range eligible {
			if t.excludes(picked.ID) {
				hit = true
				break
			}
		}
		if !hit {
			return eligible
		}
	}
	out := make([]EnemyTemplate, 0, len(eligible))
	for _, t := range eligible {
		if t.ID != picked.ID && (picked.excludes(t.ID) || t.excludes(picked.ID)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Cost sums the template costs of descriptors.
func Cost(spawns []SpawnDescriptor) float64 {
	var sum float64
	for _, s := range spawns {
		sum += s.Template.Cost
	}
	return sum
}
