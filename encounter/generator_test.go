package encounter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/arena/common"
)

var arena = common.NewRect(40, 40, 944, 520)

func catalogOf(t *testing.T, templates ...EnemyTemplate) *Catalog {
	t.Helper()
	c, err := NewCatalog(templates...)
	require.NoError(t, err)
	return c
}

func TestLinearBudget(t *testing.T) {
	b := DefaultBudget()
	for wave := 0; wave < 10; wave++ {
		assert.Equal(t, float64(2*wave+1), b.Points(wave))
	}
}

func TestWaveNumbering(t *testing.T) {
	now := time.Unix(100, 0)
	w := InitialWave(now)
	assert.Equal(t, 0, w.Index)
	assert.Equal(t, 1, w.Number())
	next := w.Successor(now.Add(time.Minute))
	assert.Equal(t, 1, next.Index)
	assert.Equal(t, now.Add(time.Minute), next.Start)
	assert.Equal(t, "wave 2", next.String())
}

func TestGenerateFirstWaveSingleSpawn(t *testing.T) {
	g := NewGenerator(nil, common.NewRand(12345))
	c := catalogOf(t, EnemyTemplate{ID: 1, Name: "grunt", Cost: 1})
	spawns := g.Generate(Wave{Index: 0}, c, arena)
	require.Len(t, spawns, 1)
	assert.Equal(t, TemplateID(1), spawns[0].Template.ID)
	assert.True(t, arena.Contains(spawns[0].Position))
}

func TestGenerateTooExpensiveYieldsEmpty(t *testing.T) {
	g := NewGenerator(nil, common.NewRand(12345))
	c := catalogOf(t, EnemyTemplate{ID: 1, Name: "brute", Cost: 10})
	assert.Empty(t, g.Generate(Wave{Index: 3}, c, arena))
}

func TestGenerateRespectsAvailability(t *testing.T) {
	g := NewGenerator(nil, common.NewRand(7))
	c := catalogOf(t,
		EnemyTemplate{ID: 1, Name: "grunt", Cost: 1},
		EnemyTemplate{ID: 2, Name: "elite", Cost: 1, AvailableFrom: 5},
	)
	for i := 0; i < 20; i++ {
		for _, s := range g.Generate(Wave{Index: 4}, c, arena) {
			assert.Equal(t, TemplateID(1), s.Template.ID)
		}
	}
	assert.Empty(t, g.Generate(Wave{Index: 0}, catalogOf(t, EnemyTemplate{ID: 2, Cost: 1, AvailableFrom: 1}), arena))
}

func TestGenerateSingleOvershootBound(t *testing.T) {
	c := catalogOf(t,
		EnemyTemplate{ID: 1, Cost: 1},
		EnemyTemplate{ID: 2, Cost: 2.5},
		EnemyTemplate{ID: 3, Cost: 4},
	)
	budget := DefaultBudget()
	for seed := uint64(0); seed < 50; seed++ {
		g := NewGenerator(budget, common.NewRand(seed))
		for wave := 0; wave < 8; wave++ {
			spawns := g.Generate(Wave{Index: wave}, c, arena)
			points := budget.Points(wave)
			total := Cost(spawns)
			require.NotEmpty(t, spawns)
			last := spawns[len(spawns)-1].Template.Cost
			assert.GreaterOrEqual(t, total, points, "budget spent")
			assert.Less(t, total-last, points, "only the last pick may overshoot")
			for _, s := range spawns {
				assert.True(t, arena.Contains(s.Position))
			}
		}
	}
}

func TestGenerateExclusions(t *testing.T) {
	c := catalogOf(t,
		EnemyTemplate{ID: 1, Cost: 1, Exclusions: []TemplateID{2}},
		EnemyTemplate{ID: 2, Cost: 1},
	)
	for seed := uint64(0); seed < 30; seed++ {
		g := NewGenerator(nil, common.NewRand(seed))
		spawns := g.Generate(Wave{Index: 5}, c, arena)
		seen := map[TemplateID]bool{}
		for _, s := range spawns {
			seen[s.Template.ID] = true
		}
		assert.False(t, seen[1] && seen[2], "seed %d mixed excluded templates", seed)
		assert.Len(t, spawns, 11)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	c := catalogOf(t, EnemyTemplate{ID: 1, Cost: 1}, EnemyTemplate{ID: 2, Cost: 2})
	a := NewGenerator(nil, common.NewRand(42)).Generate(Wave{Index: 6}, c, arena)
	b := NewGenerator(nil, common.NewRand(42)).Generate(Wave{Index: 6}, c, arena)
	assert.Equal(t, a, b)
}

func TestCatalogValidation(t *testing.T) {
	_, err := NewCatalog(EnemyTemplate{ID: 1, Cost: 1}, EnemyTemplate{ID: 1, Cost: 2})
	assert.ErrorIs(t, err, ErrDuplicateTemplate)
	_, err = NewCatalog(EnemyTemplate{ID: 1})
	assert.ErrorIs(t, err, ErrInvalidCost)

	c := catalogOf(t, EnemyTemplate{ID: 3, Cost: 1}, EnemyTemplate{ID: 1, Cost: 1})
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, TemplateID(1), all[0].ID)
	_, ok := c.Get(9)
	assert.False(t, ok)
}

func TestScriptBudget(t *testing.T) {
	b, err := NewScriptBudget([]byte(`points = wave * wave + 1`), nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Points(0))
	assert.Equal(t, 10.0, b.Points(3))

	b, err = NewScriptBudget([]byte(`points = 10 / (wave - wave)`), DefaultBudget())
	require.NoError(t, err)
	assert.Equal(t, 5.0, b.Points(2), "runtime error falls back")

	b, err = NewScriptBudget([]byte(`points = 10 / (wave - 2)`), DefaultBudget())
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		assert.Equal(t, 5.0, b.Points(2), "divide by zero falls back")
	})
	assert.Equal(t, 10.0, b.Points(3))

	b, err = NewScriptBudget([]byte(`points = 1.0 / 0.0`), DefaultBudget())
	require.NoError(t, err)
	assert.Equal(t, 7.0, b.Points(3), "infinite budget falls back")

	_, err = NewScriptBudget([]byte(`points = (`), nil)
	assert.Error(t, err)
}

type fixedBudget float64

func (b fixedBudget) Points(int) float64 { return float64(b) }

func TestGenerateBoundedBudgets(t *testing.T) {
	c := catalogOf(t, EnemyTemplate{ID: 1, Name: "grunt", Cost: 1})
	area := common.NewRect(0, 0, 100, 100)

	for _, budget := range []float64{math.Inf(1), math.NaN()} {
		g := NewGenerator(fixedBudget(budget), common.NewRand(1))
		assert.Empty(t, g.Generate(InitialWave(time.Time{}), c, area), "budget %v", budget)
	}

	g := NewGenerator(fixedBudget(1e9), common.NewRand(1))
	assert.Len(t, g.Generate(InitialWave(time.Time{}), c, area), MaxSpawnsPerWave)
}
