package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRectSampleStaysInside(t *testing.T) {
	r := NewRect(40, 40, 944, 520)
	rng := NewRand(12345)
	for i := 0; i < 1000; i++ {
		p := r.Sample(rng)
		assert.True(t, r.Contains(p), "sample %v outside %v", p, r)
	}
}

func TestParseGroups(t *testing.T) {
	g, unknown := ParseGroups([]string{"enemy", " Player ", "ghost"})
	assert.Equal(t, GroupEnemy|GroupPlayer, g)
	assert.Equal(t, []string{"ghost"}, unknown)
	assert.True(t, g.Has(GroupEnemy))
	assert.False(t, g.Has(GroupProjectile))
	assert.Equal(t, "player|enemy", g.String())
}

func TestClampAndRatio(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, time.Duration(0), ClampDuration(-time.Second, time.Second))
	assert.Equal(t, time.Second, ClampDuration(2*time.Second, time.Second))
	assert.Equal(t, 0.5, Ratio(time.Second, 2*time.Second))
	assert.Equal(t, 0.0, Ratio(time.Second, 0))
}
