package combat

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/arena/common"
)

func TestDashPhases(t *testing.T) {
	d := NewDash(DefaultDashConfig())
	assert.False(t, d.IsDashing())
	_, ok := d.Tick(time.Millisecond, common.Left)
	assert.False(t, ok)

	assert.Equal(t, DashStarted, d.Trigger(common.Right))
	require.True(t, d.IsDashing())

	v, ok := d.Tick(100*time.Millisecond, common.Left)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 500}, v)

	v, ok = d.Tick(100*time.Millisecond, common.Left)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 500}, v, "elapsed == duration is still fast")

	v, ok = d.Tick(30*time.Millisecond, common.Left)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: -15}, v, "tail follows facing")

	_, ok = d.Tick(30*time.Millisecond, common.Left)
	assert.False(t, ok)
	assert.False(t, d.IsDashing())
}

func TestDashChainNeverExceedsMax(t *testing.T) {
	cfg := DefaultDashConfig()
	d := NewDash(cfg)

	assert.Equal(t, DashStarted, d.Trigger(common.Up))
	for i := 1; i <= cfg.Chain; i++ {
		d.Tick(50*time.Millisecond, common.Up)
		assert.Equal(t, DashChained, d.Trigger(common.Left))
		assert.Equal(t, i, d.Count())
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, DashOverdraft, d.Trigger(common.Down))
		assert.Equal(t, cfg.Chain, d.Count())
	}
}

func TestDashChainResetsElapsedAndRedirects(t *testing.T) {
	d := NewDash(DefaultDashConfig())
	d.Trigger(common.Right)
	d.Tick(180*time.Millisecond, common.Neutral)
	d.Trigger(common.Up)
	assert.Equal(t, common.Up, d.Direction())

	v, ok := d.Tick(180*time.Millisecond, common.Neutral)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{Y: 500}, v)
}

func TestDashOverdraftReplaysTail(t *testing.T) {
	cfg := DefaultDashConfig()
	cfg.Chain = 0
	d := NewDash(cfg)
	d.Trigger(common.Right)
	d.Tick(10*time.Millisecond, common.Up)

	assert.Equal(t, DashOverdraft, d.Trigger(common.Right))
	v, ok := d.Tick(10*time.Millisecond, common.Up)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{Y: 15}, v, "overdraft never returns to dash speed")

	v, ok = d.Tick(230*time.Millisecond, common.Up)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{Y: 15}, v)

	_, ok = d.Tick(20*time.Millisecond, common.Up)
	assert.False(t, ok)
}

func TestDashVelocityDoesNotAdvance(t *testing.T) {
	d := NewDash(DefaultDashConfig())
	d.Trigger(common.Down)
	for i := 0; i < 3; i++ {
		v, ok := d.Velocity(common.Up)
		require.True(t, ok)
		assert.Equal(t, cp.Vector{Y: -500}, v)
	}
	assert.Equal(t, 100*time.Millisecond, d.InvincibilityWindow())
}
