package combat

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/arena/common"
)

func testAim(mod func(*AimConfig)) *Aim {
	cfg := DefaultAimConfig()
	if mod != nil {
		mod(&cfg)
	}
	return NewAim(cfg, common.NewRand(12345))
}

func TestAimStageTransitions(t *testing.T) {
	a := testAim(nil)
	assert.Equal(t, AimIdle, a.Stage())

	a.BeginAim(cp.Vector{X: 100})
	assert.Equal(t, AimWarmingUp, a.Stage())
	assert.Equal(t, 3*time.Second, a.Remaining())

	a.Tick(time.Second)
	a.UpdateTarget(cp.Vector{Y: 100})
	assert.Equal(t, 2*time.Second, a.Remaining(), "retargeting keeps the timer")
	target, ok := a.Target()
	require.True(t, ok)
	assert.Equal(t, cp.Vector{Y: 100}, target)

	_, fired := a.Fire(cp.Vector{}, 10)
	require.True(t, fired)
	assert.Equal(t, AimCoolingDown, a.Stage())

	a.Tick(50 * time.Millisecond)
	assert.Equal(t, AimCoolingDown, a.Stage())
	a.Tick(50 * time.Millisecond)
	assert.Equal(t, AimIdle, a.Stage())
}

func TestAimTimerClampsAtZero(t *testing.T) {
	a := testAim(nil)
	a.BeginAim(cp.Vector{X: 1})
	a.Tick(10 * time.Second)
	assert.Equal(t, time.Duration(0), a.Remaining())
	assert.Equal(t, 0.0, a.Spread())
}

func TestAimSpreadNonIncreasing(t *testing.T) {
	a := testAim(nil)
	a.BeginAim(cp.Vector{X: 1})
	prev := a.Spread()
	assert.InDelta(t, math.Pi/2, prev, 1e-12)
	for i := 0; i < 40; i++ {
		a.Tick(100 * time.Millisecond)
		s := a.Spread()
		assert.LessOrEqual(t, s, prev)
		prev = s
	}
}

func TestAimFullyAccurateShot(t *testing.T) {
	a := testAim(nil)
	from := cp.Vector{X: 10, Y: 10}
	a.BeginAim(cp.Vector{X: 10, Y: 110})
	a.Tick(3 * time.Second)

	intent, ok := a.Fire(from, 12)
	require.True(t, ok)
	assert.InDelta(t, 0, intent.Direction.X, 1e-9)
	assert.InDelta(t, 1, intent.Direction.Y, 1e-9)
	assert.InDelta(t, 10, intent.Origin.X, 1e-9)
	assert.InDelta(t, 30, intent.Origin.Y, 1e-9)
	assert.Equal(t, 12.0, intent.Damage)
}

func TestAimSnapShotWithinSpread(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := NewAim(DefaultAimConfig(), common.NewRand(uint64(i)))
		a.BeginAim(cp.Vector{X: 100})
		a.Tick(1500 * time.Millisecond)
		spread := a.Spread()

		intent, ok := a.Fire(cp.Vector{}, 10)
		require.True(t, ok)
		off := math.Abs(intent.Direction.ToAngle())
		assert.LessOrEqual(t, off, spread+1e-9)
		assert.InDelta(t, 1, intent.Direction.Length(), 1e-9)
	}
}

func TestAimFireOutsideWarmUpIgnored(t *testing.T) {
	a := testAim(nil)
	_, ok := a.Fire(cp.Vector{}, 10)
	assert.False(t, ok)

	a.BeginAim(cp.Vector{X: 1})
	_, ok = a.Fire(cp.Vector{}, 10)
	require.True(t, ok)
	_, ok = a.Fire(cp.Vector{}, 10)
	assert.False(t, ok, "second fire during cooldown")
}

func TestAimHotStart(t *testing.T) {
	a := testAim(nil)
	a.BeginAim(cp.Vector{X: 1})
	a.Tick(2 * time.Second)
	_, ok := a.Fire(cp.Vector{}, 10)
	require.True(t, ok)

	a.BeginAim(cp.Vector{X: 2})
	assert.Equal(t, AimWarmingUp, a.Stage())
	assert.Equal(t, 1100*time.Millisecond, a.Remaining())

	// a second hot start near the cap never exceeds the maximum
	b := testAim(func(c *AimConfig) { c.MinAimTime = time.Second })
	b.BeginAim(cp.Vector{X: 1})
	b.Tick(500 * time.Millisecond)
	b.Fire(cp.Vector{}, 10)
	b.BeginAim(cp.Vector{X: 1})
	assert.Equal(t, 3*time.Second, b.Remaining())
}

func TestAimCancel(t *testing.T) {
	a := testAim(nil)
	a.BeginAim(cp.Vector{X: 1})
	a.Cancel()
	assert.Equal(t, AimIdle, a.Stage())
	_, ok := a.Fire(cp.Vector{}, 10)
	assert.False(t, ok)
}

func TestAimCharged(t *testing.T) {
	a := testAim(func(c *AimConfig) {
		c.ChargeTime = 300 * time.Millisecond
		c.ChargedProjectile = "charged"
	})
	require.NoError(t, a.LoadCache(stubProjectiles{"bullet": 1, "charged": 2}))

	a.BeginAim(cp.Vector{X: 1})
	a.Tick(200 * time.Millisecond)
	assert.False(t, a.IsFullyCharged())
	a.Tick(100 * time.Millisecond)
	assert.True(t, a.IsFullyCharged())

	intent, ok := a.Fire(cp.Vector{}, 10)
	require.True(t, ok)
	assert.True(t, intent.Charged)
	assert.Equal(t, ProjectileID(2), intent.Projectile)

	a.Tick(time.Second)
	a.BeginAim(cp.Vector{X: 1})
	intent, ok = a.Fire(cp.Vector{}, 10)
	require.True(t, ok)
	assert.False(t, intent.Charged)
	assert.Equal(t, ProjectileID(1), intent.Projectile)
}

func TestAimCacheFailureDisables(t *testing.T) {
	a := testAim(nil)
	err := a.LoadCache(stubProjectiles{})
	require.Error(t, err)
	assert.True(t, a.Disabled())

	a.BeginAim(cp.Vector{X: 1})
	assert.Equal(t, AimIdle, a.Stage())
}

func TestAimVelocity(t *testing.T) {
	a := testAim(nil)
	_, ok := a.Velocity(common.Right)
	assert.False(t, ok)
	a.BeginAim(cp.Vector{X: 1})
	v, ok := a.Velocity(common.Right)
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 20}, v)
}

type stubProjectiles map[string]ProjectileID

func (s stubProjectiles) ResolveProjectile(name string) (ProjectileID, error) {
	id, ok := s[name]
	if !ok {
		return 0, errors.New("unknown projectile " + name)
	}
	return id, nil
}
