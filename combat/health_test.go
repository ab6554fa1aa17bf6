package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthDamageSequence(t *testing.T) {
	h := NewHealth(HealthConfig{MaxHP: 100})
	deaths := 0
	h.OnDeath = func(*Health) { deaths++ }

	assert.Equal(t, 100.0, h.HP())
	assert.Equal(t, 70.0, h.ApplyDamage(30))
	assert.Equal(t, 40.0, h.ApplyDamage(30))
	assert.Equal(t, 0, deaths)
	assert.False(t, h.IsDead())

	assert.Equal(t, 0.0, h.ApplyDamage(50))
	assert.Equal(t, 1, deaths)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.HP())

	assert.Equal(t, 0.0, h.ApplyDamage(50))
	assert.Equal(t, 1, deaths, "death must be signaled once")
}

func TestHealthInvincibility(t *testing.T) {
	h := NewHealth(HealthConfig{MaxHP: 50})
	h.SetInvincible(100 * time.Millisecond)
	require.True(t, h.IsInvincible())

	assert.Equal(t, 50.0, h.ApplyDamage(20))

	h.Tick(60 * time.Millisecond)
	assert.Equal(t, 40*time.Millisecond, h.Invincibility())
	assert.Equal(t, 50.0, h.ApplyDamage(20))

	h.Tick(time.Second)
	assert.Equal(t, time.Duration(0), h.Invincibility())
	assert.False(t, h.IsInvincible())
	assert.Equal(t, 30.0, h.ApplyDamage(20))
}

func TestHealthInitResetsAlive(t *testing.T) {
	h := NewHealth(HealthConfig{MaxHP: 10})
	h.ApplyDamage(4)
	h.SetInvincible(time.Second)
	h.Init(20)
	assert.Equal(t, 20.0, h.HP())
	assert.Equal(t, 20.0, h.MaxHP())
	assert.False(t, h.IsInvincible())

	h.ApplyDamage(25)
	require.True(t, h.IsDead())
	h.Init(20)
	assert.True(t, h.IsDead(), "death is terminal")
}

func TestHealthHealAndBumpMax(t *testing.T) {
	h := NewHealth(HealthConfig{MaxHP: 100})
	h.ApplyDamage(30)
	h.Heal(10)
	assert.Equal(t, 80.0, h.HP())
	h.Heal(100)
	assert.Equal(t, 100.0, h.HP())

	h.BumpMax(10)
	assert.Equal(t, 110.0, h.MaxHP())
	assert.Equal(t, 110.0, h.HP())
}

func TestHealthOnDamageReportsHP(t *testing.T) {
	h := NewHealth(HealthConfig{MaxHP: 100})
	var seen []float64
	h.OnDamage = func(h *Health, _ float64) { seen = append(seen, h.HP()) }
	h.ApplyDamage(25)
	h.SetInvincible(time.Second)
	h.ApplyDamage(25)
	assert.Equal(t, []float64{75}, seen)
}
