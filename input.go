package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
)

type steerBinding struct {
	keys  []ebiten.Key
	steer combat.SteerKey
}

var steerBindings = []steerBinding{
	{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, steer: combat.SteerUp},
	{keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, steer: combat.SteerDown},
	{keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, steer: combat.SteerLeft},
	{keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, steer: combat.SteerRight},
}

var craftKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Input translates keyboard and mouse edges into arbiter commands. Screen
// space is +Y down; the arena is +Y up.
type Input struct {
	height float64
	held   [combat.SteerRight + 1]bool
}

func NewInput(height float64) *Input {
	return &Input{height: height}
}

func (in *Input) cursor() cp.Vector {
	x, y := ebiten.CursorPosition()
	return cp.Vector{X: float64(x), Y: in.height - float64(y)}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Resync rebuilds the facing from the keys held right now, for when edges
// were missed while paused or between runs.
func (in *Input) Resync(arb *combat.Arbiter) {
	arb.SetFacing(common.Neutral)
	for _, b := range steerBindings {
		in.held[b.steer] = anyPressed(b.keys)
		if in.held[b.steer] {
			arb.Steer(b.steer, true)
		}
	}
}

func (in *Input) Update(g *Game) {
	arb := g.arbiter

	for _, b := range steerBindings {
		down := anyPressed(b.keys)
		if down != in.held[b.steer] {
			in.held[b.steer] = down
			arb.Steer(b.steer, down)
		}
	}

	point := in.cursor()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		arb.Primary(point)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		arb.UpdateTarget(point)
		arb.ReleasePrimary()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		arb.UpdateTarget(point)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		arb.TriggerDash()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.useItem()
	}
	for i, k := range craftKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.craft(i)
		}
	}
}
