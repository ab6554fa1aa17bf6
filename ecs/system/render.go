package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// RenderSystem draws the arena with primitives. World space is +Y up; the
// screen is flipped against Height.
type RenderSystem struct {
	Bounds common.Rect
	Height float64
}

func NewRenderSystem(bounds common.Rect, height float64) *RenderSystem {
	return &RenderSystem{Bounds: bounds, Height: height}
}

// Update is a no-op; the system only draws.
func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) screen(p cp.Vector) (float32, float32) {
	return float32(p.X), float32(r.Height - p.Y)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	minP := r.Bounds.Min()
	x, y := r.screen(cp.Vector{X: minP.X, Y: r.Bounds.Max().Y})
	vector.StrokeRect(screen, x, y, float32(r.Bounds.Dim.X), float32(r.Bounds.Dim.Y), 2, colornames.Slategray, false)

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.ColorComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, b *component.Body, c *component.Color) {
			fill := c.Fill
			if fill == nil {
				fill = color.White
			}
			if ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
				fill = color.White
			}
			cx, cy := r.screen(t.Pos)
			vector.DrawFilledCircle(screen, cx, cy, float32(b.Radius), fill, true)

			if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok && enemy.Health != nil {
				r.drawBar(screen, t.Pos, b.Radius, enemy.Health.HP()/enemy.Health.MaxHP())
			}
		})

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
		if a.Arbiter != nil {
			r.drawActor(screen, a.Arbiter, t.Pos)
		}
	})
}

func (r *RenderSystem) drawBar(screen *ebiten.Image, pos cp.Vector, radius, frac float64) {
	frac = common.Clamp(frac, 0, 1)
	x, y := r.screen(pos.Add(cp.Vector{X: -radius, Y: radius + 6}))
	width := float32(radius * 2)
	vector.DrawFilledRect(screen, x, y, width, 3, colornames.Darkred, false)
	vector.DrawFilledRect(screen, x, y, width*float32(frac), 3, colornames.Limegreen, false)
}

func (r *RenderSystem) drawActor(screen *ebiten.Image, a *combat.Arbiter, pos cp.Vector) {
	px, py := r.screen(pos)
	if a.Health().IsInvincible() {
		vector.StrokeCircle(screen, px, py, 16, 1, colornames.Lightcyan, true)
	}

	facing := pos.Add(a.Facing().Vector().Mult(18))
	fx, fy := r.screen(facing)
	vector.StrokeLine(screen, px, py, fx, fy, 2, colornames.White, true)

	if target, ok := a.Aim().Target(); ok && a.Aim().IsAiming() {
		r.drawAim(screen, pos, target, a.Aim().Spread(), a.Aim().IsFullyCharged())
	}

	if v, ok := a.HitVolumes().Active(); ok && v.Animating() {
		cx, cy := r.screen(v.Center(pos))
		clr := colornames.Lightsalmon
		if v.CanHit() {
			clr = colornames.Tomato
		}
		vector.StrokeCircle(screen, cx, cy, float32(v.Move.Radius), 2, clr, true)
	}
}

// drawAim draws the two edges of the spread cone.
func (r *RenderSystem) drawAim(screen *ebiten.Image, from, target cp.Vector, spread float64, charged bool) {
	ideal := target.Sub(from)
	if ideal.LengthSq() == 0 {
		return
	}
	length := math.Min(ideal.Length(), 200)
	dir := ideal.Normalize()
	clr := colornames.Khaki
	if charged {
		clr = colornames.Orange
	}
	px, py := r.screen(from)
	for _, sign := range []float64{-1, 1} {
		edge := from.Add(dir.Rotate(cp.ForAngle(sign * spread)).Mult(length))
		ex, ey := r.screen(edge)
		vector.StrokeLine(screen, px, py, ex, ey, 1, clr, true)
	}
}
