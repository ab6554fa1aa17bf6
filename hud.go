package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/arena/ecs"
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	director := g.encounter.Director()
	if wave, ok := director.Wave(); ok {
		fmt.Fprintf(&b, "%s  %s  enemies left %d\n", wave, director.Phase(), director.Pending())
	} else {
		fmt.Fprintf(&b, "%s\n", director.Phase())
	}

	h := g.arbiter.Health()
	fmt.Fprintf(&b, "hp %.0f/%.0f  facing %s", h.HP(), h.MaxHP(), g.arbiter.Facing())
	if d := g.arbiter.Dash(); d.IsDashing() {
		fmt.Fprintf(&b, "  dash %d/%d", d.Count(), d.Config().Chain)
	}
	if id, ok := g.arbiter.Combo().Current(); ok {
		if m, ok := g.tuning.Moves.Move(id); ok {
			fmt.Fprintf(&b, "  %s", m.Name)
		}
	}
	b.WriteString("\n")

	for _, s := range g.inventory.Stacks() {
		fmt.Fprintf(&b, "%s  ", s)
	}
	b.WriteString("\n")

	if a, ok := g.actor(); ok && a.NearForge {
		for i, r := range g.tuning.Recipes {
			if i >= len(craftKeys) {
				break
			}
			fmt.Fprintf(&b, "[%d] %s\n", i+1, r.Name)
		}
	}
	if g.noticeFor > 0 {
		b.WriteString(g.notice + "\n")
	}
	if g.opts.Debug {
		fmt.Fprintf(&b, "tps %.1f  fps %.1f  entities %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), len(ecs.Entities(g.world)))
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 4)
}
