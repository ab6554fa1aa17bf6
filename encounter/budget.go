package encounter

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Budget gives the point allowance of a wave index.
type Budget interface {
	Points(wave int) float64
}

// LinearBudget is Slope*wave + Intercept.
type LinearBudget struct {
	Slope     float64
	Intercept float64
}

// DefaultBudget is 2*wave + 1.
func DefaultBudget() LinearBudget {
	return LinearBudget{Slope: 2, Intercept: 1}
}

func (b LinearBudget) Points(wave int) float64 {
	return b.Slope*float64(wave) + b.Intercept
}

// ScriptBudget evaluates a tengo script per wave. The script reads `wave`
// and must assign `points`. Any runtime failure falls back to Fallback.
type ScriptBudget struct {
	compiled *tengo.Compiled
	Fallback Budget
}

// NewScriptBudget compiles src once.
func NewScriptBudget(src []byte, fallback Budget) (*ScriptBudget, error) {
	if fallback == nil {
		fallback = DefaultBudget()
	}
	script := tengo.NewScript(src)
	_ = script.Add("wave", 0)
	_ = script.Add("points", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("encounter: compile budget script: %w", err)
	}
	return &ScriptBudget{compiled: compiled, Fallback: fallback}, nil
}

// Points runs the script for wave. Runtime errors, panics inside the VM and
// results that are not finite all fall back.
func (b *ScriptBudget) Points(wave int) (pts float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("encounter: budget script panicked at wave %d: %v", wave, r)
			pts = b.Fallback.Points(wave)
		}
	}()
	c := b.compiled.Clone()
	if err := c.Set("wave", wave); err != nil {
		log.Printf("encounter: budget script: %v", err)
		return b.Fallback.Points(wave)
	}
	if err := c.Run(); err != nil {
		log.Printf("encounter: budget script: %v", err)
		return b.Fallback.Points(wave)
	}
	v := c.Get("points")
	if v == nil || v.IsUndefined() {
		log.Printf("encounter: budget script left points undefined at wave %d", wave)
		return b.Fallback.Points(wave)
	}
	pts = v.Float()
	if math.IsNaN(pts) || math.IsInf(pts, 0) {
		log.Printf("encounter: budget script returned %v at wave %d", pts, wave)
		return b.Fallback.Points(wave)
	}
	return pts
}
