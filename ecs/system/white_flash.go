package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

type WhiteFlashSystem struct{}

func NewWhiteFlashSystem() *WhiteFlashSystem { return &WhiteFlashSystem{} }

func (s *WhiteFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	delta := w.Delta()
	ecs.ForEach(w, component.WhiteFlashComponent.Kind(), func(e ecs.Entity, f *component.WhiteFlash) {
		if f.Remaining > delta {
			f.Remaining -= delta
			return
		}
		ecs.Remove(w, e, component.WhiteFlashComponent.Kind())
	})
}
