package component

import "github.com/jakecoffman/cp"

// Body links an entity to its physics body. Velocity is written by the
// controlling system each frame before the space steps.
type Body struct {
	Radius   float64
	Velocity cp.Vector
}

var BodyComponent = NewComponent[Body]()
