package component

import "github.com/jakecoffman/cp"

// Transform is the world position of an entity, +Y up.
type Transform struct {
	Pos      cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
