package component

import "github.com/milk9111/arena/common"

type Projectile struct {
	Damage  float64
	Charged bool
	Targets common.Group
}

var ProjectileComponent = NewComponent[Projectile]()
