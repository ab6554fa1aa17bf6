package component

import (
	"time"

	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/encounter"
)

type Enemy struct {
	Template encounter.EnemyTemplate
	Health   *combat.Health
	Handle   encounter.SpawnHandle
	// ContactCooldown gates repeated contact damage.
	ContactCooldown time.Duration
}

var EnemyComponent = NewComponent[Enemy]()
