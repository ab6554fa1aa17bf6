package component

import (
	"github.com/milk9111/arena/combat"
	"github.com/milk9111/arena/items"
)

// Actor is the player-controlled combatant.
type Actor struct {
	Arbiter   *combat.Arbiter
	Inventory *items.Inventory
	// NearForge is refreshed by contacts every frame.
	NearForge bool
}

var ActorComponent = NewComponent[Actor]()
