package component

import "time"

// TTL destroys the entity once Remaining runs out.
type TTL struct {
	Remaining time.Duration
}

var TTLComponent = NewComponent[TTL]()
