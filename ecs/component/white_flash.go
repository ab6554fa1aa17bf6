package component

import "time"

// WhiteFlash tints an entity after it takes damage.
type WhiteFlash struct {
	Remaining time.Duration
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
