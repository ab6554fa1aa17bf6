package combat

import "github.com/jakecoffman/cp"

// Contribution is one controller's optional velocity for a tick.
type Contribution struct {
	V  cp.Vector
	OK bool
}

func Some(v cp.Vector) Contribution { return Contribution{V: v, OK: true} }

func Contribute(v cp.Vector, ok bool) Contribution { return Contribution{V: v, OK: ok} }

// SelectVelocity picks the first present contribution in the order dash,
// aim, melee and falls back to idle.
func SelectVelocity(dash, aim, melee Contribution, idle cp.Vector) cp.Vector {
	switch {
	case dash.OK:
		return dash.V
	case aim.OK:
		return aim.V
	case melee.OK:
		return melee.V
	default:
		return idle
	}
}
