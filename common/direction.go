package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Direction is one of the eight compass directions or Neutral. Right is +X
// and Up is +Y; the host flips Y when it maps to screen space.
type Direction uint8

const (
	Neutral Direction = iota
	Up
	Right
	Down
	Left
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Directions lists every value, Neutral first.
var Directions = [...]Direction{Neutral, Up, Right, Down, Left, UpLeft, UpRight, DownLeft, DownRight}

type shiftRow struct {
	up, down, left, right Direction
}

var shifts = [...]shiftRow{
	Neutral:   {Up, Down, Left, Right},
	Up:        {Up, Neutral, UpLeft, UpRight},
	Down:      {Neutral, Down, DownLeft, DownRight},
	Left:      {UpLeft, DownLeft, Left, Neutral},
	Right:     {UpRight, DownRight, Neutral, Right},
	UpLeft:    {UpLeft, Left, UpLeft, Up},
	UpRight:   {UpRight, Right, Up, UpRight},
	DownLeft:  {Left, DownLeft, DownLeft, Down},
	DownRight: {Right, DownRight, Down, DownRight},
}

var angles = [...]float64{
	Right:     0,
	UpRight:   math.Pi / 4,
	Up:        math.Pi / 2,
	UpLeft:    3 * math.Pi / 4,
	Left:      math.Pi,
	DownLeft:  5 * math.Pi / 4,
	Down:      3 * math.Pi / 2,
	DownRight: 7 * math.Pi / 4,
}

var names = [...]string{
	Neutral:   "neutral",
	Up:        "up",
	Right:     "right",
	Down:      "down",
	Left:      "left",
	UpLeft:    "up_left",
	UpRight:   "up_right",
	DownLeft:  "down_left",
	DownRight: "down_right",
}

func (d Direction) valid() bool { return int(d) < len(Directions) }

func (d Direction) ShiftUp() Direction {
	if !d.valid() {
		return Up
	}
	return shifts[d].up
}

func (d Direction) ShiftDown() Direction {
	if !d.valid() {
		return Down
	}
	return shifts[d].down
}

func (d Direction) ShiftLeft() Direction {
	if !d.valid() {
		return Left
	}
	return shifts[d].left
}

func (d Direction) ShiftRight() Direction {
	if !d.valid() {
		return Right
	}
	return shifts[d].right
}

// Radians returns the counter-clockwise angle from +X. Neutral has none.
func (d Direction) Radians() (float64, bool) {
	if d == Neutral || !d.valid() {
		return 0, false
	}
	return angles[d], true
}

// Vector returns the unit vector for d, or the zero vector for Neutral.
func (d Direction) Vector() cp.Vector {
	a, ok := d.Radians()
	if !ok {
		return cp.Vector{}
	}
	switch d {
	case Right:
		return cp.Vector{X: 1}
	case Left:
		return cp.Vector{X: -1}
	case Up:
		return cp.Vector{Y: 1}
	case Down:
		return cp.Vector{Y: -1}
	}
	return cp.ForAngle(a)
}

func (d Direction) String() string {
	if !d.valid() {
		return "invalid"
	}
	return names[d]
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if names[d] == s {
			return d, true
		}
	}
	return Neutral, false
}

// RandomDirection picks uniformly among all nine values.
func RandomDirection(r Rand) Direction {
	return Directions[r.IntN(len(Directions))]
}

// Nearest snaps v to the closest of the eight directions. A zero vector
// maps to Neutral.
func Nearest(v cp.Vector) Direction {
	if v.LengthSq() == 0 {
		return Neutral
	}
	a := v.ToAngle()
	if a < 0 {
		a += 2 * math.Pi
	}
	idx := int(math.Round(a/(math.Pi/4))) % 8
	order := [...]Direction{Right, UpRight, Up, UpLeft, Left, DownLeft, Down, DownRight}
	return order[idx]
}
