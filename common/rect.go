package common

import "github.com/jakecoffman/cp"

// Rect is an axis aligned area given by its minimum corner and size.
type Rect struct {
	Pos cp.Vector
	Dim cp.Vector
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: cp.Vector{X: x, Y: y}, Dim: cp.Vector{X: w, Y: h}}
}

func (r Rect) Min() cp.Vector { return r.Pos }

func (r Rect) Max() cp.Vector { return r.Pos.Add(r.Dim) }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p cp.Vector) bool {
	max := r.Max()
	return p.X >= r.Pos.X && p.X <= max.X && p.Y >= r.Pos.Y && p.Y <= max.Y
}

// Sample picks a point uniformly inside r.
func (r Rect) Sample(rng Rand) cp.Vector {
	return cp.Vector{
		X: r.Pos.X + rng.Float64()*r.Dim.X,
		Y: r.Pos.Y + rng.Float64()*r.Dim.Y,
	}
}

