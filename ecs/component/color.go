package component

import "image/color"

type Color struct {
	Fill color.Color
}

var ColorComponent = NewComponent[Color]()
