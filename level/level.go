// Package level holds the demo level geometry the minimap draws: a line
// soup in 16.16 level units plus the boundary box fed to the automap
// clamp.
package level

import (
	"math"

	"github.com/lixenwraith/automap/coords"
)

// Line is one wall segment in level space.
type Line struct {
	V1, V2 coords.LevelPoint
}

// Level is a named set of wall segments with a spawn point.
type Level struct {
	Name  string
	Spawn coords.LevelPoint
	Lines []Line
}

// Bounds returns the tight bounding box over all vertices. An empty level
// bounds to a zero box at the origin.
func (l *Level) Bounds() coords.LevelBox {
	if len(l.Lines) == 0 {
		return coords.LevelBox{}
	}
	box := coords.LevelBox{
		Min: coords.LevelPoint{X: math.MaxInt64, Y: math.MaxInt64},
		Max: coords.LevelPoint{X: math.MinInt64, Y: math.MinInt64},
	}
	for _, ln := range l.Lines {
		for _, v := range [2]coords.LevelPoint{ln.V1, ln.V2} {
			if v.X < box.Min.X {
				box.Min.X = v.X
			}
			if v.Y < box.Min.Y {
				box.Min.Y = v.Y
			}
			if v.X > box.Max.X {
				box.Max.X = v.X
			}
			if v.Y > box.Max.Y {
				box.Max.Y = v.Y
			}
		}
	}
	return box
}
