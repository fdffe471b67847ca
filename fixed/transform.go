package fixed

import (
	"math"

	"github.com/lixenwraith/automap/coords"
)

// ScreenToLevel converts one screen-space component to level space using
// the frame-to-level scale factor. Level space is wider, so the 64-bit
// result never narrows. The result carries 16 fractional bits: at unit
// scale a screen value v maps to the level fixed representation of v.
func ScreenToLevel(scale ScreenFixed, v int32) int64 {
	return ((int64(v) << FractionBits) * int64(scale.raw)) >> FractionBits
}

// ScreenPointToLevel converts a screen point to a level point, each axis
// independently.
func ScreenPointToLevel(scale ScreenFixed, p coords.ScreenPoint) coords.LevelPoint {
	return coords.LevelPoint{
		X: ScreenToLevel(scale, p.X),
		Y: ScreenToLevel(scale, p.Y),
	}
}

// ScreenSizeToLevel converts a screen size to a level size.
func ScreenSizeToLevel(scale ScreenFixed, s coords.ScreenSize) coords.LevelSize {
	return coords.LevelSize{
		Width:  ScreenToLevel(scale, s.Width),
		Height: ScreenToLevel(scale, s.Height),
	}
}

// LevelToScreen converts one level-space component to screen space using
// the level-to-frame scale factor. Both the scale multiply and the fixed
// representation contribute a shift, hence the double >>16: the first
// normalizes the 16.16 product, the second drops the coordinate's own
// fraction bits. ErrOverflow when the pixel value does not fit int32.
func LevelToScreen(scale LevelFixed, v int64) (int32, error) {
	r := ((v * int64(scale.raw)) >> FractionBits) >> FractionBits
	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, ErrOverflow
	}
	return int32(r), nil
}

// InvertScale returns the level-to-screen scale undoing a screen-to-level
// scale: the raw product of the pair is 1<<32. The input must be a sane,
// caller-validated zoom (raw > 1).
func InvertScale(scale ScreenFixed) LevelFixed {
	return LevelFixed{raw: int32((int64(1) << 32) / int64(scale.raw))}
}

// LevelPointToScreen converts a level point to a screen point.
func LevelPointToScreen(scale LevelFixed, p coords.LevelPoint) (coords.ScreenPoint, error) {
	x, err := LevelToScreen(scale, p.X)
	if err != nil {
		return coords.ScreenPoint{}, err
	}
	y, err := LevelToScreen(scale, p.Y)
	if err != nil {
		return coords.ScreenPoint{}, err
	}
	return coords.ScreenPoint{X: x, Y: y}, nil
}
