// Package fixed implements the 16.16 fixed-point scalar the automap is
// built on. Arithmetic is integer-only for tick-for-tick reproducibility;
// the host simulation never touches floats on this path.
package fixed

import (
	"errors"
	"math"

	"github.com/lixenwraith/automap/coords"
)

// FractionBits is the number of fractional bits (scale factor 2^16).
const FractionBits = 16

// ErrOverflow is returned when a multiply or a level-to-screen narrowing
// does not fit 32 bits. Silent wraparound would corrupt viewport geometry,
// so the operation aborts instead.
var ErrOverflow = errors.New("fixed: value overflows 32 bits")

// Fixed is a 16.16 fixed-point scalar tagged with the coordinate space it
// belongs to. Screen and level scalars are distinct types; crossing spaces
// goes through the transform functions, never through Mul/Div.
type Fixed[U coords.Unit] struct {
	raw int32
}

// ScreenFixed scales screen-space quantities.
type ScreenFixed = Fixed[coords.ScreenUnit]

// LevelFixed scales level-space quantities.
type LevelFixed = Fixed[coords.LevelUnit]

// Unit returns the representation of 1.0.
func Unit[U coords.Unit]() Fixed[U] {
	return Fixed[U]{raw: 1 << FractionBits}
}

// FromRaw wraps a raw 16.16 integer. Used at boundary and storage sites.
func FromRaw[U coords.Unit](raw int32) Fixed[U] {
	return Fixed[U]{raw: raw}
}

// Raw unwraps the 16.16 integer representation.
func (f Fixed[U]) Raw() int32 {
	return f.raw
}

// Mul returns f*g. The 64-bit product is shifted back to 16.16 and must
// fit int32; otherwise ErrOverflow.
func (f Fixed[U]) Mul(g Fixed[U]) (Fixed[U], error) {
	r := (int64(f.raw) * int64(g.raw)) >> FractionBits
	if r > math.MaxInt32 || r < math.MinInt32 {
		return Fixed[U]{}, ErrOverflow
	}
	return Fixed[U]{raw: int32(r)}, nil
}

// Div returns f/g. When the quotient cannot fit 32 bits the result
// saturates to the sign-correct extreme instead of failing. Divide
// overflow usually means an extreme zoom, where the clamp path recovers;
// a wrong multiply has no such safety net, so only Mul aborts.
func (f Fixed[U]) Div(g Fixed[U]) Fixed[U] {
	fa, ga := abs64(int64(f.raw)), abs64(int64(g.raw))
	if fa>>14 >= ga {
		if f.raw^g.raw < 0 {
			return Fixed[U]{raw: math.MinInt32}
		}
		return Fixed[U]{raw: math.MaxInt32}
	}
	return Fixed[U]{raw: int32((int64(f.raw) << FractionBits) / int64(g.raw))}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
