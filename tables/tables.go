// Package tables provides the precomputed fine sine/cosine lookup used to
// rotate pan vectors. Values are 16.16 fixed, read-only after init, safe
// to call from the single automap goroutine (and reentrant besides).
package tables

import "math"

// Angle is a binary angle measurement: the full uint32 range maps to one
// revolution, so wraparound is free.
type Angle uint32

const (
	// FineAngles is the sine table resolution over a full revolution.
	FineAngles = 8192
	// AngleToFineShift converts a BAM angle to a fine table index.
	AngleToFineShift = 19

	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xc0000000
)

// fineSine holds sin over [0, 2pi) in 16.16; cosine reads it phase-shifted.
var fineSine [FineAngles]int32

func init() {
	for i := 0; i < FineAngles; i++ {
		rad := 2 * math.Pi * float64(i) / FineAngles
		fineSine[i] = int32(math.Round(math.Sin(rad) * (1 << 16)))
	}
}

// FineSine returns sin(a) in 16.16 fixed.
func FineSine(a Angle) int32 {
	return fineSine[(a>>AngleToFineShift)&(FineAngles-1)]
}

// FineCosine returns cos(a) in 16.16 fixed.
func FineCosine(a Angle) int32 {
	return fineSine[((a>>AngleToFineShift)+FineAngles/4)&(FineAngles-1)]
}
