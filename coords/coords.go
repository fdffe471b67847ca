package coords

// Unit tags for the two coordinate spaces. They exist only at the type
// level so screen and level quantities cannot be mixed by accident.
type (
	// ScreenUnit tags frame-buffer (pixel) space.
	ScreenUnit struct{}
	// LevelUnit tags level (world) space.
	LevelUnit struct{}
)

// Unit constrains generic code to exactly the two coordinate spaces.
type Unit interface {
	ScreenUnit | LevelUnit
}

// ScreenPoint is a pixel-space position. Components are bounded by the
// display resolution, so 32 bits suffice.
type ScreenPoint struct {
	X, Y int32
}

// ScreenSize is a pixel-space extent.
type ScreenSize struct {
	Width, Height int32
}

// LevelPoint is a level-space position in 16.16 fixed units. Level
// coordinates can exceed 32-bit range after scaling, hence int64.
type LevelPoint struct {
	X, Y int64
}

// LevelSize is a level-space extent in 16.16 fixed units.
type LevelSize struct {
	Width, Height int64
}

// LevelVector is a level-space displacement in 16.16 fixed units.
type LevelVector struct {
	X, Y int64
}

// LevelRect is an origin+size rectangle in level space.
type LevelRect struct {
	Origin LevelPoint
	Size   LevelSize
}

// LevelBox is a min/max bounding box in level space.
type LevelBox struct {
	Min, Max LevelPoint
}

// Add returns v + w.
func (v LevelVector) Add(w LevelVector) LevelVector {
	return LevelVector{X: v.X + w.X, Y: v.Y + w.Y}
}

// IsZero reports whether v is the zero vector.
func (v LevelVector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Translate returns p shifted by v.
func (p LevelPoint) Translate(v LevelVector) LevelPoint {
	return LevelPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Center returns the midpoint of r.
func (r LevelRect) Center() LevelPoint {
	return LevelPoint{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Contains reports whether p lies inside b (inclusive edges).
func (b LevelBox) Contains(p LevelPoint) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
