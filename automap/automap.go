// Package automap tracks the minimap viewport over level space. All
// arithmetic is 16.16 fixed; one host tick drives UpdatePanning,
// ChangeWindowLocation and FollowPlayer in that order.
package automap

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/automap/coords"
	"github.com/lixenwraith/automap/fixed"
	"github.com/lixenwraith/automap/tables"
)

// Automap is the minimap session state. It is exclusively owned by the
// caller's tick loop; no internal locking.
type Automap struct {
	followsPlayer bool
	followLast    *coords.ScreenPoint

	panKeyboard *coords.LevelVector
	panMouse    *coords.LevelVector

	// Zoom multipliers, currently pinned to unit. Kept so zoom can land
	// without a state layout change.
	frameZoom fixed.ScreenFixed
	levelZoom fixed.LevelFixed

	rect      coords.LevelRect
	savedRect coords.LevelRect

	log zerolog.Logger
}

// New constructs an automap centered on the player. Player coordinates are
// raw level fixed values (the host's fixed_t), window size is in pixels,
// scale converts pixels to level units. The map starts in follow mode.
func New(player coords.ScreenPoint, window coords.ScreenSize, scale fixed.ScreenFixed) *Automap {
	size := fixed.ScreenSizeToLevel(scale, window)
	rect := coords.LevelRect{
		Origin: coords.LevelPoint{
			X: int64(player.X) - size.Width/2,
			Y: int64(player.Y) - size.Height/2,
		},
		Size: size,
	}
	return &Automap{
		followsPlayer: true,
		frameZoom:     fixed.Unit[coords.ScreenUnit](),
		levelZoom:     fixed.Unit[coords.LevelUnit](),
		rect:          rect,
		savedRect:     rect,
		log:           zerolog.Nop(),
	}
}

// SetLogger installs a trace sink for viewport changes. The zero automap
// logs nowhere.
func (a *Automap) SetLogger(log zerolog.Logger) {
	a.log = log
}

// Rect returns the current viewport in level space.
func (a *Automap) Rect() coords.LevelRect {
	return a.rect
}

// FollowsPlayer reports whether the viewport recenters on the player each
// tick.
func (a *Automap) FollowsPlayer() bool {
	return a.followsPlayer
}

// SetFollow toggles follow mode. Re-enabling does not recenter by itself;
// the next FollowPlayer call does.
func (a *Automap) SetFollow(follow bool) {
	a.followsPlayer = follow
	if !follow {
		a.followLast = nil
	}
}

// UpdatePanning stores the pan deltas for the next ChangeWindowLocation.
// Nil means no input from that device this tick.
func (a *Automap) UpdatePanning(keyboard, mouse *coords.LevelVector) {
	a.panKeyboard = keyboard
	a.panMouse = mouse
}

// ChangeWindowLocation applies the pending pan to the viewport, rotated by
// mapAngle when rotate is set, then clamps each axis against boundaries.
// Any effective pan input drops follow mode until the caller re-enables
// it. Mouse deltas are one-shot; keyboard deltas persist until replaced.
// On rotation overflow the viewport is left untouched.
func (a *Automap) ChangeWindowLocation(rotate bool, boundaries coords.LevelBox, mapAngle tables.Angle) error {
	pan, ok := a.combinePan()
	if !ok {
		return nil
	}

	a.followsPlayer = false
	a.followLast = nil

	if rotate {
		rotated, err := rotateVector(pan, mapAngle)
		if err != nil {
			return err
		}
		pan = rotated
	}

	a.panMouse = nil

	pos := a.rect.Origin.Translate(pan)
	pos.X = clampAxis(pos.X, a.rect.Size.Width, boundaries.Min.X, boundaries.Max.X)
	pos.Y = clampAxis(pos.Y, a.rect.Size.Height, boundaries.Min.Y, boundaries.Max.Y)
	a.rect.Origin = pos

	a.log.Trace().
		Int64("x", a.rect.Origin.X).
		Int64("y", a.rect.Origin.Y).
		Msg("window moved")
	return nil
}

// combinePan resolves the two optional deltas into one effective pan.
// Zero vectors count as absent, so the common no-input tick stays cheap.
func (a *Automap) combinePan() (coords.LevelVector, bool) {
	keyboard := a.panKeyboard
	if keyboard != nil && keyboard.IsZero() {
		keyboard = nil
	}
	mouse := a.panMouse
	if mouse != nil && mouse.IsZero() {
		mouse = nil
	}

	switch {
	case keyboard == nil && mouse == nil:
		return coords.LevelVector{}, false
	case keyboard == nil:
		return *mouse, true
	case mouse == nil:
		return *keyboard, true
	default:
		return keyboard.Add(*mouse), true
	}
}

// clampAxis keeps the viewport's half-size point inside [min, max] on one
// axis. Axes never couple.
func clampAxis(origin, size, min, max int64) int64 {
	if origin+size/2 > max {
		return max - size/2
	}
	if origin+size/2 < min {
		return min - size/2
	}
	return origin
}

// rotateVector rotates a pan vector by mapAngle with the fine tables. The
// vector components must fit the 32-bit fixed multiply domain.
func rotateVector(v coords.LevelVector, mapAngle tables.Angle) (coords.LevelVector, error) {
	if v.X > math.MaxInt32 || v.X < math.MinInt32 ||
		v.Y > math.MaxInt32 || v.Y < math.MinInt32 {
		return coords.LevelVector{}, fixed.ErrOverflow
	}
	x := fixed.FromRaw[coords.LevelUnit](int32(v.X))
	y := fixed.FromRaw[coords.LevelUnit](int32(v.Y))
	sin := fixed.FromRaw[coords.LevelUnit](tables.FineSine(mapAngle))
	cos := fixed.FromRaw[coords.LevelUnit](tables.FineCosine(mapAngle))

	xc, err := x.Mul(cos)
	if err != nil {
		return coords.LevelVector{}, err
	}
	ys, err := y.Mul(sin)
	if err != nil {
		return coords.LevelVector{}, err
	}
	xs, err := x.Mul(sin)
	if err != nil {
		return coords.LevelVector{}, err
	}
	yc, err := y.Mul(cos)
	if err != nil {
		return coords.LevelVector{}, err
	}
	return coords.LevelVector{
		X: int64(xc.Raw()) - int64(ys.Raw()),
		Y: int64(xs.Raw()) + int64(yc.Raw()),
	}, nil
}

// ActivateNewScale recomputes the viewport size for a new zoom level while
// holding the center fixed.
func (a *Automap) ActivateNewScale(window coords.ScreenSize, scale fixed.ScreenFixed) {
	translate := coords.LevelVector{
		X: a.rect.Size.Width / 2,
		Y: a.rect.Size.Height / 2,
	}
	a.rect.Origin = a.rect.Origin.Translate(translate)
	a.rect.Size = fixed.ScreenSizeToLevel(scale, window)
	a.rect.Origin.X -= a.rect.Size.Width / 2
	a.rect.Origin.Y -= a.rect.Size.Height / 2

	a.log.Trace().
		Int64("w", a.rect.Size.Width).
		Int64("h", a.rect.Size.Height).
		Msg("rescaled")
}

// SaveRect snapshots the viewport, typically before the map UI closes.
func (a *Automap) SaveRect() {
	a.savedRect = a.rect
}

// RestoreRect brings the saved viewport back. In follow mode the origin
// recenters on the possibly-moved player instead of the saved origin.
func (a *Automap) RestoreRect(player coords.ScreenPoint) {
	a.rect.Size = a.savedRect.Size
	if a.followsPlayer {
		a.rect.Origin = coords.LevelPoint{
			X: int64(player.X) - a.savedRect.Size.Width/2,
			Y: int64(player.Y) - a.savedRect.Size.Height/2,
		}
		return
	}
	a.rect.Origin = a.savedRect.Origin
}

// FollowPlayer recenters the viewport on the player. A repeat call with an
// unchanged position is a no-op; the last followed position is cached.
// The follow flag itself is owned by SetFollow and the pan path.
func (a *Automap) FollowPlayer(player coords.ScreenPoint) {
	if a.followLast != nil && *a.followLast == player {
		return
	}
	a.rect.Origin = coords.LevelPoint{
		X: int64(player.X) - a.rect.Size.Width/2,
		Y: int64(player.Y) - a.rect.Size.Height/2,
	}
	last := player
	a.followLast = &last
}
