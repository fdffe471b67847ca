package automap

import (
	"fmt"

	"github.com/lixenwraith/automap/coords"
	"github.com/lixenwraith/automap/fixed"
	"github.com/lixenwraith/automap/tables"
)

// Handle is an opaque reference for callers on the far side of a library
// boundary. Boundary calls carry plain numeric fields only. Passing a
// closed or never-opened handle is a fatal contract violation, not a
// recoverable error, and panics. Handles share the automap's single
// goroutine contract.
type Handle int32

var (
	handles    = make(map[Handle]*Automap)
	nextHandle Handle = 1
)

// Open constructs an automap and returns its handle.
func Open(playerX, playerY, windowWidth, windowHeight, scaleRaw int32) Handle {
	a := New(
		coords.ScreenPoint{X: playerX, Y: playerY},
		coords.ScreenSize{Width: windowWidth, Height: windowHeight},
		fixed.FromRaw[coords.ScreenUnit](scaleRaw),
	)
	h := nextHandle
	nextHandle++
	handles[h] = a
	return h
}

// Close destroys the automap behind h. Closing twice is fatal.
func Close(h Handle) {
	mustGet(h)
	delete(handles, h)
}

// Get resolves h for callers that want the full API after crossing the
// boundary once.
func Get(h Handle) *Automap {
	return mustGet(h)
}

func mustGet(h Handle) *Automap {
	a, ok := handles[h]
	if !ok {
		panic(fmt.Sprintf("automap: invalid handle %d", h))
	}
	return a
}

// UpdatePanningRaw is the boundary form of UpdatePanning; a zero pair
// means no input from that device.
func UpdatePanningRaw(h Handle, keyboardX, keyboardY, mouseX, mouseY int64) {
	var keyboard, mouse *coords.LevelVector
	if keyboardX != 0 || keyboardY != 0 {
		keyboard = &coords.LevelVector{X: keyboardX, Y: keyboardY}
	}
	if mouseX != 0 || mouseY != 0 {
		mouse = &coords.LevelVector{X: mouseX, Y: mouseY}
	}
	mustGet(h).UpdatePanning(keyboard, mouse)
}

// ChangeWindowLocationRaw is the boundary form of ChangeWindowLocation.
func ChangeWindowLocationRaw(h Handle, rotate bool, minX, minY, maxX, maxY int64, angle uint32) error {
	return mustGet(h).ChangeWindowLocation(rotate, coords.LevelBox{
		Min: coords.LevelPoint{X: minX, Y: minY},
		Max: coords.LevelPoint{X: maxX, Y: maxY},
	}, tables.Angle(angle))
}

// ActivateNewScaleRaw is the boundary form of ActivateNewScale.
func ActivateNewScaleRaw(h Handle, windowWidth, windowHeight, scaleRaw int32) {
	mustGet(h).ActivateNewScale(
		coords.ScreenSize{Width: windowWidth, Height: windowHeight},
		fixed.FromRaw[coords.ScreenUnit](scaleRaw),
	)
}

// SaveRectRaw is the boundary form of SaveRect.
func SaveRectRaw(h Handle) {
	mustGet(h).SaveRect()
}

// RestoreRectRaw is the boundary form of RestoreRect.
func RestoreRectRaw(h Handle, playerX, playerY int32) {
	mustGet(h).RestoreRect(coords.ScreenPoint{X: playerX, Y: playerY})
}

// FollowPlayerRaw is the boundary form of FollowPlayer.
func FollowPlayerRaw(h Handle, playerX, playerY int32) {
	mustGet(h).FollowPlayer(coords.ScreenPoint{X: playerX, Y: playerY})
}

// RectRaw returns the viewport as plain numerics.
func RectRaw(h Handle) (x, y, width, height int64) {
	r := mustGet(h).Rect()
	return r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height
}
