// Package render projects the automap viewport onto a tcell screen: grid
// lines, level walls and the player arrow. It reads the viewport, never
// writes automap state.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/automap/coords"
	"github.com/lixenwraith/automap/fixed"
	"github.com/lixenwraith/automap/level"
	"github.com/lixenwraith/automap/tables"
)

// GridUnits is the level-space spacing of grid lines: 128 map units.
const GridUnits = 128 << 16

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Minimap draws one frame of the automap view.
type Minimap struct {
	screen tcell.Screen
}

// NewMinimap creates a renderer over the given screen.
func NewMinimap(screen tcell.Screen) *Minimap {
	return &Minimap{screen: screen}
}

// Frame is everything one draw call needs, captured after the tick's
// automap update.
type Frame struct {
	Rect        coords.LevelRect
	Scale       fixed.LevelFixed // level-to-screen
	Level       *level.Level
	Player      coords.ScreenPoint // raw level fixed, same domain as automap
	PlayerAngle tables.Angle
	ViewWidth   int
	ViewHeight  int // rows above the HUD line
}

// Draw renders grid, walls and player arrow for the frame.
func (m *Minimap) Draw(f Frame) {
	m.drawGrid(f)
	for _, ln := range f.Level.Lines {
		m.drawLevelLine(f, ln.V1, ln.V2, styleWall)
	}
	m.drawPlayer(f)
}

// drawGrid draws vertical and horizontal lines at GridUnits intervals,
// aligned to level-space multiples so the grid stays fixed while panning.
func (m *Minimap) drawGrid(f Frame) {
	startX := f.Rect.Origin.X - mod64(f.Rect.Origin.X, GridUnits)
	endX := f.Rect.Origin.X + f.Rect.Size.Width
	for x := startX; x <= endX; x += GridUnits {
		m.drawLevelLine(f,
			coords.LevelPoint{X: x, Y: f.Rect.Origin.Y},
			coords.LevelPoint{X: x, Y: f.Rect.Origin.Y + f.Rect.Size.Height},
			styleGrid)
	}

	startY := f.Rect.Origin.Y - mod64(f.Rect.Origin.Y, GridUnits)
	endY := f.Rect.Origin.Y + f.Rect.Size.Height
	for y := startY; y <= endY; y += GridUnits {
		m.drawLevelLine(f,
			coords.LevelPoint{X: f.Rect.Origin.X, Y: y},
			coords.LevelPoint{X: f.Rect.Origin.X + f.Rect.Size.Width, Y: y},
			styleGrid)
	}
}

// drawPlayer draws a three-segment arrow at the player position pointing
// along the player angle.
func (m *Minimap) drawPlayer(f Frame) {
	// Arrow geometry in level units, nose along +X before rotation.
	const r = 24 << 16
	segs := [3][4]int64{
		{-r, 0, r, 0},         // shaft
		{r, 0, r / 2, -r / 2}, // left barb
		{r, 0, r / 2, r / 2},  // right barb
	}

	sin := int64(tables.FineSine(f.PlayerAngle))
	cos := int64(tables.FineCosine(f.PlayerAngle))
	rot := func(x, y int64) (int64, int64) {
		rx := (x*cos - y*sin) >> fixed.FractionBits
		ry := (x*sin + y*cos) >> fixed.FractionBits
		return rx, ry
	}

	px, py := int64(f.Player.X), int64(f.Player.Y)
	for _, s := range segs {
		x1, y1 := rot(s[0], s[1])
		x2, y2 := rot(s[2], s[3])
		m.drawLevelLine(f,
			coords.LevelPoint{X: px + x1, Y: py + y1},
			coords.LevelPoint{X: px + x2, Y: py + y2},
			stylePlayer)
	}
}

// drawLevelLine projects a level-space segment into the viewport and
// rasterizes it. Segments whose projection overflows are dropped rather
// than drawn wrapped.
func (m *Minimap) drawLevelLine(f Frame, a, b coords.LevelPoint, style tcell.Style) {
	x1, err := fixed.LevelToScreen(f.Scale, a.X-f.Rect.Origin.X)
	if err != nil {
		return
	}
	y1, err := fixed.LevelToScreen(f.Scale, a.Y-f.Rect.Origin.Y)
	if err != nil {
		return
	}
	x2, err := fixed.LevelToScreen(f.Scale, b.X-f.Rect.Origin.X)
	if err != nil {
		return
	}
	y2, err := fixed.LevelToScreen(f.Scale, b.Y-f.Rect.Origin.Y)
	if err != nil {
		return
	}
	m.drawCellLine(int(x1), int(y1), int(x2), int(y2), f.ViewWidth, f.ViewHeight, style)
}

// drawCellLine is integer Bresenham with per-cell bounds culling.
func (m *Minimap) drawCellLine(x1, y1, x2, y2, w, h int, style tcell.Style) {
	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if x1 >= 0 && x1 < w && y1 >= 0 && y1 < h {
			m.screen.SetContent(x1, y1, lineRune(dx, dy), nil, style)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// lineRune picks a glyph by dominant direction.
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	default:
		return '·'
	}
}

// mod64 is a floored modulo for grid alignment with negative origins.
func mod64(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
