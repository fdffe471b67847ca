package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var styleHUD = tcell.StyleDefault.
	Foreground(tcell.ColorBlack).
	Background(tcell.ColorDarkGoldenrod)

// DrawHUD renders the one-line status bar under the viewport. The text is
// width-truncated with an ellipsis so wide glyphs never wrap.
func (m *Minimap) DrawHUD(f Frame, follow, rotate bool) {
	mode := "pan"
	if follow {
		mode = "follow"
	}
	rot := ""
	if rotate {
		rot = " rot"
	}
	text := fmt.Sprintf(" [%s%s]  pos %d,%d  view %dx%d  hjkl/arrows pan  f follow  r rotate  +/- zoom  q quit",
		mode, rot,
		f.Player.X>>16, f.Player.Y>>16,
		f.Rect.Size.Width>>16, f.Rect.Size.Height>>16,
	)
	text = runewidth.Truncate(text, f.ViewWidth, "…")
	text = runewidth.FillRight(text, f.ViewWidth)

	x := 0
	for _, r := range text {
		m.screen.SetContent(x, f.ViewHeight, r, nil, styleHUD)
		x += runewidth.RuneWidth(r)
	}
}
