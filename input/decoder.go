package input

import "github.com/gdamore/tcell/v2"

// Decoder turns tcell events into intents. It carries the mouse drag
// state between events; keyboard decoding is stateless.
type Decoder struct {
	dragging     bool
	lastX, lastY int
}

// Decode classifies one event. Unrecognized events decode to IntentNone.
func (d *Decoder) Decode(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return d.decodeKey(ev)
	case *tcell.EventMouse:
		return d.decodeMouse(ev)
	}
	return Intent{}
}

func (d *Decoder) decodeKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyLeft:
		return Intent{Type: IntentPan, DX: -1}
	case tcell.KeyRight:
		return Intent{Type: IntentPan, DX: 1}
	case tcell.KeyUp:
		return Intent{Type: IntentPan, DY: -1}
	case tcell.KeyDown:
		return Intent{Type: IntentPan, DY: 1}
	case tcell.KeyTab:
		return Intent{Type: IntentMapToggle}
	}

	switch ev.Rune() {
	case 'q':
		return Intent{Type: IntentQuit}
	case 'h':
		return Intent{Type: IntentPan, DX: -1}
	case 'l':
		return Intent{Type: IntentPan, DX: 1}
	case 'k':
		return Intent{Type: IntentPan, DY: -1}
	case 'j':
		return Intent{Type: IntentPan, DY: 1}
	case 'a':
		return Intent{Type: IntentMove, DX: -1}
	case 'd':
		return Intent{Type: IntentMove, DX: 1}
	case 'w':
		return Intent{Type: IntentMove, DY: -1}
	case 's':
		return Intent{Type: IntentMove, DY: 1}
	case 'f':
		return Intent{Type: IntentFollowToggle}
	case 'r':
		return Intent{Type: IntentRotateToggle}
	case '+', '=':
		return Intent{Type: IntentZoomIn}
	case '-':
		return Intent{Type: IntentZoomOut}
	}
	return Intent{}
}

// decodeMouse emits one IntentMousePan per motion event while button 1 is
// held. The pan direction is inverted so dragging feels like grabbing the
// map.
func (d *Decoder) decodeMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	defer func() {
		d.dragging = held
		d.lastX, d.lastY = x, y
	}()

	if !held || !d.dragging {
		return Intent{}
	}
	dx, dy := d.lastX-x, d.lastY-y
	if dx == 0 && dy == 0 {
		return Intent{}
	}
	return Intent{Type: IntentMousePan, DX: dx, DY: dy}
}
