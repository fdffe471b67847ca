package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"Quit rune", key(tcell.KeyRune, 'q'), Intent{Type: IntentQuit}},
		{"Quit ctrl-c", key(tcell.KeyCtrlC, 0), Intent{Type: IntentQuit}},
		{"Quit escape", key(tcell.KeyEscape, 0), Intent{Type: IntentQuit}},
		{"Arrow left", key(tcell.KeyLeft, 0), Intent{Type: IntentPan, DX: -1}},
		{"Arrow down", key(tcell.KeyDown, 0), Intent{Type: IntentPan, DY: 1}},
		{"Vi left", key(tcell.KeyRune, 'h'), Intent{Type: IntentPan, DX: -1}},
		{"Vi up", key(tcell.KeyRune, 'k'), Intent{Type: IntentPan, DY: -1}},
		{"Move right", key(tcell.KeyRune, 'd'), Intent{Type: IntentMove, DX: 1}},
		{"Move up", key(tcell.KeyRune, 'w'), Intent{Type: IntentMove, DY: -1}},
		{"Follow", key(tcell.KeyRune, 'f'), Intent{Type: IntentFollowToggle}},
		{"Rotate", key(tcell.KeyRune, 'r'), Intent{Type: IntentRotateToggle}},
		{"Zoom in", key(tcell.KeyRune, '+'), Intent{Type: IntentZoomIn}},
		{"Zoom in unshifted", key(tcell.KeyRune, '='), Intent{Type: IntentZoomIn}},
		{"Zoom out", key(tcell.KeyRune, '-'), Intent{Type: IntentZoomOut}},
		{"Map toggle", key(tcell.KeyTab, 0), Intent{Type: IntentMapToggle}},
		{"Unknown", key(tcell.KeyRune, 'z'), Intent{}},
	}

	var d Decoder
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Decode(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodeResize(t *testing.T) {
	var d Decoder
	if got := d.Decode(tcell.NewEventResize(80, 24)); got.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", got)
	}
}

func TestDecodeMouseDrag(t *testing.T) {
	var d Decoder

	// Press does not pan; it only anchors the drag.
	got := d.Decode(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	if got.Type != IntentNone {
		t.Fatalf("Press should not pan, got %+v", got)
	}

	// Drag pans opposite the motion (grab the map).
	got = d.Decode(tcell.NewEventMouse(13, 8, tcell.Button1, tcell.ModNone))
	want := Intent{Type: IntentMousePan, DX: -3, DY: 2}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// Release ends the drag; further motion does nothing.
	if got := d.Decode(tcell.NewEventMouse(13, 8, tcell.ButtonNone, tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("Release should not pan, got %+v", got)
	}
	if got := d.Decode(tcell.NewEventMouse(20, 20, tcell.ButtonNone, tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("Motion without a button should not pan, got %+v", got)
	}
}

func TestDecodeMouseStationaryDrag(t *testing.T) {
	var d Decoder
	d.Decode(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if got := d.Decode(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("Zero-delta drag should decode to none, got %+v", got)
	}
}
