// Package input maps tcell events to automap intents. It owns no automap
// state; the engine converts pan cell deltas to level vectors with the
// current scale.
package input

// IntentType discriminates semantic actions.
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit         // q, Ctrl+C, ESC
	IntentResize       // terminal resize event
	IntentPan          // hjkl, arrows — DX/DY in screen cells
	IntentMove         // wasd — player movement, DX/DY in cells
	IntentMousePan     // drag — DX/DY in screen cells, one-shot
	IntentFollowToggle // f
	IntentRotateToggle // r
	IntentZoomIn       // + or =
	IntentZoomOut      // -
	IntentMapToggle    // tab: close/reopen the map view (save/restore)
)

// Intent is one decoded input action.
type Intent struct {
	Type   IntentType
	DX, DY int
}
