package editor

// ScrollPolicy controls how the input surface may scroll relative to the
// caret.
type ScrollPolicy int

const (
	// ScrollAllowManual allows manual scrolling (for example via mouse wheel)
	// even when the caret does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps scrolling caret-driven. Manual scrolling is
	// ignored.
	ScrollFollowCursorOnly
)

// horizontalWheelStep is how many cells a horizontal wheel notch scrolls.
const horizontalWheelStep = 6
