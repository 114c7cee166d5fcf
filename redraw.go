package main

// Skip-draw bookkeeping.
//
// The disguise shader is static unless something changes, so Draw
// only repaints when someone called SetRedraw since the last paint.
// Needs eb.SetScreenClearedEveryFrame(false) to actually stick.

var doRedraw bool = true

var alwaysRedraw bool = false

func SetRedraw() {
	doRedraw = true
}

// ConsumeRedraw reports whether this frame should be painted
// and resets the flag.
func ConsumeRedraw() bool {
	if alwaysRedraw {
		return true
	}

	redraw := doRedraw
	doRedraw = false
	return redraw
}
