package game

// Display is the pixel sink the controller renders into. Row maps to the
// vertical axis and col to the horizontal axis of the surface.
type Display interface {
	SetPixel(row, col int, on bool) error
	DrawText(s string, x, y int) error
}

// Input yields the events queued since the previous poll, oldest first.
type Input interface {
	Poll() []Event
}

// InputFunc adapts a function to the Input interface.
type InputFunc func() []Event

// Poll calls f.
func (f InputFunc) Poll() []Event { return f() }
