package canvas

import "github.com/porglezomp/pixel-canvas/input"

// MouseState tracks the position of the mouse. For use as the canvas
// state together with the HandleMouse binding.
//
// X and Y are measured in physical pixels from the lower-left corner and
// always correspond to a column and row of the frame buffer; this is
// usually what you want. ScreenX and ScreenY match the OS coordinates
// (upper-left origin, virtual pixels) for the rare cases that need them.
type MouseState struct {
	X, Y             int
	ScreenX, ScreenY int
	LeftDown         bool
}

// NewMouseState creates a zeroed MouseState.
func NewMouseState() MouseState {
	return MouseState{}
}

// HandleMouse folds mouse events into a MouseState, clamping X and Y to
// the frame buffer so a cursor dragged past the window edge still maps to
// a valid pixel. For use with the Input builder method.
func HandleMouse(info *Info, s *MouseState, ev input.Event) {
	switch e := ev.(type) {
	case input.MouseMove:
		dpi := info.DPI
		if dpi == 0 {
			dpi = 1
		}
		maxX := int(float64(info.Width)*dpi) - 1
		maxY := int(float64(info.Height)*dpi) - 1
		s.X = clampInt(e.X, 0, maxX)
		s.Y = clampInt(e.Y, 0, maxY)
		s.ScreenX, s.ScreenY = e.ScreenX, e.ScreenY
	case input.MouseButton:
		if e.Button == input.ButtonLeft {
			s.LeftDown = e.Pressed
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
