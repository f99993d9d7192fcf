// Package input defines the events delivered by the presentation surface
// and some pre-built state trackers for common use with canvas.Input.
//
// Events use image coordinates: physical pixels with the origin in the
// lower-left corner, matching the rows of the frame buffer. The raw OS
// coordinates (upper-left origin, virtual pixels) are kept alongside where
// they are useful.
package input

// Kind classifies an event so the input relay can match it against the
// registered bindings.
type Kind int

const (
	KindMouseMove Kind = iota
	KindMouseButton
	KindKeyPress
	KindKeyRelease
	KindChar
	KindResize
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindMouseMove:
		return "mouse-move"
	case KindMouseButton:
		return "mouse-button"
	case KindKeyPress:
		return "key-press"
	case KindKeyRelease:
		return "key-release"
	case KindChar:
		return "char"
	case KindResize:
		return "resize"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a single input or window event. Events are ephemeral: the relay
// hands each one to the matching bindings and then discards it.
type Event interface {
	Kind() Kind
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// KeyCode identifies a keyboard key. The values follow the GLFW key codes
// so the surface layer can pass them through unchanged.
type KeyCode int

const (
	KeyUnknown KeyCode = -1
	KeySpace   KeyCode = 32
	KeyRight   KeyCode = 262
	KeyLeft    KeyCode = 263
	KeyDown    KeyCode = 264
	KeyUp      KeyCode = 265
	KeyEscape  KeyCode = 256
	KeyEnter   KeyCode = 257
)

// MouseMove reports the pointer position. X and Y are physical pixels from
// the lower-left corner and correspond directly to frame buffer
// coordinates; ScreenX and ScreenY are the virtual coordinates as reported
// by the OS, from the upper-left corner.
type MouseMove struct {
	X, Y             int
	ScreenX, ScreenY int
}

func (MouseMove) Kind() Kind { return KindMouseMove }

// MouseButton reports a button press or release at the given position.
type MouseButton struct {
	Button  Button
	Pressed bool
	X, Y    int
}

func (MouseButton) Kind() Kind { return KindMouseButton }

// Key reports a keyboard key transition.
type Key struct {
	Code    KeyCode
	Pressed bool
}

func (k Key) Kind() Kind {
	if k.Pressed {
		return KindKeyPress
	}
	return KindKeyRelease
}

// Char reports a translated text character.
type Char struct {
	Rune rune
}

func (Char) Kind() Kind { return KindChar }

// Resize reports a new framebuffer size in physical pixels.
type Resize struct {
	Width, Height int
}

func (Resize) Kind() Kind { return KindResize }

// Close reports that the user asked to close the window. It is forwarded
// to bindings like any other event and also begins canvas shutdown.
type Close struct{}

func (Close) Kind() Kind { return KindClose }
