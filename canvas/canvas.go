// Package canvas is the main entry point of the library. It owns the
// window and event loop, calls your draw callback at a fixed rate, and
// presents the image on the screen.
//
// You create and configure a Canvas via builder methods, then hand it your
// draw callback with the blocking Render call:
//
//	c := canvas.New(512, 512, canvas.NewMouseState()).
//		Title("Tile").
//		ShowMS(true).
//		Input(canvas.HandleMouse)
//	err := c.Render(func(mouse *canvas.MouseState, img *frame.Buffer) {
//		for y := 0; y < img.Height(); y++ {
//			row := img.Row(y)
//			for x := range row {
//				row[x] = makeYourOwnColor(x, y, mouse.X, mouse.Y)
//			}
//		}
//	})
//
// Internally the canvas runs two activities: the event pump stays on the
// calling thread (the windowing layer requires it) while the render loop
// runs on its own goroutine. They exchange the user state via an event
// channel and completed frames via a pointer handoff, so a slow draw
// callback never freezes input handling and a displayed frame is never
// partially written.
package canvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/graphics"
	"github.com/porglezomp/pixel-canvas/input"
)

// ErrConfiguration indicates an invalid canvas configuration. It is
// returned by Render before any window or buffer has been created, so the
// caller can correct the configuration and try again.
var ErrConfiguration = errors.New("canvas: invalid configuration")

// Policy selects what happens when the render loop finishes a frame while
// the previous one has not been displayed yet.
type Policy int

const (
	// ShowLatest overwrites an unconsumed published frame. The displaced
	// frame is dropped; that is normal under load, not an error.
	ShowLatest Policy = iota
	// NeverDrop blocks publishing until the previous frame has been
	// consumed by the presentation path.
	NeverDrop
)

// Handler is an input binding: it folds one raw event into the user state.
// The Info describes the running canvas (dimensions, DPI scale, pacing)
// and must be treated as read-only. Bindings registered for the same
// event kind run in registration order.
type Handler[S any] func(info *Info, state *S, ev input.Event)

// Info is the canvas configuration. It is immutable once Render is called.
type Info struct {
	// Width and Height of the canvas in virtual pixels.
	Width, Height int
	// Title is the base window title.
	Title string
	// FrameInterval is the pacing target for the render loop.
	FrameInterval time.Duration
	// HiDPI renders at the monitor's full pixel density. The virtual
	// dimensions are multiplied by DPI to produce the buffer resolution.
	HiDPI bool
	// DPI is the scale factor in effect, filled in at launch.
	DPI float64
	// ShowMS appends the frame draw time to the window title.
	ShowMS bool
	// RenderOnChange draws a new frame only on ticks where an input
	// binding ran. The first frame is always drawn.
	RenderOnChange bool
	// Policy is the buffer swap policy.
	Policy Policy
}

type binding[S any] struct {
	kind input.Kind
	all  bool
	fn   Handler[S]
}

// Canvas manages a window and render loop, handing the current state to
// your draw callback and presenting its image on the screen. The builder
// methods each return an updated canvas without modifying the receiver,
// so partial configurations can be reused safely.
type Canvas[S any] struct {
	info     Info
	state    S
	bindings []binding[S]
	surface  graphics.Surface
}

// New creates a canvas with the given virtual dimensions and initial user
// state. Use struct{}{} as the state for art that needs no input.
func New[S any](width, height int, state S) Canvas[S] {
	return Canvas[S]{
		info: Info{
			Width:         width,
			Height:        height,
			Title:         "Canvas",
			FrameInterval: time.Second / 60,
		},
		state: state,
	}
}

// Title sets the window title.
func (c Canvas[S]) Title(title string) Canvas[S] {
	c.info.Title = title
	return c
}

// FrameRate sets the pacing target in frames per second. The default is
// 60 fps.
func (c Canvas[S]) FrameRate(fps int) Canvas[S] {
	if fps > 0 {
		c.info.FrameInterval = time.Second / time.Duration(fps)
	} else {
		c.info.FrameInterval = 0
	}
	return c
}

// FrameInterval sets the pacing target directly as a duration.
func (c Canvas[S]) FrameInterval(d time.Duration) Canvas[S] {
	c.info.FrameInterval = d
	return c
}

// HiDPI toggles rendering at the monitor's full pixel density. When
// enabled on a scaled display the buffer handed to your draw callback is
// larger than the dimensions you configured.
func (c Canvas[S]) HiDPI(enabled bool) Canvas[S] {
	c.info.HiDPI = enabled
	return c
}

// ShowMS toggles showing the frame draw time in the title bar.
func (c Canvas[S]) ShowMS(enabled bool) Canvas[S] {
	c.info.ShowMS = enabled
	return c
}

// RenderOnChange makes the loop draw a new frame only when input changed
// the state. The default is to draw at the fixed frame rate regardless.
func (c Canvas[S]) RenderOnChange(enabled bool) Canvas[S] {
	c.info.RenderOnChange = enabled
	return c
}

// SwapPolicy sets the buffer swap policy. The default is ShowLatest.
func (c Canvas[S]) SwapPolicy(p Policy) Canvas[S] {
	c.info.Policy = p
	return c
}

// Input attaches a binding invoked for every event. Bindings run in the
// order they were registered.
func (c Canvas[S]) Input(h Handler[S]) Canvas[S] {
	return c.bind(binding[S]{all: true, fn: h})
}

// InputFor attaches a binding invoked only for events of the given kind.
// Bindings run in the order they were registered; events with no matching
// binding are silently ignored.
func (c Canvas[S]) InputFor(kind input.Kind, h Handler[S]) Canvas[S] {
	return c.bind(binding[S]{kind: kind, fn: h})
}

// Surface provides the presentation surface to render into, instead of
// the default window. The canvas takes ownership and closes it when
// Render returns.
func (c Canvas[S]) Surface(s graphics.Surface) Canvas[S] {
	c.surface = s
	return c
}

func (c Canvas[S]) bind(b binding[S]) Canvas[S] {
	bindings := make([]binding[S], len(c.bindings), len(c.bindings)+1)
	copy(bindings, c.bindings)
	c.bindings = append(bindings, b)
	return c
}

func (c *Canvas[S]) validate(draw func(*S, *frame.Buffer)) error {
	if c.info.Width <= 0 || c.info.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrConfiguration, c.info.Width, c.info.Height)
	}
	if draw == nil {
		return fmt.Errorf("%w: nil draw callback", ErrConfiguration)
	}
	if c.info.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval %v", ErrConfiguration, c.info.FrameInterval)
	}
	for i, b := range c.bindings {
		if b.fn == nil {
			return fmt.Errorf("%w: nil input binding %d", ErrConfiguration, i)
		}
	}
	return nil
}
