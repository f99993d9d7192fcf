// Package graphics defines the boundary between the canvas core and the
// host presentation layer.
package graphics

import (
	"errors"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/input"
)

// ErrSurfaceCreation indicates the host environment could not open a
// window or display buffer of the requested size.
var ErrSurfaceCreation = errors.New("graphics: surface creation failed")

// ErrPresentation indicates a completed frame could not be shown because
// the surface was severed or destroyed. It is fatal for the running
// canvas; a failed display surface is not expected to recover.
var ErrPresentation = errors.New("graphics: presentation failed")

// Surface is the host-provided window/display abstraction the canvas
// writes pixels into. The canvas only needs these primitives; everything
// else about windowing is the surface's business.
//
// All methods must be called from the thread that created the surface.
type Surface interface {
	// PollEvents drains and returns the pending input and window events,
	// in the order the host delivered them. It must not block beyond the
	// host's own event dispatch.
	PollEvents() []input.Event

	// Present converts the buffer to the host display format and shows
	// it. The buffer is fully drawn before Present is called and is not
	// written again until the canvas recycles it.
	Present(*frame.Buffer) error

	// SetTitle updates the window title.
	SetTitle(title string)

	// FramebufferSize reports the surface size in physical pixels.
	FramebufferSize() (int, int)

	// ShouldClose reports whether the user has requested the window to
	// close.
	ShouldClose() bool

	// Close destroys the surface.
	Close()
}
