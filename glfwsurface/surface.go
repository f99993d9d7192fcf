// Package glfwsurface implements the graphics.Surface boundary on top of
// GLFW and OpenGL: it owns the window, translates host events into
// input.Events, and presents frame buffers with a textured-quad blit.
package glfwsurface

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/graphics"
	"github.com/porglezomp/pixel-canvas/input"
)

var glInitOnce sync.Once

// Surface is a GLFW window implementing graphics.Surface. All methods
// must be called from the thread that called Init.
type Surface struct {
	window *glfw.Window
	hidpi  bool

	// Events queued by the GLFW callbacks between PollEvents calls.
	// Callbacks only fire inside glfw.PollEvents on this thread, so no
	// locking is needed.
	queue []input.Event

	presenter *presenter
}

// Init initializes the windowing layer. Must be called from the main
// thread, which it locks.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", graphics.ErrSurfaceCreation, err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate shuts down the windowing layer. Must be called from the main
// thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// New creates a window with the given virtual dimensions and makes its GL
// context current on the calling thread.
func New(width, height int, title string, hidpi bool) (*Surface, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d window: %v", graphics.ErrSurfaceCreation, width, height, err)
	}

	s := &Surface{window: win, hidpi: hidpi}
	win.SetCursorPosCallback(s.onCursorPos)
	win.SetMouseButtonCallback(s.onMouseButton)
	win.SetKeyCallback(s.onKey)
	win.SetCharCallback(s.onChar)
	win.SetFramebufferSizeCallback(s.onFramebufferSize)
	win.SetCloseCallback(s.onClose)

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: initializing OpenGL: %v", graphics.ErrSurfaceCreation, initErr)
	}

	return s, nil
}

// PollEvents pumps the host event queue and returns the translated events
// in delivery order.
func (s *Surface) PollEvents() []input.Event {
	glfw.PollEvents()
	evs := s.queue
	s.queue = nil
	return evs
}

// Present uploads the buffer to a texture and blits it across the window.
func (s *Surface) Present(buf *frame.Buffer) error {
	if s.window == nil {
		return fmt.Errorf("%w: surface destroyed", graphics.ErrPresentation)
	}
	if s.presenter == nil {
		p, err := newPresenter(buf.Width(), buf.Height())
		if err != nil {
			return err
		}
		s.presenter = p
	}

	fbW, fbH := s.window.GetFramebufferSize()
	if err := s.presenter.blit(buf, fbW, fbH); err != nil {
		return err
	}
	s.window.SwapBuffers()
	return nil
}

// SetTitle updates the window title.
func (s *Surface) SetTitle(title string) {
	s.window.SetTitle(title)
}

// FramebufferSize reports the window's framebuffer size in physical
// pixels.
func (s *Surface) FramebufferSize() (int, int) {
	return s.window.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window.
func (s *Surface) ShouldClose() bool {
	return s.window.ShouldClose()
}

// Close destroys the window and its GL resources.
func (s *Surface) Close() {
	if s.window == nil {
		return
	}
	if s.presenter != nil {
		s.presenter.destroy()
		s.presenter = nil
	}
	s.window.Destroy()
	s.window = nil
}

// imageCoords converts window cursor coordinates to frame buffer
// coordinates: lower-left origin, scaled to physical pixels in HiDPI mode.
func (s *Surface) imageCoords(x, y float64) (int, int) {
	winW, winH := s.window.GetSize()
	scale := 1.0
	if s.hidpi && winW > 0 {
		fbW, _ := s.window.GetFramebufferSize()
		scale = float64(fbW) / float64(winW)
	}
	return int(x * scale), int((float64(winH) - y) * scale)
}

func (s *Surface) onCursorPos(w *glfw.Window, x, y float64) {
	ix, iy := s.imageCoords(x, y)
	s.queue = append(s.queue, input.MouseMove{
		X: ix, Y: iy,
		ScreenX: int(x), ScreenY: int(y),
	})
}

func (s *Surface) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b input.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = input.ButtonLeft
	case glfw.MouseButtonRight:
		b = input.ButtonRight
	case glfw.MouseButtonMiddle:
		b = input.ButtonMiddle
	default:
		return
	}
	x, y := s.imageCoords(w.GetCursorPos())
	s.queue = append(s.queue, input.MouseButton{
		Button:  b,
		Pressed: action == glfw.Press,
		X:       x, Y: y,
	})
}

func (s *Surface) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	switch action {
	case glfw.Press:
		s.queue = append(s.queue, input.Key{Code: input.KeyCode(key), Pressed: true})
	case glfw.Release:
		s.queue = append(s.queue, input.Key{Code: input.KeyCode(key), Pressed: false})
	}
}

func (s *Surface) onChar(w *glfw.Window, r rune) {
	s.queue = append(s.queue, input.Char{Rune: r})
}

func (s *Surface) onFramebufferSize(w *glfw.Window, width, height int) {
	s.queue = append(s.queue, input.Resize{Width: width, Height: height})
}

func (s *Surface) onClose(w *glfw.Window) {
	s.queue = append(s.queue, input.Close{})
}
