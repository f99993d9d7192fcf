package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/porglezomp/pixel-canvas/input"
)

func TestHandleMouse(t *testing.T) {
	info := &Info{Width: 640, Height: 480}
	s := NewMouseState()

	HandleMouse(info, &s, input.MouseMove{X: 10, Y: 470, ScreenX: 10, ScreenY: 10})
	assert.Equal(t, 10, s.X)
	assert.Equal(t, 470, s.Y)
	assert.Equal(t, 10, s.ScreenX)
	assert.Equal(t, 10, s.ScreenY)

	HandleMouse(info, &s, input.MouseButton{Button: input.ButtonLeft, Pressed: true, X: 10, Y: 470})
	assert.True(t, s.LeftDown)
	HandleMouse(info, &s, input.MouseButton{Button: input.ButtonRight, Pressed: false})
	assert.True(t, s.LeftDown, "right button must not affect left state")
	HandleMouse(info, &s, input.MouseButton{Button: input.ButtonLeft, Pressed: false})
	assert.False(t, s.LeftDown)

	// Unrelated events leave the state alone.
	HandleMouse(info, &s, input.Key{Code: input.KeySpace, Pressed: true})
	assert.Equal(t, 10, s.X)
}

func TestHandleMouseClampsToCanvas(t *testing.T) {
	info := &Info{Width: 640, Height: 480, DPI: 1}
	s := NewMouseState()

	HandleMouse(info, &s, input.MouseMove{X: -5, Y: 500, ScreenX: -5, ScreenY: -20})
	assert.Equal(t, 0, s.X)
	assert.Equal(t, 479, s.Y)
	assert.Equal(t, -5, s.ScreenX, "screen coordinates stay raw")

	// On a scaled display the buffer is larger than the virtual size.
	hi := &Info{Width: 640, Height: 480, HiDPI: true, DPI: 2}
	HandleMouse(hi, &s, input.MouseMove{X: 1000, Y: 2000})
	assert.Equal(t, 1000, s.X)
	assert.Equal(t, 959, s.Y)
}

func TestHandleKeys(t *testing.T) {
	info := &Info{Width: 4, Height: 4}
	s := NewKeyState()

	HandleKeys(info, &s, input.Key{Code: input.KeySpace, Pressed: true})
	HandleKeys(info, &s, input.Key{Code: input.KeyLeft, Pressed: true})
	assert.True(t, s.Held(input.KeySpace))
	assert.True(t, s.Held(input.KeyLeft))
	assert.False(t, s.Held(input.KeyRight))

	HandleKeys(info, &s, input.Key{Code: input.KeySpace, Pressed: false})
	assert.False(t, s.Held(input.KeySpace))

	// A zero-valued KeyState is still usable.
	var zero KeyState
	HandleKeys(info, &zero, input.Key{Code: input.KeyUp, Pressed: true})
	assert.True(t, zero.Held(input.KeyUp))
}
