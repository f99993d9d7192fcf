// A spirograph whose shape follows the mouse.
package main

import (
	"flag"
	"log"
	"math"
	"runtime"

	canvas "github.com/porglezomp/pixel-canvas/canvas"
	frame "github.com/porglezomp/pixel-canvas/frame"
	input "github.com/porglezomp/pixel-canvas/input"
	vmath "github.com/porglezomp/pixel-canvas/vmath"
)

func init() {
	runtime.LockOSThread()
}

func spirograph(l, k, t float32) (float32, float32) {
	const radius = 0.9
	k = vmath.Clamp(k, 0.001, 1.0)
	k1 := 1.0 - k
	k2 := k1 * t / k
	x := radius * (k1*cosf(t) + l*k*cosf(k2))
	y := radius * (k1*sinf(t) - l*k*sinf(k2))
	return x, y
}

func cosf(v float32) float32 { return float32(math.Cos(float64(v))) }
func sinf(v float32) float32 { return float32(math.Sin(float64(v))) }

// shape holds the spirograph parameters, updated from the mouse position.
type shape struct {
	l, k float32
}

func main() {
	var width = flag.Int("width", 1280, "Width of the canvas")
	var height = flag.Int("height", 720, "Height of the canvas")
	var fps = flag.Int("fps", 60, "Target frame rate")
	flag.Parse()

	c := canvas.New(*width, *height, shape{}).
		Title("Spirograph").
		HiDPI(true).
		FrameRate(*fps).
		InputFor(input.KindMouseMove, func(info *canvas.Info, s *shape, ev input.Event) {
			m := ev.(input.MouseMove)
			s.l = vmath.Remap(float32(m.ScreenX/15*15), 0, float32(info.Width), 0, 1)
			s.k = vmath.Remap(float32(m.ScreenY/15*15), 0, float32(info.Height), 0, 1)
		})

	pen := frame.RGB(127, 255, 0)
	err := c.Render(func(s *shape, img *frame.Buffer) {
		img.Fill(frame.Black)
		aspect := float32(min(img.Width(), img.Height()))
		for i := 0; i < 100000; i++ {
			x, y := spirograph(s.l, s.k, float32(i)/100.0)
			px := int(x*aspect/2.0) + img.Width()/2
			py := int(y*aspect/2.0) + img.Height()/2
			px = vmath.Clamp(px, 0, img.Width()-1)
			py = vmath.Clamp(py, 0, img.Height()-1)
			img.Set(px, py, pen)
		}
	})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
