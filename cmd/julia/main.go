// An interactive Julia set: the mouse position picks the complex constant.
package main

import (
	"flag"
	"log"
	"runtime"

	canvas "github.com/porglezomp/pixel-canvas/canvas"
	frame "github.com/porglezomp/pixel-canvas/frame"
)

func init() {
	runtime.LockOSThread()
}

type complexf struct {
	re, im float32
}

func (z complexf) add(w complexf) complexf {
	return complexf{z.re + w.re, z.im + w.im}
}

func (z complexf) mul(w complexf) complexf {
	return complexf{z.re*w.re - z.im*w.im, z.re*w.im + z.im*w.re}
}

func (z complexf) dist2() float32 {
	return z.re*z.re + z.im*z.im
}

func main() {
	var width = flag.Int("width", 1280, "Width of the canvas")
	var height = flag.Int("height", 720, "Height of the canvas")
	var fps = flag.Int("fps", 60, "Target frame rate")
	flag.Parse()

	c := canvas.New(*width, *height, canvas.NewMouseState()).
		Title("Julia Set").
		ShowMS(true).
		FrameRate(*fps).
		Input(canvas.HandleMouse)

	err := c.Render(func(mouse *canvas.MouseState, img *frame.Buffer) {
		halfW := img.Width() / 2
		halfH := img.Height() / 2
		scale := float32(halfH) / 1.2
		coord := func(x, y int) complexf {
			return complexf{
				re: float32(x-halfW) / scale,
				im: float32(y-halfH) / scale,
			}
		}

		constant := coord(mouse.X, mouse.Y)
		for y := 0; y < img.Height(); y++ {
			row := img.Row(y)
			for x := range row {
				z := coord(x, y)
				var g uint8
				r := uint8(255)
				for i := 0; i < 28; i++ {
					z = z.mul(z).add(constant)
					g += 9
					if z.dist2() > 4.0 {
						break
					}
				}
				if z.dist2() < 4.0 {
					r, g = 0, 0
				}
				row[x] = frame.RGB(r, g, 0)
			}
		}
	})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
