// Expanding rings, the simplest possible canvas: no input, no state, just
// a draw callback closing over a frame counter.
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

func main() {
	var width = flag.Int("width", 1024, "Width of the canvas")
	var height = flag.Int("height", 512, "Height of the canvas")
	var fps = flag.Int("fps", 60, "Target frame rate")
	flag.Parse()

	t := 0
	c := canvas.New(*width, *height, struct{}{}).
		Title("Rings").
		FrameRate(*fps)

	err := c.Render(func(_ *struct{}, img *frame.Buffer) {
		cx := img.Width() / 2
		cy := img.Height() / 2
		for y := 0; y < img.Height(); y++ {
			row := img.Row(y)
			for x := range row {
				dx := x - cx
				dy := y - cy
				dist := dx*dx + dy*dy
				var r uint8
				if dist < t*t {
					r = 255
				}
				g := uint8(uint16(r) * uint16(t) >> 8)
				b := uint8(uint32(g) * uint32(dist) >> 12)
				row[x] = frame.RGB(r, g, b)
			}
		}
		t++
	})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
