package canvas

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/glfwsurface"
	"github.com/porglezomp/pixel-canvas/graphics"
	"github.com/porglezomp/pixel-canvas/input"
)

// pumpInterval bounds how long the event pump waits for a published frame
// before polling the host for input again.
const pumpInterval = time.Millisecond

// Render is the terminal, blocking call: it creates the presentation
// surface, starts the render loop, and runs the event pump until the user
// closes the window or the surface fails.
//
// The draw callback receives the current user state and a frame buffer
// matching the configured dimensions (scaled up if HiDPI is enabled).
// Whatever it leaves in the buffer is displayed. Buffers are recycled
// between frames, so the one handed to the callback may still hold the
// pixels of an earlier frame; write every pixel (or Fill first) unless
// accumulating over previous frames is intended. Panics inside the draw
// callback or an input binding are not caught; they are the user's
// responsibility and terminate the process.
//
// Render must be called from the main goroutine when using the default
// window surface; the host windowing layer requires it.
func (c Canvas[S]) Render(draw func(*S, *frame.Buffer)) error {
	if err := c.validate(draw); err != nil {
		return err
	}

	surf := c.surface
	if surf == nil {
		if err := glfwsurface.Init(); err != nil {
			return err
		}
		defer glfwsurface.Terminate()
		s, err := glfwsurface.New(c.info.Width, c.info.Height, c.info.Title, c.info.HiDPI)
		if err != nil {
			return err
		}
		surf = s
	}
	defer surf.Close()

	// Buffer resolution: virtual dimensions, or the full surface
	// resolution in HiDPI mode.
	bufW, bufH := c.info.Width, c.info.Height
	c.info.DPI = 1.0
	if c.info.HiDPI {
		fbW, fbH := surf.FramebufferSize()
		if fbW > 0 && fbH > 0 {
			bufW, bufH = fbW, fbH
			c.info.DPI = float64(fbW) / float64(c.info.Width)
		}
	}

	events := make(chan []input.Event, 64)
	l := &loop[S]{
		info:     c.info,
		state:    &c.state,
		bindings: c.bindings,
		draw:     draw,
		width:    bufW,
		height:   bufH,
		events:   events,
		frames:   make(chan published, 1),
		recycle:  make(chan *frame.Buffer, 3),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.run(ctx)
	}()

	err := c.pump(surf, l, events)

	// Let an in-progress Drawing phase complete; the loop observes the
	// cancellation at its next tick boundary.
	cancel()
	<-done

	if l.dropped > 0 {
		log.Printf("canvas: dropped %d frames", l.dropped)
	}
	return err
}

// pump runs on the calling thread: it drains host events into the relay,
// presents published frames, and recycles consumed buffers. It never
// blocks on the render loop's draw duration.
func (c *Canvas[S]) pump(surf graphics.Surface, l *loop[S], events chan<- []input.Event) error {
	ticker := time.NewTicker(pumpInterval)
	defer ticker.Stop()

	var pending [][]input.Event
	for !surf.ShouldClose() {
		if batch := surf.PollEvents(); len(batch) > 0 {
			pending = append(pending, batch)
		}
		for len(pending) > 0 {
			select {
			case events <- pending[0]:
				pending = pending[1:]
				continue
			default:
			}
			// Relay is full; retry after the next frame or tick.
			break
		}

		select {
		case pf := <-l.frames:
			if err := surf.Present(pf.buf); err != nil {
				log.Printf("canvas: presentation failed, shutting down: %v", err)
				return fmt.Errorf("presenting frame %d: %w", pf.seq, err)
			}
			if c.info.ShowMS {
				surf.SetTitle(fmt.Sprintf("%s - %3dms", c.info.Title, pf.drawTime.Milliseconds()))
			}
			l.giveBack(pf.buf)
		case <-ticker.C:
		}
	}
	return nil
}
