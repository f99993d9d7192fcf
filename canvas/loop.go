package canvas

import (
	"context"
	"time"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/input"
)

// published is one completed frame handed from the render loop to the
// event pump. The buffer is never written again until the pump recycles it.
type published struct {
	buf      *frame.Buffer
	drawTime time.Duration
	seq      uint64
}

// loop is the render side of the canvas: it owns the user state and the
// draw callback, and cycles Idle -> Drawing -> Publishing at the
// configured interval. All state access happens on the loop goroutine, so
// input handlers and the draw callback are never concurrent with each
// other.
type loop[S any] struct {
	info     Info
	state    *S
	bindings []binding[S]
	draw     func(*S, *frame.Buffer)

	// Buffer dimensions, after any HiDPI scaling.
	width, height int

	events  <-chan []input.Event
	frames  chan published
	recycle chan *frame.Buffer

	seq     uint64
	dropped uint64
	changed bool
}

func (l *loop[S]) run(ctx context.Context) {
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.applyPending()

		start := time.Now()
		if first || l.changed || !l.info.RenderOnChange {
			buf := l.acquire()
			l.draw(l.state, buf)
			drawTime := time.Since(start)

			l.seq++
			if !l.publish(ctx, published{buf: buf, drawTime: drawTime, seq: l.seq}) {
				return
			}
			l.changed = false
			first = false
		}

		// Best-effort fixed-rate pacing: suspend for the remainder of the
		// interval, or proceed immediately when the frame ran long. No
		// catch-up draws, so overload never accumulates debt.
		if remain := l.info.FrameInterval - time.Since(start); remain > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(remain):
			}
		}
	}
}

// applyPending folds every event batch already delivered by the pump into
// the user state, preserving arrival order. A batch is applied whole, so a
// Drawing phase never observes part of one poll's events. Events arriving
// after this point are deferred to the next tick.
func (l *loop[S]) applyPending() {
	for {
		select {
		case batch := <-l.events:
			for _, ev := range batch {
				l.dispatch(ev)
			}
		default:
			return
		}
	}
}

func (l *loop[S]) dispatch(ev input.Event) {
	kind := ev.Kind()
	for _, b := range l.bindings {
		if b.all || b.kind == kind {
			b.fn(&l.info, l.state, ev)
			l.changed = true
		}
	}
}

// acquire returns the next working buffer, reusing a presented one when
// the pump has returned it. A reused buffer keeps the pixels of the frame
// it last carried; the draw callback is responsible for overwriting them.
func (l *loop[S]) acquire() *frame.Buffer {
	select {
	case buf := <-l.recycle:
		return buf
	default:
	}
	buf, err := frame.NewBuffer(l.width, l.height)
	if err != nil {
		// Dimensions were validated before launch.
		panic(err)
	}
	return buf
}

// publish transfers the completed frame to the presentation path. The
// exchange is a pointer handoff; no pixels are copied. Returns false when
// shutdown interrupted a blocking publish.
func (l *loop[S]) publish(ctx context.Context, pf published) bool {
	if l.info.Policy == NeverDrop {
		select {
		case l.frames <- pf:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// ShowLatest: displace any unconsumed frame and put ours in its
	// place. The loop is the only sender, so the retry always succeeds.
	for {
		select {
		case l.frames <- pf:
			return true
		default:
		}
		select {
		case stale := <-l.frames:
			l.dropped++
			l.giveBack(stale.buf)
		default:
		}
	}
}

func (l *loop[S]) giveBack(buf *frame.Buffer) {
	select {
	case l.recycle <- buf:
	default:
		// Pool is full; let the buffer be collected.
	}
}
