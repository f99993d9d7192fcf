package canvas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porglezomp/pixel-canvas/frame"
	"github.com/porglezomp/pixel-canvas/input"
)

func newTestLoop(policy Policy) *loop[logState] {
	return &loop[logState]{
		info:    Info{Width: 4, Height: 4, FrameInterval: time.Millisecond, Policy: policy},
		state:   &logState{},
		width:   4,
		height:  4,
		frames:  make(chan published, 1),
		recycle: make(chan *frame.Buffer, 3),
	}
}

func mustBuffer(t *testing.T) *frame.Buffer {
	t.Helper()
	buf, err := frame.NewBuffer(4, 4)
	require.NoError(t, err)
	return buf
}

func TestPublishShowLatestDisplacesStaleFrame(t *testing.T) {
	l := newTestLoop(ShowLatest)
	ctx := context.Background()

	b1 := mustBuffer(t)
	b2 := mustBuffer(t)

	require.True(t, l.publish(ctx, published{buf: b1, seq: 1}))
	require.True(t, l.publish(ctx, published{buf: b2, seq: 2}))

	got := <-l.frames
	assert.Equal(t, uint64(2), got.seq, "latest frame wins")
	assert.Same(t, b2, got.buf)
	assert.Equal(t, uint64(1), l.dropped)

	// The displaced buffer went back to the pool for reuse.
	recycled := <-l.recycle
	assert.Same(t, b1, recycled)
}

func TestPublishNeverDropBlocksUntilConsumed(t *testing.T) {
	l := newTestLoop(NeverDrop)
	ctx := context.Background()

	require.True(t, l.publish(ctx, published{buf: mustBuffer(t), seq: 1}))

	second := make(chan bool)
	go func() {
		second <- l.publish(ctx, published{buf: mustBuffer(t), seq: 2})
	}()

	select {
	case <-second:
		t.Fatal("publish completed with an unconsumed frame pending")
	case <-time.After(20 * time.Millisecond):
	}

	first := <-l.frames
	assert.Equal(t, uint64(1), first.seq)
	assert.True(t, <-second)
	assert.Equal(t, uint64(0), l.dropped)
}

func TestPublishNeverDropUnblocksOnShutdown(t *testing.T) {
	l := newTestLoop(NeverDrop)
	ctx, cancel := context.WithCancel(context.Background())

	require.True(t, l.publish(ctx, published{buf: mustBuffer(t), seq: 1}))

	done := make(chan bool)
	go func() {
		done <- l.publish(ctx, published{buf: mustBuffer(t), seq: 2})
	}()
	cancel()
	assert.False(t, <-done)
}

func TestAcquireReusesRecycledBuffer(t *testing.T) {
	l := newTestLoop(ShowLatest)

	buf := mustBuffer(t)
	buf.Fill(frame.RGB(9, 9, 9))
	l.giveBack(buf)

	reused := l.acquire()
	assert.Same(t, buf, reused)
	// Recycled buffers are not cleared; the draw callback overwrites them.
	assert.Equal(t, frame.RGB(9, 9, 9), reused.At(0, 0))

	fresh := l.acquire()
	assert.NotSame(t, buf, fresh)
	assert.Equal(t, 4, fresh.Width())
	assert.Equal(t, 4, fresh.Height())
}

func TestGiveBackDropsWhenPoolFull(t *testing.T) {
	l := newTestLoop(ShowLatest)
	for i := 0; i < cap(l.recycle)+2; i++ {
		l.giveBack(mustBuffer(t))
	}
	assert.Len(t, l.recycle, cap(l.recycle))
}

func TestDispatchRegistrationOrderAndKindFilter(t *testing.T) {
	var calls []string
	l := newTestLoop(ShowLatest)
	l.bindings = []binding[logState]{
		{kind: input.KindChar, fn: func(*Info, *logState, input.Event) { calls = append(calls, "char") }},
		{all: true, fn: func(*Info, *logState, input.Event) { calls = append(calls, "all") }},
		{kind: input.KindKeyPress, fn: func(*Info, *logState, input.Event) { calls = append(calls, "key") }},
	}

	l.dispatch(input.Char{Rune: 'x'})
	assert.Equal(t, []string{"char", "all"}, calls)

	calls = nil
	l.dispatch(input.Key{Code: input.KeySpace, Pressed: true})
	assert.Equal(t, []string{"all", "key"}, calls)

	calls = nil
	l.dispatch(input.MouseMove{X: 1, Y: 2})
	assert.Equal(t, []string{"all"}, calls)
}

func TestDispatchIgnoresUnboundKinds(t *testing.T) {
	l := newTestLoop(ShowLatest)
	l.bindings = []binding[logState]{
		{kind: input.KindChar, fn: func(_ *Info, s *logState, _ input.Event) { s.entries = append(s.entries, "x") }},
	}

	l.dispatch(input.Resize{Width: 10, Height: 10})
	l.dispatch(input.Close{})
	assert.Empty(t, l.state.entries)
	assert.False(t, l.changed)

	l.dispatch(input.Char{Rune: 'x'})
	assert.True(t, l.changed)
}

func TestApplyPendingAppliesWholeBatches(t *testing.T) {
	events := make(chan []input.Event, 4)
	l := newTestLoop(ShowLatest)
	l.events = events
	l.bindings = []binding[logState]{
		{kind: input.KindChar, fn: func(_ *Info, s *logState, ev input.Event) {
			s.entries = append(s.entries, string(ev.(input.Char).Rune))
		}},
	}

	events <- []input.Event{input.Char{Rune: 'a'}, input.Char{Rune: 'b'}}
	events <- []input.Event{input.Char{Rune: 'c'}}

	l.applyPending()
	assert.Equal(t, []string{"a", "b", "c"}, l.state.entries)

	// Nothing pending: applyPending returns without blocking.
	l.applyPending()
	assert.Equal(t, []string{"a", "b", "c"}, l.state.entries)
}
