// Package frame holds the pixel buffer exchanged between the render loop
// and the presentation surface, and the Color values it is made of.
//
// A Buffer has fixed dimensions for its whole lifetime. Exactly one buffer
// is being written by the render loop at any instant, and exactly one is
// published for display; the canvas swaps them by pointer exchange, so a
// displayed buffer is never partially written.
package frame

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrInvalidDimensions is returned when a buffer is requested with a zero
// width or height.
var ErrInvalidDimensions = errors.New("frame: invalid dimensions")

// Buffer is a width x height grid of Color, stored row-major in a single
// contiguous slice. Row 0 is the bottom row of the image, matching the
// lower-left pixel origin used by the presentation path.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer creates an all-black buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width is the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height is the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at (x, y). It panics if the coordinates are out of
// range; that is a programmer error, not a runtime condition.
func (b *Buffer) At(x, y int) Color {
	b.check(x, y)
	return b.pix[y*b.width+x]
}

// Set writes the pixel at (x, y). It panics if the coordinates are out of
// range.
func (b *Buffer) Set(x, y int, c Color) {
	b.check(x, y)
	b.pix[y*b.width+x] = c
}

// Row returns the y'th row as a mutable slice of length Width.
func (b *Buffer) Row(y int) []Color {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("frame: row %d out of range [0, %d)", y, b.height))
	}
	return b.pix[y*b.width : (y+1)*b.width]
}

// Pix returns the whole pixel slice for direct manipulation. The layout is
// row-major, bottom row first.
func (b *Buffer) Pix() []Color { return b.pix }

// Fill sets every pixel to a single solid color.
func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Bytes reinterprets the pixel storage as tightly packed RGB888 bytes for
// upload to the display. The slice aliases the buffer; it is only valid
// while the buffer is alive and must not outlive the next write.
func (b *Buffer) Bytes() []byte {
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*3)
}

func (b *Buffer) check(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("frame: pixel (%d, %d) out of range %dx%d", x, y, b.width, b.height))
	}
}
