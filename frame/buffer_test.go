package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "1x1", width: 1, height: 1},
		{name: "64x48", width: 64, height: 48},
		{name: "wide", width: 1280, height: 720},
		{name: "zero width", width: 0, height: 10, wantErr: true},
		{name: "zero height", width: 10, height: 0, wantErr: true},
		{name: "both zero", width: 0, height: 0, wantErr: true},
		{name: "negative", width: -1, height: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(tt.width, tt.height)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDimensions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, b.Width())
			assert.Equal(t, tt.height, b.Height())
			require.Len(t, b.Pix(), tt.width*tt.height)
			for _, px := range b.Pix() {
				assert.Equal(t, Black, px)
			}
		})
	}
}

func TestBufferRoundTrip(t *testing.T) {
	const w, h = 7, 5
	b, err := NewBuffer(w, h)
	require.NoError(t, err)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := RGB(uint8(x), uint8(y), uint8(x*y))
			b.Set(x, y, want)
			assert.Equal(t, want, b.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestBufferOutOfRangePanics(t *testing.T) {
	b, err := NewBuffer(4, 3)
	require.NoError(t, err)

	bad := [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, xy := range bad {
		x, y := xy[0], xy[1]
		assert.Panics(t, func() { b.At(x, y) }, "At(%d, %d)", x, y)
		assert.Panics(t, func() { b.Set(x, y, White) }, "Set(%d, %d)", x, y)
	}
	assert.Panics(t, func() { b.Row(3) })
	assert.Panics(t, func() { b.Row(-1) })
}

func TestBufferRow(t *testing.T) {
	b, err := NewBuffer(3, 2)
	require.NoError(t, err)

	row := b.Row(1)
	require.Len(t, row, 3)
	row[2] = White
	assert.Equal(t, White, b.At(2, 1))
}

func TestBufferFill(t *testing.T) {
	b, err := NewBuffer(8, 8)
	require.NoError(t, err)

	c := RGB(10, 20, 30)
	b.Fill(c)
	for i, px := range b.Pix() {
		require.Equal(t, c, px, "pixel index %d", i)
	}
}

func TestBufferBytes(t *testing.T) {
	b, err := NewBuffer(2, 1)
	require.NoError(t, err)
	b.Set(0, 0, RGB(1, 2, 3))
	b.Set(1, 0, RGB(4, 5, 6))

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, b.Bytes())
}
