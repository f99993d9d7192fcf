package frame

// Color is a single RGB-888 pixel value. It is a plain value type with no
// identity; copy it freely.
type Color struct {
	R, G, B uint8
}

var (
	// Black is the all-zero color, the default for a fresh buffer.
	Black = Color{}
	// White is the full-intensity color.
	White = Color{R: 255, G: 255, B: 255}
)

// RGB is a convenience constructor for a color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Blend interpolates between c and other entirely in integer math.
// A factor of 0 yields c, 255 yields other, 128 the midpoint.
func (c Color) Blend(other Color, factor uint8) Color {
	return Color{
		R: blend8(c.R, other.R, factor),
		G: blend8(c.G, other.G, factor),
		B: blend8(c.B, other.B, factor),
	}
}

// BlendF interpolates between c and other with a floating point factor
// in [0, 1].
func (c Color) BlendF(other Color, factor float32) Color {
	return Color{
		R: blendF8(c.R, other.R, factor),
		G: blendF8(c.G, other.G, factor),
		B: blendF8(c.B, other.B, factor),
	}
}

// Add returns the channelwise saturating sum of two colors.
func (c Color) Add(rhs Color) Color {
	return Color{
		R: satAdd(c.R, rhs.R),
		G: satAdd(c.G, rhs.G),
		B: satAdd(c.B, rhs.B),
	}
}

// Sub returns the channelwise saturating difference of two colors.
func (c Color) Sub(rhs Color) Color {
	return Color{
		R: satSub(c.R, rhs.R),
		G: satSub(c.G, rhs.G),
		B: satSub(c.B, rhs.B),
	}
}

// Mul returns the channelwise product of two colors, treating each
// channel as a fraction of 256.
func (c Color) Mul(rhs Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(rhs.R) >> 8),
		G: uint8(uint16(c.G) * uint16(rhs.G) >> 8),
		B: uint8(uint16(c.B) * uint16(rhs.B) >> 8),
	}
}

// Scale darkens the color by a factor, 255 being identity.
func (c Color) Scale(factor uint8) Color {
	return Black.Blend(c, factor)
}

// ScaleF darkens the color by a floating point factor in [0, 1].
func (c Color) ScaleF(factor float32) Color {
	return Black.BlendF(c, factor)
}

func blend8(a, b, factor uint8) uint8 {
	return uint8(int(a) + (int(b)-int(a))*int(factor)/255)
}

func blendF8(a, b uint8, factor float32) uint8 {
	return uint8(float32(a)*(1.0-factor) + float32(b)*factor)
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
