// Package vmath provides small math helpers for doing pixel art: a
// 3-dimensional vector and range remapping utilities.
package vmath

import "math"

// Vec3 is a 3-dimensional vector.
type Vec3 struct {
	X, Y, Z float32
}

// XYZ constructs a vector out of its components.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of two vectors.
func (v Vec3) Add(rhs Vec3) Vec3 {
	return Vec3{X: v.X + rhs.X, Y: v.Y + rhs.Y, Z: v.Z + rhs.Z}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec3) Sub(rhs Vec3) Vec3 {
	return Vec3{X: v.X - rhs.X, Y: v.Y - rhs.Y, Z: v.Z - rhs.Z}
}

// Scale multiplies every component by a scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides every component by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot computes the dot product between two vectors.
func (v Vec3) Dot(rhs Vec3) float32 {
	return v.X*rhs.X + v.Y*rhs.Y + v.Z*rhs.Z
}

// Cross computes the cross product between two vectors.
func (v Vec3) Cross(rhs Vec3) Vec3 {
	return Vec3{
		X: v.Y*rhs.Z - v.Z*rhs.Y,
		Y: v.Z*rhs.X - v.X*rhs.Z,
		Z: v.X*rhs.Y - v.Y*rhs.X,
	}
}

// Len is the length of the vector.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Len2())))
}

// Len2 is the squared length of the vector.
func (v Vec3) Len2() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal scales the vector's length to 1.
func (v Vec3) Normal() Vec3 {
	return v.Div(v.Len())
}
