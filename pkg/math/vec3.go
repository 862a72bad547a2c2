// Package math provides the value types carried by primitives on the wire.
package math

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Vec3Size is the wire size of a Vec3 in bytes.
const Vec3Size = 12

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// GetBytes returns the 12-byte little-endian encoding (X, Y, Z).
func (v Vec3) GetBytes() []byte {
	buf := make([]byte, Vec3Size)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(v.Z))
	return buf
}

// Vec3FromBytes decodes a Vec3 from data at pos.
// Returns false if fewer than 12 bytes are available.
func Vec3FromBytes(data []byte, pos int) (Vec3, bool) {
	if pos < 0 || len(data)-pos < Vec3Size {
		return Vec3{}, false
	}
	return Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(data[pos:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(data[pos+4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(data[pos+8:])),
	}, true
}

// String returns "<X, Y, Z>".
func (v Vec3) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}
