package math

import (
	"encoding/binary"
	"fmt"
	"math"
)

// QuatSize is the wire size of a Quat in bytes.
const QuatSize = 16

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// GetBytes returns the 16-byte little-endian encoding (X, Y, Z, W).
func (q Quat) GetBytes() []byte {
	buf := make([]byte, QuatSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(q.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(q.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(q.Z))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(q.W))
	return buf
}

// QuatFromBytes decodes a Quat from data at pos.
// Returns false if fewer than 16 bytes are available.
func QuatFromBytes(data []byte, pos int) (Quat, bool) {
	if pos < 0 || len(data)-pos < QuatSize {
		return Quat{}, false
	}
	return Quat{
		X: math.Float32frombits(binary.LittleEndian.Uint32(data[pos:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(data[pos+4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(data[pos+8:])),
		W: math.Float32frombits(binary.LittleEndian.Uint32(data[pos+12:])),
	}, true
}

// String returns "<X, Y, Z, W>".
func (q Quat) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", q.X, q.Y, q.Z, q.W)
}
