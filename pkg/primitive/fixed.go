package primitive

import (
	"math"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

// Offsets, rotations and glow travel as fixed-point integers. Encoders never
// fail: NaN maps to zero, offsets and glow are clamped, rotations are wrapped
// into [-π, π].

const (
	offsetScale   = 32767.5
	rotationScale = 65535 / (2 * math.Pi)

	// rotationSlack absorbs float32 rounding of ±π so decoded extremes re-encode
	// to the same code instead of wrapping to the opposite end.
	rotationSlack = 1e-6
)

// OffsetToUint16 maps an offset in [-1, 1] onto the full uint16 range.
func OffsetToUint16(offset float32) uint16 {
	o := float64(offset)
	if math.IsNaN(o) {
		o = 0
	}
	o = math.Max(-1, math.Min(1, o))
	return uint16(math.Round((o + 1) * offsetScale))
}

// Uint16ToOffset is the inverse of OffsetToUint16.
func Uint16ToOffset(v uint16) float32 {
	return float32(float64(v)/offsetScale - 1)
}

// RotationToUint16 maps a rotation in radians onto the full uint16 range.
func RotationToUint16(rotation float32) uint16 {
	r := float64(rotation)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		r = 0
	}
	if math.Abs(r) > math.Pi+rotationSlack {
		r = math.Remainder(r, 2*math.Pi)
	}
	r = math.Max(-math.Pi, math.Min(math.Pi, r))
	return uint16(math.Round((r + math.Pi) * rotationScale))
}

// Uint16ToRotation is the inverse of RotationToUint16.
func Uint16ToRotation(v uint16) float32 {
	return float32(float64(v)/rotationScale - math.Pi)
}

// GlowToByte maps a glow intensity in [0, 1] to a byte.
func GlowToByte(glow float32) byte {
	return vmath.FloatToByte(glow)
}

// ByteToGlow is the inverse of GlowToByte.
func ByteToGlow(b byte) float32 {
	return vmath.ByteToFloat(b)
}

// QuantizeOffset returns offset as it survives the wire.
func QuantizeOffset(offset float32) float32 {
	return Uint16ToOffset(OffsetToUint16(offset))
}

// QuantizeRotation returns rotation as it survives the wire.
func QuantizeRotation(rotation float32) float32 {
	return Uint16ToRotation(RotationToUint16(rotation))
}

// QuantizeGlow returns glow as it survives the wire.
func QuantizeGlow(glow float32) float32 {
	return ByteToGlow(GlowToByte(glow))
}
