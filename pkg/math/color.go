package math

import (
	"fmt"
	"math"
)

// Color4Size is the wire size of a Color4 in bytes.
const Color4Size = 4

// Color4 is an RGBA color with components in [0, 1].
type Color4 struct {
	R, G, B, A float32
}

// Common colors.
var (
	White = Color4{1, 1, 1, 1}
	Black = Color4{0, 0, 0, 1}
)

// FloatToByte quantizes v in [0, 1] to a byte. Values outside the range are clamped.
func FloatToByte(v float32) byte {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(float64(v) * 255))
}

// ByteToFloat maps a byte back to [0, 1].
func ByteToFloat(b byte) float32 {
	return float32(b) / 255
}

// GetBytes returns the color as R, G, B, A bytes.
// With inverted set each byte is stored as 255 - value.
func (c Color4) GetBytes(inverted bool) [4]byte {
	out := [4]byte{FloatToByte(c.R), FloatToByte(c.G), FloatToByte(c.B), FloatToByte(c.A)}
	if inverted {
		for i := range out {
			out[i] = 255 - out[i]
		}
	}
	return out
}

// Color4FromBytes decodes a color from data at pos.
// Returns false if fewer than 4 bytes are available.
func Color4FromBytes(data []byte, pos int, inverted bool) (Color4, bool) {
	if pos < 0 || len(data)-pos < Color4Size {
		return Color4{}, false
	}
	var b [4]byte
	copy(b[:], data[pos:pos+Color4Size])
	if inverted {
		for i := range b {
			b[i] = 255 - b[i]
		}
	}
	return Color4{ByteToFloat(b[0]), ByteToFloat(b[1]), ByteToFloat(b[2]), ByteToFloat(b[3])}, true
}

// Quantized returns the color as it survives a round trip through its byte form.
func (c Color4) Quantized() Color4 {
	b := c.GetBytes(false)
	return Color4{ByteToFloat(b[0]), ByteToFloat(b[1]), ByteToFloat(b[2]), ByteToFloat(b[3])}
}

// String returns "<R, G, B, A>".
func (c Color4) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", c.R, c.G, c.B, c.A)
}
