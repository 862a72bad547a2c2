package primitive

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/Faultbox/midgard-sl/pkg/osd"
)

// TextureAnimationSize is the wire size of a texture animation.
const TextureAnimationSize = 16

// TextureAnimMode is a set of texture animation flags.
type TextureAnimMode uint32

// Texture animation flags.
const (
	AnimOn TextureAnimMode = 1 << iota
	AnimLoop
	AnimReverse
	AnimPingPong
	AnimSmooth
	AnimRotate
	AnimScale
)

var animModeNames = [...]string{"On", "Loop", "Reverse", "PingPong", "Smooth", "Rotate", "Scale"}

// String returns the set flags joined by "|".
func (m TextureAnimMode) String() string {
	if m == 0 {
		return "Off"
	}
	var parts []string
	for i, name := range animModeNames {
		if m&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// TextureAnimation describes a flipbook or scrolling texture animation.
type TextureAnimation struct {
	Flags  TextureAnimMode
	Face   uint32
	SizeX  uint32
	SizeY  uint32
	Start  float32
	Length float32
	Rate   float32
}

// ParseTextureAnimation decodes the 16-byte wire form.
// Short input yields the zero animation.
//
// Layout: flags, face, sizeX, sizeY (one byte each) followed by
// start, length, rate as little-endian float32.
func ParseTextureAnimation(data []byte) TextureAnimation {
	if len(data) < TextureAnimationSize {
		return TextureAnimation{}
	}
	return TextureAnimation{
		Flags:  TextureAnimMode(data[0]),
		Face:   uint32(data[1]),
		SizeX:  uint32(data[2]),
		SizeY:  uint32(data[3]),
		Start:  math.Float32frombits(binary.LittleEndian.Uint32(data[4:])),
		Length: math.Float32frombits(binary.LittleEndian.Uint32(data[8:])),
		Rate:   math.Float32frombits(binary.LittleEndian.Uint32(data[12:])),
	}
}

// GetBytes encodes the animation. Flags, face and sizes are truncated to a byte.
func (a TextureAnimation) GetBytes() []byte {
	buf := make([]byte, TextureAnimationSize)
	buf[0] = byte(a.Flags)
	buf[1] = byte(a.Face)
	buf[2] = byte(a.SizeX)
	buf[3] = byte(a.SizeY)
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(a.Start))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(a.Length))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(a.Rate))
	return buf
}

// GetOSD returns the animation as a structured-data map.
func (a TextureAnimation) GetOSD() *osd.Map {
	m := osd.NewMap()
	m.Set("face", osd.FromInteger(int(a.Face)))
	m.Set("flags", osd.FromInteger(int(a.Flags)))
	m.Set("length", osd.FromReal(float64(a.Length)))
	m.Set("rate", osd.FromReal(float64(a.Rate)))
	m.Set("size_x", osd.FromInteger(int(a.SizeX)))
	m.Set("size_y", osd.FromInteger(int(a.SizeY)))
	m.Set("start", osd.FromReal(float64(a.Start)))
	return m
}

// TextureAnimationFromOSD decodes a map produced by GetOSD.
// Anything other than a map yields the zero animation.
func TextureAnimationFromOSD(o osd.OSD) TextureAnimation {
	m, ok := o.(*osd.Map)
	if !ok {
		return TextureAnimation{}
	}
	return TextureAnimation{
		Flags:  TextureAnimMode(uint32(m.Get("flags").AsInteger())),
		Face:   uint32(m.Get("face").AsInteger()),
		SizeX:  uint32(m.Get("size_x").AsInteger()),
		SizeY:  uint32(m.Get("size_y").AsInteger()),
		Start:  float32(m.Get("start").AsReal()),
		Length: float32(m.Get("length").AsReal()),
		Rate:   float32(m.Get("rate").AsReal()),
	}
}
