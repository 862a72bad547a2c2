package primitive

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

// TextureEntry is the texture assignment of a primitive: one default face
// plus up to MaxFaces per-face overrides.
//
// An entry parsed from an empty buffer has no default face at all. Callers
// must check HasDefault before using it; GetFace and CreateFace return
// ErrNoDefaultTexture on such an entry.
//
// A TextureEntry is not safe for concurrent mutation.
type TextureEntry struct {
	defaultFace *TextureEntryFace
	faces       [MaxFaces]*TextureEntryFace

	truncated   bool
	truncatedAt Channel
}

// NewTextureEntry returns an entry whose default face uses defaultTexture.
func NewTextureEntry(defaultTexture uuid.UUID) *TextureEntry {
	return &TextureEntry{defaultFace: NewTextureEntryFace(defaultTexture)}
}

// NewTextureEntryFromFace returns an entry using def as its default face.
// A standalone def is shared, not copied, and must be treated as read-only
// once other entries use it. A face owned by another entry is cloned.
func NewTextureEntryFromFace(def *TextureEntryFace) *TextureEntry {
	if def == nil {
		return &TextureEntry{}
	}
	if !def.IsDefault() {
		def = def.Clone()
	}
	return &TextureEntry{defaultFace: def}
}

// HasDefault reports whether the entry has a default face.
func (te *TextureEntry) HasDefault() bool {
	return te.defaultFace != nil
}

// DefaultTexture returns the default face, or nil for an empty entry.
func (te *TextureEntry) DefaultTexture() *TextureEntryFace {
	return te.defaultFace
}

// SetDefaultTexture replaces the default face. Materialized faces inherit
// from the new default from then on.
func (te *TextureEntry) SetDefaultTexture(def *TextureEntryFace) error {
	if def == nil {
		return ErrNoDefaultTexture
	}
	if !def.IsDefault() {
		def = def.Clone()
	}
	te.defaultFace = def
	return nil
}

func checkFaceIndex(index int) error {
	if index < 0 || index >= MaxFaces {
		return fmt.Errorf("%w: %d", ErrFaceIndexOutOfRange, index)
	}
	return nil
}

// CreateFace returns the face at index, materializing it if needed.
// A new face inherits every attribute from the default face.
func (te *TextureEntry) CreateFace(index int) (*TextureEntryFace, error) {
	if err := checkFaceIndex(index); err != nil {
		return nil, err
	}
	if te.defaultFace == nil {
		return nil, ErrNoDefaultTexture
	}
	return te.createFace(index), nil
}

func (te *TextureEntry) createFace(index int) *TextureEntryFace {
	if te.faces[index] == nil {
		te.faces[index] = newEntryFace(te)
	}
	return te.faces[index]
}

// GetFace returns the face at index, or the default face when the slot was
// never materialized. Writing to the returned default face changes every
// face that inherits from it.
func (te *TextureEntry) GetFace(index int) (*TextureEntryFace, error) {
	if err := checkFaceIndex(index); err != nil {
		return nil, err
	}
	if te.defaultFace == nil {
		return nil, ErrNoDefaultTexture
	}
	if f := te.faces[index]; f != nil {
		return f, nil
	}
	return te.defaultFace, nil
}

// Face returns the materialized face at index, or nil.
func (te *TextureEntry) Face(index int) *TextureEntryFace {
	if index < 0 || index >= MaxFaces {
		return nil
	}
	return te.faces[index]
}

// RemoveFace drops the override at index so the face uses the default again.
func (te *TextureEntry) RemoveFace(index int) error {
	if err := checkFaceIndex(index); err != nil {
		return err
	}
	te.faces[index] = nil
	return nil
}

// FaceIndices returns the indices of materialized faces in ascending order.
func (te *TextureEntry) FaceIndices() []int {
	var out []int
	for i, f := range te.faces {
		if f != nil {
			out = append(out, i)
		}
	}
	return out
}

// Truncated reports whether the buffer the entry was parsed from ended
// early, and the first channel whose data was incomplete.
func (te *TextureEntry) Truncated() (Channel, bool) {
	return te.truncatedAt, te.truncated
}

// channelCodec describes how one channel is written and read.
// put writes the resolved value of f into buf; get stores buf into f.
type channelCodec struct {
	channel Channel
	width   int
	put     func(buf []byte, f *TextureEntryFace)
	get     func(buf []byte, f *TextureEntryFace)
}

// channels lists the wire channels in order. Comparing the put output of two
// faces is the diff test, so values are always compared after quantization.
var channels = [...]channelCodec{
	{
		channel: ChannelTextureID,
		width:   16,
		put: func(buf []byte, f *TextureEntryFace) {
			id := f.TextureID()
			copy(buf, id[:])
		},
		get: func(buf []byte, f *TextureEntryFace) {
			var id uuid.UUID
			copy(id[:], buf)
			f.SetTextureID(id)
		},
	},
	{
		channel: ChannelColor,
		width:   vmath.Color4Size,
		put: func(buf []byte, f *TextureEntryFace) {
			b := f.RGBA().GetBytes(true)
			copy(buf, b[:])
		},
		get: func(buf []byte, f *TextureEntryFace) {
			c, _ := vmath.Color4FromBytes(buf, 0, true)
			f.SetRGBA(c)
		},
	},
	{
		channel: ChannelRepeatU,
		width:   4,
		put: func(buf []byte, f *TextureEntryFace) {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(f.RepeatU()))
		},
		get: func(buf []byte, f *TextureEntryFace) {
			f.SetRepeatU(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
		},
	},
	{
		channel: ChannelRepeatV,
		width:   4,
		put: func(buf []byte, f *TextureEntryFace) {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(f.RepeatV()))
		},
		get: func(buf []byte, f *TextureEntryFace) {
			f.SetRepeatV(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
		},
	},
	{
		channel: ChannelOffsetU,
		width:   2,
		put: func(buf []byte, f *TextureEntryFace) {
			binary.LittleEndian.PutUint16(buf, OffsetToUint16(f.OffsetU()))
		},
		get: func(buf []byte, f *TextureEntryFace) {
			f.SetOffsetU(Uint16ToOffset(binary.LittleEndian.Uint16(buf)))
		},
	},
	{
		channel: ChannelOffsetV,
		width:   2,
		put: func(buf []byte, f *TextureEntryFace) {
			binary.LittleEndian.PutUint16(buf, OffsetToUint16(f.OffsetV()))
		},
		get: func(buf []byte, f *TextureEntryFace) {
			f.SetOffsetV(Uint16ToOffset(binary.LittleEndian.Uint16(buf)))
		},
	},
	{
		channel: ChannelRotation,
		width:   2,
		put: func(buf []byte, f *TextureEntryFace) {
			binary.LittleEndian.PutUint16(buf, RotationToUint16(f.Rotation()))
		},
		get: func(buf []byte, f *TextureEntryFace) {
			f.SetRotation(Uint16ToRotation(binary.LittleEndian.Uint16(buf)))
		},
	},
	{
		channel: ChannelMaterial,
		width:   1,
		put:     func(buf []byte, f *TextureEntryFace) { buf[0] = f.Material() },
		get:     func(buf []byte, f *TextureEntryFace) { f.SetMaterial(buf[0]) },
	},
	{
		channel: ChannelMedia,
		width:   1,
		put:     func(buf []byte, f *TextureEntryFace) { buf[0] = f.Media() },
		get:     func(buf []byte, f *TextureEntryFace) { f.SetMedia(buf[0]) },
	},
	{
		channel: ChannelGlow,
		width:   1,
		put:     func(buf []byte, f *TextureEntryFace) { buf[0] = GlowToByte(f.Glow()) },
		get:     func(buf []byte, f *TextureEntryFace) { f.SetGlow(ByteToGlow(buf[0])) },
	},
}

// maxChannelWidth bounds the scratch buffers used while encoding.
const maxChannelWidth = 16

// ParseTextureEntry decodes the packed network form.
//
// Decoding is lenient: data that ends inside a channel stops the decode at
// that channel, keeps everything read so far and leaves later channels at
// their constructor defaults. Truncated reports where this happened. An
// empty buffer yields an entry without a default face.
func ParseTextureEntry(data []byte) *TextureEntry {
	te := &TextureEntry{}
	if len(data) == 0 {
		return te
	}
	te.defaultFace = NewTextureEntryFace(uuid.Nil)
	te.decode(data)
	return te
}

// NewTextureEntryFromBytes decodes length bytes of data starting at pos.
// The window is clipped to the bounds of data.
func NewTextureEntryFromBytes(data []byte, pos, length int) *TextureEntry {
	if pos < 0 || length <= 0 || pos >= len(data) {
		return ParseTextureEntry(nil)
	}
	end := pos + length
	if end > len(data) || end < pos {
		end = len(data)
	}
	return ParseTextureEntry(data[pos:end])
}

func (te *TextureEntry) decode(data []byte) {
	i := 0
	for _, c := range channels {
		if len(data)-i < c.width {
			te.truncated, te.truncatedAt = true, c.channel
			return
		}
		c.get(data[i:i+c.width], te.defaultFace)
		i += c.width

		for {
			mask, size, next, ok := DecodeFaceBitfield(data, i)
			i = next
			if !ok {
				break
			}
			if len(data)-i < c.width {
				te.truncated, te.truncatedAt = true, c.channel
				return
			}
			value := data[i : i+c.width]
			i += c.width

			for face := 0; face < size && face < MaxFaces; face++ {
				if mask&(1<<uint(face)) != 0 {
					c.get(value, te.createFace(face))
				}
			}
		}
	}
}

// GetBytes encodes the entry into the packed network form.
//
// Each channel is written as the default value, then one (face bitfield,
// value) run for every materialized face whose quantized value differs from
// the default, then a zero terminator. Faces sharing an override value still
// get a run each. An entry without a default face encodes to nothing.
func (te *TextureEntry) GetBytes() []byte {
	if te.defaultFace == nil {
		return []byte{}
	}

	buf := new(bytes.Buffer)
	var defValue, faceValue [maxChannelWidth]byte

	for _, c := range channels {
		def := defValue[:c.width]
		c.put(def, te.defaultFace)
		buf.Write(def)

		for i, f := range te.faces {
			if f == nil {
				continue
			}
			value := faceValue[:c.width]
			c.put(value, f)
			if bytes.Equal(value, def) {
				continue
			}
			buf.Write(EncodeFaceBitfield(1 << uint(i)))
			buf.Write(value)
		}

		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// String returns a multi-line summary of the default and materialized faces.
func (te *TextureEntry) String() string {
	if te.defaultFace == nil {
		return "TextureEntry: <no default>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Default: %s\n", te.defaultFace)
	for _, i := range te.FaceIndices() {
		fmt.Fprintf(&sb, "Face %d: %s\n", i, te.faces[i])
	}
	return sb.String()
}
