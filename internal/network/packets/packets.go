// Package packets defines protocol message blocks that carry primitive
// appearance data.
package packets

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/Faultbox/midgard-sl/pkg/primitive"
)

// Field limits of the variable-length fields.
const (
	MaxMediaURLLen     = 255   // Variable1: one length byte
	MaxTextureEntryLen = 65535 // Variable2: two length bytes
	MaxObjectBlocks    = 255
)

// ObjectImageBlock sets the appearance of one object (ObjectImage.ObjectData).
type ObjectImageBlock struct {
	ObjectLocalID uint32
	MediaURL      string
	TextureEntry  []byte
}

// NewObjectImageBlock packs te into a block for the object with localID.
func NewObjectImageBlock(localID uint32, mediaURL string, te *primitive.TextureEntry) ObjectImageBlock {
	return ObjectImageBlock{
		ObjectLocalID: localID,
		MediaURL:      mediaURL,
		TextureEntry:  te.GetBytes(),
	}
}

// Textures decodes the block's texture entry.
func (b *ObjectImageBlock) Textures() *primitive.TextureEntry {
	return primitive.ParseTextureEntry(b.TextureEntry)
}

func (b *ObjectImageBlock) mediaURL() []byte {
	url := []byte(b.MediaURL)
	if len(url) > MaxMediaURLLen {
		url = url[:MaxMediaURLLen]
	}
	return url
}

func (b *ObjectImageBlock) textureEntry() []byte {
	te := b.TextureEntry
	if len(te) > MaxTextureEntryLen {
		te = te[:MaxTextureEntryLen]
	}
	return te
}

// Size returns the encoded block size.
func (b *ObjectImageBlock) Size() int {
	return 4 + 1 + len(b.mediaURL()) + 2 + len(b.textureEntry())
}

// ObjectImage is sent by the client to change object textures.
type ObjectImage struct {
	AgentID   uuid.UUID
	SessionID uuid.UUID
	Objects   []ObjectImageBlock
}

// Size returns packet body size.
func (p *ObjectImage) Size() int {
	size := 16 + 16 + 1
	for i := range p.objects() {
		size += p.Objects[i].Size()
	}
	return size
}

func (p *ObjectImage) objects() []ObjectImageBlock {
	if len(p.Objects) > MaxObjectBlocks {
		return p.Objects[:MaxObjectBlocks]
	}
	return p.Objects
}

// Encode encodes the packet body to bytes.
// Oversized fields and block lists are truncated to their wire limits.
func (p *ObjectImage) Encode() []byte {
	objects := p.objects()
	buf := make([]byte, p.Size())
	copy(buf[0:16], p.AgentID[:])
	copy(buf[16:32], p.SessionID[:])
	buf[32] = byte(len(objects))

	off := 33
	for i := range objects {
		b := &objects[i]
		WriteUint32(buf, off, b.ObjectLocalID)
		off += 4

		url := b.mediaURL()
		buf[off] = byte(len(url))
		off++
		off += copy(buf[off:], url)

		te := b.textureEntry()
		WriteUint16(buf, off, uint16(len(te)))
		off += 2
		off += copy(buf[off:], te)
	}
	return buf
}

// DecodeObjectImage decodes an ObjectImage body.
// Returns nil if data is too short for the fields it announces.
func DecodeObjectImage(data []byte) *ObjectImage {
	if len(data) < 33 {
		return nil
	}

	p := &ObjectImage{}
	copy(p.AgentID[:], data[0:16])
	copy(p.SessionID[:], data[16:32])
	count := int(data[32])

	off := 33
	for i := 0; i < count; i++ {
		if len(data)-off < 5 {
			return nil
		}
		var b ObjectImageBlock
		b.ObjectLocalID = ReadUint32(data, off)
		off += 4

		urlLen := int(data[off])
		off++
		if len(data)-off < urlLen+2 {
			return nil
		}
		b.MediaURL = string(data[off : off+urlLen])
		off += urlLen

		teLen := int(ReadUint16(data, off))
		off += 2
		if len(data)-off < teLen {
			return nil
		}
		b.TextureEntry = append([]byte(nil), data[off:off+teLen]...)
		off += teLen

		p.Objects = append(p.Objects, b)
	}

	return p
}

// WriteUint16 writes a uint16 in little-endian format.
func WriteUint16(buf []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(buf[offset:], v)
}

// WriteUint32 writes a uint32 in little-endian format.
func WriteUint32(buf []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}

// ReadUint16 reads a uint16 in little-endian format.
func ReadUint16(buf []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(buf[offset:])
}

// ReadUint32 reads a uint32 in little-endian format.
func ReadUint32(buf []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(buf[offset:])
}
