package primitive

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
	"github.com/Faultbox/midgard-sl/pkg/osd"
)

// Primitive is a world object together with its appearance.
type Primitive struct {
	LocalID  uint32
	ID       uuid.UUID
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    vmath.Vec3

	Textures    *TextureEntry
	TextureAnim TextureAnimation

	textureDigest uint64
}

// NewPrimitive returns a primitive with identity rotation, unit scale and a
// plywood default texture.
func NewPrimitive(localID uint32, id uuid.UUID) *Primitive {
	p := &Primitive{
		LocalID:  localID,
		ID:       id,
		Rotation: vmath.QuatIdentity(),
		Scale:    vmath.Vec3{X: 1, Y: 1, Z: 1},
		Textures: NewTextureEntry(PlywoodTexture),
	}
	p.textureDigest = p.TextureDigest()
	return p
}

// TextureDigest hashes the packed form of the current texture entry.
// Entries that encode identically have the same digest.
func (p *Primitive) TextureDigest() uint64 {
	if p.Textures == nil {
		return xxhash.Sum64(nil)
	}
	return xxhash.Sum64(p.Textures.GetBytes())
}

// SetTextureEntryBytes replaces the texture entry with the decoded data and
// reports whether the appearance changed since the last update.
func (p *Primitive) SetTextureEntryBytes(data []byte) bool {
	te := ParseTextureEntry(data)
	digest := xxhash.Sum64(te.GetBytes())

	p.Textures = te
	if digest == p.textureDigest {
		return false
	}
	p.textureDigest = digest
	return true
}

// TextureEntryBytes returns the packed texture entry.
func (p *Primitive) TextureEntryBytes() []byte {
	if p.Textures == nil {
		return []byte{}
	}
	return p.Textures.GetBytes()
}

// GetOSD returns the primitive as a structured-data map.
func (p *Primitive) GetOSD() *osd.Map {
	m := osd.NewMap()
	m.Set("localid", osd.FromInteger(int(p.LocalID)))
	m.Set("id", osd.FromUUID(p.ID))
	m.Set("position", osd.FromVector3(p.Position))
	m.Set("rotation", osd.FromQuaternion(p.Rotation))
	m.Set("scale", osd.FromVector3(p.Scale))
	if p.Textures != nil {
		m.Set("textures", p.Textures.GetOSD())
	}
	m.Set("texture_anim", p.TextureAnim.GetOSD())
	return m
}

// PrimitiveFromOSD decodes a map produced by GetOSD.
func PrimitiveFromOSD(o osd.OSD) (*Primitive, error) {
	m, ok := o.(*osd.Map)
	if !ok {
		return nil, fmt.Errorf("primitive: expected map, got %s", osd.Describe(o))
	}

	p := &Primitive{
		LocalID:     uint32(m.Get("localid").AsInteger()),
		ID:          m.Get("id").AsUUID(),
		Position:    m.Get("position").AsVector3(),
		Rotation:    m.Get("rotation").AsQuaternion(),
		Scale:       m.Get("scale").AsVector3(),
		TextureAnim: TextureAnimationFromOSD(m.Get("texture_anim")),
	}

	if m.Has("textures") {
		te, err := TextureEntryFromOSD(m.Get("textures"))
		if err != nil {
			return nil, fmt.Errorf("primitive %d textures: %w", p.LocalID, err)
		}
		p.Textures = te
	} else {
		p.Textures = ParseTextureEntry(nil)
	}
	p.textureDigest = p.TextureDigest()

	return p, nil
}
