package primitive

import (
	"fmt"

	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

// TextureEntryFace holds the appearance of one face.
//
// A face that belongs to a TextureEntry stores only the attributes set on it
// explicitly; every other attribute is read from the entry's current default
// face. A standalone face (a default face or a clone) carries every attribute.
type TextureEntryFace struct {
	textureID uuid.UUID
	rgba      vmath.Color4
	repeatU   float32
	repeatV   float32
	offsetU   float32
	offsetV   float32
	rotation  float32
	glow      float32
	material  byte
	media     byte

	attrs TextureAttributes
	entry *TextureEntry // owning entry, nil for standalone faces
}

// NewTextureEntryFace returns a standalone face with the given texture and
// constructor defaults: white color, repeats of 1, everything else zero.
func NewTextureEntryFace(textureID uuid.UUID) *TextureEntryFace {
	return &TextureEntryFace{
		textureID: textureID,
		rgba:      vmath.White,
		repeatU:   1,
		repeatV:   1,
		attrs:     AttrAll,
	}
}

// newEntryFace returns a face of te with no explicit attributes.
func newEntryFace(te *TextureEntry) *TextureEntryFace {
	return &TextureEntryFace{
		rgba:    vmath.White,
		repeatU: 1,
		repeatV: 1,
		entry:   te,
	}
}

// resolve returns the face that supplies attr.
func (f *TextureEntryFace) resolve(attr TextureAttributes) *TextureEntryFace {
	if f.attrs&attr != 0 || f.entry == nil {
		return f
	}
	if def := f.entry.defaultFace; def != nil && def != f {
		return def
	}
	return f
}

// IsDefault reports whether the face is standalone and carries every attribute.
func (f *TextureEntryFace) IsDefault() bool {
	return f.entry == nil
}

// Has reports whether attr is set explicitly on this face.
func (f *TextureEntryFace) Has(attr TextureAttributes) bool {
	return f.attrs&attr == attr
}

// Attributes returns the explicitly set attributes.
func (f *TextureEntryFace) Attributes() TextureAttributes {
	return f.attrs
}

// Unset drops explicit attributes so they are inherited again.
// Standalone faces keep every attribute.
func (f *TextureEntryFace) Unset(attr TextureAttributes) {
	if f.entry == nil {
		return
	}
	f.attrs &^= attr
}

// TextureID returns the texture asset ID.
func (f *TextureEntryFace) TextureID() uuid.UUID {
	return f.resolve(AttrTextureID).textureID
}

// SetTextureID sets the texture asset ID.
func (f *TextureEntryFace) SetTextureID(id uuid.UUID) {
	f.textureID = id
	f.attrs |= AttrTextureID
}

// RGBA returns the face tint.
func (f *TextureEntryFace) RGBA() vmath.Color4 {
	return f.resolve(AttrRGBA).rgba
}

// SetRGBA sets the face tint.
func (f *TextureEntryFace) SetRGBA(c vmath.Color4) {
	f.rgba = c
	f.attrs |= AttrRGBA
}

// RepeatU returns the horizontal texture repeat.
func (f *TextureEntryFace) RepeatU() float32 {
	return f.resolve(AttrRepeatU).repeatU
}

// SetRepeatU sets the horizontal texture repeat.
func (f *TextureEntryFace) SetRepeatU(v float32) {
	f.repeatU = v
	f.attrs |= AttrRepeatU
}

// RepeatV returns the vertical texture repeat.
func (f *TextureEntryFace) RepeatV() float32 {
	return f.resolve(AttrRepeatV).repeatV
}

// SetRepeatV sets the vertical texture repeat.
func (f *TextureEntryFace) SetRepeatV(v float32) {
	f.repeatV = v
	f.attrs |= AttrRepeatV
}

// OffsetU returns the horizontal texture offset.
func (f *TextureEntryFace) OffsetU() float32 {
	return f.resolve(AttrOffsetU).offsetU
}

// SetOffsetU sets the horizontal texture offset.
func (f *TextureEntryFace) SetOffsetU(v float32) {
	f.offsetU = v
	f.attrs |= AttrOffsetU
}

// OffsetV returns the vertical texture offset.
func (f *TextureEntryFace) OffsetV() float32 {
	return f.resolve(AttrOffsetV).offsetV
}

// SetOffsetV sets the vertical texture offset.
func (f *TextureEntryFace) SetOffsetV(v float32) {
	f.offsetV = v
	f.attrs |= AttrOffsetV
}

// Rotation returns the texture rotation in radians.
func (f *TextureEntryFace) Rotation() float32 {
	return f.resolve(AttrRotation).rotation
}

// SetRotation sets the texture rotation in radians.
func (f *TextureEntryFace) SetRotation(v float32) {
	f.rotation = v
	f.attrs |= AttrRotation
}

// Glow returns the glow intensity.
func (f *TextureEntryFace) Glow() float32 {
	return f.resolve(AttrGlow).glow
}

// SetGlow sets the glow intensity.
func (f *TextureEntryFace) SetGlow(v float32) {
	f.glow = v
	f.attrs |= AttrGlow
}

// Material returns the packed bump/fullbright/shiny byte.
func (f *TextureEntryFace) Material() byte {
	return f.resolve(AttrMaterial).material
}

// SetMaterial sets the packed bump/fullbright/shiny byte.
func (f *TextureEntryFace) SetMaterial(b byte) {
	f.material = b
	f.attrs |= AttrMaterial
}

// Media returns the packed media-flag/mapping byte.
func (f *TextureEntryFace) Media() byte {
	return f.resolve(AttrMedia).media
}

// SetMedia sets the packed media-flag/mapping byte.
func (f *TextureEntryFace) SetMedia(b byte) {
	f.media = b
	f.attrs |= AttrMedia
}

// The sub-field setters start from the resolved byte so sibling fields
// inherited from the default survive the first write.

// Bump returns the bump map.
func (f *TextureEntryFace) Bump() Bumpiness {
	return Bumpiness(f.Material() & BumpMask)
}

// SetBump sets the bump map, leaving shininess and fullbright unchanged.
func (f *TextureEntryFace) SetBump(b Bumpiness) {
	f.SetMaterial(f.Material()&^BumpMask | byte(b)&BumpMask)
}

// Fullbright reports whether the face ignores lighting.
func (f *TextureEntryFace) Fullbright() bool {
	return f.Material()&FullbrightMask != 0
}

// SetFullbright sets the fullbright flag, leaving bump and shininess unchanged.
func (f *TextureEntryFace) SetFullbright(on bool) {
	m := f.Material() &^ FullbrightMask
	if on {
		m |= FullbrightMask
	}
	f.SetMaterial(m)
}

// Shiny returns the shininess level.
func (f *TextureEntryFace) Shiny() Shininess {
	return Shininess(f.Material() & ShinyMask)
}

// SetShiny sets the shininess level, leaving bump and fullbright unchanged.
func (f *TextureEntryFace) SetShiny(s Shininess) {
	f.SetMaterial(f.Material()&^ShinyMask | byte(s)&ShinyMask)
}

// MediaFlags reports whether the face shows media.
func (f *TextureEntryFace) MediaFlags() bool {
	return f.Media()&MediaMask != 0
}

// SetMediaFlags sets the media flag, leaving the mapping type unchanged.
func (f *TextureEntryFace) SetMediaFlags(on bool) {
	m := f.Media() &^ MediaMask
	if on {
		m |= MediaMask
	}
	f.SetMedia(m)
}

// TexMapType returns the texture mapping type.
func (f *TextureEntryFace) TexMapType() MappingType {
	return MappingType(f.Media() & TexMapMask)
}

// SetTexMapType sets the mapping type, leaving the media flag unchanged.
func (f *TextureEntryFace) SetTexMapType(m MappingType) {
	f.SetMedia(f.Media()&^TexMapMask | byte(m)&TexMapMask)
}

// Clone returns a standalone face holding the resolved value of every attribute.
func (f *TextureEntryFace) Clone() *TextureEntryFace {
	return &TextureEntryFace{
		textureID: f.TextureID(),
		rgba:      f.RGBA(),
		repeatU:   f.RepeatU(),
		repeatV:   f.RepeatV(),
		offsetU:   f.OffsetU(),
		offsetV:   f.OffsetV(),
		rotation:  f.Rotation(),
		glow:      f.Glow(),
		material:  f.Material(),
		media:     f.Media(),
		attrs:     AttrAll,
	}
}

// String returns a one-line summary of the resolved attributes.
func (f *TextureEntryFace) String() string {
	return fmt.Sprintf("Texture: %s RGBA: %s RepeatU: %g RepeatV: %g OffsetU: %g OffsetV: %g "+
		"Rotation: %g Bump: %s Shiny: %s Fullbright: %t Mapping: %s Media: %t Glow: %g",
		f.TextureID(), f.RGBA(), f.RepeatU(), f.RepeatV(), f.OffsetU(), f.OffsetV(),
		f.Rotation(), f.Bump(), f.Shiny(), f.Fullbright(), f.TexMapType(), f.MediaFlags(), f.Glow())
}
