// Package primitive models the appearance data of world primitives and
// converts it to and from the packed network form and the structured-data
// (OSD) form.
package primitive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxFaces is the number of addressable faces in a texture entry.
const MaxFaces = 32

// Well-known textures.
var (
	WhiteTexture   = uuid.MustParse("5748decc-f629-461c-9a36-a35a221fe21f")
	PlywoodTexture = uuid.MustParse("89556747-24cb-43ed-920b-47caed15465f")
)

// Texture entry errors.
var (
	ErrFaceIndexOutOfRange = errors.New("face index out of range")
	ErrNoDefaultTexture    = errors.New("texture entry has no default face")
	ErrMissingDefaultFace  = errors.New("structured data has no default face")
)

// Bit layout of the material and media bytes.
const (
	BumpMask       byte = 0x1F
	FullbrightMask byte = 0x20
	ShinyMask      byte = 0xC0
	MediaMask      byte = 0x01
	TexMapMask     byte = 0x06
)

// Bumpiness is the bump map applied to a face (material bits 0-4).
type Bumpiness byte

// Bump map constants.
const (
	BumpNone Bumpiness = iota
	BumpBrightness
	BumpDarkness
	BumpWoodgrain
	BumpBark
	BumpBricks
	BumpChecker
	BumpConcrete
	BumpCrustytile
	BumpCutstone
	BumpDiscs
	BumpGravel
	BumpPetridish
	BumpSiding
	BumpStonetile
	BumpStucco
	BumpSuction
	BumpWeave
)

var bumpNames = [...]string{
	"None", "Brightness", "Darkness", "Woodgrain", "Bark", "Bricks", "Checker", "Concrete",
	"Crustytile", "Cutstone", "Discs", "Gravel", "Petridish", "Siding", "Stonetile", "Stucco",
	"Suction", "Weave",
}

// String returns the bump map name.
func (b Bumpiness) String() string {
	if int(b) < len(bumpNames) {
		return bumpNames[b]
	}
	return fmt.Sprintf("Unknown(%d)", b)
}

// Shininess is the specular level of a face (material bits 6-7).
// Values are stored pre-shifted into the top two bits.
type Shininess byte

// Shininess constants.
const (
	ShinyNone   Shininess = 0x00
	ShinyLow    Shininess = 0x40
	ShinyMedium Shininess = 0x80
	ShinyHigh   Shininess = 0xC0
)

// String returns the shininess name.
func (s Shininess) String() string {
	switch s {
	case ShinyNone:
		return "None"
	case ShinyLow:
		return "Low"
	case ShinyMedium:
		return "Medium"
	case ShinyHigh:
		return "High"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// MappingType is the texture coordinate generator of a face (media bits 1-2).
// Values are stored pre-shifted.
type MappingType byte

// Mapping type constants.
const (
	MappingDefault     MappingType = 0x00
	MappingPlanar      MappingType = 0x02
	MappingSpherical   MappingType = 0x04
	MappingCylindrical MappingType = 0x06
)

// String returns the mapping type name.
func (m MappingType) String() string {
	switch m {
	case MappingDefault:
		return "Default"
	case MappingPlanar:
		return "Planar"
	case MappingSpherical:
		return "Spherical"
	case MappingCylindrical:
		return "Cylindrical"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// TextureAttributes is a bit set of the attributes a face sets explicitly.
type TextureAttributes uint32

// Face attributes.
const (
	AttrTextureID TextureAttributes = 1 << iota
	AttrRGBA
	AttrRepeatU
	AttrRepeatV
	AttrOffsetU
	AttrOffsetV
	AttrRotation
	AttrMaterial
	AttrMedia
	AttrGlow

	AttrNone TextureAttributes = 0
	AttrAll  TextureAttributes = AttrTextureID | AttrRGBA | AttrRepeatU | AttrRepeatV |
		AttrOffsetU | AttrOffsetV | AttrRotation | AttrMaterial | AttrMedia | AttrGlow
)

var attrNames = [...]string{
	"TextureID", "RGBA", "RepeatU", "RepeatV", "OffsetU", "OffsetV", "Rotation", "Material", "Media", "Glow",
}

// String returns the set attributes joined by "|".
func (a TextureAttributes) String() string {
	switch a {
	case AttrNone:
		return "None"
	case AttrAll:
		return "All"
	}
	var parts []string
	for i, name := range attrNames {
		if a&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Channel identifies one of the independently diffed attribute streams of
// the packed texture entry. Channels appear on the wire in this order.
type Channel int

// Wire channels.
const (
	ChannelTextureID Channel = iota
	ChannelColor
	ChannelRepeatU
	ChannelRepeatV
	ChannelOffsetU
	ChannelOffsetV
	ChannelRotation
	ChannelMaterial
	ChannelMedia
	ChannelGlow
)

var channelNames = [...]string{
	"TextureID", "Color", "RepeatU", "RepeatV", "OffsetU", "OffsetV", "Rotation", "Material", "Media", "Glow",
}

// String returns the channel name.
func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}
