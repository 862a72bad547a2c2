package primitive

import (
	"fmt"

	"github.com/Faultbox/midgard-sl/pkg/osd"
)

// Structured-data keys of a face map.
const (
	keyColors     = "colors"
	keyScaleS     = "scales"
	keyScaleT     = "scalet"
	keyOffsetS    = "offsets"
	keyOffsetT    = "offsett"
	keyImageRot   = "imagerot"
	keyBump       = "bump"
	keyShiny      = "shiny"
	keyFullbright = "fullbright"
	keyMediaFlags = "media_flags"
	keyMapping    = "mapping"
	keyGlow       = "glow"
	keyImageID    = "imageid"
	keyFaceNumber = "face_number"
)

// GetOSD returns the face as a structured-data map of resolved values.
// face_number is included only when faceNumber >= 0.
func (f *TextureEntryFace) GetOSD(faceNumber int) *osd.Map {
	m := osd.NewMap()
	m.Set(keyColors, osd.FromColor4(f.RGBA()))
	m.Set(keyScaleS, osd.FromReal(float64(f.RepeatU())))
	m.Set(keyScaleT, osd.FromReal(float64(f.RepeatV())))
	m.Set(keyOffsetS, osd.FromReal(float64(f.OffsetU())))
	m.Set(keyOffsetT, osd.FromReal(float64(f.OffsetV())))
	m.Set(keyImageRot, osd.FromReal(float64(f.Rotation())))
	m.Set(keyBump, osd.FromInteger(int(f.Bump())))
	m.Set(keyShiny, osd.FromInteger(int(f.Shiny())))
	m.Set(keyFullbright, osd.FromBoolean(f.Fullbright()))
	m.Set(keyMediaFlags, osd.FromInteger(boolToInt(f.MediaFlags())))
	m.Set(keyMapping, osd.FromInteger(int(f.TexMapType())))
	m.Set(keyGlow, osd.FromReal(float64(f.Glow())))
	m.Set(keyImageID, osd.FromUUID(f.TextureID()))
	if faceNumber >= 0 {
		m.Set(keyFaceNumber, osd.FromInteger(faceNumber))
	}
	return m
}

// TextureEntryFaceFromOSD decodes a face map into a standalone face with
// every attribute set. faceNumber is -1 when the map carries no face_number.
func TextureEntryFaceFromOSD(o osd.OSD) (face *TextureEntryFace, faceNumber int, err error) {
	m, ok := o.(*osd.Map)
	if !ok {
		return nil, -1, fmt.Errorf("texture face: expected map, got %s", osd.Describe(o))
	}

	face = NewTextureEntryFace(m.Get(keyImageID).AsUUID())
	face.SetRGBA(m.Get(keyColors).AsColor4())
	face.SetRepeatU(float32(m.Get(keyScaleS).AsReal()))
	face.SetRepeatV(float32(m.Get(keyScaleT).AsReal()))
	face.SetOffsetU(float32(m.Get(keyOffsetS).AsReal()))
	face.SetOffsetV(float32(m.Get(keyOffsetT).AsReal()))
	face.SetRotation(float32(m.Get(keyImageRot).AsReal()))
	face.SetBump(Bumpiness(m.Get(keyBump).AsInteger()))
	face.SetShiny(Shininess(m.Get(keyShiny).AsInteger()))
	face.SetFullbright(m.Get(keyFullbright).AsBoolean())
	face.SetMediaFlags(m.Get(keyMediaFlags).AsBoolean())
	face.SetTexMapType(MappingType(m.Get(keyMapping).AsInteger()))
	face.SetGlow(float32(m.Get(keyGlow).AsReal()))

	faceNumber = -1
	if m.Has(keyFaceNumber) {
		faceNumber = m.Get(keyFaceNumber).AsInteger()
	}
	return face, faceNumber, nil
}

// GetOSD returns the entry as a structured-data array: the default face
// first, then each materialized face tagged with its index.
// An entry without a default face yields an empty array.
func (te *TextureEntry) GetOSD() *osd.Array {
	arr := osd.NewArray()
	if te.defaultFace == nil {
		return arr
	}
	arr.Append(te.defaultFace.GetOSD(-1))
	for _, i := range te.FaceIndices() {
		arr.Append(te.faces[i].GetOSD(i))
	}
	return arr
}

// TextureEntryFromOSD decodes the array produced by GetOSD.
func TextureEntryFromOSD(o osd.OSD) (*TextureEntry, error) {
	arr, ok := o.(*osd.Array)
	if !ok || arr.Len() == 0 {
		return nil, fmt.Errorf("%w: got %s", ErrMissingDefaultFace, osd.Describe(o))
	}

	def, _, err := TextureEntryFaceFromOSD(arr.At(0))
	if err != nil {
		return nil, fmt.Errorf("default face: %w", err)
	}
	te := NewTextureEntryFromFace(def)

	for i := 1; i < arr.Len(); i++ {
		face, n, err := TextureEntryFaceFromOSD(arr.At(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if err := checkFaceIndex(n); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		face.entry = te
		te.faces[n] = face
	}

	return te, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
