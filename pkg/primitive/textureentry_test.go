package primitive

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

// defaultOnlySize is the encoded size of an entry without overrides:
// every channel's default value plus one terminator per channel.
const defaultOnlySize = 16 + 4 + 4 + 4 + 2 + 2 + 2 + 1 + 1 + 1 + 10

func randomUUID(r *rand.Rand) uuid.UUID {
	var id uuid.UUID
	r.Read(id[:])
	return id
}

func randomColor(r *rand.Rand) vmath.Color4 {
	return vmath.Color4{R: r.Float32(), G: r.Float32(), B: r.Float32(), A: r.Float32()}
}

// randomizeFace sets a random subset of attributes (all of them when all is set).
func randomizeFace(r *rand.Rand, f *TextureEntryFace, all bool) {
	pick := func() bool { return all || r.Intn(2) == 0 }

	if pick() {
		f.SetTextureID(randomUUID(r))
	}
	if pick() {
		f.SetRGBA(randomColor(r))
	}
	if pick() {
		f.SetRepeatU(r.Float32() * 16)
	}
	if pick() {
		f.SetRepeatV(r.Float32()*16 - 8)
	}
	if pick() {
		f.SetOffsetU(r.Float32()*2 - 1)
	}
	if pick() {
		f.SetOffsetV(r.Float32()*2 - 1)
	}
	if pick() {
		f.SetRotation((r.Float32()*2 - 1) * math.Pi)
	}
	if pick() {
		f.SetMaterial(byte(r.Intn(256)))
	}
	if pick() {
		f.SetMedia(byte(r.Intn(8)))
	}
	if pick() {
		f.SetGlow(r.Float32())
	}
}

// assertFaceMatches compares a decoded face against the original after
// quantizing the original to wire precision.
func assertFaceMatches(t *testing.T, index int, want, got *TextureEntryFace) {
	t.Helper()

	if got.TextureID() != want.TextureID() {
		t.Errorf("face %d: texture %s, want %s", index, got.TextureID(), want.TextureID())
	}
	if got.RGBA() != want.RGBA().Quantized() {
		t.Errorf("face %d: color %v, want %v", index, got.RGBA(), want.RGBA().Quantized())
	}
	if got.RepeatU() != want.RepeatU() || got.RepeatV() != want.RepeatV() {
		t.Errorf("face %d: repeat %v,%v want %v,%v", index, got.RepeatU(), got.RepeatV(), want.RepeatU(), want.RepeatV())
	}
	if got.OffsetU() != QuantizeOffset(want.OffsetU()) || got.OffsetV() != QuantizeOffset(want.OffsetV()) {
		t.Errorf("face %d: offset %v,%v want %v,%v", index, got.OffsetU(), got.OffsetV(),
			QuantizeOffset(want.OffsetU()), QuantizeOffset(want.OffsetV()))
	}
	if got.Rotation() != QuantizeRotation(want.Rotation()) {
		t.Errorf("face %d: rotation %v want %v", index, got.Rotation(), QuantizeRotation(want.Rotation()))
	}
	if got.Material() != want.Material() || got.Media() != want.Media() {
		t.Errorf("face %d: material/media %#x/%#x want %#x/%#x", index, got.Material(), got.Media(), want.Material(), want.Media())
	}
	if got.Glow() != QuantizeGlow(want.Glow()) {
		t.Errorf("face %d: glow %v want %v", index, got.Glow(), QuantizeGlow(want.Glow()))
	}
}

func TestTextureEntryRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for iter := 0; iter < 50; iter++ {
		te := NewTextureEntry(randomUUID(r))
		randomizeFace(r, te.DefaultTexture(), true)

		for i := 0; i < MaxFaces; i++ {
			if r.Intn(3) == 0 {
				face, err := te.CreateFace(i)
				if err != nil {
					t.Fatalf("CreateFace(%d) failed: %v", i, err)
				}
				randomizeFace(r, face, false)
			}
		}

		data := te.GetBytes()
		back := NewTextureEntryFromBytes(data, 0, len(data))
		if ch, truncated := back.Truncated(); truncated {
			t.Fatalf("iteration %d: unexpected truncation at %s", iter, ch)
		}

		for i := 0; i < MaxFaces; i++ {
			want, _ := te.GetFace(i)
			got, err := back.GetFace(i)
			if err != nil {
				t.Fatalf("GetFace(%d) failed: %v", i, err)
			}
			assertFaceMatches(t, i, want, got)
		}

		// The decoded entry re-encodes to the same bytes.
		if again := back.GetBytes(); !bytes.Equal(again, data) {
			t.Fatalf("iteration %d: re-encoding differs\n got % x\nwant % x", iter, again, data)
		}
	}
}

func TestTextureEntryDefaultOnly(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	// A materialized face with nothing overridden adds no runs.
	if _, err := te.CreateFace(3); err != nil {
		t.Fatalf("CreateFace failed: %v", err)
	}

	data := te.GetBytes()
	if len(data) != defaultOnlySize {
		t.Fatalf("expected %d bytes, got %d", defaultOnlySize, len(data))
	}
	if !bytes.Equal(data[0:16], PlywoodTexture[:]) {
		t.Errorf("default texture not at offset 0: % x", data[0:16])
	}
	if data[16] != 0 {
		t.Errorf("expected texture channel terminator, got %#x", data[16])
	}
	// White is stored inverted.
	if !bytes.Equal(data[17:21], []byte{0, 0, 0, 0}) {
		t.Errorf("expected inverted white, got % x", data[17:21])
	}

	back := ParseTextureEntry(data)
	if len(back.FaceIndices()) != 0 {
		t.Errorf("expected no materialized faces, got %v", back.FaceIndices())
	}
	for i := 0; i < MaxFaces; i++ {
		got, _ := back.GetFace(i)
		if got != back.DefaultTexture() {
			t.Fatalf("face %d should be the default face", i)
		}
	}
	if back.DefaultTexture().TextureID() != PlywoodTexture {
		t.Errorf("expected plywood, got %s", back.DefaultTexture().TextureID())
	}
}

func TestTextureEntryKnownLayout(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	f0, _ := te.CreateFace(0)
	f0.SetTextureID(WhiteTexture)
	f7, _ := te.CreateFace(7)
	f7.SetTextureID(WhiteTexture)

	data := te.GetBytes()

	var want []byte
	want = append(want, PlywoodTexture[:]...)
	want = append(want, 0x01)
	want = append(want, WhiteTexture[:]...)
	// Face 7 gets its own run even though it shares face 0's texture.
	want = append(want, 0x81, 0x00)
	want = append(want, WhiteTexture[:]...)
	want = append(want, 0x00)

	if !bytes.Equal(data[:len(want)], want) {
		t.Errorf("texture channel mismatch\n got % x\nwant % x", data[:len(want)], want)
	}
	if len(data) != defaultOnlySize+1+16+2+16 {
		t.Errorf("unexpected total size %d", len(data))
	}
}

func TestTextureEntryDiffIsQuantized(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	te.DefaultTexture().SetOffsetU(0.1)
	te.DefaultTexture().SetGlow(0.5)

	face, _ := te.CreateFace(1)
	face.SetOffsetU(0.1 + 1e-7)
	face.SetGlow(0.5 + 1e-4)
	face.SetRGBA(vmath.Color4{R: 1, G: 1, B: 1, A: 0.9999})

	if got := len(te.GetBytes()); got != defaultOnlySize {
		t.Errorf("sub-resolution differences produced runs: %d bytes, want %d", got, defaultOnlySize)
	}

	face.SetGlow(0.75)
	if got := len(te.GetBytes()); got != defaultOnlySize+2 {
		t.Errorf("glow override should add one run: %d bytes, want %d", got, defaultOnlySize+2)
	}
}

func TestTextureEntryFaceBounds(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)

	for _, index := range []int{-1, MaxFaces, 100} {
		if _, err := te.CreateFace(index); !errors.Is(err, ErrFaceIndexOutOfRange) {
			t.Errorf("CreateFace(%d) error = %v, want ErrFaceIndexOutOfRange", index, err)
		}
		if _, err := te.GetFace(index); !errors.Is(err, ErrFaceIndexOutOfRange) {
			t.Errorf("GetFace(%d) error = %v, want ErrFaceIndexOutOfRange", index, err)
		}
		if te.Face(index) != nil {
			t.Errorf("Face(%d) should be nil", index)
		}
	}

	if _, err := te.CreateFace(MaxFaces - 1); err != nil {
		t.Errorf("CreateFace(%d) failed: %v", MaxFaces-1, err)
	}
}

func TestTextureEntryHighFace(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	face, _ := te.CreateFace(31)
	face.SetGlow(1)

	back := ParseTextureEntry(te.GetBytes())
	if back.Face(31) == nil {
		t.Fatal("face 31 was not materialized")
	}
	if back.Face(31).Glow() != 1 {
		t.Errorf("expected glow 1, got %v", back.Face(31).Glow())
	}
	if len(back.FaceIndices()) != 1 {
		t.Errorf("expected only face 31, got %v", back.FaceIndices())
	}
}

func TestTextureEntryMultiFaceRun(t *testing.T) {
	// Runs produced by other encoders may cover several faces at once.
	data := NewTextureEntry(PlywoodTexture).GetBytes()

	var crafted []byte
	crafted = append(crafted, data[:16]...)
	crafted = append(crafted, 0x85, 0x03) // mask 0x283: faces 0, 1, 7, 9
	crafted = append(crafted, WhiteTexture[:]...)
	crafted = append(crafted, data[16:]...)

	te := ParseTextureEntry(crafted)
	if ch, truncated := te.Truncated(); truncated {
		t.Fatalf("unexpected truncation at %s", ch)
	}

	want := map[int]bool{0: true, 1: true, 7: true, 9: true}
	for i := 0; i < MaxFaces; i++ {
		f, _ := te.GetFace(i)
		if want[i] != (f.TextureID() == WhiteTexture) {
			t.Errorf("face %d: texture %s", i, f.TextureID())
		}
	}
}

func TestTextureEntryTruncated(t *testing.T) {
	id := uuid.MustParse("c228d1cf-4b5d-4ba8-84f4-899a0796aa97")
	data := append(append([]byte{}, id[:]...), 0x00)

	te := ParseTextureEntry(data)
	if !te.HasDefault() {
		t.Fatal("expected a default face")
	}

	ch, truncated := te.Truncated()
	if !truncated || ch != ChannelColor {
		t.Errorf("Truncated() = %s, %v; want Color, true", ch, truncated)
	}

	def := te.DefaultTexture()
	if def.TextureID() != id {
		t.Errorf("expected texture %s, got %s", id, def.TextureID())
	}
	if def.RGBA() != vmath.White {
		t.Errorf("expected white, got %v", def.RGBA())
	}
	if def.RepeatU() != 1 || def.RepeatV() != 1 {
		t.Errorf("expected repeats 1,1, got %v,%v", def.RepeatU(), def.RepeatV())
	}
	if def.OffsetU() != 0 || def.Rotation() != 0 || def.Material() != 0 || def.Glow() != 0 {
		t.Error("expected remaining channels at zero")
	}
}

func TestTextureEntryTruncatedInsideRun(t *testing.T) {
	full := NewTextureEntry(PlywoodTexture)
	face, _ := full.CreateFace(2)
	face.SetTextureID(WhiteTexture)
	data := full.GetBytes()

	// Cut in the middle of face 2's texture value.
	te := ParseTextureEntry(data[:16+1+8])
	if ch, truncated := te.Truncated(); !truncated || ch != ChannelTextureID {
		t.Errorf("Truncated() = %s, %v; want TextureID, true", ch, truncated)
	}
	if te.Face(2) != nil {
		t.Error("face 2 should not be materialized from a partial value")
	}

	// Every prefix decodes without panicking.
	for n := 0; n <= len(data); n++ {
		ParseTextureEntry(data[:n])
	}
}

func TestTextureEntryEmpty(t *testing.T) {
	te := ParseTextureEntry(nil)

	if te.HasDefault() {
		t.Error("empty buffer should not produce a default face")
	}
	if _, truncated := te.Truncated(); truncated {
		t.Error("empty buffer is not a truncation")
	}
	if _, err := te.GetFace(0); !errors.Is(err, ErrNoDefaultTexture) {
		t.Errorf("GetFace error = %v, want ErrNoDefaultTexture", err)
	}
	if _, err := te.CreateFace(0); !errors.Is(err, ErrNoDefaultTexture) {
		t.Errorf("CreateFace error = %v, want ErrNoDefaultTexture", err)
	}
	if len(te.GetBytes()) != 0 {
		t.Errorf("expected empty encoding, got %d bytes", len(te.GetBytes()))
	}
}

func TestNewTextureEntryFromBytesWindow(t *testing.T) {
	data := NewTextureEntry(PlywoodTexture).GetBytes()
	framed := append([]byte{0xDE, 0xAD}, data...)
	framed = append(framed, 0xBE, 0xEF)

	te := NewTextureEntryFromBytes(framed, 2, len(data))
	if te.DefaultTexture().TextureID() != PlywoodTexture {
		t.Errorf("expected plywood, got %s", te.DefaultTexture().TextureID())
	}
	if !bytes.Equal(te.GetBytes(), data) {
		t.Error("windowed decode changed the entry")
	}

	if NewTextureEntryFromBytes(framed, len(framed), 10).HasDefault() {
		t.Error("window past the end should be empty")
	}
	if NewTextureEntryFromBytes(framed, -1, 10).HasDefault() {
		t.Error("negative position should be empty")
	}
}

func TestTextureEntryRemoveFace(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	face, _ := te.CreateFace(5)
	face.SetTextureID(WhiteTexture)

	if err := te.RemoveFace(5); err != nil {
		t.Fatalf("RemoveFace failed: %v", err)
	}
	got, _ := te.GetFace(5)
	if got.TextureID() != PlywoodTexture {
		t.Errorf("expected default texture after removal, got %s", got.TextureID())
	}
	if err := te.RemoveFace(MaxFaces); !errors.Is(err, ErrFaceIndexOutOfRange) {
		t.Errorf("RemoveFace(%d) error = %v", MaxFaces, err)
	}
}

func TestTextureEntrySharedDefault(t *testing.T) {
	def := NewTextureEntryFace(PlywoodTexture)
	a := NewTextureEntryFromFace(def)
	b := NewTextureEntryFromFace(def)

	if a.DefaultTexture() != b.DefaultTexture() {
		t.Error("standalone default should be shared")
	}

	owned, _ := a.CreateFace(0)
	c := NewTextureEntryFromFace(owned)
	if c.DefaultTexture() == owned || !c.DefaultTexture().IsDefault() {
		t.Error("owned face should be cloned into a standalone default")
	}
}
