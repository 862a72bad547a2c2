package primitive

import (
	"testing"

	"github.com/google/uuid"

	vmath "github.com/Faultbox/midgard-sl/pkg/math"
)

func TestNewTextureEntryFaceDefaults(t *testing.T) {
	f := NewTextureEntryFace(PlywoodTexture)

	if f.TextureID() != PlywoodTexture {
		t.Errorf("expected plywood texture, got %s", f.TextureID())
	}
	if f.RGBA() != vmath.White {
		t.Errorf("expected white, got %v", f.RGBA())
	}
	if f.RepeatU() != 1 || f.RepeatV() != 1 {
		t.Errorf("expected repeats 1,1, got %v,%v", f.RepeatU(), f.RepeatV())
	}
	if f.OffsetU() != 0 || f.OffsetV() != 0 || f.Rotation() != 0 || f.Glow() != 0 {
		t.Error("expected zero offsets, rotation and glow")
	}
	if !f.IsDefault() || !f.Has(AttrAll) {
		t.Error("standalone face should carry every attribute")
	}
}

func TestFaceInheritsFromDefault(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	def := te.DefaultTexture()
	def.SetRGBA(vmath.Color4{R: 1, G: 0, B: 0, A: 1})
	def.SetGlow(0.25)

	face, err := te.CreateFace(4)
	if err != nil {
		t.Fatalf("CreateFace failed: %v", err)
	}

	if face.Attributes() != AttrNone {
		t.Errorf("new face should have no explicit attributes, got %b", face.Attributes())
	}
	if face.RGBA() != def.RGBA() {
		t.Errorf("expected inherited color %v, got %v", def.RGBA(), face.RGBA())
	}

	// Changes to the default show through until overridden.
	def.SetGlow(0.75)
	if face.Glow() != 0.75 {
		t.Errorf("expected inherited glow 0.75, got %v", face.Glow())
	}

	face.SetGlow(0.1)
	if face.Glow() != 0.1 || def.Glow() != 0.75 {
		t.Errorf("override leaked: face %v default %v", face.Glow(), def.Glow())
	}
	if !face.Has(AttrGlow) || face.Has(AttrRGBA) {
		t.Errorf("unexpected attribute mask %b", face.Attributes())
	}

	face.Unset(AttrGlow)
	if face.Glow() != 0.75 {
		t.Errorf("expected glow back to default after Unset, got %v", face.Glow())
	}
}

func TestFaceFollowsSwappedDefault(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	face, _ := te.CreateFace(0)

	other := NewTextureEntryFace(WhiteTexture)
	if err := te.SetDefaultTexture(other); err != nil {
		t.Fatalf("SetDefaultTexture failed: %v", err)
	}
	if face.TextureID() != WhiteTexture {
		t.Errorf("face should resolve through the new default, got %s", face.TextureID())
	}

	if err := te.SetDefaultTexture(nil); err == nil {
		t.Error("expected error for nil default")
	}
}

func TestMaterialSubfieldIndependence(t *testing.T) {
	shinies := []Shininess{ShinyNone, ShinyLow, ShinyMedium, ShinyHigh}

	for bump := BumpNone; bump <= BumpWeave; bump++ {
		for _, shiny := range shinies {
			for _, full := range []bool{false, true} {
				f := NewTextureEntryFace(uuid.Nil)
				f.SetBump(bump)
				f.SetShiny(shiny)
				f.SetFullbright(full)

				if f.Bump() != bump || f.Shiny() != shiny || f.Fullbright() != full {
					t.Fatalf("set %v/%v/%v, got %v/%v/%v", bump, shiny, full, f.Bump(), f.Shiny(), f.Fullbright())
				}

				// Rewrite each field with a different value and check the others hold.
				f.SetBump(BumpWeave - bump)
				if f.Shiny() != shiny || f.Fullbright() != full {
					t.Fatalf("SetBump changed shiny/fullbright (%v/%v/%v)", bump, shiny, full)
				}
				f.SetShiny(ShinyHigh - shiny)
				if f.Bump() != BumpWeave-bump || f.Fullbright() != full {
					t.Fatalf("SetShiny changed bump/fullbright (%v/%v/%v)", bump, shiny, full)
				}
				f.SetFullbright(!full)
				if f.Bump() != BumpWeave-bump || f.Shiny() != ShinyHigh-shiny {
					t.Fatalf("SetFullbright changed bump/shiny (%v/%v/%v)", bump, shiny, full)
				}
			}
		}
	}
}

func TestMediaSubfieldIndependence(t *testing.T) {
	mappings := []MappingType{MappingDefault, MappingPlanar, MappingSpherical, MappingCylindrical}

	for _, mapping := range mappings {
		for _, media := range []bool{false, true} {
			f := NewTextureEntryFace(uuid.Nil)
			f.SetTexMapType(mapping)
			f.SetMediaFlags(media)

			if f.TexMapType() != mapping || f.MediaFlags() != media {
				t.Errorf("set %v/%v, got %v/%v", mapping, media, f.TexMapType(), f.MediaFlags())
			}

			f.SetMediaFlags(!media)
			if f.TexMapType() != mapping {
				t.Errorf("SetMediaFlags changed mapping %v", mapping)
			}
		}
	}
}

func TestSubfieldKeepsInheritedSiblings(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	te.DefaultTexture().SetShiny(ShinyHigh)
	te.DefaultTexture().SetFullbright(true)

	face, _ := te.CreateFace(2)
	face.SetBump(BumpBark)

	if face.Bump() != BumpBark {
		t.Errorf("expected bark, got %v", face.Bump())
	}
	if face.Shiny() != ShinyHigh || !face.Fullbright() {
		t.Errorf("inherited shiny/fullbright lost: %v/%v", face.Shiny(), face.Fullbright())
	}
	if te.DefaultTexture().Bump() != BumpNone {
		t.Errorf("default bump changed to %v", te.DefaultTexture().Bump())
	}
}

func TestFaceClone(t *testing.T) {
	te := NewTextureEntry(PlywoodTexture)
	te.DefaultTexture().SetRepeatU(4)
	face, _ := te.CreateFace(1)
	face.SetRotation(1.5)

	clone := face.Clone()
	if !clone.IsDefault() {
		t.Error("clone should be standalone")
	}
	if clone.RepeatU() != 4 || clone.Rotation() != 1.5 {
		t.Errorf("clone values: repeatU %v rotation %v", clone.RepeatU(), clone.Rotation())
	}

	te.DefaultTexture().SetRepeatU(8)
	if clone.RepeatU() != 4 {
		t.Error("clone should not follow the default")
	}
}

func TestEnumStrings(t *testing.T) {
	if BumpWeave.String() != "Weave" {
		t.Errorf("BumpWeave.String() = %q", BumpWeave.String())
	}
	if Bumpiness(30).String() != "Unknown(30)" {
		t.Errorf("Bumpiness(30).String() = %q", Bumpiness(30).String())
	}
	if ShinyMedium.String() != "Medium" {
		t.Errorf("ShinyMedium.String() = %q", ShinyMedium.String())
	}
	if MappingCylindrical.String() != "Cylindrical" {
		t.Errorf("MappingCylindrical.String() = %q", MappingCylindrical.String())
	}
	if ChannelGlow.String() != "Glow" {
		t.Errorf("ChannelGlow.String() = %q", ChannelGlow.String())
	}
	if got := (AttrRGBA | AttrGlow).String(); got != "RGBA|Glow" {
		t.Errorf("attributes String() = %q", got)
	}
	if AttrAll.String() != "All" || AttrNone.String() != "None" {
		t.Errorf("AttrAll %q, AttrNone %q", AttrAll.String(), AttrNone.String())
	}
}
