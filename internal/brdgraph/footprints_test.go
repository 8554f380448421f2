package brdgraph

import (
	"testing"

	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

func TestResolveRefdesDefaultsToA0(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	if got := resolveRefdes(idx, brdtypes.NilKey); got != "A0" {
		t.Errorf("resolveRefdes(nil) = %q, want A0", got)
	}
	if got := resolveRefdes(idx, 99); got != "A0" {
		t.Errorf("resolveRefdes(dangling) = %q, want A0", got)
	}
}

func TestResolveRefdesFollowsLink(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	idx.Records[7] = brdtypes.RefdesLink{Key: 7, RefdesStringRef: 20}
	idx.Strings[20] = []byte("R1")
	if got := resolveRefdes(idx, 7); got != "R1" {
		t.Errorf("resolveRefdes = %q, want R1", got)
	}
}

func TestBuildPadCircle(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	comp := brdtypes.PadStackComponent{Tag: brdtypes.PadShapeCircle, W: 1000, H: 1000, OffsetX: 100, OffsetY: 100}
	p := buildPad(idx, comp, "primary", 5000, 5000, discardLogger)

	if p.Shape != "circle" {
		t.Errorf("Shape = %q, want circle", p.Shape)
	}
	if p.Kind != "primary" {
		t.Errorf("Kind = %q, want primary", p.Kind)
	}
	if p.OffsetY != -0.1 {
		t.Errorf("OffsetY = %v, want -0.1 (Y negated)", p.OffsetY)
	}
}

func TestBuildPadCustomPolygonResolvesOutline(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	idx.Records[1] = brdtypes.Segment{Key: 1, StartX: 0, StartY: 0, EndX: 1000, EndY: 0, Next: 2}
	idx.Records[2] = brdtypes.Segment{Key: 2, StartX: 1000, StartY: 0, EndX: 0, EndY: 1000, Next: brdtypes.NilKey}
	idx.Records[50] = brdtypes.Shape{Key: 50, Family: brdtypes.ZoneFamilyCopper, OutlineHead: 1}

	comp := brdtypes.PadStackComponent{Tag: brdtypes.PadShapeCustomPolygon, StrPtr: 50}
	p := buildPad(idx, comp, "primary", 0, 0, discardLogger)

	if p.Shape != "polygon" {
		t.Errorf("Shape = %q, want polygon", p.Shape)
	}
	if p.Width != nominalPadMil {
		t.Errorf("Width = %v, want nominal 1-mil size", p.Width)
	}
	if len(p.Outline) != 3 {
		t.Fatalf("len(Outline) = %d, want 3", len(p.Outline))
	}
}

func TestCollectPadsSkipsZeroTagComponents(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)

	stack := brdtypes.PadStack{
		Key: 3, LayerCount: 2,
		Components: make([]brdtypes.PadStackComponent, brdtypes.PadStackComponentCount(brdtypes.A164, 2)),
	}
	primaryIdx := brdtypes.PrimaryComponentIndex(brdtypes.A164)
	stack.Components[primaryIdx] = brdtypes.PadStackComponent{Tag: brdtypes.PadShapeCircle, W: 500, H: 500}
	// mask/paste components are left zero-tag: must be skipped.
	idx.Records[3] = stack

	idx.Records[2] = brdtypes.PlacedPadLink{Key: 2, PadStackRef: 3}
	idx.Records[1] = brdtypes.PlacedPad{Key: 1, LinkRef: 2, X: 0, Y: 0, Next: brdtypes.NilKey}

	pads := collectPads(idx, 1, discardLogger)
	if len(pads) != 1 {
		t.Fatalf("len(pads) = %d, want 1 (only the primary component)", len(pads))
	}
	if pads[0].Kind != "primary" {
		t.Errorf("Kind = %q, want primary", pads[0].Kind)
	}
}

func TestResolveTextUsesFontTableHeight(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	idx.Records[2] = brdtypes.TextGraphic{Key: 2, StringRef: 10}
	idx.Strings[10] = []byte("REF")
	idx.FontTables[3] = brdtypes.FontTable{Key: 3, Subtype: brdtypes.FontSubtypeGlyphTable, Glyphs: []brdtypes.GlyphMetric{{Width: 50, Height: 60}}}

	w := brdtypes.TextWrapper{Key: 1, StringRef: 2, FontRef: 3, X: 1000, Y: 2000, Rotation: 90000}
	text := resolveText(idx, w, 4, discardLogger)

	if text.Content != "REF" {
		t.Errorf("Content = %q, want REF", text.Content)
	}
	if text.Size != idx.ScaleFactor*60 {
		t.Errorf("Size = %v, want %v", text.Size, idx.ScaleFactor*60)
	}
	if text.Rotation != 90.0 {
		t.Errorf("Rotation = %v, want 90", text.Rotation)
	}
}

func TestResolveTextUnresolvableFontLeavesZeroSize(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	w := brdtypes.TextWrapper{Key: 1, FontRef: 99}
	text := resolveText(idx, w, 4, discardLogger)
	if text.Size != 0 {
		t.Errorf("Size = %v, want 0 for unresolvable font", text.Size)
	}
}
