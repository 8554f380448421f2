package brdgraph

import (
	"testing"

	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// TestBuildEndToEnd wires a small hand-built Index covering one net with
// a track, one free zone, one free annotation, one footprint with a
// single pad, one free-text wrapper and one free rectangle, then checks
// each lands in the right Board slice.
func TestBuildEndToEnd(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)

	idx.Header.LayerSets[brdtypes.FamilyCopper] = 100
	idx.LayerSets[100] = brdtypes.LayerSet{Key: 100, Family: brdtypes.FamilyCopper, Entries: []brdtypes.LayerEntry{{}, {}}}

	// Net GND -> T04 -> T05 track over a two-segment polyline.
	idx.Strings[1] = []byte("GND")
	idx.Records[10] = brdtypes.Segment{Key: 10, Width: 100, StartX: 0, StartY: 0, EndX: 1000, EndY: 0, Next: brdtypes.NilKey}
	idx.Records[11] = brdtypes.Track{Key: 11, Layer: 0, Head: 10, Next: brdtypes.NilKey}
	idx.Records[12] = brdtypes.NetAssignment{Key: 12, Geometry: 11, Next: brdtypes.NilKey}
	idx.Records[13] = brdtypes.Net{Key: 13, NameRef: 1, AssignHead: 12, Next: brdtypes.NilKey}
	idx.Header.Nets = brdtypes.LinkedList{Head: 13, Tail: brdtypes.NilKey}

	// One free zone.
	idx.Records[20] = brdtypes.Segment{Key: 20, StartX: 0, StartY: 0, EndX: 1000, EndY: 0, Next: 21}
	idx.Records[21] = brdtypes.Segment{Key: 21, StartX: 1000, StartY: 0, EndX: 0, EndY: 1000, Next: brdtypes.NilKey}
	idx.Records[22] = brdtypes.Shape{Key: 22, Family: brdtypes.ZoneFamilyCopper, OutlineHead: 20, Next: brdtypes.NilKey}
	idx.Header.FreeZones = brdtypes.LinkedList{Head: 22, Tail: brdtypes.NilKey}

	// One free annotation.
	idx.Records[30] = brdtypes.Segment{Key: 30, StartX: 0, StartY: 0, EndX: 500, EndY: 0, Next: brdtypes.NilKey}
	idx.Records[31] = brdtypes.Annotation{Key: 31, Layer: 0, Head: 30, Next: brdtypes.NilKey}
	idx.Header.FreeAnnotations = brdtypes.LinkedList{Head: 31, Tail: brdtypes.NilKey}

	// One footprint with one placement and one pad.
	idx.Strings[2] = []byte("0402")
	idx.Records[43] = brdtypes.PadStack{
		Key: 43, LayerCount: 2,
		Components: func() []brdtypes.PadStackComponent {
			cs := make([]brdtypes.PadStackComponent, brdtypes.PadStackComponentCount(brdtypes.A164, 2))
			cs[brdtypes.PrimaryComponentIndex(brdtypes.A164)] = brdtypes.PadStackComponent{Tag: brdtypes.PadShapeCircle, W: 500, H: 500}
			return cs
		}(),
	}
	idx.Records[42] = brdtypes.PlacedPadLink{Key: 42, PadStackRef: 43}
	idx.Records[41] = brdtypes.PlacedPad{Key: 41, LinkRef: 42, Next: brdtypes.NilKey}
	idx.Records[40] = brdtypes.Placement{Key: 40, FirstPadPtr: 41, X: 100, Y: 100, Next: brdtypes.NilKey}
	idx.Records[44] = brdtypes.Footprint{Key: 44, NameRef: 2, PlacementHead: 40, Next: brdtypes.NilKey}
	idx.Header.Footprints = brdtypes.LinkedList{Head: 44, Tail: brdtypes.NilKey}

	// One free-text entry.
	idx.Strings[3] = []byte("R1")
	idx.Records[51] = brdtypes.TextGraphic{Key: 51, StringRef: 3}
	idx.Records[50] = brdtypes.TextWrapper{Key: 50, StringRef: 51, Next: brdtypes.NilKey}
	idx.Header.FreeText = brdtypes.LinkedList{Head: 50, Tail: brdtypes.NilKey}

	// One free rectangle (board edge).
	idx.Records[60] = brdtypes.Rectangle{Key: 60, X0: 0, Y0: 0, X1: 1000, Y1: 1000, Next: brdtypes.NilKey}
	idx.Header.FreeRectZones = brdtypes.LinkedList{Head: 60, Tail: brdtypes.NilKey}

	board := brdmodel.NewBoard()
	Build(idx, board, nil)

	if board.CopperLayerCount != 2 {
		t.Errorf("CopperLayerCount = %d, want 2", board.CopperLayerCount)
	}
	if len(board.Tracks) != 1 || board.Tracks[0].Net != "GND" {
		t.Fatalf("expected one GND track, got %+v", board.Tracks)
	}
	if len(board.Zones) != 1 {
		t.Fatalf("expected one free zone, got %d", len(board.Zones))
	}
	if len(board.LineShapes) != 1 {
		t.Fatalf("expected one free annotation line shape, got %d", len(board.LineShapes))
	}
	if len(board.Footprints) != 1 || len(board.Footprints[0].Pads) != 1 {
		t.Fatalf("expected one footprint with one pad, got %+v", board.Footprints)
	}
	if board.Footprints[0].Name != "0402" {
		t.Errorf("footprint name = %q, want 0402", board.Footprints[0].Name)
	}
	if board.Footprints[0].Refdes != "A0" {
		t.Errorf("refdes = %q, want default A0", board.Footprints[0].Refdes)
	}
	if len(board.Texts) != 1 || board.Texts[0].Content != "R1" {
		t.Fatalf("expected one free text R1, got %+v", board.Texts)
	}
	if len(board.Shapes) != 1 {
		t.Fatalf("expected one free rectangle shape, got %d", len(board.Shapes))
	}
}
