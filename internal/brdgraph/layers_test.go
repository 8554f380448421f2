package brdgraph

import (
	"testing"

	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

func newTestIndex(magic brdtypes.Magic) *brdparse.Index {
	return &brdparse.Index{
		Header:      &brdtypes.Header{Magic: magic},
		Magic:       magic,
		ScaleFactor: 0.001,
		Strings:     make(map[brdtypes.Key][]byte),
		Records:     make(map[brdtypes.Key]any),
		LayerSets:   make(map[brdtypes.Key]brdtypes.LayerSet),
		FontTables:  make(map[brdtypes.Key]brdtypes.FontTable),
	}
}

func TestResolveLayersInlineNames(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	idx.Header.LayerSets[brdtypes.FamilyCopper] = 1

	var top, bottom brdtypes.LayerEntry
	copy(top.InlineName[:], "TOP")
	copy(bottom.InlineName[:], "BOTTOM")
	idx.LayerSets[1] = brdtypes.LayerSet{Key: 1, Family: brdtypes.FamilyCopper, Entries: []brdtypes.LayerEntry{top, bottom}}

	board := brdmodel.NewBoard()
	n := resolveLayers(idx, board)

	if n != 2 {
		t.Fatalf("resolveLayers = %d, want 2", n)
	}
	if board.LayerNames[0] != "TOP" || board.LayerNames[1] != "BOTTOM" {
		t.Errorf("unexpected layer names: %v", board.LayerNames)
	}
}

func TestResolveLayersStringKeyed(t *testing.T) {
	idx := newTestIndex(brdtypes.A172)
	idx.Header.LayerSets[brdtypes.FamilyCopper] = 1
	idx.Strings[7] = []byte("TOP")
	idx.LayerSets[1] = brdtypes.LayerSet{
		Key: 1, Family: brdtypes.FamilyCopper,
		Entries: []brdtypes.LayerEntry{{NameRef: 7}},
	}

	board := brdmodel.NewBoard()
	resolveLayers(idx, board)

	if board.LayerNames[0] != "TOP" {
		t.Errorf("LayerNames[0] = %q, want TOP", board.LayerNames[0])
	}
}

func TestResolveLayersMissingCopperSet(t *testing.T) {
	idx := newTestIndex(brdtypes.A164)
	board := brdmodel.NewBoard()
	n := resolveLayers(idx, board)
	if n != 0 || board.CopperLayerCount != 0 {
		t.Errorf("expected zero copper layers when set is absent, got n=%d count=%d", n, board.CopperLayerCount)
	}
}

func TestEtchLayerClamps(t *testing.T) {
	if got := etchLayer(0, 4); got != 0 {
		t.Errorf("etchLayer(0,4) = %d, want 0", got)
	}
	if got := etchLayer(3, 4); got != 3 {
		t.Errorf("etchLayer(3,4) = %d, want 3", got)
	}
	if got := etchLayer(9, 4); got != 3 {
		t.Errorf("etchLayer(9,4) = %d, want 3 (clamp to back layer)", got)
	}
}

func TestSilkLayerTableWins(t *testing.T) {
	if got := silkLayer(0xF6); got != LayerBackSilk {
		t.Errorf("silkLayer(0xF6) = %d, want LayerBackSilk", got)
	}
	if got := silkLayer(0xF7); got != LayerFrontSilk {
		t.Errorf("silkLayer(0xF7) = %d, want LayerFrontSilk", got)
	}
	if got := silkLayer(0xF1); got != LayerFrontSilk {
		t.Errorf("silkLayer(0xF1) = %d, want LayerFrontSilk", got)
	}
}
