// Package brdgraph implements the graph-reconstruction pass: given a
// brdparse.Index, traverse header-anchored linked lists and emit board
// entities into a brdmodel.Sink, per spec.md §4.4.
package brdgraph

import (
	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// Board-layer ids outside the copper stack. Silk-family zones and
// board-edge polygons land on one of these; copper layers use the
// monotonic ids resolved in step 1.
const (
	LayerBoardEdge      = -1
	LayerFrontSilk      = -2
	LayerBackSilk       = -3
	LayerFrontPaste     = -4
	LayerBackPaste      = -5
	LayerFrontCourtyard = -6
	LayerBackCourtyard  = -7
	LayerFrontMask      = -8
	LayerBackMask       = -9
	LayerUser3          = -10
	LayerUser6          = -11
	LayerUser7          = -12
	LayerUser8          = -13
	LayerEco1           = -14
	LayerEco2           = -15
)

// etchLayer maps a copper ordinal to a board copper layer id, per
// spec.md §4.4 step 2. On-disk ordinals already run 0 (front) through
// count-1 (back) monotonically, so resolution is the identity function
// once range-validated; out-of-range ordinals clamp to the back layer
// rather than panicking, since a malformed file must not crash the
// loader (spec.md §3 invariant on dangling/bad references).
func etchLayer(ordinal byte, copperLayerCount int) int {
	layer := int(ordinal)
	if copperLayerCount <= 0 {
		return layer
	}
	if layer < 0 {
		return 0
	}
	if layer >= copperLayerCount {
		return copperLayerCount - 1
	}
	return layer
}

// silkLayer maps a silk-family zone ordinal to a board layer, per the
// table in spec.md §6. Ordinals 0xF6 and 0xF7 are double-documented in
// the source spec (the table and the following paragraph disagree); this
// reader keeps the table's mapping for both rather than guessing a third
// interpretation.
func silkLayer(ordinal byte) int {
	switch ordinal {
	case 0xF1:
		return LayerFrontSilk
	case 0xF3:
		return LayerBackPaste
	case 0xF4:
		return LayerFrontPaste
	case 0xF6:
		return LayerBackSilk
	case 0xF7:
		return LayerFrontSilk
	case 0xFA:
		return LayerBackCourtyard
	case 0xFB:
		return LayerFrontCourtyard
	case 0xFD:
		return LayerFrontSilk
	case 0xEC:
		return LayerBackMask
	case 0xED:
		return LayerFrontMask
	case 0xEE:
		return LayerUser7
	case 0xEF:
		return LayerUser8
	case 0x02:
		return LayerEco1
	case 0x00:
		return LayerEco2
	default:
		return LayerUser3
	}
}

// resolveLayers runs spec.md §4.4 step 1: look up the COPPER layer set
// and push its layer count and names into the sink.
func resolveLayers(idx *brdparse.Index, sink brdmodel.Sink) int {
	copperSetKey := idx.Header.LayerSets[brdtypes.FamilyCopper]
	ls, ok := idx.LayerSets[copperSetKey]
	if !ok {
		sink.SetCopperLayerCount(0)
		return 0
	}
	sink.SetCopperLayerCount(len(ls.Entries))
	for i, e := range ls.Entries {
		name := e.Name()
		if idx.Magic > brdtypes.A164 {
			name = idx.String(e.NameRef)
		}
		sink.SetLayerName(i, name)
	}
	return len(ls.Entries)
}
