package brdparse

import (
	"encoding/binary"

	"github.com/cadenceboard/brdreader/internal/brderr"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// recordHandler decodes one record starting at data[0], registers it in
// idx.Records (and any side table it owns), and returns the record's
// total on-disk size so the caller can advance the cursor. data spans
// from the record's start to the end of the file.
type recordHandler func(idx *Index, data []byte, magic brdtypes.Magic) (int, error)

// dispatchTable is the process-wide, read-only tag→handler table from
// spec.md §4.3: 64 slots, unregistered tags fail loudly rather than
// being silently skipped.
var dispatchTable [brdtypes.DispatchSlots]recordHandler

func init() {
	dispatchTable[brdtypes.TagArc] = handleArc
	dispatchTable[brdtypes.TagSegment15] = handleSegment
	dispatchTable[brdtypes.TagSegment16] = handleSegment
	dispatchTable[brdtypes.TagSegment17] = handleSegment
	dispatchTable[brdtypes.TagFreeTextMarker] = handleFreeTextMarker
	dispatchTable[brdtypes.TagNetAssignment] = handleNetAssignment
	dispatchTable[brdtypes.TagTrack] = handleTrack
	dispatchTable[brdtypes.TagRefdesLink] = handleRefdesLink
	dispatchTable[brdtypes.TagPlacedPadLink] = handlePlacedPadLink
	dispatchTable[brdtypes.TagGroupLink] = handleGroupLink
	dispatchTable[brdtypes.TagGroupLink2] = handleGroupLink
	dispatchTable[brdtypes.TagAnnotation] = handleAnnotation
	dispatchTable[brdtypes.TagNet] = handleNet
	dispatchTable[brdtypes.TagPadStack] = handlePadStack
	dispatchTable[brdtypes.TagVarRecord1E] = handleVarRecord
	dispatchTable[brdtypes.TagVarRecord1F] = handleVarRecord
	dispatchTable[brdtypes.TagMultiShape] = handleMultiShape
	dispatchTable[brdtypes.TagRectangle] = handleRectangle
	dispatchTable[brdtypes.TagShapeZone] = handleShape
	dispatchTable[brdtypes.TagLayerSet] = handleLayerSet
	dispatchTable[brdtypes.TagFootprint] = handleFootprint
	dispatchTable[brdtypes.TagPlacement] = handlePlacement
	dispatchTable[brdtypes.TagTextWrapper] = handleTextWrapper
	dispatchTable[brdtypes.TagTextGraphic] = handleTextGraphic
	dispatchTable[brdtypes.TagPlacedPad] = handlePlacedPad
	dispatchTable[brdtypes.TagVia] = handleVia
	dispatchTable[brdtypes.TagCutout] = handleCutout
	dispatchTable[brdtypes.TagFontTable] = handleFontTable
}

func peekU16(data []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(data[off : off+2])
}

func peekU32(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off : off+4])
}

func handleArc(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	a := brdtypes.DecodeArc(data)
	idx.Records[a.Key] = a
	return brdtypes.ArcSize, nil
}

func handleSegment(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	s := brdtypes.DecodeSegment(data)
	idx.Records[s.Key] = s
	return brdtypes.SegmentSize, nil
}

func handleFreeTextMarker(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	m := brdtypes.DecodeFreeTextMarker(data)
	if !brdtypes.RecognizedFreeTextSubtype(m.Subtype) {
		return 0, brderr.UnknownSubtypeErr(m.Subtype)
	}
	idx.Records[m.Key] = m
	return brdtypes.FreeTextMarkerSize, nil
}

func handleNetAssignment(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	a := brdtypes.DecodeNetAssignment(data)
	idx.Records[a.Key] = a
	return brdtypes.NetAssignmentSize, nil
}

func handleTrack(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	t := brdtypes.DecodeTrack(data)
	idx.Records[t.Key] = t
	return brdtypes.TrackSize, nil
}

func handleRefdesLink(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	r := brdtypes.DecodeRefdesLink(data)
	idx.Records[r.Key] = r
	return brdtypes.RefdesLinkSize, nil
}

func handlePlacedPadLink(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	l := brdtypes.DecodePlacedPadLink(data)
	idx.Records[l.Key] = l
	return brdtypes.PlacedPadLinkSize, nil
}

func handleGroupLink(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	g := brdtypes.DecodeGroupLink(data)
	idx.Records[g.Key] = g
	return brdtypes.GroupLinkSize, nil
}

func handleAnnotation(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	a := brdtypes.DecodeAnnotation(data)
	idx.Records[a.Key] = a
	return brdtypes.AnnotationSize, nil
}

func handleNet(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	n := brdtypes.DecodeNet(data)
	idx.Records[n.Key] = n
	return brdtypes.NetSize, nil
}

func handlePadStack(idx *Index, data []byte, magic brdtypes.Magic) (int, error) {
	layerCount := int(peekU16(data, brdtypes.RecordPrefixSize))
	size := brdtypes.PadStackSize(magic, layerCount)
	if size > len(data) {
		size = len(data)
	}
	ps := brdtypes.DecodePadStack(data[:size], magic)
	idx.Records[ps.Key] = ps
	return size, nil
}

func handleVarRecord(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	length := peekU32(data, brdtypes.RecordPrefixSize)
	size := brdtypes.VarRecordSize(length)
	if size > len(data) {
		size = len(data)
	}
	v := brdtypes.DecodeVarRecord(data)
	idx.Records[v.Key] = v
	return size, nil
}

func handleMultiShape(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	m := brdtypes.DecodeMultiShape(data)
	idx.Records[m.Key] = m
	return brdtypes.MultiShapeSize, nil
}

func handleRectangle(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	r := brdtypes.DecodeRectangle(data)
	if !brdtypes.RecognizedTerminator(r.Terminator) {
		return 0, brderr.UnknownSubtypeErr(r.Terminator)
	}
	idx.Records[r.Key] = r
	return brdtypes.RectangleSize, nil
}

func handleShape(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	s := brdtypes.DecodeShape(data)
	if !brdtypes.RecognizedTerminator(s.Terminator) {
		return 0, brderr.UnknownSubtypeErr(s.Terminator)
	}
	idx.Records[s.Key] = s
	return brdtypes.ShapeSize, nil
}

func handleLayerSet(idx *Index, data []byte, magic brdtypes.Magic) (int, error) {
	count := int(peekU16(data, brdtypes.RecordPrefixSize+4))
	size := brdtypes.LayerSetSize(magic, count)
	if size > len(data) {
		size = len(data)
	}
	ls := brdtypes.DecodeLayerSet(data[:size], magic)
	idx.LayerSets[ls.Key] = ls
	idx.Records[ls.Key] = ls
	return size, nil
}

func handleFootprint(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	f := brdtypes.DecodeFootprint(data)
	idx.Records[f.Key] = f
	return brdtypes.FootprintSize, nil
}

func handlePlacement(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	p := brdtypes.DecodePlacement(data)
	idx.Records[p.Key] = p
	return brdtypes.PlacementSize, nil
}

func handleTextWrapper(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	w := brdtypes.DecodeTextWrapper(data)
	idx.Records[w.Key] = w
	return brdtypes.TextWrapperSize, nil
}

func handleTextGraphic(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	g := brdtypes.DecodeTextGraphic(data)
	idx.Records[g.Key] = g
	return brdtypes.TextGraphicSize, nil
}

func handlePlacedPad(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	p := brdtypes.DecodePlacedPad(data)
	idx.Records[p.Key] = p
	return brdtypes.PlacedPadSize, nil
}

func handleVia(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	v := brdtypes.DecodeVia(data)
	idx.Records[v.Key] = v
	return brdtypes.ViaSize, nil
}

func handleCutout(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	c := brdtypes.DecodeCutout(data)
	idx.Records[c.Key] = c
	return brdtypes.CutoutSize, nil
}

func handleFontTable(idx *Index, data []byte, _ brdtypes.Magic) (int, error) {
	subtype := data[brdtypes.RecordPrefixSize]
	count := brdtypes.FontTableEntryCount(data)
	size, ok := brdtypes.FontTableSize(subtype, count)
	if !ok {
		return 0, brderr.UnknownSubtypeErr(subtype)
	}
	if size > len(data) {
		size = len(data)
	}
	ft := brdtypes.DecodeFontTable(data[:size])
	idx.FontTables[ft.Key] = ft
	idx.Records[ft.Key] = ft
	return size, nil
}
