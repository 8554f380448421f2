package brdtypes

import "encoding/binary"

// Record tags: the single byte every record begins with, also the slot
// index the parser's dispatch table is keyed by (spec.md §4.3).
const (
	TagFreeTextMarker = 0x03 // T03 - skipped, paired with T30 in the free-text list
	TagArc            = 0x01 // T01
	TagNetAssignment  = 0x04 // T04
	TagTrack          = 0x05 // T05
	TagRefdesLink     = 0x07 // T07
	TagPlacedPadLink  = 0x0D // T0D
	TagGroupLink      = 0x0E // T0E
	TagAnnotation     = 0x14 // T14
	TagSegment15      = 0x15 // T15
	TagSegment16      = 0x16 // T16
	TagSegment17      = 0x17 // T17
	TagNet            = 0x1B // T1B
	TagPadStack       = 0x1C // T1C
	TagVarRecord1E    = 0x1E // T1E
	TagVarRecord1F    = 0x1F // T1F
	TagMultiShape     = 0x21 // T21
	TagRectangle      = 0x24 // T24
	TagShapeZone      = 0x28 // T28
	TagLayerSet       = 0x2A // T2A
	TagFootprint      = 0x2B // T2B
	TagPlacement      = 0x2D // T2D
	TagGroupLink2     = 0x2E // T2E
	TagTextWrapper    = 0x30 // T30
	TagTextGraphic    = 0x31 // T31
	TagPlacedPad      = 0x32 // T32
	TagVia            = 0x33 // T33
	TagCutout         = 0x34 // T34
	TagFontTable      = 0x36 // T36

	// TagEarlyTerminate is the special tag whose parser jumps the cursor
	// directly to header.X27EndOffset-1, per spec.md §4.3 step 4.
	TagEarlyTerminate = 0x27

	// DispatchSlots is the size of the parser's tag dispatch table.
	DispatchSlots = 64
)

// RecordPrefixSize is the common 8-byte (tag, 3 bytes padding, 4-byte
// key) prefix every tagged record begins with.
const RecordPrefixSize = 8

// RecordPrefix holds the fields common to every tagged record.
type RecordPrefix struct {
	Tag byte
	Key Key
}

// DecodeRecordPrefix reads the common tag+key prefix at the start of
// data. The caller must ensure len(data) >= RecordPrefixSize.
func DecodeRecordPrefix(data []byte) RecordPrefix {
	return RecordPrefix{
		Tag: data[0],
		Key: Key(binary.LittleEndian.Uint32(data[4:8])),
	}
}

func readKey(data []byte, off int) Key {
	return Key(binary.LittleEndian.Uint32(data[off : off+4]))
}

func readI32(data []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(data[off : off+4]))
}

func readU32(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off : off+4])
}

func readU16(data []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(data[off : off+2])
}
