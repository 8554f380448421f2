package brdtypes

// Zone family values, the first discriminator on a T28 shape (spec.md
// §4.4.d decides emission by family, then by ordinal within a family).
const (
	ZoneFamilyCopper        = 0
	ZoneFamilyBoardGeometry = 1
	ZoneFamilySilk          = 2
)

// BoardEdgeOrdinal is the BOARD_GEOMETRY ordinal that marks the board
// outline polygon, per spec.md §4.4.d.
const BoardEdgeOrdinal = 0xFD

// Shape is a T28 record: a filled polygonal region (a zone), identified
// by family/ordinal, with an outline segment chain and an optional
// cutout chain.
type Shape struct {
	Key         Key
	Family      byte
	Ordinal     byte
	Net         Key
	OutlineHead Key // head of the T01/T15/T16/T17 outline chain
	CutoutHead  Key // head of the T34 cutout chain, or NilKey
	Next        Key
	Terminator  byte
}

// ShapeSize is the fixed on-disk size of a T28 record.
const ShapeSize = RecordPrefixSize + 1 + 1 + 2 + 4 + 4 + 4 + 4 + 4

// DecodeShape decodes a T28 record starting at data[0].
func DecodeShape(data []byte) Shape {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	s := Shape{Key: p.Key}
	s.Family = data[off]
	s.Ordinal = data[off+1]
	off += 4 // family + ordinal + 2 bytes padding
	s.Net = readKey(data, off)
	off += 4
	s.OutlineHead = readKey(data, off)
	off += 4
	s.CutoutHead = readKey(data, off)
	off += 4
	s.Next = readKey(data, off)
	off += 4
	s.Terminator = data[off]
	return s
}

// RecognizedTerminator reports whether a T24/T28 terminator byte is the
// one documented value; anything else is an UnknownSubtype error at
// parse time (spec.md §7).
func RecognizedTerminator(b byte) bool {
	return b == 0x00
}

// Cutout is a T34 record: one hole in a zone's outline, chained from
// Shape.CutoutHead.
type Cutout struct {
	Key         Key
	OutlineHead Key
	Next        Key
}

// CutoutSize is the fixed on-disk size of a T34 record.
const CutoutSize = RecordPrefixSize + 4 + 4

// DecodeCutout decodes a T34 record starting at data[0].
func DecodeCutout(data []byte) Cutout {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	c := Cutout{Key: p.Key}
	c.OutlineHead = readKey(data, off)
	off += 4
	c.Next = readKey(data, off)
	return c
}

// Rectangle is a T24 record: a board-edge polygon expressed as two
// corners rather than a segment chain.
type Rectangle struct {
	Key        Key
	Layer      byte
	X0, Y0     int32
	X1, Y1     int32
	Next       Key
	Terminator byte
}

// RectangleSize is the fixed on-disk size of a T24 record.
const RectangleSize = RecordPrefixSize + 1 + 3 + 4*4 + 4 + 1 + 3

// DecodeRectangle decodes a T24 record starting at data[0].
func DecodeRectangle(data []byte) Rectangle {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	r := Rectangle{Key: p.Key}
	r.Layer = data[off]
	off += 4
	r.X0 = readI32(data, off)
	off += 4
	r.Y0 = readI32(data, off)
	off += 4
	r.X1 = readI32(data, off)
	off += 4
	r.Y1 = readI32(data, off)
	off += 4
	r.Next = readKey(data, off)
	off += 4
	r.Terminator = data[off]
	return r
}
