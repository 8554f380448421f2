package brdtypes

// Arc is a T01 record: one segment of a shape/zone/annotation/track
// outline that bows around a center point instead of running straight.
// Center and radius are stored on disk as CADENCE_FP doubles, per
// spec.md §4.2 and the original T_01_ARC layout's x/y/r fields.
type Arc struct {
	Key       Key
	Width     uint32
	StartX    int32
	StartY    int32
	EndX      int32
	EndY      int32
	CenterX   float64
	CenterY   float64
	Radius    float64
	Clockwise bool // subtype == 0 means clockwise, per spec.md §4.4.b
	Next      Key
}

// ArcSize is the fixed on-disk size of a T01 record: the four int32
// start/end coordinates plus three CADENCE_FP (8-byte) fields for
// center x, center y, and radius.
const ArcSize = RecordPrefixSize + 4 + 4*4 + 8*3 + 4 + 4

// DecodeArc decodes a T01 record starting at data[0].
func DecodeArc(data []byte) Arc {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	a := Arc{Key: p.Key}
	a.Width = readU32(data, off)
	off += 4
	a.StartX = readI32(data, off)
	off += 4
	a.StartY = readI32(data, off)
	off += 4
	a.EndX = readI32(data, off)
	off += 4
	a.EndY = readI32(data, off)
	off += 4
	a.CenterX = DecodeCadenceFP(readU32(data, off), readU32(data, off+4))
	off += 8
	a.CenterY = DecodeCadenceFP(readU32(data, off), readU32(data, off+4))
	off += 8
	a.Radius = DecodeCadenceFP(readU32(data, off), readU32(data, off+4))
	off += 8
	subtype := data[off]
	a.Clockwise = subtype == 0
	off += 4 // subtype byte + 3 bytes padding
	a.Next = readKey(data, off)
	return a
}

// Segment is a straight line segment: T15, T16, or T17. The three tags
// share layout; spec.md never assigns them distinct per-tag fields, only
// distinct dispatch slots, so one struct/decoder serves all three.
type Segment struct {
	Key    Key
	Width  uint32
	StartX int32
	StartY int32
	EndX   int32
	EndY   int32
	Next   Key
}

// SegmentSize is the fixed on-disk size of a T15/T16/T17 record.
const SegmentSize = RecordPrefixSize + 4 + 4*4 + 4

// DecodeSegment decodes a T15/T16/T17 record starting at data[0].
func DecodeSegment(data []byte) Segment {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	s := Segment{Key: p.Key}
	s.Width = readU32(data, off)
	off += 4
	s.StartX = readI32(data, off)
	off += 4
	s.StartY = readI32(data, off)
	off += 4
	s.EndX = readI32(data, off)
	off += 4
	s.EndY = readI32(data, off)
	off += 4
	s.Next = readKey(data, off)
	return s
}

// IsChainTag reports whether tag is one of the segment/arc tags that
// shape_starting_at (spec.md §4.4.b) follows.
func IsChainTag(tag byte) bool {
	switch tag {
	case TagArc, TagSegment15, TagSegment16, TagSegment17:
		return true
	default:
		return false
	}
}
