package brdtypes

// RefdesLink is a T07 record: the indirection between a placement's
// inst_ref and the reference-designator string, per spec.md §4.4 step
// 6.b ("inst_ref → T07 → refdes_string_ref").
type RefdesLink struct {
	Key             Key
	RefdesStringRef Key
	Next            Key
}

// RefdesLinkSize is the fixed on-disk size of a T07 record.
const RefdesLinkSize = RecordPrefixSize + 4 + 4

// DecodeRefdesLink decodes a T07 record starting at data[0].
func DecodeRefdesLink(data []byte) RefdesLink {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	r := RefdesLink{Key: p.Key}
	r.RefdesStringRef = readKey(data, off)
	off += 4
	r.Next = readKey(data, off)
	return r
}

// PlacedPadLink is a T0D record: the indirection between a T32 placed
// pad and its backing T1C pad-stack.
type PlacedPadLink struct {
	Key         Key
	PadStackRef Key
	Next        Key
}

// PlacedPadLinkSize is the fixed on-disk size of a T0D record.
const PlacedPadLinkSize = RecordPrefixSize + 4 + 4

// DecodePlacedPadLink decodes a T0D record starting at data[0].
func DecodePlacedPadLink(data []byte) PlacedPadLink {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	l := PlacedPadLink{Key: p.Key}
	l.PadStackRef = readKey(data, off)
	off += 4
	l.Next = readKey(data, off)
	return l
}

// PlacedPad is a T32 record: one placed instance of a pad stack within a
// footprint, chained from a placement's first_pad_ptr.
type PlacedPad struct {
	Key      Key
	LinkRef  Key // -> T0D -> T1C
	Net      Key
	X        int32
	Y        int32
	Rotation int32
	Next     Key
}

// PlacedPadSize is the fixed on-disk size of a T32 record.
const PlacedPadSize = RecordPrefixSize + 4 + 4 + 4 + 4 + 4 + 4

// DecodePlacedPad decodes a T32 record starting at data[0].
func DecodePlacedPad(data []byte) PlacedPad {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	pp := PlacedPad{Key: p.Key}
	pp.LinkRef = readKey(data, off)
	off += 4
	pp.Net = readKey(data, off)
	off += 4
	pp.X = readI32(data, off)
	off += 4
	pp.Y = readI32(data, off)
	off += 4
	pp.Rotation = readI32(data, off)
	off += 4
	pp.Next = readKey(data, off)
	return pp
}

// Placement is a T2D record: one instance of a footprint on the board,
// anchoring its refdes, pads, annotations, text, and zones.
type Placement struct {
	Key         Key
	InstRef     Key // -> T07
	FirstPadPtr Key // -> T32 chain
	AnnotHead   Key // ptr1, -> T14 chain
	TextHead    Key // ptr3, -> T30 chain
	ZoneHead    Key // ptr4[1], -> T28 chain
	Layer       byte
	X           int32
	Y           int32
	Rotation    int32
	Next        Key
}

// PlacementSize is the fixed on-disk size of a T2D record.
const PlacementSize = RecordPrefixSize + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 4

// DecodePlacement decodes a T2D record starting at data[0].
func DecodePlacement(data []byte) Placement {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	pl := Placement{Key: p.Key}
	pl.InstRef = readKey(data, off)
	off += 4
	pl.FirstPadPtr = readKey(data, off)
	off += 4
	pl.AnnotHead = readKey(data, off)
	off += 4
	pl.TextHead = readKey(data, off)
	off += 4
	pl.ZoneHead = readKey(data, off)
	off += 4
	pl.Layer = data[off]
	off += 4
	pl.X = readI32(data, off)
	off += 4
	pl.Y = readI32(data, off)
	off += 4
	pl.Rotation = readI32(data, off)
	off += 4
	pl.Next = readKey(data, off)
	return pl
}

// Orientation converts a placement's raw rotation into board degrees,
// per spec.md §4.4 step 6.b: sign flips for back-layer placements.
func (pl Placement) Orientation() float64 {
	sign := 1.0
	if pl.Layer != 0 {
		sign = -1.0
	}
	return sign * float64(pl.Rotation) / 1000.0
}

// Footprint is a T2B record: a library footprint definition, heading a
// chain of board placements.
type Footprint struct {
	Key           Key
	NameRef       Key // library name string key
	PlacementHead Key
	Next          Key
}

// FootprintSize is the fixed on-disk size of a T2B record.
const FootprintSize = RecordPrefixSize + 4 + 4 + 4

// DecodeFootprint decodes a T2B record starting at data[0].
func DecodeFootprint(data []byte) Footprint {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	f := Footprint{Key: p.Key}
	f.NameRef = readKey(data, off)
	off += 4
	f.PlacementHead = readKey(data, off)
	off += 4
	f.Next = readKey(data, off)
	return f
}
