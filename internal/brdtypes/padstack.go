package brdtypes

// PadStackComponent is one per-layer entry in a T1C pad stack's trailing
// component array: a shape tag plus size and offset, or (for custom
// polygon pads) a pointer to the outline shape.
type PadStackComponent struct {
	Tag     byte
	W       int32
	H       int32
	OffsetX int32
	OffsetY int32
	StrPtr  Key // T28 outline, only meaningful when Tag == PadShapeCustomPolygon
}

// PadStackComponentSize is the fixed on-disk size of one trailing
// component entry.
const PadStackComponentSize = 4 + 4 + 4 + 4 + 4 + 4

// DecodePadStackComponent decodes one component entry starting at
// data[0].
func DecodePadStackComponent(data []byte) PadStackComponent {
	c := PadStackComponent{Tag: data[0]}
	off := 4
	c.W = readI32(data, off)
	off += 4
	c.H = readI32(data, off)
	off += 4
	c.OffsetX = readI32(data, off)
	off += 4
	c.OffsetY = readI32(data, off)
	off += 4
	c.StrPtr = readKey(data, off)
	return c
}

// Pad shape tags, spec.md §4.4.a.
const (
	PadShapeCircle        = 0x02
	PadShapeRectangleA    = 0x05
	PadShapeRectangleB    = 0x06
	PadShapeRoundedRectA  = 0x0B
	PadShapeRoundedRectB  = 0x1B
	PadShapeRoundedRectC  = 0x0C
	PadShapeCustomPolygon = 0x16
)

// IsRoundedRectangle reports whether tag is one of the rounded-rectangle
// pad shape variants.
func IsRoundedRectangle(tag byte) bool {
	return tag == PadShapeRoundedRectA || tag == PadShapeRoundedRectB || tag == PadShapeRoundedRectC
}

// IsRectangle reports whether tag is one of the plain rectangle pad
// shape variants.
func IsRectangle(tag byte) bool {
	return tag == PadShapeRectangleA || tag == PadShapeRectangleB
}

// PadStackComponentCount implements the trailing component array length
// formula from spec.md §3: 10+3*layers for magic < A172, else 21+4*layers.
func PadStackComponentCount(magic Magic, layerCount int) int {
	if magic < A172 {
		return 10 + 3*layerCount
	}
	return 21 + 4*layerCount
}

// PrimaryComponentIndex is the trailing-array index holding a placed
// pad's primary (copper) component, per spec.md §4.4 step 6.
func PrimaryComponentIndex(magic Magic) int {
	if magic >= A172 {
		return 23
	}
	return 12
}

// MaskComponentIndex is the trailing-array index holding a placed pad's
// solder-mask component.
func MaskComponentIndex(magic Magic) int {
	if magic >= A172 {
		return 14
	}
	return 0
}

// PasteComponentIndex is the trailing-array index holding a placed pad's
// solder-paste component.
func PasteComponentIndex(magic Magic) int {
	if magic >= A172 {
		return 16
	}
	return 5
}

// PadStack is a T1C record: per-layer pad geometry, referenced by a
// PlacedPad (T32) through its backing T0D.
type PadStack struct {
	Key        Key
	LayerCount uint16
	PadKind    byte
	Components []PadStackComponent
}

// PadStackFixedSize is the fixed-head size of a T1C record, before its
// trailing component array.
const PadStackFixedSize = RecordPrefixSize + 2 + 1 + 1

// extraTrailerSize is the magic-dependent trailer appended after the
// component array (spec.md §9 calls this out as a closed-form function
// of magic; the exact field semantics are undocumented, so only its
// length — needed to compute total record size — is modelled).
func extraTrailerSize(magic Magic) int {
	if magic >= A172 {
		return 8
	}
	return 4
}

// PadStackSize computes a T1C record's total on-disk size given the
// decoded layer count.
func PadStackSize(magic Magic, layerCount int) int {
	count := PadStackComponentCount(magic, layerCount)
	return RoundToWord(PadStackFixedSize + count*PadStackComponentSize + extraTrailerSize(magic))
}

// DecodePadStack decodes a T1C record starting at data[0]. data must
// span at least PadStackSize(magic, layerCount) bytes once layerCount is
// known; callers read the fixed head first to learn LayerCount, then
// re-slice before decoding components.
func DecodePadStack(data []byte, magic Magic) PadStack {
	p := DecodeRecordPrefix(data)
	ps := PadStack{Key: p.Key}
	ps.LayerCount = readU16(data, RecordPrefixSize)
	ps.PadKind = data[RecordPrefixSize+2]

	count := PadStackComponentCount(magic, int(ps.LayerCount))
	ps.Components = make([]PadStackComponent, 0, count)
	off := PadStackFixedSize
	for i := 0; i < count; i++ {
		if off+PadStackComponentSize > len(data) {
			break
		}
		ps.Components = append(ps.Components, DecodePadStackComponent(data[off:off+PadStackComponentSize]))
		off += PadStackComponentSize
	}
	return ps
}

// ComponentAt returns the component at idx, or false if idx is out of
// range (spec.md §4.4 step 6: mask/paste pads are only emitted "when the
// component's tag byte t is non-zero", which first requires the index to
// exist at all).
func (ps PadStack) ComponentAt(idx int) (PadStackComponent, bool) {
	if idx < 0 || idx >= len(ps.Components) {
		return PadStackComponent{}, false
	}
	return ps.Components[idx], true
}
