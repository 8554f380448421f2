package brdtypes

// TextWrapper is a T30 record: positions and orients a piece of text,
// pointing at the T31 string graphic that carries its content and the
// T36 font table that sizes it.
type TextWrapper struct {
	Key       Key
	StringRef Key // -> T31
	FontRef   Key // -> T36
	Layer     byte
	X         int32
	Y         int32
	Rotation  int32
	Mirror    bool
	Next      Key
}

// TextWrapperSize is the fixed on-disk size of a T30 record.
const TextWrapperSize = RecordPrefixSize + 4 + 4 + 4 + 4 + 4 + 4 + 4

// DecodeTextWrapper decodes a T30 record starting at data[0].
func DecodeTextWrapper(data []byte) TextWrapper {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	w := TextWrapper{Key: p.Key}
	w.StringRef = readKey(data, off)
	off += 4
	w.FontRef = readKey(data, off)
	off += 4
	w.Layer = data[off]
	mirror := data[off+1]
	w.Mirror = mirror != 0
	off += 4
	w.X = readI32(data, off)
	off += 4
	w.Y = readI32(data, off)
	off += 4
	w.Rotation = readI32(data, off)
	off += 4
	w.Next = readKey(data, off)
	return w
}

// TextGraphic is a T31 record: the string-table reference holding a
// text wrapper's literal content.
type TextGraphic struct {
	Key       Key
	StringRef Key
	Next      Key
}

// TextGraphicSize is the fixed on-disk size of a T31 record.
const TextGraphicSize = RecordPrefixSize + 4 + 4

// DecodeTextGraphic decodes a T31 record starting at data[0].
func DecodeTextGraphic(data []byte) TextGraphic {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	g := TextGraphic{Key: p.Key}
	g.StringRef = readKey(data, off)
	off += 4
	g.Next = readKey(data, off)
	return g
}

// T36 sub-variants. FontSubtypeGlyphTable is decoded into glyph metrics;
// the others are recognised only so their declared-length trailer can be
// skipped, per spec.md §9 ("payload must be skipped by the documented
// byte lengths without inference"). Any other subtype byte is an
// UnknownSubtype error at parse time (spec.md §7).
const (
	FontSubtypeGlyphTable  = 0x08
	FontSubtypeKerningPair = 0x04
	FontSubtypeStrokeTable = 0x02
)

// fontSubtypeEntrySize returns the per-entry trailer width for a
// recognised T36 subtype.
func fontSubtypeEntrySize(subtype byte) (int, bool) {
	switch subtype {
	case FontSubtypeGlyphTable:
		return GlyphMetricSize, true
	case FontSubtypeKerningPair:
		return 4, true
	case FontSubtypeStrokeTable:
		return 8, true
	default:
		return 0, false
	}
}

// RecognizedFontSubtype reports whether subtype is one of the T36
// sub-variants this reader knows how to size.
func RecognizedFontSubtype(subtype byte) bool {
	_, ok := fontSubtypeEntrySize(subtype)
	return ok
}

// GlyphMetric is one entry in a T36 glyph size table.
type GlyphMetric struct {
	Width  uint16
	Height uint16
}

// GlyphMetricSize is the on-disk size of one glyph metric entry.
const GlyphMetricSize = 2 + 2

// FontTable is a T36 record. Only FontSubtypeGlyphTable carries a
// decoded glyph table here; other recognised subtypes are sized but
// left with a nil Glyphs slice, since their entry layout is undocumented
// beyond its width.
type FontTable struct {
	Key     Key
	Subtype byte
	Glyphs  []GlyphMetric
}

// fontTableFixedSize is the fixed head of a T36 record: prefix, subtype
// byte + 3 padding, entry count uint16 + 2 padding.
const fontTableFixedSize = RecordPrefixSize + 4 + 4

// FontTableEntryCount reads the entry count out of a T36 record's fixed
// head, so a caller can size the record before a full decode.
func FontTableEntryCount(data []byte) int {
	return int(readU16(data, RecordPrefixSize+4))
}

// FontTableSize computes a T36 record's total on-disk size for a
// recognised subtype and entry count.
func FontTableSize(subtype byte, entryCount int) (int, bool) {
	entrySize, ok := fontSubtypeEntrySize(subtype)
	if !ok {
		return 0, false
	}
	return RoundToWord(fontTableFixedSize + entryCount*entrySize), true
}

// DecodeFontTable decodes a T36 record starting at data[0]. data must
// span the full record as sized by FontTableSize. Only
// FontSubtypeGlyphTable populates Glyphs; other recognised subtypes
// decode just the head.
func DecodeFontTable(data []byte) FontTable {
	p := DecodeRecordPrefix(data)
	ft := FontTable{Key: p.Key}
	ft.Subtype = data[RecordPrefixSize]
	if ft.Subtype != FontSubtypeGlyphTable {
		return ft
	}
	count := FontTableEntryCount(data)
	off := fontTableFixedSize
	ft.Glyphs = make([]GlyphMetric, 0, count)
	for i := 0; i < count; i++ {
		if off+GlyphMetricSize > len(data) {
			break
		}
		ft.Glyphs = append(ft.Glyphs, GlyphMetric{
			Width:  readU16(data, off),
			Height: readU16(data, off+2),
		})
		off += GlyphMetricSize
	}
	return ft
}
