package brdtypes

// LayerEntry is one layer within a T2A set: a name (inline for older
// files, string-keyed for newer ones, resolved by the caller once the
// string table is available) plus a property bitfield.
type LayerEntry struct {
	InlineName [32]byte // valid only when magic <= A164
	NameRef    Key      // valid only when magic > A164
	Properties uint32
}

// Name returns the entry's inline name as a Go string, trimmed at the
// first NUL. Callers on magic > A164 files should resolve NameRef
// through Index.Strings instead.
func (e LayerEntry) Name() string {
	n := 0
	for n < len(e.InlineName) && e.InlineName[n] != 0 {
		n++
	}
	return string(e.InlineName[:n])
}

// layerEntrySize returns the per-entry on-disk size for the given magic,
// per spec.md §4.4 step 1: a 32-byte inline name for magic <= A164, or a
// 4-byte string key for later magics; both carry a trailing 4-byte
// property bitfield.
func layerEntrySize(magic Magic) int {
	if magic <= A164 {
		return 32 + 4
	}
	return 4 + 4
}

// LayerSet is a T2A record: an ordered list of layer entries for one of
// the header's 26 layer-set slots (spec.md §4.4 step 1 reads the COPPER
// slot to resolve board copper layers).
type LayerSet struct {
	Key     Key
	Family  byte
	Entries []LayerEntry
}

// layerSetFixedSize is the fixed head of a T2A record before its entry
// array: prefix, family byte + 3 padding, entry count uint16 + 2 padding.
const layerSetFixedSize = RecordPrefixSize + 4 + 4

// LayerSetSize computes a T2A record's total on-disk size for a given
// entry count and magic.
func LayerSetSize(magic Magic, entryCount int) int {
	return RoundToWord(layerSetFixedSize + entryCount*layerEntrySize(magic))
}

// DecodeLayerSet decodes a T2A record starting at data[0]. data must
// span at least LayerSetSize(magic, entryCount) bytes.
func DecodeLayerSet(data []byte, magic Magic) LayerSet {
	p := DecodeRecordPrefix(data)
	ls := LayerSet{Key: p.Key}
	ls.Family = data[RecordPrefixSize]
	count := int(readU16(data, RecordPrefixSize+4))

	entrySize := layerEntrySize(magic)
	off := layerSetFixedSize
	ls.Entries = make([]LayerEntry, 0, count)
	for i := 0; i < count; i++ {
		if off+entrySize > len(data) {
			break
		}
		var e LayerEntry
		if magic <= A164 {
			copy(e.InlineName[:], data[off:off+32])
			e.Properties = readU32(data, off+32)
		} else {
			e.NameRef = readKey(data, off)
			e.Properties = readU32(data, off+4)
		}
		ls.Entries = append(ls.Entries, e)
		off += entrySize
	}
	return ls
}
