package brdtypes

import (
	"encoding/binary"
	"testing"
)

func buildLayerSet(magic Magic, family byte, names []string, props []uint32) []byte {
	count := len(names)
	size := LayerSetSize(magic, count)
	buf := make([]byte, size)
	buf[0] = TagLayerSet
	buf[RecordPrefixSize] = family
	binary.LittleEndian.PutUint16(buf[RecordPrefixSize+4:], uint16(count))

	entrySize := layerEntrySize(magic)
	off := layerSetFixedSize
	for i, name := range names {
		if magic <= A164 {
			copy(buf[off:off+32], name)
			binary.LittleEndian.PutUint32(buf[off+32:off+36], props[i])
		} else {
			binary.LittleEndian.PutUint32(buf[off:off+4], uint32(i+1))
			binary.LittleEndian.PutUint32(buf[off+4:off+8], props[i])
		}
		off += entrySize
	}
	return buf
}

func TestDecodeLayerSetInlineNames(t *testing.T) {
	buf := buildLayerSet(A160, ZoneFamilyCopper, []string{"TOP", "BOTTOM"}, []uint32{1, 2})
	ls := DecodeLayerSet(buf, A160)
	if len(ls.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(ls.Entries))
	}
	if ls.Entries[0].Name() != "TOP" || ls.Entries[1].Name() != "BOTTOM" {
		t.Errorf("names = %q, %q", ls.Entries[0].Name(), ls.Entries[1].Name())
	}
	if ls.Entries[0].Properties != 1 || ls.Entries[1].Properties != 2 {
		t.Errorf("unexpected properties: %+v", ls.Entries)
	}
}

func TestDecodeLayerSetStringKeyed(t *testing.T) {
	buf := buildLayerSet(A172, ZoneFamilyCopper, []string{"L1", "L2", "L3", "L4"}, []uint32{0, 0, 0, 0})
	ls := DecodeLayerSet(buf, A172)
	if len(ls.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4", len(ls.Entries))
	}
	for i, e := range ls.Entries {
		if e.NameRef != Key(i+1) {
			t.Errorf("entry %d NameRef = %d, want %d", i, e.NameRef, i+1)
		}
	}
}

func TestLayerSetSizeRoundsToWord(t *testing.T) {
	sz := LayerSetSize(A172, 3)
	if sz%4 != 0 {
		t.Errorf("LayerSetSize = %d, not word-aligned", sz)
	}
}
