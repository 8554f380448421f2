package brdtypes

import (
	"encoding/binary"
	"testing"
)

func buildPrefixed(tag byte, key Key, bodySize int) []byte {
	buf := make([]byte, RecordPrefixSize+bodySize)
	buf[0] = tag
	binary.LittleEndian.PutUint32(buf[4:8], uint32(key))
	return buf
}

func TestDecodeFootprint(t *testing.T) {
	buf := buildPrefixed(TagFootprint, 10, FootprintSize-RecordPrefixSize)
	binary.LittleEndian.PutUint32(buf[8:12], 55)  // name ref
	binary.LittleEndian.PutUint32(buf[12:16], 99) // placement head
	binary.LittleEndian.PutUint32(buf[16:20], 0)  // next

	f := DecodeFootprint(buf)
	if f.Key != 10 || f.NameRef != 55 || f.PlacementHead != 99 {
		t.Fatalf("unexpected decode: %+v", f)
	}
}

func TestDecodePlacementOrientation(t *testing.T) {
	buf := buildPrefixed(TagPlacement, 20, PlacementSize-RecordPrefixSize)
	off := RecordPrefixSize
	binary.LittleEndian.PutUint32(buf[off:off+4], 1) // inst ref
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 2) // first pad ptr
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 3) // annot head
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 4) // text head
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 5) // zone head
	off += 4
	buf[off] = 1 // back layer
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 1000) // x
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 2000) // y
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 45000) // rotation, 45 deg * 1000
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 0) // next

	pl := DecodePlacement(buf)
	if pl.Layer != 1 || pl.X != 1000 || pl.Y != 2000 {
		t.Fatalf("unexpected decode: %+v", pl)
	}
	if got := pl.Orientation(); got != -45.0 {
		t.Errorf("Orientation() = %v, want -45 (back layer negates sign)", got)
	}
}

func TestDecodePlacedPad(t *testing.T) {
	buf := buildPrefixed(TagPlacedPad, 30, PlacedPadSize-RecordPrefixSize)
	off := RecordPrefixSize
	binary.LittleEndian.PutUint32(buf[off:off+4], 7) // link ref -> T0D
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 8) // net
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 100) // x
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 200) // y
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 0) // rotation
	off += 4
	binary.LittleEndian.PutUint32(buf[off:off+4], 0) // next

	pp := DecodePlacedPad(buf)
	if pp.LinkRef != 7 || pp.Net != 8 || pp.X != 100 || pp.Y != 200 {
		t.Fatalf("unexpected decode: %+v", pp)
	}
}

func TestDecodeRefdesLinkAndPlacedPadLink(t *testing.T) {
	rbuf := buildPrefixed(TagRefdesLink, 1, RefdesLinkSize-RecordPrefixSize)
	binary.LittleEndian.PutUint32(rbuf[8:12], 42)
	r := DecodeRefdesLink(rbuf)
	if r.RefdesStringRef != 42 {
		t.Fatalf("RefdesStringRef = %d, want 42", r.RefdesStringRef)
	}

	lbuf := buildPrefixed(TagPlacedPadLink, 2, PlacedPadLinkSize-RecordPrefixSize)
	binary.LittleEndian.PutUint32(lbuf[8:12], 99)
	l := DecodePlacedPadLink(lbuf)
	if l.PadStackRef != 99 {
		t.Fatalf("PadStackRef = %d, want 99", l.PadStackRef)
	}
}
