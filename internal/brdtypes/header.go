package brdtypes

import (
	"encoding/binary"

	"github.com/cadenceboard/brdreader/internal/brderr"
)

// Layer-set family indices into Header.LayerSets. Only the families the
// graph builder actually resolves get named constants; the remaining
// slots exist on disk but carry no documented semantics (spec.md §9).
const (
	FamilyCopper        = 0
	FamilySilk          = 1
	FamilyBoardGeometry = 2
	FamilyCount         = 26
)

// LinkedList is a head/tail sentinel pair for one of the header-anchored
// intrusive linked lists spec.md §3/§4.4 walks.
type LinkedList struct {
	Head Key
	Tail Key
}

// HeaderSize is the fixed byte size of the decoded header region.
// Everything between HeaderSize and StringTableOffset is reserved
// padding this reader does not interpret.
const HeaderSize = 176

// StringTableOffset is the fixed offset at which the interned string
// table begins, per spec.md §4.3 step 3.
const StringTableOffset = 0x1200

// Header is the decoded file header: magic, unit system, object count,
// the 26 layer-set slots, and the linked-list head/tail pairs the graph
// builder's eight traversal steps start from.
type Header struct {
	Magic        Magic
	Units        Units
	UnitDivisor  uint32
	ObjectCount  uint32
	StringsCount uint32
	X27EndOffset uint32
	ScaleFactor  float64

	LayerSets [FamilyCount]Key

	Nets            LinkedList // T1B ring
	FreeZones       LinkedList // ll_x0E_x28
	FreeAnnotations LinkedList // ll_x14
	Footprints      LinkedList // ll_x2B
	FreeText        LinkedList // ll_x03_x30
	FreeRectZones   LinkedList // ll_x24_x28
}

// DecodeHeader decodes the fixed header occupying the first HeaderSize
// bytes of data. A file too short to hold a full header cannot be
// loaded at all, so it is reported the same way an unopenable file is
// (brderr.FileOpen) rather than left to panic on an out-of-range slice.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, brderr.FileOpenErr()
	}

	rawMagic := binary.LittleEndian.Uint32(data[0:4])
	magic, err := ParseMagic(rawMagic)
	if err != nil {
		return nil, err
	}

	units := Units(data[4])
	divisor := binary.LittleEndian.Uint32(data[8:12])
	scale, err := ScaleFactor(units, divisor)
	if err != nil {
		return nil, err
	}

	h := &Header{
		Magic:        magic,
		Units:        units,
		UnitDivisor:  divisor,
		ObjectCount:  binary.LittleEndian.Uint32(data[12:16]),
		StringsCount: binary.LittleEndian.Uint32(data[16:20]),
		X27EndOffset: binary.LittleEndian.Uint32(data[20:24]),
		ScaleFactor:  scale,
	}

	off := 24
	for i := 0; i < FamilyCount; i++ {
		h.LayerSets[i] = Key(binary.LittleEndian.Uint32(data[off : off+4]))
		off += 4
	}

	lists := []*LinkedList{
		&h.Nets, &h.FreeZones, &h.FreeAnnotations,
		&h.Footprints, &h.FreeText, &h.FreeRectZones,
	}
	for _, ll := range lists {
		ll.Head = Key(binary.LittleEndian.Uint32(data[off : off+4]))
		ll.Tail = Key(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += 8
	}

	return h, nil
}
