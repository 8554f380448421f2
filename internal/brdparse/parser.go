package brdparse

import (
	"encoding/binary"

	"github.com/cadenceboard/brdreader/internal/brderr"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// Parse runs the sequential indexing pass over a mapped .brd file:
// decode the header, read the string table, then walk tagged records
// through the dispatch table until the cursor runs dry, per spec.md
// §4.3.
func Parse(data []byte) (*Index, error) {
	header, err := brdtypes.DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	idx := newIndex()
	idx.Header = header
	idx.Magic = header.Magic
	idx.ScaleFactor = header.ScaleFactor

	cursor, err := readStringTable(idx, data, header.StringsCount)
	if err != nil {
		return nil, err
	}

	for cursor < len(data) && data[cursor] != 0 {
		tag := data[cursor]

		if tag == brdtypes.TagEarlyTerminate {
			cursor = int(header.X27EndOffset) - 1
			continue
		}

		if int(tag) >= brdtypes.DispatchSlots || dispatchTable[tag] == nil {
			return nil, brderr.UnknownRecordErr(tag)
		}

		size, err := dispatchTable[tag](idx, data[cursor:], header.Magic)
		if err != nil {
			return nil, err
		}
		if size <= 0 {
			break
		}
		cursor += size
	}

	return idx, nil
}

// readStringTable reads count entries starting at the fixed string
// table offset, each a 4-byte key followed by a NUL-terminated string
// padded to a word boundary, and returns the cursor position just past
// the table (spec.md §4.3 step 3).
func readStringTable(idx *Index, data []byte, count uint32) (int, error) {
	cursor := brdtypes.StringTableOffset
	for i := uint32(0); i < count; i++ {
		if cursor+4 > len(data) {
			break
		}
		key := brdtypes.Key(binary.LittleEndian.Uint32(data[cursor : cursor+4]))
		cursor += 4

		start := cursor
		end := start
		for end < len(data) && data[end] != 0 {
			end++
		}
		idx.Strings[key] = append([]byte(nil), data[start:end]...)

		strLen := end - start
		cursor += brdtypes.RoundToWord(strLen + 1)
	}
	return cursor, nil
}
