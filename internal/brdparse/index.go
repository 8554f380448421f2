// Package brdparse implements the sequential indexing pass: a single
// walk over a mapped .brd file that decodes every record once into a
// typed value and remembers it by key, per the in-place-read design
// note in spec.md §9 option (a) — copy into a typed value during the
// parse pass rather than re-reading raw offsets later.
package brdparse

import (
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// Index is the result of a parse pass: every record reachable by a
// sequential scan, keyed by its 32-bit key, plus the header and the
// side tables GraphBuilder needs to resolve names and scale.
type Index struct {
	Header      *brdtypes.Header
	Magic       brdtypes.Magic
	ScaleFactor float64

	Strings    map[brdtypes.Key][]byte
	Records    map[brdtypes.Key]any
	LayerSets  map[brdtypes.Key]brdtypes.LayerSet
	FontTables map[brdtypes.Key]brdtypes.FontTable
}

func newIndex() *Index {
	return &Index{
		Strings:    make(map[brdtypes.Key][]byte),
		Records:    make(map[brdtypes.Key]any),
		LayerSets:  make(map[brdtypes.Key]brdtypes.LayerSet),
		FontTables: make(map[brdtypes.Key]brdtypes.FontTable),
	}
}

// String resolves a string-table key, returning "" for NilKey or a
// dangling key — per spec.md §3, dangling references are silently
// skipped rather than treated as fatal.
func (idx *Index) String(k brdtypes.Key) string {
	if k == brdtypes.NilKey {
		return ""
	}
	return string(idx.Strings[k])
}

// Has reports whether k was registered as a record key during parsing.
func (idx *Index) Has(k brdtypes.Key) bool {
	if k == brdtypes.NilKey {
		return false
	}
	_, ok := idx.Records[k]
	return ok
}
