// Package board is the public entry point for reading Cadence Allegro
// .brd files: it wires brdfile.Open, brdparse.Parse, and brdgraph.Build
// together the way pgdump.DumpDataDir is the one call a host needs into
// the teacher's heap/WAL readers.
package board

import (
	"log"

	"github.com/cadenceboard/brdreader/internal/brdfile"
	"github.com/cadenceboard/brdreader/internal/brdgraph"
	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
)

// Options carries load-time knobs, analogous to the teacher's
// pgdump.Options.
type Options struct {
	// Logger receives soft-anomaly warnings (missing pad number,
	// unresolved font, unknown pad-component shape tag). Defaults to a
	// discarding logger when nil.
	Logger *log.Logger

	// AppendTo, when non-nil, receives the loaded entities instead of a
	// freshly allocated Board, per spec.md §6's load_board(path,
	// [append_to]).
	AppendTo *brdmodel.Board
}

// LoadBoard opens path, parses it, and reconstructs a board model,
// returning the populated Board on success or a *brderr.Error on any
// failure (spec.md §6/§7). Every failure is fatal to the load; nothing
// is retried.
func LoadBoard(path string, opts *Options) (*brdmodel.Board, error) {
	if opts == nil {
		opts = &Options{}
	}

	fm, err := brdfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer fm.Close()

	idx, err := brdparse.Parse(fm.Bytes())
	if err != nil {
		return nil, err
	}

	b := opts.AppendTo
	if b == nil {
		b = brdmodel.NewBoard()
	}

	brdgraph.Build(idx, b, opts.Logger)
	return b, nil
}
