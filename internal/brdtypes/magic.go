// Package brdtypes defines the Cadence Allegro .brd record grammar: the
// magic-version enum, the 32-bit key type, fixed-layout per-tag record
// structs, and the version-conditional size formulas spec.md §3/§4.2/§9
// are built from.
package brdtypes

import (
	"fmt"

	"github.com/cadenceboard/brdreader/internal/brderr"
)

// Magic identifies the file-format version a .brd was written by. The
// enum is declared in release order so version-threshold comparisons in
// the record grammar ("magic >= A172", "magic <= A164") can be written
// as plain integer comparisons instead of a parallel ordering table.
type Magic int

const (
	A160 Magic = iota
	A162
	A164
	A165
	A166
	A172
	A174
	A175
)

func (m Magic) String() string {
	switch m {
	case A160:
		return "16.0"
	case A162:
		return "16.2"
	case A164:
		return "16.4"
	case A165:
		return "16.5"
	case A166:
		return "16.6"
	case A172:
		return "17.2"
	case A174:
		return "17.4"
	case A175:
		return "17.5"
	default:
		return fmt.Sprintf("Magic(%d)", int(m))
	}
}

// rawMagic maps the on-disk leading 32-bit word to a logical version.
// Cadence never published these values; they are taken from the
// original reader's `enum MAGIC` table, reused here verbatim so real
// .brd files (spec.md §8 scenarios 1-3) are recognised.
var rawMagic = map[uint32]Magic{
	0x00130000: A160,
	0x00130400: A162,
	0x00130C00: A164,
	0x00131000: A165,
	0x00131500: A166,
	0x00140400: A172,
	0x00140900: A174,
	0x00141500: A175,
}

// MagicRaw returns the on-disk word a Magic decodes from, the inverse of
// ParseMagic. Used by tests to build synthetic fixture headers.
func MagicRaw(m Magic) uint32 {
	for raw, v := range rawMagic {
		if v == m {
			return raw
		}
	}
	return 0
}

// ParseMagic resolves a raw file header word to a known version, or
// fails with brderr.UnknownMagic.
func ParseMagic(raw uint32) (Magic, error) {
	m, ok := rawMagic[raw]
	if !ok {
		return 0, brderr.UnknownMagicErr(raw)
	}
	return m, nil
}

// Units is the header's unit-system byte.
type Units uint8

const (
	UnitsImperial Units = 0x01
	UnitsMetric   Units = 0x03
)

// ScaleFactor returns the file-unit-to-board-unit conversion factor:
// (25400 if imperial else 1,000,000) / divisor, per spec.md §3.
func ScaleFactor(units Units, divisor uint32) (float64, error) {
	if units != UnitsImperial && units != UnitsMetric {
		return 0, brderr.BadUnitsErr(uint8(units))
	}
	if divisor == 0 {
		divisor = 1
	}
	base := 1000000.0
	if units == UnitsImperial {
		base = 25400.0
	}
	return base / float64(divisor), nil
}
