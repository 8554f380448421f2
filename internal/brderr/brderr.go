// Package brderr defines the fatal error kinds a board load can fail
// with. Every kind carries exactly the wording the loader is required to
// report; nothing here is retried or recovered from by the caller.
package brderr

import "fmt"

// Kind identifies which of the fatal failure modes an Error represents.
type Kind int

const (
	// FileOpen means the path could not be opened or mapped.
	FileOpen Kind = iota
	// UnknownMagic means the leading 32-bit word did not match any
	// recognised file-format version.
	UnknownMagic
	// BadUnits means the header's unit byte was not IMPERIAL or METRIC.
	BadUnits
	// UnknownRecord means the main dispatch loop met a tag with no
	// registered parser.
	UnknownRecord
	// UnknownSubtype means a fixed record's sub-discriminator (T03
	// subtype, T36 sub-variant, T24/T28 terminator) was not recognised.
	UnknownSubtype
)

// Error is the single error type every load failure is reported as.
type Error struct {
	Kind Kind
	Raw  uint32 // the offending magic/tag/units value, widened for display
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileOpen:
		return "Failed to open file."
	case UnknownMagic:
		return fmt.Sprintf("Board file magic=0x%08X not recognized.", e.Raw)
	case BadUnits:
		return fmt.Sprintf("Units 0x%02X not recognized.", e.Raw)
	case UnknownRecord:
		return fmt.Sprintf("Do not have parser for t=0x%08X available.", e.Raw)
	case UnknownSubtype:
		return fmt.Sprintf("Unrecognized subtype 0x%02X.", e.Raw)
	default:
		return "unknown board load error"
	}
}

// FileOpenErr reports that the file could not be opened or mapped.
func FileOpenErr() error {
	return &Error{Kind: FileOpen}
}

// UnknownMagicErr reports a leading word outside the known magic set.
func UnknownMagicErr(raw uint32) error {
	return &Error{Kind: UnknownMagic, Raw: raw}
}

// BadUnitsErr reports a header units byte outside {0x01, 0x03}.
func BadUnitsErr(units uint8) error {
	return &Error{Kind: BadUnits, Raw: uint32(units)}
}

// UnknownRecordErr reports a main-loop tag with no dispatch entry. The
// tag byte is reported shifted into the top byte of a 32-bit word to
// match the loader's on-the-wire display convention (e.g. tag 0xFF is
// reported as "t=0xFF000000").
func UnknownRecordErr(tag uint8) error {
	return &Error{Kind: UnknownRecord, Raw: uint32(tag) << 24}
}

// UnknownSubtypeErr reports an unrecognised sub-discriminator byte.
func UnknownSubtypeErr(sub uint8) error {
	return &Error{Kind: UnknownSubtype, Raw: uint32(sub)}
}
