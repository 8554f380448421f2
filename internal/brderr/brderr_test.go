package brderr

import "testing"

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"file open", FileOpenErr(), "Failed to open file."},
		{"unknown magic", UnknownMagicErr(0x00149999), "Board file magic=0x00149999 not recognized."},
		{"bad units", BadUnitsErr(0x04), "Units 0x04 not recognized."},
		{"unknown record", UnknownRecordErr(0xFF), "Do not have parser for t=0xFF000000 available."},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	err := UnknownMagicErr(0x1234)
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if be.Kind != UnknownMagic {
		t.Errorf("Kind = %v, want UnknownMagic", be.Kind)
	}
	if be.Raw != 0x1234 {
		t.Errorf("Raw = 0x%X, want 0x1234", be.Raw)
	}
}
