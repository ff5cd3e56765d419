package record

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		address int
		a, b    int32
		want    string
	}{
		{0, 0x7FFF, 0xFFFE, "00,0,0,7f,ff,ff,fe\n"},
		{1, 0, 0, "00,0,2,0,0,0,0\n"},
		{23999, 0x1234, 0x00AB, "00,bb,7e,12,34,0,ab\n"},
		{100000, 0xFFFF, 0x0100, "03,d,40,ff,ff,1,0\n"},
		{MaxAddress, 0, 0, "03,ff,fe,0,0,0,0\n"},
		// oversized values are masked
		{1 << 17, 0x12345, -1, "00,0,0,23,45,ff,ff\n"},
	}
	for _, tt := range tests {
		got := Encode(tt.address, tt.a, tt.b).String()
		if got != tt.want {
			t.Errorf("Encode(%d, %#x, %#x) = %q, want %q", tt.address, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAppendTextLegacy(t *testing.T) {
	got := string(Encode(0, 0x7FFF, 0xFFFE).AppendText(nil, Legacy))
	want := "00,0,0,7f,ff,ff,fe,\n"
	if got != want {
		t.Errorf("legacy line = %q, want %q", got, want)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := Encode(12345, 4321, 999).String()
	b := Encode(12345, 4321, 999).String()
	if a != b {
		t.Errorf("same input encoded differently: %q vs %q", a, b)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	for address := 0; address <= MaxAddress; address++ {
		r := Encode(address, int32(address&0xFFFF), int32(^address&0xFFFF))
		if r[2]&1 != 0 {
			t.Fatalf("address %d: low bit of field 2 is set", address)
		}

		parsed, err := Parse(r.String())
		if err != nil {
			t.Fatalf("address %d: %v", address, err)
		}
		if got := parsed.Address(); got != address {
			t.Fatalf("Address() = %d, want %d", got, address)
		}
		if parsed.A() != int32(address&0xFFFF) || parsed.B() != int32(^address&0xFFFF) {
			t.Fatalf("address %d: samples = %#x, %#x", address, parsed.A(), parsed.B())
		}
	}
}

func TestParseLegacy(t *testing.T) {
	want := Encode(4242, 0xBEEF, 0x0F0F)
	got, err := Parse(string(want.AppendText(nil, Legacy)))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line  string
		field int
	}{
		{"", -1},
		{"00,0,0,7f,ff,ff\n", -1},
		{"00,0,0,7f,ff,ff,fe,00\n", -1},
		{"00,0,0,7g,ff,ff,fe\n", 3},
		{"00,0,100,7f,ff,ff,fe\n", 2},
		{"04,0,0,7f,ff,ff,fe\n", 0},
		{"00,,0,7f,ff,ff,fe\n", 1},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", tt.line, err)
			continue
		}
		if perr.Field != tt.field {
			t.Errorf("Parse(%q) field = %d, want %d", tt.line, perr.Field, tt.field)
		}
	}
}

func TestFormat(t *testing.T) {
	if Canonical.Ext() != ".dat" {
		t.Errorf("Canonical.Ext() = %q", Canonical.Ext())
	}
	if Legacy.Ext() != ".txt" {
		t.Errorf("Legacy.Ext() = %q", Legacy.Ext())
	}

	for _, f := range []Format{Canonical, Legacy} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if f, err := ParseFormat(""); err != nil || f != Canonical {
		t.Errorf("ParseFormat(\"\") = %v, %v, want canonical", f, err)
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(\"csv\") succeeded, want error")
	}
}
