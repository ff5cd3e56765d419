package generator

import "testing"

func TestReverseBits17(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1 << 16},
		{1 << 16, 1},
		{0x1FFFF, 0x1FFFF},
		{0b10, 1 << 15},
		{1 << 17, 0}, // bits above 16 are dropped
	}
	for _, tt := range tests {
		if got := ReverseBits17(tt.input); got != tt.want {
			t.Errorf("ReverseBits17(%#x) = %#x, want %#x", tt.input, got, tt.want)
		}
	}
}

func TestReverseBits17Involution(t *testing.T) {
	for addr := 0; addr < 1<<17; addr += 97 {
		if got := ReverseBits17(ReverseBits17(addr)); got != addr {
			t.Fatalf("ReverseBits17 twice of %#x = %#x", addr, got)
		}
	}
}
