package nunchuck

import "testing"

func TestDecodeButtons(t *testing.T) {
	// All four bit combinations under both modes. The modes diverge on
	// the asymmetric patterns 0b00 and 0b10.
	tests := []struct {
		bits                     uint8
		defaultC, defaultZ       bool
		crossWiredC, crossWiredZ bool
	}{
		{0b11, false, false, false, false},
		{0b01, true, false, true, false},
		{0b00, true, true, false, true},
		{0b10, false, true, true, true},
	}

	for _, tt := range tests {
		c, z := decodeButtons(ButtonsDefault, tt.bits)
		if c != tt.defaultC || z != tt.defaultZ {
			t.Errorf("default %#02b: got c=%t z=%t, want c=%t z=%t",
				tt.bits, c, z, tt.defaultC, tt.defaultZ)
		}

		c, z = decodeButtons(ButtonsCrossWired, tt.bits)
		if c != tt.crossWiredC || z != tt.crossWiredZ {
			t.Errorf("cross-wired %#02b: got c=%t z=%t, want c=%t z=%t",
				tt.bits, c, z, tt.crossWiredC, tt.crossWiredZ)
		}
	}
}

func TestDecodeButtonsModesDiverge(t *testing.T) {
	// The whole point of the cross-wired mode is that the independent
	// decode is wrong for those controllers; make sure the two modes do
	// not collapse into the same function.
	diverged := false
	for bits := uint8(0); bits <= buttonBitsMask; bits++ {
		dc, dz := decodeButtons(ButtonsDefault, bits)
		cc, cz := decodeButtons(ButtonsCrossWired, bits)
		if dc != cc || dz != cz {
			diverged = true
		}
	}
	if !diverged {
		t.Error("default and cross-wired decode agree on every input")
	}
}
