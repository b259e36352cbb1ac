package nunchuck

import "testing"

func TestAccelFromFrame(t *testing.T) {
	tests := []struct {
		name    string
		frame   [frameSize]byte
		x, y, z uint16
	}{
		{"all zero", [frameSize]byte{0, 0, 0, 0, 0, 0}, 0, 0, 0},
		{"all max", [frameSize]byte{0, 0, 0xFF, 0xFF, 0xFF, 0xFF}, 1023, 1023, 1023},
		{"high bytes only", [frameSize]byte{0, 0, 1, 2, 3, 0}, 4, 8, 12},
		{"low bits only", [frameSize]byte{0, 0, 0, 0, 0, 0b11100100}, 1, 2, 3},
		{"mixed", [frameSize]byte{0, 0, 135, 125, 115, 0b00000011}, 540, 500, 460},
	}

	for _, tt := range tests {
		x, y, z := accelFromFrame(tt.frame)
		if x != tt.x || y != tt.y || z != tt.z {
			t.Errorf("%s: accelFromFrame = %d,%d,%d, want %d,%d,%d",
				tt.name, x, y, z, tt.x, tt.y, tt.z)
		}
	}
}

func TestAccelFromFramePacking(t *testing.T) {
	// Each axis is its high byte shifted left 2, OR'd with the 2-bit
	// fragment of byte 5 at the axis-specific offset.
	frame := [frameSize]byte{10, 20, 0x55, 0xAA, 0x0F, 0b10011100}

	wantX := uint16(0x55)<<2 | uint16(frame[5]>>2&3)
	wantY := uint16(0xAA)<<2 | uint16(frame[5]>>4&3)
	wantZ := uint16(0x0F)<<2 | uint16(frame[5]>>6&3)

	x, y, z := accelFromFrame(frame)
	if x != wantX || y != wantY || z != wantZ {
		t.Errorf("accelFromFrame = %d,%d,%d, want %d,%d,%d", x, y, z, wantX, wantY, wantZ)
	}
}

func TestJoyFromFrame(t *testing.T) {
	x, y := joyFromFrame([frameSize]byte{140, 120, 1, 2, 3, 4})
	if x != 140 || y != 120 {
		t.Errorf("joyFromFrame = %d,%d, want 140,120", x, y)
	}
}

func TestButtonBits(t *testing.T) {
	// Only the two low bits of byte 5 are button lines.
	got := buttonBits([frameSize]byte{0, 0, 0, 0, 0, 0b11111101})
	if got != 0b01 {
		t.Errorf("buttonBits = %#b, want 0b01", got)
	}
}
