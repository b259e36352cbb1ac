package nunchuck

// Button line bits in frame byte 5. A set bit means the line reads
// "not pressed" (active low).
const (
	zButtonBit     = 0x01
	cButtonBit     = 0x02
	buttonBitsMask = cButtonBit | zButtonBit
)

// joyFromFrame returns the raw joystick position from a frame.
func joyFromFrame(frame [frameSize]byte) (x, y uint8) {
	return frame[0], frame[1]
}

// accelFromFrame reconstructs the three 10-bit accelerometer values. Bytes
// 2-4 carry the high 8 bits of X, Y and Z; byte 5 packs the 2 low bits of
// each axis at offsets 2, 4 and 6.
func accelFromFrame(frame [frameSize]byte) (x, y, z uint16) {
	x = uint16(frame[2])<<2 | uint16(frame[5]>>2&3)
	y = uint16(frame[3])<<2 | uint16(frame[5]>>4&3)
	z = uint16(frame[4])<<2 | uint16(frame[5]>>6&3)
	return x, y, z
}

// buttonBits returns the two button line bits of a frame.
func buttonBits(frame [frameSize]byte) uint8 {
	return frame[5] & buttonBitsMask
}
