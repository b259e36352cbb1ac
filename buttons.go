package nunchuck

// ButtonMode selects how the C and Z button bits of a frame are decoded.
// The mode is fixed for the lifetime of a Device.
type ButtonMode uint8

const (
	// ButtonsDefault decodes each button line independently: a cleared
	// bit means the button is pressed (active low).
	ButtonsDefault ButtonMode = iota

	// ButtonsCrossWired decodes both bits jointly, for controller
	// revisions where the two button lines report intertwined and the
	// independent decode gives wrong answers.
	ButtonsCrossWired
)

// decodeButtons resolves the two button line bits into pressed states.
// Cross-wired controllers report:
//
//	c + z = 10
//	c     = 01
//	z     = 00
//	      = 11
func decodeButtons(mode ButtonMode, bits uint8) (c, z bool) {
	cLine := bits&cButtonBit != 0
	zLine := bits&zButtonBit != 0

	if mode == ButtonsCrossWired {
		switch {
		case cLine && zLine:
			return false, false
		case !cLine && zLine:
			return true, false
		case !cLine && !zLine:
			return false, true
		default: // cLine && !zLine
			return true, true
		}
	}

	return !cLine, !zLine
}

// CPressed returns true if the C button is down in the current frame.
func (d *Device) CPressed() bool {
	c, _ := decodeButtons(d.buttons, buttonBits(d.frame))
	return c
}

// ZPressed returns true if the Z button is down in the current frame.
func (d *Device) ZPressed() bool {
	_, z := decodeButtons(d.buttons, buttonBits(d.frame))
	return z
}

// CJustPressed returns true if the C button went down between the two most
// recent polls. It only reports true for one poll per press.
func (d *Device) CJustPressed() bool {
	prev, _ := decodeButtons(d.buttons, d.prevBits)
	cur, _ := decodeButtons(d.buttons, buttonBits(d.frame))
	return cur && !prev
}

// CJustReleased returns true if the C button came up between the two most
// recent polls.
func (d *Device) CJustReleased() bool {
	prev, _ := decodeButtons(d.buttons, d.prevBits)
	cur, _ := decodeButtons(d.buttons, buttonBits(d.frame))
	return !cur && prev
}

// ZJustPressed returns true if the Z button went down between the two most
// recent polls. It only reports true for one poll per press.
func (d *Device) ZJustPressed() bool {
	_, prev := decodeButtons(d.buttons, d.prevBits)
	_, cur := decodeButtons(d.buttons, buttonBits(d.frame))
	return cur && !prev
}

// ZJustReleased returns true if the Z button came up between the two most
// recent polls.
func (d *Device) ZJustReleased() bool {
	_, prev := decodeButtons(d.buttons, d.prevBits)
	_, cur := decodeButtons(d.buttons, buttonBits(d.frame))
	return !cur && prev
}
