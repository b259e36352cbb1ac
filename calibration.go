package nunchuck

// Calibrate samples the controller once and stores the joystick reading as
// the rest-position center. Configure calls it once during construction;
// calling it again recenters explicitly, nothing in the driver does so
// automatically. The joystick should be at rest when it runs.
func (d *Device) Calibrate() error {
	if err := d.requestSample(); err != nil {
		return err
	}
	d.joyXCenter, d.joyYCenter = joyFromFrame(d.frame)
	// Seed edge detection so the calibration frame itself reports no edges.
	d.prevBits = buttonBits(d.frame)
	return nil
}

// SetJoystickCenter overrides the calibrated center with explicit values,
// without touching the bus.
func (d *Device) SetJoystickCenter(x, y uint8) {
	d.joyXCenter = x
	d.joyYCenter = y
}

// JoyXCenter returns the calibrated joystick X center.
func (d *Device) JoyXCenter() uint8 {
	return d.joyXCenter
}

// JoyYCenter returns the calibrated joystick Y center.
func (d *Device) JoyYCenter() uint8 {
	return d.joyYCenter
}

// JoyXAnglePercent returns the X deflection as a signed percentage of the
// calibrated center, 0 within the rest tolerance. Returns ErrZeroCenter if
// the calibrated center is 0.
func (d *Device) JoyXAnglePercent() (int, error) {
	return anglePercent(d.frame[0], d.joyXCenter, ToleranceJoyX)
}

// JoyYAnglePercent returns the Y deflection as a signed percentage of the
// calibrated center, 0 within the rest tolerance. Returns ErrZeroCenter if
// the calibrated center is 0.
func (d *Device) JoyYAnglePercent() (int, error) {
	return anglePercent(d.frame[1], d.joyYCenter, ToleranceJoyY)
}

// anglePercent converts a raw axis reading into a signed percentage of the
// center value, rounded to the nearest integer. Offsets below the tolerance
// are rest-position jitter and map to 0. The percentage is relative to the
// center, not to the full travel range, so it is asymmetric when the
// physical range is asymmetric around the center.
func anglePercent(current, center uint8, tolerance int) (int, error) {
	offset := int(current) - int(center)
	if offset < 0 {
		offset = -offset
	}
	if offset < tolerance {
		return 0, nil
	}
	if center == 0 {
		return 0, ErrZeroCenter
	}
	percent := (offset*100 + int(center)/2) / int(center)
	if current < center {
		percent = -percent
	}
	return percent, nil
}
