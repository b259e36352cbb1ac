package nunchuck

import "errors"

// ErrZeroCenter is returned by the angle percentage accessors when the
// calibrated center of the axis is 0. The deflection percentage is
// normalized by the center value, so a zero center has no defined
// deflection. Recalibrate with the joystick at rest, or set a center
// explicitly with SetJoystickCenter.
var ErrZeroCenter = errors.New("nunchuck: joystick center calibrated at zero")
