package nunchuck

import (
	"encoding/json"
	"fmt"
)

// JoyState is the joystick part of a snapshot: the raw position, the
// calibrated center it is measured against, and the derived deflection
// percentages.
type JoyState struct {
	X             uint8 `json:"x"`
	Y             uint8 `json:"y"`
	XCenter       uint8 `json:"x_cal_center"`
	YCenter       uint8 `json:"y_cal_center"`
	XAnglePercent int   `json:"x_angle_perc"`
	YAnglePercent int   `json:"y_angle_perc"`
}

// AccelState is the accelerometer part of a snapshot, 10-bit per axis.
type AccelState struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
	Z uint16 `json:"z"`
}

// State is a consistent snapshot of every derived field, all decoded from
// one single sensor frame.
type State struct {
	C     bool       `json:"c"`
	Z     bool       `json:"z"`
	Joy   JoyState   `json:"joy"`
	Accel AccelState `json:"acc"`
}

// ReadState polls the controller once and returns all derived fields from
// that single frame. Reading through one snapshot avoids mixing fields from
// different polling cycles, which calling the accessors around separate
// Update calls would allow.
func (d *Device) ReadState() (State, error) {
	if err := d.Update(); err != nil {
		return State{}, err
	}
	return d.snapshot()
}

// snapshot derives a State from the currently held frame without bus I/O.
func (d *Device) snapshot() (State, error) {
	xPerc, err := d.JoyXAnglePercent()
	if err != nil {
		return State{}, err
	}
	yPerc, err := d.JoyYAnglePercent()
	if err != nil {
		return State{}, err
	}

	c, z := decodeButtons(d.buttons, buttonBits(d.frame))
	jx, jy := joyFromFrame(d.frame)
	ax, ay, az := accelFromFrame(d.frame)

	return State{
		C: c,
		Z: z,
		Joy: JoyState{
			X:             jx,
			Y:             jy,
			XCenter:       d.joyXCenter,
			YCenter:       d.joyYCenter,
			XAnglePercent: xPerc,
			YAnglePercent: yPerc,
		},
		Accel: AccelState{X: ax, Y: ay, Z: az},
	}, nil
}

// JSON encodes the snapshot for a structured feed.
func (s State) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// String renders the snapshot as one human-readable line.
func (s State) String() string {
	return fmt.Sprintf("C:%5t Z:%5t Joy:%4d,%4d Accel XYZ:%4d,%4d,%4d Joy X perc:%4d%% Joy Y perc:%4d%%",
		s.C, s.Z,
		s.Joy.X, s.Joy.Y,
		s.Accel.X, s.Accel.Y, s.Accel.Z,
		s.Joy.XAnglePercent, s.Joy.YAnglePercent)
}
