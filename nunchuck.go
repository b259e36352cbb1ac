// Package nunchuck provides a TinyGo driver for the Wii Nunchuk controller.
// This is a port of a MicroPython driver for the Raspberry Pi Pico.
package nunchuck

import (
	"time"

	"tinygo.org/x/drivers"
)

// Address is the fixed I2C address of the controller. The address is not
// configurable, so only one controller is possible per bus.
const Address = 0x52

// Per-axis joystick tolerances in raw units. Offsets from the calibrated
// center below these are treated as rest-position jitter.
const (
	ToleranceJoyX = 15
	ToleranceJoyY = 5
)

// settleTime is the wait the controller needs between a sample request and
// the frame read. Reading sooner yields garbage data.
const settleTime = 5 * time.Millisecond

// Device represents a single Nunchuk controller on an I2C bus.
//
// A Device is not ready for reads until Configure has returned nil. It holds
// the most recent sensor frame; Update replaces it, all accessors read from
// it without touching the bus. The driver does no internal locking: a Device
// must be driven by one goroutine at a time, or concurrent Update calls
// could interleave the request/settle/read sequence on the bus.
type Device struct {
	bus     drivers.I2C
	buttons ButtonMode

	// Most recent sensor frame, fully replaced on every successful Update.
	frame [frameSize]byte

	// Button bits of the frame before the current one, for edge detection.
	prevBits uint8

	joyXCenter uint8
	joyYCenter uint8
}

// Config holds the construction-time configuration of a Device.
type Config struct {
	// Buttons selects the C/Z button decode strategy. The zero value is
	// ButtonsDefault.
	Buttons ButtonMode
}

// New creates a new Nunchuk device on the given I2C bus. The bus must
// already be configured; Configure must be called before the first read.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus}
}

// Configure initializes the controller and calibrates the joystick center.
// It runs the init handshake, waits for the controller to settle, then
// samples once to capture the rest position. If any step fails the device
// is not ready and Configure may be called again.
func (d *Device) Configure(cfg Config) error {
	d.buttons = cfg.Buttons
	if err := d.handshake(); err != nil {
		return err
	}
	time.Sleep(settleTime)
	return d.Calibrate()
}

// Update requests a sensor readout from the controller and receives the
// six-byte frame. It is the only method besides Configure and Calibrate
// that touches the bus. On failure the previously held frame is kept
// intact and the error is returned for the caller to decide on a retry;
// the driver never retries mid-cycle because the controller expects the
// strict request-then-read sequence.
func (d *Device) Update() error {
	prev := buttonBits(d.frame)
	if err := d.requestSample(); err != nil {
		return err
	}
	d.prevBits = prev
	return nil
}

// JoyX returns the raw joystick X position, 0-255 with an approximate 128
// center.
func (d *Device) JoyX() uint8 {
	return d.frame[0]
}

// JoyY returns the raw joystick Y position, 0-255 with an approximate 128
// center.
func (d *Device) JoyY() uint8 {
	return d.frame[1]
}

// AccelX returns the 10-bit X-axis accelerometer value. Observed range is
// approx 278-686 with 475 at rest.
func (d *Device) AccelX() uint16 {
	x, _, _ := accelFromFrame(d.frame)
	return x
}

// AccelY returns the 10-bit Y-axis accelerometer value. Observed range is
// approx 296-716 with 506 at rest.
func (d *Device) AccelY() uint16 {
	_, y, _ := accelFromFrame(d.frame)
	return y
}

// AccelZ returns the 10-bit Z-axis accelerometer value. Observed range is
// approx 295-1015 with 697 at rest.
func (d *Device) AccelZ() uint16 {
	_, _, z := accelFromFrame(d.frame)
	return z
}
