package nunchuck

import "time"

// Wire protocol facts. The controller is initialized with a single fixed
// command and afterwards answers every report request with a 6-byte frame.
var (
	cmdInit    = []byte{0x40, 0x00}
	cmdRequest = []byte{0x00, 0x00}
)

const frameSize = 6

// handshake sends the one-time init command to the controller. It is needed
// once per power-on; the controller replies to nothing before it.
func (d *Device) handshake() error {
	return d.bus.Tx(Address, cmdInit, nil)
}

// requestSample performs one full request/settle/read cycle and replaces the
// held frame with the response. The frame is read into a scratch buffer and
// copied over only on success, so a failed read can never leave a partially
// populated frame behind. The I2C transfer either fills the whole buffer or
// errors, which also covers short deliveries.
func (d *Device) requestSample() error {
	if err := d.bus.Tx(Address, cmdRequest, nil); err != nil {
		return err
	}
	time.Sleep(settleTime)

	var frame [frameSize]byte
	if err := d.bus.Tx(Address, nil, frame[:]); err != nil {
		return err
	}
	d.frame = frame
	return nil
}
