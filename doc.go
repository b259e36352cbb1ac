// Package nunchuck provides a TinyGo driver for the Wii Nunchuk controller.
//
// The controller is polled over I2C: it cannot push sensor changes, so the
// caller requests a fresh 6-byte sensor frame at whatever cadence it wants.
// Each frame carries the joystick position, three 10-bit accelerometer axes
// and the C and Z button states.
//
// # Features
//
//   - Joystick X/Y with startup calibration and signed percentage deflection
//   - Three-axis 10-bit accelerometer readings
//   - C and Z buttons, with edge detection for press/release events
//   - Alternate button decode for controller revisions whose C and Z
//     bits report cross-wired
//   - Single-call consistent snapshot with JSON and text rendering
//
// # Hardware Connection
//
// The Nunchuk speaks standard I2C at a fixed address (0x52). Only one
// controller is possible per bus. The bus is stable at 100kHz; 200kHz
// usually works, 400kHz does not.
//
//	Connector Pin | Function | Notes
//	--------------|----------|---------------------------
//	+             | VCC      | 3.3V power
//	-             | GND      | Ground
//	d             | SDA      | I2C data
//	c             | SCL      | I2C clock
//
// # Example Usage
//
//	package main
//
//	import (
//	    "machine"
//	    "time"
//
//	    nunchuck "github.com/okoeroo/rppico-nunchuck"
//	)
//
//	func main() {
//	    i2c := machine.I2C1
//	    i2c.Configure(machine.I2CConfig{
//	        SCL:       machine.GP15,
//	        SDA:       machine.GP14,
//	        Frequency: 100 * machine.KHz,
//	    })
//
//	    nun := nunchuck.New(i2c)
//	    if err := nun.Configure(nunchuck.Config{}); err != nil {
//	        println("configure:", err.Error())
//	        return
//	    }
//
//	    for {
//	        if err := nun.Update(); err != nil {
//	            println("update:", err.Error())
//	            continue
//	        }
//
//	        if nun.ZJustPressed() {
//	            println("Z pressed!")
//	        }
//
//	        x, _ := nun.JoyXAnglePercent()
//	        y, _ := nun.JoyYAnglePercent()
//	        println("joystick:", x, y)
//
//	        time.Sleep(100 * time.Millisecond)
//	    }
//	}
//
// # Original Library
//
// This is a port of a MicroPython Nunchuk driver for the Raspberry Pi Pico.
// Protocol reference: https://bootlin.com/labs/doc/nunchuk.pdf
package nunchuck
