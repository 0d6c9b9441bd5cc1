// Package lm75 provides a driver for the LM75 digital temperature sensor.
//
// The device exposes a 9-bit two's-complement temperature register with a
// resolution of 0.5 °C per LSB. Reads are a single pointer-write followed by
// a repeated-start two-byte read.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
package lm75

import (
	"tinygo.org/x/drivers"

	"irricode-go/errcode"
)

// Address is the factory default 7-bit address (A2..A0 strapped low).
const Address = 0x48

// Register pointer values.
const (
	regTemp   = 0x00
	regConfig = 0x01
	regTHyst  = 0x02
	regTOS    = 0x03
)

// Device wraps an I2C connection to an LM75.
type Device struct {
	bus     drivers.I2C
	Address uint16

	buf [2]byte // reuse buffer to avoid allocations
	raw int16   // last raw sample, in half-°C units
}

// New creates a new LM75 connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Connected probes the device with a one-byte temperature read.
func (d *Device) Connected() bool {
	return d.bus.Tx(d.Address, []byte{regTemp}, d.buf[:1]) == nil
}

// Update reads the temperature register into the device cache.
func (d *Device) Update() error {
	if err := d.bus.Tx(d.Address, []byte{regTemp}, d.buf[:2]); err != nil {
		return errcode.Wrap("lm75.update", errcode.NoAck, err)
	}
	// 9 significant bits, left-justified: shift keeps the sign.
	d.raw = int16(uint16(d.buf[0])<<8|uint16(d.buf[1])) >> 7
	return nil
}

// RawHalfCelsius returns the last sample in 0.5 °C units.
func (d *Device) RawHalfCelsius() int16 { return d.raw }

// DeciCelsius returns tenths of °C from the last sample.
func (d *Device) DeciCelsius() int32 { return int32(d.raw) * 5 }

// Celsius returns °C (float) from the last sample. Prefer DeciCelsius for
// fixed-point consumers.
func (d *Device) Celsius() float32 { return float32(d.raw) / 2 }

// ReadTemperature performs Update and returns °C.
func (d *Device) ReadTemperature() (float32, error) {
	if err := d.Update(); err != nil {
		return 0, err
	}
	return d.Celsius(), nil
}
