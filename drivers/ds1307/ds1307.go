// Package ds1307 provides a driver for the DS1307 real-time clock.
//
// Timekeeping registers hold BCD values; this driver decodes and encodes
// them so callers work with plain integers. Each field is read or written as
// an independent one-register transaction, matching the way the controller
// consumes the clock (hour, minute and second are sampled separately every
// cycle).
package ds1307

import (
	"tinygo.org/x/drivers"

	"irricode-go/errcode"
)

// Address is the fixed 7-bit address of the DS1307.
const Address = 0x68

// Register map.
const (
	RegSeconds = 0x00
	RegMinutes = 0x01
	RegHours   = 0x02
	RegWeekday = 0x03
	RegDay     = 0x04
	RegMonth   = 0x05
	RegScratch = 0x06 // calendar year register, repurposed as threshold storage
	RegControl = 0x07
)

// Bit masks.
const (
	maskClockHalt = 0x80 // CH bit, seconds register
	maskHours24   = 0x3F // 24h mode assumed; 12h flag bits stripped
	maskSeconds   = 0x7F
)

// Device wraps an I2C connection to a DS1307.
type Device struct {
	bus     drivers.I2C
	Address uint16

	buf [2]byte
}

// New creates a new DS1307 connection. The I2C bus must already be configured.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// ReadRegister returns one raw register byte.
func (d *Device) ReadRegister(reg uint8) (byte, error) {
	d.buf[0] = reg
	if err := d.bus.Tx(d.Address, d.buf[:1], d.buf[1:2]); err != nil {
		return 0, errcode.Wrap("ds1307.read", errcode.NoAck, err)
	}
	return d.buf[1], nil
}

// WriteRegister writes one raw register byte.
func (d *Device) WriteRegister(reg uint8, val byte) error {
	d.buf[0] = reg
	d.buf[1] = val
	if err := d.bus.Tx(d.Address, d.buf[:2], nil); err != nil {
		return errcode.Wrap("ds1307.write", errcode.NoAck, err)
	}
	return nil
}

// Seconds returns the seconds field with the clock-halt bit masked.
func (d *Device) Seconds() (int, error) {
	b, err := d.ReadRegister(RegSeconds)
	if err != nil {
		return 0, err
	}
	return fromBCD(b & maskSeconds), nil
}

// Minutes returns the minutes field.
func (d *Device) Minutes() (int, error) {
	b, err := d.ReadRegister(RegMinutes)
	if err != nil {
		return 0, err
	}
	return fromBCD(b), nil
}

// Hours returns the hours field in 24h form.
func (d *Device) Hours() (int, error) {
	b, err := d.ReadRegister(RegHours)
	if err != nil {
		return 0, err
	}
	return fromBCD(b & maskHours24), nil
}

// SetMinutes writes the minutes field. Values outside 0..59 are rejected.
func (d *Device) SetMinutes(m int) error {
	if m < 0 || m > 59 {
		return errcode.Wrap("ds1307.set_minutes", errcode.OutOfRange, nil)
	}
	return d.WriteRegister(RegMinutes, toBCD(m))
}

// SetHours writes the hours field in 24h form. Values outside 0..23 are
// rejected.
func (d *Device) SetHours(h int) error {
	if h < 0 || h > 23 {
		return errcode.Wrap("ds1307.set_hours", errcode.OutOfRange, nil)
	}
	return d.WriteRegister(RegHours, toBCD(h))
}

// SetSeconds writes the seconds field and clears the clock-halt bit, which
// also starts the oscillator on a fresh part.
func (d *Device) SetSeconds(s int) error {
	if s < 0 || s > 59 {
		return errcode.Wrap("ds1307.set_seconds", errcode.OutOfRange, nil)
	}
	return d.WriteRegister(RegSeconds, toBCD(s))
}

// ReadScratch returns the value stored in the repurposed scratch register.
func (d *Device) ReadScratch() (int, error) {
	b, err := d.ReadRegister(RegScratch)
	if err != nil {
		return 0, err
	}
	return fromBCD(b), nil
}

// WriteScratch stores a small value (0..99) in the scratch register, BCD
// encoded like the timekeeping fields.
func (d *Device) WriteScratch(v int) error {
	if v < 0 || v > 99 {
		return errcode.Wrap("ds1307.write_scratch", errcode.OutOfRange, nil)
	}
	return d.WriteRegister(RegScratch, toBCD(v))
}

// Running reports whether the oscillator is running (CH bit clear).
func (d *Device) Running() (bool, error) {
	b, err := d.ReadRegister(RegSeconds)
	if err != nil {
		return false, err
	}
	return b&maskClockHalt == 0, nil
}

func fromBCD(b byte) int { return int(b>>4)*10 + int(b&0x0F) }

func toBCD(v int) byte { return byte(v/10)<<4 | byte(v%10) }
