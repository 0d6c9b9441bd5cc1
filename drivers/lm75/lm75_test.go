package lm75

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// Scripted LM75-like fake. The temperature register serves a fixed raw
// value in 0.5 °C units, left-justified in 9 bits.
type fakeI2C struct {
	raw int16
	err error

	txCount int
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.txCount++
	if f.err != nil {
		return f.err
	}
	if addr != Address {
		return errors.New("wrong address")
	}

	// Pointer write + temperature read.
	if len(w) == 1 && w[0] == regTemp && len(r) >= 1 {
		v := uint16(f.raw) << 7
		r[0] = byte(v >> 8)
		if len(r) > 1 {
			r[1] = byte(v)
		}
		return nil
	}
	return errors.New("unexpected transaction")
}

func TestReadTemperature(t *testing.T) {
	cases := []struct {
		raw  int16 // half-°C units
		want float32
	}{
		{50, 25.0},
		{51, 25.5},
		{0, 0.0},
		{-1, -0.5},
		{-50, -25.0},
		{250, 125.0},  // datasheet maximum
		{-110, -55.0}, // datasheet minimum
	}
	for _, tc := range cases {
		bus := &fakeI2C{raw: tc.raw}
		dev := New(bus)
		got, err := dev.ReadTemperature()
		if err != nil {
			t.Fatalf("raw %d: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("raw %d: got %v °C, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDeciCelsius(t *testing.T) {
	bus := &fakeI2C{raw: 51} // 25.5 °C
	dev := New(bus)
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if got := dev.DeciCelsius(); got != 255 {
		t.Fatalf("DeciCelsius = %d, want 255", got)
	}
	if got := dev.RawHalfCelsius(); got != 51 {
		t.Fatalf("RawHalfCelsius = %d, want 51", got)
	}
}

func TestUpdate_BusErrorDoesNotClobberCache(t *testing.T) {
	bus := &fakeI2C{raw: 50}
	dev := New(bus)
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}

	bus.err = errors.New("no ack")
	if err := dev.Update(); err == nil {
		t.Fatal("expected error from faulted bus")
	}
	if got := dev.Celsius(); got != 25.0 {
		t.Fatalf("cache = %v after failed update, want 25.0", got)
	}
}

func TestConnected(t *testing.T) {
	dev := New(&fakeI2C{})
	if !dev.Connected() {
		t.Fatal("Connected = false on a responding bus")
	}
	dev = New(&fakeI2C{err: errors.New("no ack")})
	if dev.Connected() {
		t.Fatal("Connected = true on a dead bus")
	}
}
