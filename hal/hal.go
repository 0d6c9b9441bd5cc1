// Package hal declares the narrow peripheral contracts the controller core
// consumes. Concrete implementations live in the platform mains (machine
// registers on MCU builds) and in fakes for host tests and the simulator.
package hal

// AnalogReader samples one raw value from an ADC channel. The controller
// assumes a 10-bit converter (0..1023).
type AnalogReader interface {
	ReadChannel(channel int) (uint16, error)
}

// TemperatureSensor reads ambient temperature in °C.
// *lm75.Device satisfies this.
type TemperatureSensor interface {
	ReadTemperature() (float32, error)
}

// Clock is the RTC surface the controller needs: independent field reads,
// field writes for user edits, and the scratch register used as threshold
// storage. *ds1307.Device satisfies this.
type Clock interface {
	Hours() (int, error)
	Minutes() (int, error)
	Seconds() (int, error)
	SetHours(h int) error
	SetMinutes(m int) error
	ReadScratch() (int, error)
	WriteScratch(v int) error
}

// Relay drives the pump relay. Get reads back the driven state so the UI can
// report it without a sensor sample.
type Relay interface {
	Set(on bool)
	Get() bool
}

// Servo positions the actuator by PWM pulse width in microseconds.
type Servo interface {
	SetPulseWidth(us uint16) error
}

// Touch reads the panel. touched is false when nothing is pressed this
// cycle; err is reserved for transaction failures, which the loop treats as
// "no touch".
type Touch interface {
	ReadPoint() (x, y int, touched bool, err error)
}
