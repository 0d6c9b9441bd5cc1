package controller

import "irricode-go/types"

// Servo pulse-width envelope, microseconds.
const (
	PulseMinUS    = 600
	PulseMaxUS    = 2400
	PulseStepUS   = 30
	PulseCenterUS = 1500
)

// Sweep is the actuator sweep state: a bounded oscillation of the pulse
// width between PulseMinUS and PulseMaxUS. It is a value type with a pure
// transition so it can be tested without any peripheral.
type Sweep struct {
	PulseWidthUS uint16
	Dir          types.SweepDirection
}

func NewSweep() Sweep {
	return Sweep{PulseWidthUS: PulseCenterUS, Dir: types.SweepIncreasing}
}

// Advance moves one step in the current direction. On reaching or crossing a
// bound it clamps to the bound first, then flips direction, so no overshoot
// is ever observable.
func (s Sweep) Advance() Sweep {
	if s.Dir == types.SweepIncreasing {
		s.PulseWidthUS += PulseStepUS
		if s.PulseWidthUS >= PulseMaxUS {
			s.PulseWidthUS = PulseMaxUS
			s.Dir = types.SweepDecreasing
		}
	} else {
		s.PulseWidthUS -= PulseStepUS
		if s.PulseWidthUS <= PulseMinUS {
			s.PulseWidthUS = PulseMinUS
			s.Dir = types.SweepIncreasing
		}
	}
	return s
}

// Degrees reports the position as the panel shows it.
func (s Sweep) Degrees() int { return int(s.PulseWidthUS-PulseMinUS) / 10 }
