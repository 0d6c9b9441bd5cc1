package controller

import "irricode-go/types"

// Veto reasons, published on the bus and shown on the panel.
const (
	VetoSoilMoist     = "soil adequately moist"
	VetoOutsideWindow = "outside allowed window"
	VetoTooBright     = "too bright"
	VetoRain          = "rain detected"
	VetoTooHot        = "too hot"
)

// Decision is the outcome of one guard-chain evaluation.
type Decision struct {
	Pass bool
	Veto string
}

type guard struct {
	reason string
	fail   func(s types.SensorSample, c types.ClockTime, t Thresholds) bool
}

// guards is an ordered chain; the first failing guard wins and later guards
// are not evaluated. The order is part of the reported behavior, do not
// reorder.
var guards = []guard{
	{VetoSoilMoist, func(s types.SensorSample, _ types.ClockTime, _ Thresholds) bool {
		return s.Soil < SoilMin
	}},
	{VetoOutsideWindow, func(_ types.SensorSample, c types.ClockTime, _ Thresholds) bool {
		return !inWateringWindow(c.Hour)
	}},
	{VetoTooBright, func(s types.SensorSample, _ types.ClockTime, _ Thresholds) bool {
		return s.Light >= LightMax
	}},
	{VetoRain, func(s types.SensorSample, _ types.ClockTime, _ Thresholds) bool {
		return s.Rain < RainMin
	}},
	{VetoTooHot, func(s types.SensorSample, _ types.ClockTime, t Thresholds) bool {
		return s.Temperature >= float32(t.TempMax)
	}},
}

// inWateringWindow reports whether the hour lies in one of the allowed
// windows, 04:00–08:00 or 19:00–22:00. Both windows are half-open: hour 8
// and hour 22 are outside.
func inWateringWindow(hour int) bool {
	return (hour >= 4 && hour < 8) || (hour >= 19 && hour < 22)
}

// Evaluate runs the guard chain against one sample. It is pure; relay and
// actuator side effects belong to the caller.
func Evaluate(s types.SensorSample, c types.ClockTime, t Thresholds) Decision {
	for _, g := range guards {
		if g.fail(s, c, t) {
			return Decision{Veto: g.reason}
		}
	}
	return Decision{Pass: true}
}
