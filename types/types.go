// Package types holds the payload and configuration types shared between the
// controller core, the HAL drivers and the bus-facing services.
package types

// SensorSample is one cycle's worth of normalized sensor readings.
// Percentages are 0..100; Temperature is °C.
type SensorSample struct {
	Soil        int     `json:"soil"`
	Rain        int     `json:"rain"`
	Light       int     `json:"light"`
	Temperature float32 `json:"temperature"`
}

// ClockTime is a wall-clock instant as read from the RTC.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// SweepDirection is the actuator sweep direction.
type SweepDirection uint8

const (
	SweepIncreasing SweepDirection = iota
	SweepDecreasing
)

func (d SweepDirection) String() string {
	if d == SweepDecreasing {
		return "decreasing"
	}
	return "increasing"
}

// -----------------------------------------------------------------------------
// Bus payloads (published by the control loop, consumed by services)
// -----------------------------------------------------------------------------

// SampleValue is the retained per-cycle reading document.
type SampleValue struct {
	Sample SensorSample `json:"sample"`
	Clock  ClockTime    `json:"clock"`
	TsMs   int64        `json:"ts_ms"`
}

// RelayValue reports pump relay state.
type RelayValue struct {
	On bool `json:"on"`
}

// ServoValue reports the actuator position.
type ServoValue struct {
	PulseWidthUS uint16 `json:"pulse_width_us"`
	Degrees      int    `json:"degrees"`
}

// DecisionValue reports the outcome of one guard-chain evaluation.
type DecisionValue struct {
	Pass bool   `json:"pass"`
	Veto string `json:"veto,omitempty"`
}

// ThresholdValue reports the adjustable temperature threshold.
type ThresholdValue struct {
	TempMax int `json:"temp_max"`
}
