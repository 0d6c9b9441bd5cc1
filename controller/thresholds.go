package controller

// Calibrated decision thresholds. Only the temperature ceiling is
// runtime-adjustable; the rest are fixed properties of the sensors.
const (
	// SoilMin: readings at or above this mean the soil is dry enough to need
	// water.
	SoilMin = 40
	// RainMin: the rain sensor reads *lower* when wet, so readings at or
	// above this floor mean no significant rain.
	RainMin = 80
	// LightMax: readings at or above this mean it is too bright to irrigate.
	LightMax = 70

	TempMaxDefault = 27
	TempMaxLo      = 20
	TempMaxHi      = 30
)

// Thresholds holds the mutable decision parameters.
type Thresholds struct {
	TempMax int
}

func NewThresholds() Thresholds {
	return Thresholds{TempMax: TempMaxDefault}
}

// CycleTempMax advances the temperature ceiling one degree, wrapping from
// TempMaxHi back to TempMaxLo. Returns the new value.
func (t *Thresholds) CycleTempMax() int {
	t.TempMax++
	if t.TempMax > TempMaxHi {
		t.TempMax = TempMaxLo
	}
	return t.TempMax
}

// SetTempMax applies an externally supplied value, reporting whether it was
// in range.
func (t *Thresholds) SetTempMax(v int) bool {
	if v < TempMaxLo || v > TempMaxHi {
		return false
	}
	t.TempMax = v
	return true
}
