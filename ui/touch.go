package ui

import (
	"irricode-go/types"
	"irricode-go/x/mathx"
)

// Panel geometry, 240x320 portrait.
const (
	PanelWidth  = 240
	PanelHeight = 320
)

// DefaultCalibration is the measured raw ADC envelope of the resistive
// panel. The Y axis is inverted: YMax is the raw value at pixel row 0.
var DefaultCalibration = types.TouchCalibration{
	XMin: 427,
	XMax: 3683,
	YMax: 3802,
	YMin: 438,
}

// Calibrator maps raw touch ADC values to pixel coordinates.
type Calibrator struct {
	cal types.TouchCalibration
}

func NewCalibrator(cal types.TouchCalibration) Calibrator {
	if cal == (types.TouchCalibration{}) {
		cal = DefaultCalibration
	}
	return Calibrator{cal: cal}
}

// Map converts a raw point to pixels, clamped to the panel.
func (c Calibrator) Map(rawX, rawY int) (px, py int) {
	px = mathx.MapRange(rawX, c.cal.XMin, c.cal.XMax, 0, PanelWidth-1)
	py = mathx.MapRange(rawY, c.cal.YMax, c.cal.YMin, 0, PanelHeight-1)
	return px, py
}
