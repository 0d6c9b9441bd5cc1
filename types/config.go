package types

// TouchCalibration is the raw-ADC to pixel mapping for the resistive panel.
// The axes are deliberately asymmetric: the panel's Y axis is inverted, so
// YMax is the raw value at pixel row 0.
type TouchCalibration struct {
	XMin int `json:"x_min"`
	XMax int `json:"x_max"`
	YMax int `json:"y_max"`
	YMin int `json:"y_min"`
}

// ADCChannels maps each analog sensor to its converter channel.
type ADCChannels struct {
	Light int `json:"light"`
	Soil  int `json:"soil"`
	Rain  int `json:"rain"`
}

// BoardConfig is the per-board wiring document, embedded as JSON and
// published retained on config/board.
type BoardConfig struct {
	LoopPeriodMS int              `json:"loop_period_ms"`
	ADC          ADCChannels      `json:"adc"`
	TempAddr     uint16           `json:"temp_addr"`
	RTCAddr      uint16           `json:"rtc_addr"`
	Touch        TouchCalibration `json:"touch"`
}
