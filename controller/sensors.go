package controller

import (
	"irricode-go/hal"
	"irricode-go/types"
)

// scalePercent converts a raw 10-bit reading to 0..100. The divide
// truncates; readings above the divisor ceiling saturate at 100. Truncation,
// not rounding, is part of the sensor calibration.
func scalePercent(raw uint16) int {
	p := int(raw) * 10 / 102
	if p > 100 {
		p = 100
	}
	return p
}

// Sensors converts raw peripheral readings into normalized domain values.
// On a failed transaction the affected field keeps its last-known value and
// the first error is reported; the cycle always yields a usable sample.
type Sensors struct {
	adc   hal.AnalogReader
	temp  hal.TemperatureSensor
	clock hal.Clock
	ch    types.ADCChannels

	last      types.SensorSample
	lastClock types.ClockTime
}

func NewSensors(adc hal.AnalogReader, temp hal.TemperatureSensor, clock hal.Clock, ch types.ADCChannels) *Sensors {
	return &Sensors{adc: adc, temp: temp, clock: clock, ch: ch}
}

// Acquire reads all channels and the clock. The returned sample is complete
// even when err is non-nil; err is the first transaction failure seen.
func (s *Sensors) Acquire() (types.SensorSample, types.ClockTime, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	sample := s.last
	clock := s.lastClock

	if raw, err := s.adc.ReadChannel(s.ch.Light); err == nil {
		sample.Light = scalePercent(raw)
	} else {
		keep(err)
	}
	if raw, err := s.adc.ReadChannel(s.ch.Soil); err == nil {
		sample.Soil = scalePercent(raw)
	} else {
		keep(err)
	}
	if raw, err := s.adc.ReadChannel(s.ch.Rain); err == nil {
		sample.Rain = scalePercent(raw)
	} else {
		keep(err)
	}

	if c, err := s.temp.ReadTemperature(); err == nil {
		sample.Temperature = c
	} else {
		keep(err)
	}

	if h, err := s.clock.Hours(); err == nil {
		clock.Hour = h
	} else {
		keep(err)
	}
	if m, err := s.clock.Minutes(); err == nil {
		clock.Minute = m
	} else {
		keep(err)
	}
	if sec, err := s.clock.Seconds(); err == nil {
		clock.Second = sec
	} else {
		keep(err)
	}

	s.last = sample
	s.lastClock = clock
	return sample, clock, firstErr
}
