package controller

import (
	"fmt"

	"irricode-go/hal"
	"irricode-go/types"
	"irricode-go/x/mathx"
)

// Controller owns all mutable runtime state: the latest sample, the menu
// position, the armed flag, thresholds and the sweep. It is mutated by
// exactly one goroutine (the control loop), so it carries no locks.
type Controller struct {
	sensors *Sensors
	clock   hal.Clock
	relay   hal.Relay
	servo   hal.Servo
	view    View

	thresholds Thresholds
	sweep      Sweep
	screen     Screen
	armed      bool

	sample types.SensorSample
	now    types.ClockTime
}

func New(sensors *Sensors, clock hal.Clock, relay hal.Relay, servo hal.Servo, view View) *Controller {
	if view == nil {
		view = NullView{}
	}
	return &Controller{
		sensors:    sensors,
		clock:      clock,
		relay:      relay,
		servo:      servo,
		view:       view,
		thresholds: NewThresholds(),
		sweep:      NewSweep(),
		screen:     ScreenMain,
	}
}

// Boot draws the initial screen and restores the persisted temperature
// ceiling from the RTC scratch register when it holds a plausible value.
func (c *Controller) Boot() {
	if v, err := c.clock.ReadScratch(); err == nil {
		c.thresholds.SetTempMax(v)
	}
	c.relay.Set(false)
	c.view.ShowScreen(ScreenMain)
}

// Accessors used by the loop and the bus services.

func (c *Controller) ScreenNow() Screen           { return c.screen }
func (c *Controller) Armed() bool                 { return c.armed }
func (c *Controller) Sample() types.SensorSample  { return c.sample }
func (c *Controller) Clock() types.ClockTime      { return c.now }
func (c *Controller) Thresholds() Thresholds      { return c.thresholds }
func (c *Controller) SweepState() Sweep           { return c.sweep }
func (c *Controller) RelayOn() bool               { return c.relay.Get() }

// Refresh pulls a fresh sample from the sensors. The sample is usable even
// on error (affected fields keep their last-known values).
func (c *Controller) Refresh() error {
	sample, clock, err := c.sensors.Acquire()
	c.sample = sample
	c.now = clock
	return err
}

// RunIrrigation performs one armed cycle: live readout, guard evaluation,
// relay drive and, on a pass, exactly one sweep step pushed to the servo.
// stepped reports whether the actuator moved.
func (c *Controller) RunIrrigation() (dec Decision, stepped bool) {
	if !c.armed {
		return Decision{Veto: "not armed"}, false
	}

	c.view.ShowProjectStatus(c.sample, c.now, c.thresholds.TempMax)

	dec = Evaluate(c.sample, c.now, c.thresholds)
	if !dec.Pass {
		c.relay.Set(false)
		return dec, false
	}

	c.relay.Set(true)
	c.sweep = c.sweep.Advance()
	_ = c.servo.SetPulseWidth(c.sweep.PulseWidthUS)
	return dec, true
}

// HandleButton decodes a button press against the active screen and applies
// its side effects. It returns the decoded command (nil when the identifier
// is ignored) and the first peripheral error hit while applying it.
func (c *Controller) HandleButton(id int) (Command, error) {
	cmd := DecodeButton(c.screen, id)
	switch cmd := cmd.(type) {
	case Navigate:
		c.navigate(cmd.To)
		return cmd, nil
	case Show:
		c.showField(cmd.Field)
		return cmd, nil
	case Adjust:
		return cmd, c.adjust(cmd)
	default:
		return nil, nil
	}
}

// navigate switches screens. Leaving the Project screen disarms irrigation;
// Check and Setup additionally force the relay off so the pump never runs
// while the operator is reading values or editing the clock. Entering
// Project only arms — the next evaluation cycle decides the relay.
func (c *Controller) navigate(to Screen) {
	c.screen = to
	switch to {
	case ScreenProject:
		c.armed = true
	default:
		c.armed = false
		c.relay.Set(false)
	}
	c.view.ShowScreen(to)
}

func (c *Controller) showField(f CheckField) {
	var text string
	switch f {
	case FieldTime:
		text = fmt.Sprintf("Time: %02d:%02d:%02d", c.now.Hour, c.now.Minute, c.now.Second)
	case FieldTemperature:
		text = fmt.Sprintf("Temp: %.2f C", c.sample.Temperature)
	case FieldSoil:
		text = fmt.Sprintf("Soil: %d%%", c.sample.Soil)
	case FieldRain:
		text = fmt.Sprintf("Rain: %d%%", c.sample.Rain)
	case FieldLight:
		text = fmt.Sprintf("Light: %d%%", c.sample.Light)
	case FieldPump:
		if c.relay.Get() {
			text = "Pump: ON"
		} else {
			text = "Pump: OFF"
		}
	case FieldServo:
		text = fmt.Sprintf("Servo: %d deg", c.sweep.Degrees())
	}
	c.view.ShowResult(text)
}

// adjust applies a Setup edit. The in-memory value always changes and the
// display always refreshes; a failed RTC write is reported but does not roll
// the edit back (the next successful write reasserts it).
func (c *Controller) adjust(cmd Adjust) error {
	switch cmd.Target {
	case AdjustHour:
		if cmd.Delta > 0 {
			c.now.Hour = mathx.WrapInc(c.now.Hour, 0, 23)
		} else {
			c.now.Hour = mathx.WrapDec(c.now.Hour, 0, 23)
		}
		err := c.clock.SetHours(c.now.Hour)
		c.view.ShowSetupValue(SetupHour, c.now.Hour)
		return err

	case AdjustMinute:
		if cmd.Delta > 0 {
			c.now.Minute = mathx.WrapInc(c.now.Minute, 0, 59)
		} else {
			c.now.Minute = mathx.WrapDec(c.now.Minute, 0, 59)
		}
		err := c.clock.SetMinutes(c.now.Minute)
		c.view.ShowSetupValue(SetupMinute, c.now.Minute)
		return err

	case AdjustThreshold:
		v := c.thresholds.CycleTempMax()
		err := c.clock.WriteScratch(v)
		c.view.ShowSetupValue(SetupThreshold, v)
		return err
	}
	return nil
}

// SetTempMax applies an externally supplied threshold (console/bus control)
// and persists it. Out-of-range values are ignored.
func (c *Controller) SetTempMax(v int) error {
	if !c.thresholds.SetTempMax(v) {
		return nil
	}
	return c.clock.WriteScratch(v)
}

// ForceRelay drives the relay directly. Refused while armed: the guard
// chain owns the relay on the Project screen.
func (c *Controller) ForceRelay(on bool) bool {
	if c.armed {
		return false
	}
	c.relay.Set(on)
	return true
}
