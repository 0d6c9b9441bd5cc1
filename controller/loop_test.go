package controller

import (
	"errors"
	"testing"

	"irricode-go/hal"
	"irricode-go/types"
)

var errFault = errors.New("transaction fault")

// rig is a fully faked control-loop fixture.
type rig struct {
	adc   *hal.FakeADC
	temp  *hal.FakeTemp
	clock *hal.FakeClock
	relay *hal.FakeRelay
	servo *hal.FakeServo
	touch *hal.FakeTouch
	ctrl  *Controller
	loop  *Loop
}

// tableMapper resolves scripted "touch points" where x encodes the button id
// directly; good enough for loop-ordering tests, which do not exercise
// geometry.
type tableMapper struct{}

func (tableMapper) ButtonAt(_ Screen, rawX, _ int) int { return rawX }

func newRig() *rig {
	r := &rig{
		adc:   hal.NewFakeADC(),
		temp:  &hal.FakeTemp{C: 25},
		clock: &hal.FakeClock{H: 5},
		relay: &hal.FakeRelay{},
		servo: &hal.FakeServo{},
		touch: &hal.FakeTouch{},
	}
	ch := types.ADCChannels{Light: 0, Soil: 1, Rain: 2}
	r.setPercents(50, 85, 30)
	sensors := NewSensors(r.adc, r.temp, r.clock, ch)
	r.ctrl = New(sensors, r.clock, r.relay, r.servo, NullView{})
	r.loop = NewLoop(r.ctrl, r.touch, tableMapper{}, 0, nil)
	r.ctrl.Boot()
	return r
}

func (r *rig) setPercents(soil, rain, light int) {
	// Raw values that truncate back to the exact percentages.
	r.adc.SetRaw(1, uint16(soil*102/10))
	r.adc.SetRaw(2, uint16(rain*102/10))
	r.adc.SetRaw(0, uint16(light*102/10))
}

func TestLoop_ArmedPassDrivesRelayAndSteps(t *testing.T) {
	r := newRig()
	r.touch.Press(BtnProject, 0)
	r.loop.Step() // navigates to Project, arms

	if !r.ctrl.Armed() {
		t.Fatal("not armed after Project button")
	}

	before := r.ctrl.SweepState().PulseWidthUS
	r.loop.Step() // armed cycle: {50,85,30,25} @ hour 5 passes

	if !r.relay.Get() {
		t.Fatal("relay off after a passing cycle")
	}
	got, ok := r.servo.Last()
	if !ok {
		t.Fatal("servo never commanded")
	}
	if got != before+PulseStepUS {
		t.Fatalf("servo pulse = %d, want %d (one step)", got, before+PulseStepUS)
	}
}

func TestLoop_OutsideWindowVetoesAndHoldsSweep(t *testing.T) {
	r := newRig()
	r.clock.H = 9
	r.touch.Press(BtnProject, 0)
	r.loop.Step()

	before := r.ctrl.SweepState().PulseWidthUS
	r.loop.Step()

	if r.relay.Get() {
		t.Fatal("relay on despite window veto")
	}
	if _, ok := r.servo.Last(); ok {
		t.Fatal("servo commanded on a vetoed cycle")
	}
	if r.ctrl.SweepState().PulseWidthUS != before {
		t.Fatal("sweep advanced on a vetoed cycle")
	}
}

// One cycle processes the sample before the touch input: arming via touch in
// cycle N must not irrigate until cycle N+1.
func TestLoop_SampleEvaluatedBeforeTouch(t *testing.T) {
	r := newRig()
	r.touch.Press(BtnProject, 0)
	r.loop.Step()

	if r.relay.Get() {
		t.Fatal("relay on in the same cycle as the arming touch")
	}
	r.loop.Step()
	if !r.relay.Get() {
		t.Fatal("relay off in the first armed cycle")
	}
}

func TestLoop_DisarmedCycleLeavesActuatorsAlone(t *testing.T) {
	r := newRig()
	for i := 0; i < 5; i++ {
		r.loop.Step()
	}
	if r.relay.Get() {
		t.Fatal("relay on while disarmed")
	}
	if len(r.servo.History) != 0 {
		t.Fatal("servo commanded while disarmed")
	}
}

func TestLoop_TouchErrorReadsAsNoTouch(t *testing.T) {
	r := newRig()
	r.touch.Err = errFault
	r.loop.Step() // must not panic or navigate
	if r.ctrl.ScreenNow() != ScreenMain {
		t.Fatalf("screen = %v after touch fault", r.ctrl.ScreenNow())
	}
}

func TestLoop_SensorFaultRetainsLastSample(t *testing.T) {
	r := newRig()
	r.loop.Step()
	want := r.ctrl.Sample()

	r.adc.Err = errFault
	r.loop.Step()
	if r.ctrl.Sample() != want {
		t.Fatalf("sample changed across a faulted read: %+v -> %+v", want, r.ctrl.Sample())
	}
}
