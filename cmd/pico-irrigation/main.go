// cmd/pico-irrigation/main.go
//go:build rp2040 || rp2350

// Board bring-up main for the Pico target. The analog sensors, LM75, DS1307,
// relay and servo are wired; the panel is not brought up yet, so screens are
// driven from the UART console (screen project / screen check ...).
package main

import (
	"context"
	"io"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"irricode-go/bus"
	"irricode-go/controller"
	"irricode-go/drivers/ds1307"
	"irricode-go/drivers/lm75"
	"irricode-go/hal"
	"irricode-go/services/config"
	"irricode-go/services/console"
	"irricode-go/services/telemetry"
	"irricode-go/ui"
)

// Pin assignment (Pico).
const (
	pinRelay = machine.GP15
	pinServo = machine.GP2 // PWM1 channel A
	pinSDA   = machine.GP4
	pinSCL   = machine.GP5

	servoPeriodNS = 20_000_000 // 50 Hz frame
	servoPeriodUS = 20_000
)

// ---- ADC ----

type picoADC struct {
	chans []machine.ADC
}

func newPicoADC() *picoADC {
	machine.InitADC()
	chans := []machine.ADC{
		{Pin: machine.ADC0}, // light
		{Pin: machine.ADC1}, // soil
		{Pin: machine.ADC2}, // rain
	}
	for i := range chans {
		chans[i].Configure(machine.ADCConfig{})
	}
	return &picoADC{chans: chans}
}

func (a *picoADC) ReadChannel(channel int) (uint16, error) {
	if channel < 0 || channel >= len(a.chans) {
		return 0, nil
	}
	// machine.ADC.Get is 16-bit left-justified; the controller's scaler
	// expects a 10-bit value.
	return a.chans[channel].Get() >> 6, nil
}

// ---- Relay ----

type picoRelay struct {
	pin machine.Pin
	on  bool
}

func newPicoRelay(pin machine.Pin) *picoRelay {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &picoRelay{pin: pin}
}

func (r *picoRelay) Set(on bool) {
	r.on = on
	if on {
		r.pin.High()
	} else {
		r.pin.Low()
	}
}

func (r *picoRelay) Get() bool { return r.on }

// ---- Servo ----

type picoServo struct {
	ctrl interface {
		Configure(cfg machine.PWMConfig) error
		Top() uint32
		Set(channel uint8, value uint32)
	}
	ch  uint8
	top uint32
}

func newPicoServo() (*picoServo, error) {
	ctrl := machine.PWM1 // slice for GP2/GP3
	if err := ctrl.Configure(machine.PWMConfig{Period: servoPeriodNS}); err != nil {
		return nil, err
	}
	pinServo.Configure(machine.PinConfig{Mode: machine.PinPWM})
	return &picoServo{ctrl: ctrl, ch: 0, top: ctrl.Top()}, nil
}

func (s *picoServo) SetPulseWidth(us uint16) error {
	s.ctrl.Set(s.ch, uint32(us)*s.top/servoPeriodUS)
	return nil
}

// ---- Touch (panel not brought up yet) ----

type noTouch struct{}

func (noTouch) ReadPoint() (int, int, bool, error) { return 0, 0, false, nil }

// ---- UART console transport ----

type uartRW struct {
	u   *uartx.UART
	ctx context.Context
}

func (u *uartRW) Read(p []byte) (int, error)  { return u.u.RecvSomeContext(u.ctx, p) }
func (u *uartRW) Write(p []byte) (int, error) { return u.u.Write(p) }

var _ io.ReadWriter = (*uartRW)(nil)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	ctx := context.WithValue(context.Background(), config.CtxBoardKey, "f380-devkit")

	b := bus.NewBus(8)
	loopConn := b.NewConnection("loop")
	svcConn := b.NewConnection("services")

	config.NewService().Start(ctx, svcConn)
	(&telemetry.Service{}).Start(ctx, svcConn)

	cfgSub := svcConn.Subscribe(bus.T("config", "board"))
	board := <-cfgSub.Channel()
	svcConn.Unsubscribe(cfgSub)
	bc, err := config.Board(board.Payload)
	if err != nil {
		println("bad board config:", err.Error())
		return
	}

	_ = machine.I2C0.Configure(machine.I2CConfig{
		SDA:       pinSDA,
		SCL:       pinSCL,
		Frequency: 100_000,
	})
	tempDev := lm75.New(machine.I2C0)
	tempDev.Address = bc.TempAddr
	rtcDev := ds1307.New(machine.I2C0)
	rtcDev.Address = bc.RTCAddr

	relay := newPicoRelay(pinRelay)
	servo, err := newPicoServo()
	if err != nil {
		println("pwm configure failed:", err.Error())
		return
	}

	panel := ui.NewPanel(hal.NullDisplay{}, bc.Touch)
	sensors := controller.NewSensors(newPicoADC(), &tempDev, &rtcDev, bc.ADC)
	ctrl := controller.New(sensors, &rtcDev, relay, servo, panel)
	loop := controller.NewLoop(ctrl, noTouch{}, panel,
		time.Duration(bc.LoopPeriodMS)*time.Millisecond, loopConn)

	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(0),
		RX:       machine.Pin(1),
	})
	console.New(b.NewConnection("console"), &uartRW{u: hw, ctx: ctx}).Start(ctx)

	loop.Run(ctx)
}
