// cmd/irrisim/main.go
//
// Host simulator: runs the full control loop against fake peripherals with a
// slowly drifting environment. The console on stdin drives it:
//
//	screen project
//	status
//	threshold 25
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"irricode-go/bus"
	"irricode-go/controller"
	"irricode-go/hal"
	"irricode-go/services/config"
	"irricode-go/services/console"
	"irricode-go/services/telemetry"
	"irricode-go/ui"
)

// stdio merges stdin/stdout into one ReadWriter for the console service.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

var _ io.ReadWriter = stdio{}

// simClock serves wall-clock time, with user edits applied as an offset.
type simClock struct {
	offset  time.Duration
	scratch int
}

func (c *simClock) now() time.Time { return time.Now().Add(c.offset) }

func (c *simClock) Hours() (int, error)   { return c.now().Hour(), nil }
func (c *simClock) Minutes() (int, error) { return c.now().Minute(), nil }
func (c *simClock) Seconds() (int, error) { return c.now().Second(), nil }

func (c *simClock) SetHours(h int) error {
	c.offset += time.Duration(h-c.now().Hour()) * time.Hour
	return nil
}

func (c *simClock) SetMinutes(m int) error {
	c.offset += time.Duration(m-c.now().Minute()) * time.Minute
	return nil
}

func (c *simClock) ReadScratch() (int, error)  { return c.scratch, nil }
func (c *simClock) WriteScratch(v int) error   { c.scratch = v; return nil }

// percentRaw converts a percentage to the raw 10-bit value the scaler maps
// back onto it.
func percentRaw(pct int) uint16 { return uint16(pct * 102 / 10) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.CtxBoardKey, "sim")

	println("[irrisim] bootstrapping bus ...")
	b := bus.NewBus(16)
	loopConn := b.NewConnection("loop")
	svcConn := b.NewConnection("services")

	config.NewService().Start(ctx, svcConn)
	(&telemetry.Service{}).Start(ctx, svcConn)

	// Pick up the published board document.
	cfgSub := svcConn.Subscribe(bus.T("config", "board"))
	var board = <-cfgSub.Channel()
	svcConn.Unsubscribe(cfgSub)
	bc, err := config.Board(board.Payload)
	if err != nil {
		println("[irrisim] bad board config:", err.Error())
		return
	}

	// Fake peripherals with a plausible evening-watering environment.
	adc := hal.NewFakeADC()
	adc.SetRaw(bc.ADC.Soil, percentRaw(50))
	adc.SetRaw(bc.ADC.Rain, percentRaw(85))
	adc.SetRaw(bc.ADC.Light, percentRaw(30))
	temp := &hal.FakeTemp{C: 25}
	clock := &simClock{scratch: controller.TempMaxDefault}
	relay := &hal.FakeRelay{}
	servo := &hal.FakeServo{}
	touch := &hal.FakeTouch{}

	go drift(ctx, adc, temp, bc.ADC.Soil)

	panel := ui.NewPanel(hal.NullDisplay{}, bc.Touch)
	sensors := controller.NewSensors(adc, temp, clock, bc.ADC)
	ctrl := controller.New(sensors, clock, relay, servo, panel)
	loop := controller.NewLoop(ctrl, touch, panel,
		time.Duration(bc.LoopPeriodMS)*time.Millisecond, loopConn)

	console.New(b.NewConnection("console"), stdio{}).Start(ctx)

	println("[irrisim] running; type 'help'")
	loop.Run(ctx)
}

// drift nudges the soil reading downward over time so the pump eventually
// has something to do, and wobbles the temperature.
func drift(ctx context.Context, adc *hal.FakeADC, temp *hal.FakeTemp, soilCh int) {
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()

	soil := 50
	c := float32(25)
	warm := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			soil++
			if soil > 90 {
				soil = 42
			}
			adc.SetRaw(soilCh, percentRaw(soil))
			if warm {
				c += 0.1
			} else {
				c -= 0.1
			}
			if c > 29 || c < 22 {
				warm = !warm
			}
			temp.Set(c)
		}
	}
}
