// Package ui renders the four controller screens and resolves touch input
// to button identifiers. It owns all geometry; the controller only sees
// button ids and the View interface.
package ui

import (
	"fmt"
	"strconv"

	"irricode-go/controller"
	"irricode-go/hal"
	"irricode-go/types"
)

// Panel drives a display and interprets the touch digitizer. It implements
// controller.View and controller.TouchMapper.
type Panel struct {
	d   hal.Display
	cal Calibrator
}

var (
	_ controller.View        = (*Panel)(nil)
	_ controller.TouchMapper = (*Panel)(nil)
)

func NewPanel(d hal.Display, cal types.TouchCalibration) *Panel {
	return &Panel{d: d, cal: NewCalibrator(cal)}
}

// ButtonAt maps a raw touch point to the enclosing button of the active
// screen, or controller.BtnNone.
func (p *Panel) ButtonAt(s controller.Screen, rawX, rawY int) int {
	x, y := p.cal.Map(rawX, rawY)
	for _, b := range screenButtons[s] {
		if b.Contains(x, y) {
			return b.ID
		}
	}
	return controller.BtnNone
}

// ShowScreen clears the panel and draws the full layout for a screen.
func (p *Panel) ShowScreen(s controller.Screen) {
	p.d.FillScreen(hal.Black)
	for _, b := range screenButtons[s] {
		p.d.DrawButton(b.X, b.Y, b.W, b.H, b.Radius, b.Fill, b.Text, b.Label, b.TextSize)
	}

	switch s {
	case controller.ScreenMain:
		p.d.SetCursor(10, 80)
		p.d.SetTextSize(2)
		p.d.SetTextColor(hal.Yellow)
		p.d.Print("Automatic Irrigation Sys")
		p.d.SetCursor(10, 110)
		p.d.SetTextColor(hal.White)
		p.d.Print("irricode")

	case controller.ScreenCheck:
		p.d.FillRect(resultX, resultY, resultW, resultH, hal.Blue)
		p.d.SetCursor(resultX+5, resultY+15)
		p.d.Print("Result:")

	case controller.ScreenSetup:
		for _, l := range setupLabels {
			p.d.SetCursor(l.x, l.y)
			p.d.SetTextSize(2)
			p.d.SetTextColor2(hal.Green, hal.Black)
			p.d.Print(l.label)
		}
		for _, f := range setupFields {
			p.d.FillRect(f.x, f.y, f.w, f.h, hal.Green)
		}
	}
}

// ShowResult writes into the Check screen result area.
func (p *Panel) ShowResult(text string) {
	p.d.FillRect(resultX, resultY, resultW, resultH, hal.Blue)
	p.d.SetCursor(resultX+5, resultY+15)
	p.d.Print(text)
}

// ShowSetupValue refreshes one editable field.
func (p *Panel) ShowSetupValue(f controller.SetupField, v int) {
	r, ok := setupFields[f]
	if !ok {
		return
	}
	p.d.FillRect(r.x, r.y, r.w, r.h, hal.Green)
	p.d.SetCursor(r.curX, r.curY)
	p.d.Print(strconv.Itoa(v))
}

// ShowProjectStatus redraws the live readout on the Project screen.
func (p *Panel) ShowProjectStatus(sample types.SensorSample, clock types.ClockTime, tempMax int) {
	p.d.SetTextColor2(hal.White, hal.Black)
	p.d.SetCursor(20, 70)
	p.d.Print(fmt.Sprintf("Time: %02d:%02d:%02d", clock.Hour, clock.Minute, clock.Second))
	p.d.SetCursor(20, 100)
	p.d.Print(fmt.Sprintf("Temp=%.2f C  (Th=%d)", sample.Temperature, tempMax))
	p.d.SetCursor(20, 130)
	p.d.Print(fmt.Sprintf("Rain=%d%%", sample.Rain))
	p.d.SetCursor(20, 160)
	p.d.Print(fmt.Sprintf("Soil=%d%%", sample.Soil))
	p.d.SetCursor(20, 190)
	p.d.Print(fmt.Sprintf("Light=%d%%", sample.Light))
}
