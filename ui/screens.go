package ui

import (
	"irricode-go/controller"
	"irricode-go/hal"
)

// Button is one touchable region with its rendering attributes.
type Button struct {
	ID         int
	X, Y, W, H int
	Radius     int
	Fill, Text hal.Color
	Label      string
	TextSize   int
}

// Contains reports whether a pixel lands inside the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// navButtons returns the top navigation row in the given colour scheme.
// Every screen shows the same three buttons; only the colour changes.
func navButtons(fill hal.Color) []Button {
	return []Button{
		{ID: controller.BtnCheck, X: 20, Y: 20, W: 70, H: 40, Radius: 5, Fill: fill, Text: hal.White, Label: "Check", TextSize: 2},
		{ID: controller.BtnSetup, X: 95, Y: 20, W: 70, H: 40, Radius: 5, Fill: fill, Text: hal.White, Label: "Setup", TextSize: 2},
		{ID: controller.BtnProject, X: 170, Y: 20, W: 100, H: 40, Radius: 5, Fill: fill, Text: hal.White, Label: "Project", TextSize: 2},
	}
}

func checkButtons() []Button {
	btns := navButtons(hal.Blue)
	return append(btns,
		Button{ID: controller.BtnTime, X: 20, Y: 65, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Time", TextSize: 2},
		Button{ID: controller.BtnTemp, X: 95, Y: 65, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Tempr", TextSize: 2},
		Button{ID: controller.BtnSoil, X: 20, Y: 110, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Soil", TextSize: 2},
		Button{ID: controller.BtnRain, X: 95, Y: 110, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Rain", TextSize: 2},
		Button{ID: controller.BtnLight, X: 170, Y: 110, W: 100, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Light", TextSize: 2},
		Button{ID: controller.BtnPump, X: 20, Y: 155, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Pump", TextSize: 2},
		Button{ID: controller.BtnServo, X: 95, Y: 155, W: 70, H: 40, Radius: 5, Fill: hal.Blue, Text: hal.White, Label: "Servo", TextSize: 2},
	)
}

func setupButtons() []Button {
	btns := navButtons(hal.Green)
	return append(btns,
		Button{ID: controller.BtnHourInc, X: 65, Y: 75, W: 50, H: 30, Radius: 5, Fill: hal.Green, Text: hal.White, Label: "+", TextSize: 2},
		Button{ID: controller.BtnHourDec, X: 125, Y: 75, W: 50, H: 30, Radius: 5, Fill: hal.Green, Text: hal.White, Label: "-", TextSize: 2},
		Button{ID: controller.BtnMinuteInc, X: 65, Y: 115, W: 50, H: 30, Radius: 5, Fill: hal.Green, Text: hal.White, Label: "+", TextSize: 2},
		Button{ID: controller.BtnMinuteDec, X: 125, Y: 115, W: 50, H: 30, Radius: 5, Fill: hal.Green, Text: hal.White, Label: "-", TextSize: 2},
		Button{ID: controller.BtnTempCycle, X: 65, Y: 155, W: 110, H: 30, Radius: 5, Fill: hal.Green, Text: hal.White, Label: "+/-", TextSize: 3},
	)
}

// screenButtons is the hit-test table per screen.
var screenButtons = map[controller.Screen][]Button{
	controller.ScreenMain:    navButtons(hal.Blue),
	controller.ScreenCheck:   checkButtons(),
	controller.ScreenSetup:   setupButtons(),
	controller.ScreenProject: navButtons(hal.Red),
}

// Result area on the Check screen.
const (
	resultX, resultY = 10, 200
	resultW, resultH = 300, 40
)

// Editable field rectangles on the Setup screen.
type fieldRect struct{ x, y, w, h, curX, curY int }

var setupFields = map[controller.SetupField]fieldRect{
	controller.SetupHour:      {185, 75, 80, 30, 200, 80},
	controller.SetupMinute:    {185, 115, 80, 30, 200, 120},
	controller.SetupThreshold: {185, 155, 80, 30, 200, 160},
}

var setupLabels = []struct {
	x, y  int
	label string
}{
	{10, 80, "Hour"},
	{10, 120, "Min"},
	{10, 160, "Temp"},
}
