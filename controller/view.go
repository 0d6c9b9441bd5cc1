package controller

import "irricode-go/types"

// SetupField identifies an editable display field on the Setup screen.
type SetupField uint8

const (
	SetupHour SetupField = iota
	SetupMinute
	SetupThreshold
)

// View is the display surface the controller drives. Implementations draw
// on the panel; tests substitute a recorder. All methods are fire-and-forget.
type View interface {
	// ShowScreen redraws the full layout for a screen.
	ShowScreen(s Screen)
	// ShowResult writes into the Check screen's result area.
	ShowResult(text string)
	// ShowSetupValue refreshes one editable field after an adjustment.
	ShowSetupValue(f SetupField, v int)
	// ShowProjectStatus redraws the live readout on the Project screen.
	ShowProjectStatus(sample types.SensorSample, clock types.ClockTime, tempMax int)
}

// TouchMapper resolves a raw touch point to a button identifier for the
// active screen, or BtnNone.
type TouchMapper interface {
	ButtonAt(s Screen, rawX, rawY int) int
}

// NullView draws nothing.
type NullView struct{}

func (NullView) ShowScreen(Screen)                                          {}
func (NullView) ShowResult(string)                                          {}
func (NullView) ShowSetupValue(SetupField, int)                             {}
func (NullView) ShowProjectStatus(types.SensorSample, types.ClockTime, int) {}
