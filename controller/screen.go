package controller

// Screen identifies the active panel page. Exactly one is active at a time.
type Screen uint8

const (
	ScreenMain Screen = iota
	ScreenCheck
	ScreenSetup
	ScreenProject
)

func (s Screen) String() string {
	switch s {
	case ScreenCheck:
		return "check"
	case ScreenSetup:
		return "setup"
	case ScreenProject:
		return "project"
	default:
		return "main"
	}
}

// Button identifiers, fixed by the panel layout. The same numeric space is
// reused across screens; DecodeButton disambiguates by the active screen.
const (
	BtnNone = 0

	// Global navigation, valid from any screen.
	BtnCheck   = 1
	BtnSetup   = 2
	BtnProject = 3

	// Check screen fields.
	BtnTime  = 4
	BtnTemp  = 5
	BtnSoil  = 6
	BtnRain  = 7
	BtnLight = 8
	BtnPump  = 9
	BtnServo = 10

	// Setup screen editors.
	BtnHourInc   = 13
	BtnHourDec   = 14
	BtnMinuteInc = 15
	BtnMinuteDec = 16
	BtnTempCycle = 17
)

// CheckField is a read-only field selectable on the Check screen.
type CheckField uint8

const (
	FieldTime CheckField = iota
	FieldTemperature
	FieldSoil
	FieldRain
	FieldLight
	FieldPump
	FieldServo
)

// AdjustTarget is an editable value on the Setup screen.
type AdjustTarget uint8

const (
	AdjustHour AdjustTarget = iota
	AdjustMinute
	AdjustThreshold
)

// Command is the typed decoding of a button press in the context of the
// active screen.
type Command interface{ isCommand() }

// Navigate switches the active screen.
type Navigate struct{ To Screen }

// Show displays one read-only field in the Check result area.
type Show struct{ Field CheckField }

// Adjust edits a Setup value. Delta is +1 or -1; the threshold target
// ignores it and always cycles upward.
type Adjust struct {
	Target AdjustTarget
	Delta  int
}

func (Navigate) isCommand() {}
func (Show) isCommand()     {}
func (Adjust) isCommand()   {}

// DecodeButton maps a button identifier to a command given the active
// screen. Sub-menu identifiers from a non-active screen decode to nil.
func DecodeButton(s Screen, id int) Command {
	switch id {
	case BtnCheck:
		return Navigate{To: ScreenCheck}
	case BtnSetup:
		return Navigate{To: ScreenSetup}
	case BtnProject:
		return Navigate{To: ScreenProject}
	}

	switch s {
	case ScreenCheck:
		switch id {
		case BtnTime:
			return Show{Field: FieldTime}
		case BtnTemp:
			return Show{Field: FieldTemperature}
		case BtnSoil:
			return Show{Field: FieldSoil}
		case BtnRain:
			return Show{Field: FieldRain}
		case BtnLight:
			return Show{Field: FieldLight}
		case BtnPump:
			return Show{Field: FieldPump}
		case BtnServo:
			return Show{Field: FieldServo}
		}
	case ScreenSetup:
		switch id {
		case BtnHourInc:
			return Adjust{Target: AdjustHour, Delta: 1}
		case BtnHourDec:
			return Adjust{Target: AdjustHour, Delta: -1}
		case BtnMinuteInc:
			return Adjust{Target: AdjustMinute, Delta: 1}
		case BtnMinuteDec:
			return Adjust{Target: AdjustMinute, Delta: -1}
		case BtnTempCycle:
			return Adjust{Target: AdjustThreshold, Delta: 1}
		}
	}
	return nil
}
