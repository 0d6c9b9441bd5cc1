package config

// Embedded per-board configuration documents. One entry per supported board;
// the board ID is injected via context at startup.
var embeddedConfigs = map[string][]byte{
	"f380-devkit": []byte(`{
		"board": {
			"loop_period_ms": 20,
			"adc": {"light": 0, "soil": 1, "rain": 2},
			"temp_addr": 72,
			"rtc_addr": 104,
			"touch": {"x_min": 427, "x_max": 3683, "y_max": 3802, "y_min": 438}
		},
		"telemetry": {"enabled": true},
		"console": {"baud": 115200}
	}`),

	"sim": []byte(`{
		"board": {
			"loop_period_ms": 20,
			"adc": {"light": 0, "soil": 1, "rain": 2},
			"temp_addr": 72,
			"rtc_addr": 104,
			"touch": {"x_min": 427, "x_max": 3683, "y_max": 3802, "y_min": 438}
		},
		"telemetry": {"enabled": true}
	}`),
}
