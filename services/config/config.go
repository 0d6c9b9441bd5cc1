package config

import (
	"context"
	"errors"

	"irricode-go/bus"
	"irricode-go/types"

	"github.com/andreyvit/tinyjson"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxBoardKey  = "board" // context key used for board ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig reads the board config from embedded data and publishes each
// top-level key as a retained message on config/<key>.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxBoardKey).(string)
	if board == "" {
		return errors.New("missing board ID in context")
	}

	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return errors.New("no embedded config for board: " + board)
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return errors.New("embedded config is not a JSON object")
	}

	for k, v := range m {
		conn.Publish(&bus.Message{
			Topic:    bus.T(configPrefix, k),
			Payload:  v,
			Retained: true,
		})
	}
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("Warn: config:", err.Error())
		}
	}()
}

// -----------------------------------------------------------------------------
// Payload decoding
// -----------------------------------------------------------------------------

// Board decodes the payload of config/board into a typed BoardConfig.
// Missing fields keep zero values; the caller applies defaults.
func Board(payload any) (types.BoardConfig, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return types.BoardConfig{}, errors.New("config: board payload is not an object")
	}

	var c types.BoardConfig
	c.LoopPeriodMS = intAt(m, "loop_period_ms")
	c.TempAddr = uint16(intAt(m, "temp_addr"))
	c.RTCAddr = uint16(intAt(m, "rtc_addr"))

	if adc, ok := m["adc"].(map[string]any); ok {
		c.ADC.Light = intAt(adc, "light")
		c.ADC.Soil = intAt(adc, "soil")
		c.ADC.Rain = intAt(adc, "rain")
	}
	if t, ok := m["touch"].(map[string]any); ok {
		c.Touch.XMin = intAt(t, "x_min")
		c.Touch.XMax = intAt(t, "x_max")
		c.Touch.YMax = intAt(t, "y_max")
		c.Touch.YMin = intAt(t, "y_min")
	}
	return c, nil
}

func intAt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}
