// Package telemetry prints a compact line for every controller publication.
// It is a bus observer only; it never touches controller state.
package telemetry

import (
	"context"

	"irricode-go/bus"
	"irricode-go/types"
)

type Service struct{}

// Start launches the observer in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(bus.T("irrigation", bus.Hash))
	defer conn.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case msg := <-sub.Channel():
			s.report(msg)
		}
	}
}

func (s *Service) report(msg *bus.Message) {
	if msg.Topic.Len() < 2 {
		return
	}
	kind, _ := msg.Topic.At(1).(string)
	switch kind {
	case "decision":
		if v, ok := msg.Payload.(types.DecisionValue); ok {
			if v.Pass {
				println("Info: decision pass")
			} else {
				println("Info: decision veto:", v.Veto)
			}
		}
	case "relay":
		if v, ok := msg.Payload.(types.RelayValue); ok {
			if v.On {
				println("Info: relay on")
			} else {
				println("Info: relay off")
			}
		}
	case "servo":
		if v, ok := msg.Payload.(types.ServoValue); ok {
			println("Info: servo", int(v.PulseWidthUS), "us", v.Degrees, "deg")
		}
	case "threshold":
		if v, ok := msg.Payload.(types.ThresholdValue); ok {
			println("Info: temp threshold", v.TempMax)
		}
	case "state":
		if v, ok := msg.Payload.(string); ok {
			println("Info: state", v)
		}
	case "error":
		if v, ok := msg.Payload.(string); ok {
			println("Warn:", v)
		}
	}
}
