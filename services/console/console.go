// Package console is a line-oriented debug shell. It tokenizes input with
// shlex and drives the controller exclusively through irrigation/control/+
// bus messages, so console edits obey the same single-owner discipline as
// touch input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/google/shlex"

	"irricode-go/bus"
	"irricode-go/types"
)

type Service struct {
	conn *bus.Connection
	rw   io.ReadWriter

	mu     sync.Mutex
	sample types.SampleValue
	relay  types.RelayValue
	servo  types.ServoValue
	thresh types.ThresholdValue
	state  string
}

func New(conn *bus.Connection, rw io.ReadWriter) *Service {
	return &Service{conn: conn, rw: rw}
}

// Start launches the reader and the bus observer.
func (s *Service) Start(ctx context.Context) {
	go s.observe(ctx)
	go s.readLoop(ctx)
}

// observe caches the latest retained values for the status command.
func (s *Service) observe(ctx context.Context) {
	sub := s.conn.Subscribe(bus.T("irrigation", bus.Hash))
	defer s.conn.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-sub.Channel():
			s.cache(msg)
		}
	}
}

func (s *Service) cache(msg *bus.Message) {
	if msg.Topic.Len() < 2 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch v := msg.Payload.(type) {
	case types.SampleValue:
		s.sample = v
	case types.RelayValue:
		s.relay = v
	case types.ServoValue:
		s.servo = v
	case types.ThresholdValue:
		s.thresh = v
	case string:
		if kind, _ := msg.Topic.At(1).(string); kind == "state" {
			s.state = v
		}
	}
}

func (s *Service) readLoop(ctx context.Context) {
	sc := bufio.NewScanner(s.rw)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		s.handleLine(sc.Text())
	}
}

func (s *Service) handleLine(line string) {
	args, err := shlex.Split(line)
	if err != nil {
		s.printf("parse error: %v\n", err)
		return
	}
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "help":
		s.printf("commands: status | threshold <20..30> | relay on|off | screen main|check|setup|project\n")

	case "status":
		s.mu.Lock()
		sv, rv, pv, tv, st := s.sample, s.relay, s.servo, s.thresh, s.state
		s.mu.Unlock()
		s.printf("screen=%s time=%02d:%02d:%02d\n", st, sv.Clock.Hour, sv.Clock.Minute, sv.Clock.Second)
		s.printf("soil=%d%% rain=%d%% light=%d%% temp=%.2fC (max %d)\n",
			sv.Sample.Soil, sv.Sample.Rain, sv.Sample.Light, sv.Sample.Temperature, tv.TempMax)
		s.printf("relay=%v servo=%dus (%d deg)\n", rv.On, pv.PulseWidthUS, pv.Degrees)

	case "threshold":
		if len(args) != 2 {
			s.printf("usage: threshold <20..30>\n")
			return
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			s.printf("bad value: %q\n", args[1])
			return
		}
		s.control("threshold", v)

	case "relay":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			s.printf("usage: relay on|off\n")
			return
		}
		s.control("relay", args[1] == "on")

	case "screen":
		if len(args) != 2 {
			s.printf("usage: screen main|check|setup|project\n")
			return
		}
		s.control("screen", args[1])

	default:
		s.printf("unknown command %q (try help)\n", args[0])
	}
}

func (s *Service) control(verb string, payload any) {
	s.conn.Publish(s.conn.NewMessage(bus.T("irrigation", "control", verb), payload, false))
}

func (s *Service) printf(format string, a ...any) {
	fmt.Fprintf(s.rw, format, a...)
}
