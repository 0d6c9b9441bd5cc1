package controller

import (
	"context"
	"time"

	"irricode-go/bus"
	"irricode-go/hal"
	"irricode-go/types"
	"irricode-go/x/timex"
)

// DefaultPeriod is the control cycle period.
const DefaultPeriod = 20 * time.Millisecond

// Loop is the top-level orchestrator. Each cycle, in order: drain queued
// control messages, refresh sensors, advance the irrigation engine if armed,
// read touch input and feed it to the menu. One goroutine runs the loop and
// is the sole owner of the controller state.
type Loop struct {
	ctrl   *Controller
	touch  hal.Touch
	mapper TouchMapper
	period time.Duration
	conn   *bus.Connection // optional; nil disables telemetry and control
}

func NewLoop(ctrl *Controller, touch hal.Touch, mapper TouchMapper, period time.Duration, conn *bus.Connection) *Loop {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Loop{ctrl: ctrl, touch: touch, mapper: mapper, period: period, conn: conn}
}

// Run blocks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	l.ctrl.Boot()
	l.publishState("running")
	l.publishThreshold()

	var ctrlSub *bus.Subscription
	if l.conn != nil {
		ctrlSub = l.conn.Subscribe(topicControl())
		defer l.conn.Unsubscribe(ctrlSub)
	}

	tick := time.NewTicker(l.period)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			l.ctrl.relay.Set(false)
			l.publishState("stopped")
			return
		case <-tick.C:
		}
		l.cycle(ctrlSub)
	}
}

// cycle is one full iteration. Exported indirectly through Run; tests drive
// it via Step.
func (l *Loop) cycle(ctrlSub *bus.Subscription) {
	if ctrlSub != nil {
		l.drainControl(ctrlSub)
	}

	if err := l.ctrl.Refresh(); err != nil {
		l.publish(topicError(), err.Error(), false)
	}
	l.publish(topicSample(), types.SampleValue{
		Sample: l.ctrl.Sample(),
		Clock:  l.ctrl.Clock(),
		TsMs:   timex.NowMs(),
	}, true)

	if l.ctrl.Armed() {
		dec, stepped := l.ctrl.RunIrrigation()
		l.publish(topicDecision(), types.DecisionValue{Pass: dec.Pass, Veto: dec.Veto}, false)
		l.publish(topicRelay(), types.RelayValue{On: l.ctrl.RelayOn()}, true)
		if stepped {
			sw := l.ctrl.SweepState()
			l.publish(topicServo(), types.ServoValue{
				PulseWidthUS: sw.PulseWidthUS,
				Degrees:      sw.Degrees(),
			}, true)
		}
	}

	x, y, touched, err := l.touch.ReadPoint()
	if err != nil || !touched {
		// A failed touch transaction reads as "no touch this cycle".
		return
	}
	id := l.mapper.ButtonAt(l.ctrl.ScreenNow(), x, y)
	if id == BtnNone {
		return
	}
	cmd, err := l.ctrl.HandleButton(id)
	if err != nil {
		l.publish(topicError(), err.Error(), false)
	}
	if cmd == nil {
		return
	}
	l.publish(topicRelay(), types.RelayValue{On: l.ctrl.RelayOn()}, true)
	l.publishThreshold()
	l.publish(topicState(), l.ctrl.ScreenNow().String(), true)
}

// Step runs exactly one cycle without the ticker. Test hook.
func (l *Loop) Step() { l.cycle(nil) }

// drainControl applies any queued control messages before the cycle body,
// so externally driven edits see the same single-owner discipline as touch
// input.
func (l *Loop) drainControl(sub *bus.Subscription) {
	for {
		select {
		case msg := <-sub.Channel():
			l.applyControl(msg)
		default:
			return
		}
	}
}

func (l *Loop) applyControl(msg *bus.Message) {
	if msg.Topic.Len() == 0 {
		return
	}
	verb, _ := msg.Topic.At(msg.Topic.Len() - 1).(string)
	switch verb {
	case "threshold":
		if v, ok := asInt(msg.Payload); ok {
			if err := l.ctrl.SetTempMax(v); err != nil {
				l.publish(topicError(), err.Error(), false)
			}
			l.publishThreshold()
		}
	case "relay":
		if on, ok := msg.Payload.(bool); ok {
			if l.ctrl.ForceRelay(on) {
				l.publish(topicRelay(), types.RelayValue{On: on}, true)
			}
		}
	case "screen":
		if name, ok := msg.Payload.(string); ok {
			if s, ok := screenByName(name); ok {
				if _, err := l.ctrl.HandleButton(navButton(s)); err != nil {
					l.publish(topicError(), err.Error(), false)
				}
				l.publish(topicState(), l.ctrl.ScreenNow().String(), true)
			}
		}
	}
}

func (l *Loop) publishThreshold() {
	l.publish(topicThreshold(), types.ThresholdValue{TempMax: l.ctrl.Thresholds().TempMax}, true)
}

func (l *Loop) publishState(s string) {
	l.publish(topicState(), s, true)
}

func (l *Loop) publish(t bus.Topic, payload any, retained bool) {
	if l.conn == nil {
		return
	}
	l.conn.Publish(l.conn.NewMessage(t, payload, retained))
}

func screenByName(name string) (Screen, bool) {
	switch name {
	case "check":
		return ScreenCheck, true
	case "setup":
		return ScreenSetup, true
	case "project":
		return ScreenProject, true
	case "main":
		return ScreenMain, true
	}
	return ScreenMain, false
}

// navButton maps a screen to the navigation button that enters it. Main has
// no button; it is only the boot screen.
func navButton(s Screen) int {
	switch s {
	case ScreenCheck:
		return BtnCheck
	case ScreenSetup:
		return BtnSetup
	case ScreenProject:
		return BtnProject
	}
	return BtnNone
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
