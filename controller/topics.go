package controller

import "irricode-go/bus"

// Bus topics published by the control loop.

func topicSample() bus.Topic    { return bus.T("irrigation", "sample") }
func topicDecision() bus.Topic  { return bus.T("irrigation", "decision") }
func topicRelay() bus.Topic     { return bus.T("irrigation", "relay") }
func topicServo() bus.Topic     { return bus.T("irrigation", "servo") }
func topicThreshold() bus.Topic { return bus.T("irrigation", "threshold") }
func topicState() bus.Topic     { return bus.T("irrigation", "state") }
func topicError() bus.Topic     { return bus.T("irrigation", "error") }

// Control topics consumed by the loop: irrigation/control/<verb>.
func topicControl() bus.Topic { return bus.T("irrigation", "control", bus.Plus) }
