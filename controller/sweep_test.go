package controller

import (
	"testing"

	"irricode-go/types"
)

func TestSweep_Defaults(t *testing.T) {
	s := NewSweep()
	if s.PulseWidthUS != PulseCenterUS || s.Dir != types.SweepIncreasing {
		t.Fatalf("unexpected initial state: %+v", s)
	}
	if s.Degrees() != 90 {
		t.Fatalf("center degrees = %d, want 90", s.Degrees())
	}
}

func TestSweep_StepAndDirection(t *testing.T) {
	s := NewSweep().Advance()
	if s.PulseWidthUS != PulseCenterUS+PulseStepUS {
		t.Fatalf("pulse = %d, want %d", s.PulseWidthUS, PulseCenterUS+PulseStepUS)
	}
	if s.Dir != types.SweepIncreasing {
		t.Fatal("direction flipped away from a bound")
	}
}

func TestSweep_ClampAtUpperBoundAndFlip(t *testing.T) {
	s := Sweep{PulseWidthUS: PulseMaxUS, Dir: types.SweepIncreasing}.Advance()
	if s.PulseWidthUS != PulseMaxUS {
		t.Fatalf("pulse = %d, want clamp at %d", s.PulseWidthUS, PulseMaxUS)
	}
	if s.Dir != types.SweepDecreasing {
		t.Fatal("direction did not flip at upper bound")
	}
}

func TestSweep_ClampAtLowerBoundAndFlip(t *testing.T) {
	s := Sweep{PulseWidthUS: PulseMinUS + 10, Dir: types.SweepDecreasing}.Advance()
	if s.PulseWidthUS != PulseMinUS {
		t.Fatalf("pulse = %d, want clamp at %d", s.PulseWidthUS, PulseMinUS)
	}
	if s.Dir != types.SweepIncreasing {
		t.Fatal("direction did not flip at lower bound")
	}
}

// Liveness: repeated steps from center visit both bounds and keep
// oscillating; the pulse never leaves the envelope.
func TestSweep_OscillatesWithinEnvelope(t *testing.T) {
	s := NewSweep()
	sawMin, sawMax := false, false
	flips := 0
	prev := s.Dir
	for i := 0; i < 1000; i++ {
		s = s.Advance()
		if s.PulseWidthUS < PulseMinUS || s.PulseWidthUS > PulseMaxUS {
			t.Fatalf("step %d: pulse %d outside envelope", i, s.PulseWidthUS)
		}
		if s.PulseWidthUS == PulseMinUS {
			sawMin = true
		}
		if s.PulseWidthUS == PulseMaxUS {
			sawMax = true
		}
		if s.Dir != prev {
			flips++
			prev = s.Dir
		}
	}
	if !sawMin || !sawMax {
		t.Fatalf("bounds not visited: min=%v max=%v", sawMin, sawMax)
	}
	if flips < 4 {
		t.Fatalf("only %d direction flips in 1000 steps; sweep stalled", flips)
	}
}
