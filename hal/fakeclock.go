package hal

import "sync"

// FakeClock is an in-memory hal.Clock.
type FakeClock struct {
	H, M, S int
	Scratch int
	Err     error

	HourWrites    int
	MinuteWrites  int
	ScratchWrites int
}

func (f *FakeClock) Hours() (int, error)   { return f.H, f.Err }
func (f *FakeClock) Minutes() (int, error) { return f.M, f.Err }
func (f *FakeClock) Seconds() (int, error) { return f.S, f.Err }

func (f *FakeClock) SetHours(h int) error {
	if f.Err != nil {
		return f.Err
	}
	f.H = h
	f.HourWrites++
	return nil
}

func (f *FakeClock) SetMinutes(m int) error {
	if f.Err != nil {
		return f.Err
	}
	f.M = m
	f.MinuteWrites++
	return nil
}

func (f *FakeClock) ReadScratch() (int, error) { return f.Scratch, f.Err }

func (f *FakeClock) WriteScratch(v int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Scratch = v
	f.ScratchWrites++
	return nil
}

// FakeTemp serves a scripted temperature.
type FakeTemp struct {
	mu  sync.Mutex
	C   float32
	Err error
}

func (f *FakeTemp) Set(c float32) {
	f.mu.Lock()
	f.C = c
	f.mu.Unlock()
}

func (f *FakeTemp) ReadTemperature() (float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.C, f.Err
}
