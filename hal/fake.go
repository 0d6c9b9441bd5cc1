package hal

import "sync"

// Fakes for host tests and the simulator. Kept in the normal build so
// cmd/irrisim can wire them; they have no hardware dependencies.

// FakeADC serves scripted raw values per channel.
type FakeADC struct {
	mu  sync.Mutex
	Raw map[int]uint16
	Err error
}

func NewFakeADC() *FakeADC {
	return &FakeADC{Raw: map[int]uint16{}}
}

func (f *FakeADC) SetRaw(channel int, raw uint16) {
	f.mu.Lock()
	f.Raw[channel] = raw
	f.mu.Unlock()
}

func (f *FakeADC) ReadChannel(channel int) (uint16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Raw[channel], nil
}

// FakeRelay records the driven state.
type FakeRelay struct {
	mu sync.Mutex
	on bool
	// Transitions counts Set calls that changed the state.
	Transitions int
}

func (f *FakeRelay) Set(on bool) {
	f.mu.Lock()
	if on != f.on {
		f.Transitions++
	}
	f.on = on
	f.mu.Unlock()
}

func (f *FakeRelay) Get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// FakeServo records every commanded pulse width.
type FakeServo struct {
	mu      sync.Mutex
	History []uint16
	Err     error
}

func (f *FakeServo) SetPulseWidth(us uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.History = append(f.History, us)
	return nil
}

func (f *FakeServo) Last() (uint16, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.History) == 0 {
		return 0, false
	}
	return f.History[len(f.History)-1], true
}

// FakeTouch replays a queue of touch points; empty queue means no touch.
type FakeTouch struct {
	mu    sync.Mutex
	queue []point
	Err   error
}

type point struct{ x, y int }

func (f *FakeTouch) Press(x, y int) {
	f.mu.Lock()
	f.queue = append(f.queue, point{x, y})
	f.mu.Unlock()
}

func (f *FakeTouch) ReadPoint() (int, int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, 0, false, f.Err
	}
	if len(f.queue) == 0 {
		return 0, 0, false, nil
	}
	p := f.queue[0]
	f.queue = f.queue[1:]
	return p.x, p.y, true, nil
}

// NullDisplay draws nothing.
type NullDisplay struct{}

func (NullDisplay) FillScreen(Color)                                       {}
func (NullDisplay) FillRect(int, int, int, int, Color)                     {}
func (NullDisplay) DrawButton(int, int, int, int, int, Color, Color, string, int) {}
func (NullDisplay) SetCursor(int, int)                                     {}
func (NullDisplay) SetTextSize(int)                                        {}
func (NullDisplay) SetTextColor(Color)                                     {}
func (NullDisplay) SetTextColor2(Color, Color)                             {}
func (NullDisplay) Print(string)                                           {}
