package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %d", got)
	}
	// Swapped bounds behave the same.
	if got := Clamp(11, 10, 0); got != 10 {
		t.Errorf("Clamp(11,10,0) = %d", got)
	}
	if got := Clamp(2.5, 0.0, 2.0); got != 2.0 {
		t.Errorf("Clamp(2.5,0,2) = %v", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(600, 600, 2400) || !Between(2400, 600, 2400) {
		t.Error("Between is not inclusive at the bounds")
	}
	if Between(599, 600, 2400) || Between(2401, 600, 2400) {
		t.Error("Between accepted values outside the range")
	}
	if !Between(5, 10, 0) {
		t.Error("Between did not normalize swapped bounds")
	}
}

func TestWrapIncDec(t *testing.T) {
	if got := WrapInc(22, 0, 23); got != 23 {
		t.Errorf("WrapInc(22) = %d", got)
	}
	if got := WrapInc(23, 0, 23); got != 0 {
		t.Errorf("WrapInc(23) = %d, want wrap to 0", got)
	}
	if got := WrapDec(1, 0, 23); got != 0 {
		t.Errorf("WrapDec(1) = %d", got)
	}
	if got := WrapDec(0, 0, 23); got != 23 {
		t.Errorf("WrapDec(0) = %d, want wrap to 23", got)
	}
	if got := WrapInc(59, 0, 59); got != 0 {
		t.Errorf("WrapInc(59,0,59) = %d", got)
	}
}

func TestMapRange(t *testing.T) {
	cases := []struct {
		x, inMin, inMax, outMin, outMax, want int
	}{
		{0, 0, 1023, 0, 100, 0},
		{1023, 0, 1023, 0, 100, 100},
		{512, 0, 1023, 0, 100, 50},
		// Inverted input range.
		{3802, 3802, 438, 0, 319, 0},
		{438, 3802, 438, 0, 319, 319},
		// Out-of-range input clamps to the output range.
		{-50, 0, 1023, 0, 100, 0},
		{2000, 0, 1023, 0, 100, 100},
		// Degenerate input range.
		{7, 5, 5, 0, 100, 0},
	}
	for _, tc := range cases {
		got := MapRange(tc.x, tc.inMin, tc.inMax, tc.outMin, tc.outMax)
		if got != tc.want {
			t.Errorf("MapRange(%d, %d..%d -> %d..%d) = %d, want %d",
				tc.x, tc.inMin, tc.inMax, tc.outMin, tc.outMax, got, tc.want)
		}
	}
}
