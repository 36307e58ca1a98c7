package common

import "testing"

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Fatalf("Lerp = %v, want 2.5", got)
	}
	cases := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {3, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 1); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
