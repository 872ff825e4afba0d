package service

import "testing"

func TestDeriveDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "12:00", 180},
		{"14:00", "18:30", 270},
		{"23:00", "01:00", -1320}, // 자정 교차는 보정하지 않는다
		{"10:00", "10:00", 0},
	}
	for _, tc := range cases {
		got := deriveDuration(tc.start, tc.end)
		if got != tc.want {
			t.Errorf("deriveDuration(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDeriveDurationInvalidClock(t *testing.T) {
	cases := [][2]string{
		{"", "12:00"},
		{"09:00", ""},
		{"nine", "12:00"},
		{"0900", "1200"},
	}
	for _, tc := range cases {
		if got := deriveDuration(tc[0], tc[1]); got != 0 {
			t.Errorf("deriveDuration(%q, %q) = %d, want 0", tc[0], tc[1], got)
		}
	}
}
