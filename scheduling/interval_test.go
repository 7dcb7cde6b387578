package scheduling

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"contained", at(9, 0), at(10, 0), at(9, 15), at(9, 45), true},
		{"containing", at(9, 15), at(9, 45), at(9, 0), at(10, 0), true},
		{"head overlap", at(8, 30), at(9, 30), at(9, 0), at(10, 0), true},
		{"tail overlap", at(9, 30), at(10, 30), at(9, 0), at(10, 0), true},
		{"one minute shared", at(9, 59), at(11, 0), at(9, 0), at(10, 0), true},
		{"back to back, a first", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back, b first", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// swapping the intervals never changes the answer
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	base := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	got := AddMinutes(base, 90)
	want := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMinutes(+90) = %v, want %v", got, want)
	}

	if got := AddMinutes(base, -30); !got.Equal(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)) {
		t.Errorf("AddMinutes(-30) = %v", got)
	}
	if got := AddMinutes(base, 0); !got.Equal(base) {
		t.Errorf("AddMinutes(0) = %v, want unchanged", got)
	}
}
