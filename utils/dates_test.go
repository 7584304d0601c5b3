package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 18, 45, 30, 12345, time.Local)
	got := BeginningOfDay(in)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)

	tests := []struct {
		name  string
		other time.Time
		want  bool
	}{
		{"same day morning", time.Date(2024, 3, 15, 0, 1, 0, 0, time.Local), true},
		{"next day", time.Date(2024, 3, 16, 0, 1, 0, 0, time.Local), false},
		{"same date other month", time.Date(2024, 4, 15, 12, 0, 0, 0, time.Local), false},
		{"same date other year", time.Date(2023, 3, 15, 12, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(base, tt.other); got != tt.want {
				t.Errorf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthRange(t *testing.T) {
	in := time.Date(2024, 2, 10, 9, 0, 0, 0, time.Local)
	start, end := MonthRange(in)

	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v", start)
	}
	// 2024 is a leap year
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local)) {
		t.Errorf("end = %v", end)
	}
}
