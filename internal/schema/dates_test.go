package schema

import (
	"testing"
	"time"
)

func TestSerialDate(t *testing.T) {
	tests := []struct {
		name   string
		serial float64
		want   time.Time
	}{
		{
			name:   "day one",
			serial: 1,
			want:   time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "start of 1900",
			serial: 2,
			want:   time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "last unshifted serial",
			serial: 59,
			want:   time.Date(1900, time.February, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "phantom leap day is skipped",
			serial: 60,
			want:   time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "first serial after the shift",
			serial: 61,
			want:   time.Date(1900, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "fractional serial keeps time of day",
			serial: 2.5,
			want:   time.Date(1900, time.January, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SerialDate(tt.serial)
			if !got.Equal(tt.want) {
				t.Errorf("SerialDate(%v) = %v, want %v", tt.serial, got, tt.want)
			}
		})
	}
}
