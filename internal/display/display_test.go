package display

import (
	"testing"
	"time"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Bytes(tt.value); got != tt.want {
				t.Errorf("Bytes(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSignedBytes(t *testing.T) {
	if got := SignedBytes(-2048); got != "-2.00 KB" {
		t.Errorf("SignedBytes(-2048) = %q, want -2.00 KB", got)
	}
	if got := SignedBytes(100); got != "100 B" {
		t.Errorf("SignedBytes(100) = %q, want 100 B", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0s"},
		{300 * time.Millisecond, "0.3s"},
		{2 * time.Second, "2.0s"},
		{42*time.Second + 100*time.Millisecond, "42.1s"},
		{90 * time.Second, "1m 30.0s"},
		{10*time.Minute + 5*time.Second, "10m 5.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Duration(tt.d); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole int64
		want        string
	}{
		{1, 4, "25.0%"},
		{3, 3, "100.0%"},
		{0, 10, "0.0%"},
		{5, 0, "0.0%"},
		{-100, 1000, "-10.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Percent(tt.part, tt.whole); got != tt.want {
				t.Errorf("Percent(%d, %d) = %q, want %q", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}
