package humantime

import (
	"testing"
	"time"
)

func TestRough(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "now"},
		{"ten seconds", 10 * time.Second, "now"},
		{"half a minute", 30 * time.Second, "in seconds"},
		{"one minute", time.Minute, "in a minute"},
		{"ninety seconds", 90 * time.Second, "in a minute"},
		{"just over ninety seconds", 91 * time.Second, "in 2 minutes"},
		{"five minutes", 5 * time.Minute, "in 5 minutes"},
		{"five and a half minutes", 5*time.Minute + 30*time.Second, "in 5 minutes"},
		{"forty five minutes", 45 * time.Minute, "in 45 minutes"},
		{"fifty minutes", 50 * time.Minute, "in an hour"},
		{"two hours", 2 * time.Hour, "in 2 hours"},
		{"twenty three hours", 23 * time.Hour, "in a day"},
		{"three days", 3 * 24 * time.Hour, "in 3 days"},
		{"one week", 7 * 24 * time.Hour, "in a week"},
		{"three weeks", 21 * 24 * time.Hour, "in 3 weeks"},
		{"one month", 30 * 24 * time.Hour, "in a month"},
		{"three months", 91 * 24 * time.Hour, "in 3 months"},
		{"one year", 365 * 24 * time.Hour, "in a year"},
		{"three years", 3 * 365 * 24 * time.Hour, "in 3 years"},
		{"negative uses absolute value", -5 * time.Minute, "in 5 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rough(tt.in); got != tt.want {
				t.Errorf("Rough(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRough_Boundaries(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{10*time.Second + 999*time.Millisecond, "now"},
		{11 * time.Second, "in seconds"},
		{45 * time.Second, "in seconds"},
		{46 * time.Second, "in a minute"},
		{119 * time.Second, "in 2 minutes"},
		{2 * time.Minute, "in 2 minutes"},
		{45*time.Minute + 999*time.Millisecond, "in 45 minutes"},
		{45*time.Minute + time.Second, "in an hour"},
		{90 * time.Minute, "in an hour"},
		{90*time.Minute + time.Second, "in 2 hours"},
		{91 * time.Minute, "in 2 hours"},
		{22 * time.Hour, "in 22 hours"},
		{36 * time.Hour, "in a day"},
		{37 * time.Hour, "in 2 days"},
		{6*24*time.Hour + 12*time.Hour, "in 6 days"},
		{10*24*time.Hour + 13*time.Hour, "in 2 weeks"},
		{29 * 24 * time.Hour, "in 4 weeks"},
		{46 * 24 * time.Hour, "in 2 months"},
		{345 * 24 * time.Hour, "in 11 months"},
		{548 * 24 * time.Hour, "in 2 years"},
	}

	for _, tt := range tests {
		if got := Rough(tt.in); got != tt.want {
			t.Errorf("Rough(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
