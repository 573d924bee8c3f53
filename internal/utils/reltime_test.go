package utils

import (
	"testing"
	"time"
)

func TestRelTimeFR(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-20 * time.Second), "il y a moins d'une minute"},
		{"one minute", now.Add(-90 * time.Second), "il y a une minute"},
		{"minutes", now.Add(-3 * time.Minute), "il y a 3 minutes"},
		{"one hour", now.Add(-90 * time.Minute), "il y a une heure"},
		{"hours", now.Add(-5 * time.Hour), "il y a 5 heures"},
		{"one day", now.Add(-30 * time.Hour), "il y a un jour"},
		{"days", now.Add(-72 * time.Hour), "il y a 3 jours"},
		{"future", now.Add(10 * time.Minute), "dans 10 minutes"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelTimeFR(tc.t, now); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
