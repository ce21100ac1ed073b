package view

import (
	"testing"
	"time"

	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero seconds", 0, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"exactly one minute", 60 * time.Second, "1 minute ago"},
		{"ninety seconds", 90 * time.Second, "1 minute ago"},
		{"two minutes", 2 * time.Minute, "2 minutes ago"},
		{"just under an hour", 3599 * time.Second, "59 minutes ago"},
		{"just over an hour", 3700 * time.Second, "1 hour ago"},
		{"two hours", 2 * time.Hour, "2 hours ago"},
		{"just under a day", 86399 * time.Second, "23 hours ago"},
		{"exactly one day", 86400 * time.Second, "1 day and 00:00 ago"},
		{"a day and an hour", 90000 * time.Second, "1 day and 01:00 ago"},
		{"two days with remainder", 2*24*time.Hour + 3*time.Hour + 15*time.Minute, "2 days and 03:15 ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RelativeLabel(now, now.Add(-tc.elapsed))
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("created in the future clamps to zero", func(t *testing.T) {
		assert.Equal(t, "just now", RelativeLabel(now, now.Add(5*time.Minute)))
	})
}

func TestTimeLabelFor(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("server literal wins", func(t *testing.T) {
		r := catalog.HelpRequest{TimeLabel: "3 hours ago", CreatedAt: now.Add(-time.Minute)}
		assert.Equal(t, "3 hours ago", TimeLabelFor(now, r))
	})

	t.Run("falls back to the created time", func(t *testing.T) {
		r := catalog.HelpRequest{CreatedAt: now.Add(-90 * time.Second)}
		assert.Equal(t, "1 minute ago", TimeLabelFor(now, r))
	})

	t.Run("generic fallback", func(t *testing.T) {
		assert.Equal(t, "Posted recently", TimeLabelFor(now, catalog.HelpRequest{}))
	})
}
