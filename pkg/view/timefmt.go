package view

import (
	"fmt"
	"time"

	"github.com/mentora-labs/campus-map/pkg/catalog"
)

// RelativeLabel renders how long ago a request was posted. A created
// time in the future counts as zero elapsed.
func RelativeLabel(now, created time.Time) string {
	elapsed := now.Sub(created)
	if elapsed < 0 {
		elapsed = 0
	}
	secs := int64(elapsed / time.Second)

	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		m := secs / 60
		return fmt.Sprintf("%d minute%s ago", m, plural(m))
	case secs < 86400:
		h := secs / 3600
		return fmt.Sprintf("%d hour%s ago", h, plural(h))
	default:
		d := secs / 86400
		rem := secs % 86400
		return fmt.Sprintf("%d day%s and %02d:%02d ago", d, plural(d), rem/3600, (rem%3600)/60)
	}
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// TimeLabelFor picks the label shown on popups: the literal the
// platform rendered, else a relative label from the created time,
// else a generic fallback.
func TimeLabelFor(now time.Time, r catalog.HelpRequest) string {
	if r.TimeLabel != "" {
		return r.TimeLabel
	}
	if !r.CreatedAt.IsZero() {
		return RelativeLabel(now, r.CreatedAt)
	}
	return "Posted recently"
}
