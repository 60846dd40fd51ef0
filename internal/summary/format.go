package summary

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "<H>h<MM>m": hours unpadded,
// minutes always two digits. Sub-minute remainders are floored, never
// rounded up. Callers clamp negative values first (see Remaining).
func FormatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}

// FormatClock renders a duration as "<HH>:<MM>" with both fields
// two digits, truncating to the minute.
func FormatClock(d time.Duration) string {
	totalMinutes := int(d.Seconds()) / 60
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
