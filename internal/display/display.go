// Package display renders byte counts, durations, and ratios for logs,
// summaries, and error detail.
package display

import (
	"fmt"
	"time"
)

// Bytes renders a byte count in human units. Whole bytes print without
// decimals; larger units keep two.
func Bytes(value int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case value >= gb:
		return fmt.Sprintf("%.2f GB", float64(value)/float64(gb))
	case value >= mb:
		return fmt.Sprintf("%.2f MB", float64(value)/float64(mb))
	case value >= kb:
		return fmt.Sprintf("%.2f KB", float64(value)/float64(kb))
	default:
		return fmt.Sprintf("%d B", value)
	}
}

// SignedBytes renders a byte delta, keeping the sign for negative values.
// Conversions that grow a file report a negative saving.
func SignedBytes(value int64) string {
	if value < 0 {
		return "-" + Bytes(-value)
	}
	return Bytes(value)
}

// Duration renders an elapsed duration as minutes and seconds, omitting
// the minutes part under one minute.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := d.Seconds() - float64(minutes)*60
	if minutes == 0 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	return fmt.Sprintf("%dm %.1fs", minutes, seconds)
}

// Percent renders part over whole as a percentage with one decimal place.
// A non-positive whole renders as "0.0%".
func Percent(part, whole int64) string {
	if whole <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}
