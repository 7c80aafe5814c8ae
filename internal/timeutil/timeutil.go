// Package timeutil provides time formatting utilities for log output.
package timeutil

import "fmt"

// FormatSeconds converts seconds to HH:MM:SS.MS format.
//
// Used for human-readable timestamps in progress and summary log lines.
// Supports fractional seconds.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
//	FormatSeconds(1.999)  // "00:00:01.99"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

// FormatWhole converts a whole-second count to HH:MM:SS, matching the
// resolution of chapter boundary timestamps.
//
// Example:
//
//	FormatWhole(200)  // "00:03:20"
func FormatWhole(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
