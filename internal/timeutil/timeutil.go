// Package timeutil provides time formatting utilities for transcript output
// and progress display.
package timeutil

import "fmt"

// SecondsToMinutes converts a segment start offset in seconds to minutes.
func SecondsToMinutes(seconds float64) float64 {
	return seconds / 60.0
}

// FormatMinutes converts seconds to a minutes string with exactly two
// decimal digits, the format used in the CSV time column.
//
// Example:
//
//	FormatMinutes(0)     // "0.00"
//	FormatMinutes(30)    // "0.50"
//	FormatMinutes(72)    // "1.20"
//	FormatMinutes(3600)  // "60.00"
func FormatMinutes(seconds float64) string {
	return fmt.Sprintf("%.2f", SecondsToMinutes(seconds))
}

// FormatClock converts seconds to HH:MM:SS.MS format for progress display.
//
// Example:
//
//	FormatClock(0)      // "00:00:00.00"
//	FormatClock(90)     // "00:01:30.00"
//	FormatClock(3661)   // "01:01:01.00"
//	FormatClock(30.53)  // "00:00:30.53"
func FormatClock(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}
