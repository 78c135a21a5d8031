package render

import "fmt"

// FormatDuration renders a millisecond duration as a whole number of the
// largest fitting unit, for mute feedback. Divisions floor, so 90 seconds
// reads "1 minutes" and zero reads "0 seconds".
func FormatDuration(millis int64) string {
	seconds := millis / 1000
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours", seconds/3600)
	default:
		return fmt.Sprintf("%d days", seconds/86400)
	}
}
