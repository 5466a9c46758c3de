package utils

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds the way the routing provider does: "1 hour 5 mins"
func FormatDuration(seconds int) string {
	mins := int(math.Round(float64(seconds) / 60))
	if mins < 1 {
		mins = 1
	}
	hours := mins / 60
	mins %= 60

	switch {
	case hours == 0:
		return plural(mins, "min")
	case mins == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + " " + plural(mins, "min")
	}
}

// FormatDistance renders meters the way the routing provider does: "850 m", "12.3 km", "123 km"
func FormatDistance(meters int) string {
	switch {
	case meters < 1000:
		return fmt.Sprintf("%d m", meters)
	case meters < 100000:
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	default:
		return fmt.Sprintf("%d km", int(math.Round(float64(meters)/1000)))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
