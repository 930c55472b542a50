package contextstore

import (
	"fmt"
	"time"
)

// FormatAgo renders the elapsed time between two instants as a bucketed
// relative string: seconds under a minute, minutes under an hour, hours
// under a day, else days. Pure function; both instants are inputs so tests
// need no clock mocking.
func FormatAgo(then, now time.Time) string {
	elapsed := now.Sub(then)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}
