package timezone

import (
	"fmt"
	"time"
)

// DefaultTimezone is where the maintenance schedule is anchored.
const DefaultTimezone = "Europe/Moscow"

// Load resolves tz, falling back to DefaultTimezone when tz is empty.
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		tz = DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
