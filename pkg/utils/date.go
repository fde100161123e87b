package utils

import (
	"time"
	_ "time/tzdata"

	"posto-ledger/pkg/common"
)

// TimeNowBRT returns the current time in the station's time zone.
func TimeNowBRT() time.Time {
	return time.Now().In(Location(common.DefaultTimeZone))
}

// Location loads the named zone, falling back to UTC.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
