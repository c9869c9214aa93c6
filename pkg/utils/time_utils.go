// utils/timeutil.go
package utils

import "time"

// Thailand time location (ICT, +07:00)
var thLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Bangkok"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

// StartOfDayTH truncates t to local midnight in Bangkok.
func StartOfDayTH(t time.Time) time.Time {
	local := t.In(thLoc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, thLoc)
}

// OffsetDays returns the calendar day `days` away from the day containing now.
func OffsetDays(now time.Time, days int) time.Time {
	return StartOfDayTH(now).AddDate(0, 0, days)
}

// Convert an epoch value in **seconds** to Thai time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsTH(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(thLoc)
}

func FormatDateTH(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(thLoc).Format("2006-01-02")
}

func FormatDisplayTH(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(thLoc).Format("Mon 02 Jan 15:04")
}
