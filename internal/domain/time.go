package domain

import "time"

// Publish timestamps are compared as strings. Z-form RFC3339 text at a
// fixed precision orders the same way as the instants it encodes, so the
// cutoff must stay in exactly that shape.

var displayZone = time.FixedZone("UTC+9", 9*60*60)

// Cutoff returns the earliest publish instant still considered new,
// as second-precision Z-form RFC3339 text.
func Cutoff(now time.Time, lookbackHours int) string {
	return now.UTC().Add(-time.Duration(lookbackHours) * time.Hour).Format(time.RFC3339)
}

// DisplayTime converts a Z-form publish timestamp into the fixed UTC+9
// display format. Unparseable input is returned untouched.
func DisplayTime(isoZ string) string {
	t, err := time.Parse(time.RFC3339, isoZ)
	if err != nil {
		return isoZ
	}
	return t.In(displayZone).Format("2006-01-02 15:04")
}

// DisplayStamp formats an instant in the UTC+9 display zone.
func DisplayStamp(t time.Time) string {
	return t.In(displayZone).Format("2006-01-02 15:04")
}

// DisplayDate formats the date part of an instant in the display zone.
func DisplayDate(t time.Time) string {
	return t.In(displayZone).Format("2006-01-02")
}
