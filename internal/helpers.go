package internal

import "time"

const (
	formatDDMMYYYY     = "02.01.2006"
	formatDDMMYYYYHHMM = "02.01.2006 15:04 MST"
	dateToBeAnnounced  = "date to be announced"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

// FormatEventDate renders an optional event date in UTC, with the time of day
// when one is set.
func FormatEventDate(date *time.Time) string {
	if date == nil {
		return dateToBeAnnounced
	}

	utc := date.UTC()
	if utc.Hour() == 0 && utc.Minute() == 0 {
		return Format(utc)
	}

	return utc.Format(formatDDMMYYYYHHMM)
}
