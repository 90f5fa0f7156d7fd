package schema

import "time"

// serialEpoch is the conventional base date for spreadsheet serial
// dates: day 1 lands on 1900-01-01 once the day count is added.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialDate converts a spreadsheet serial day count to a UTC timestamp.
//
// The 1900 date system counts a fictitious 1900-02-29 (a Lotus 1-2-3
// defect Excel kept for compatibility), so serial values above 59 are
// shifted up by one day before conversion. Values of 59 and below are
// used as-is.
func SerialDate(serial float64) time.Time {
	if serial > 59 {
		serial++
	}
	return serialEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
}
