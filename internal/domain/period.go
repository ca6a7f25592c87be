package domain

import "time"

// ResolveMonth returns the full calendar month (year, month). The month must be
// in 1..12; it is not validated here.
func ResolveMonth(year int, month time.Month) Period {
	loc := time.UTC
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	end := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, loc)

	return Period{
		Year:       year,
		Month:      month,
		Range:      DateRange{Start: start, End: end},
		DisplayEnd: end,
		ToDate:     false,
	}
}

// ResolvePreviousMonth returns the calendar month before the one containing now.
func ResolvePreviousMonth(now time.Time) Period {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)

	return ResolveMonth(lastOfPrevious.Year(), lastOfPrevious.Month())
}

// ResolveMonthToDate returns the range from the 1st of now's month through the
// whole of today. The query end is tomorrow; the display end is today.
func ResolveMonthToDate(now time.Time) Period {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Year:       now.Year(),
		Month:      now.Month(),
		Range:      DateRange{Start: start, End: today.AddDate(0, 0, 1)},
		DisplayEnd: today,
		ToDate:     true,
	}
}
