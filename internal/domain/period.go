package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive creation-time filter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DisplayString returns the range as shown in analytics headers.
func (r DateRange) DisplayString() string {
	return fmt.Sprintf("%s — %s", r.Start.Format("02.01"), r.End.Format("02.01.2006"))
}

// LastWeek returns the trailing 7 days ending now.
func LastWeek() DateRange {
	end := time.Now()
	return DateRange{Start: end.AddDate(0, 0, -7), End: end}
}

// LastMonth returns the trailing 30 days ending now.
func LastMonth() DateRange {
	end := time.Now()
	return DateRange{Start: end.AddDate(0, 0, -30), End: end}
}

// ThisMonth returns the first of the current month through now.
func ThisMonth() DateRange {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: now}
}

// Last3Months returns the trailing 90 days ending now.
func Last3Months() DateRange {
	end := time.Now()
	return DateRange{Start: end.AddDate(0, 0, -90), End: end}
}
