package entity

import (
	"time"
)

// DateLayout is the yyyy-MM-dd layout used on the command line and on the wire
const DateLayout = time.DateOnly

// LookaheadDays is how far past today a range reaches when no end date is given.
// HNB publishes bulletins a few days ahead of their application date.
const LookaheadDays = 5

// RangeMode is the way the caller selected a date range: PastDays or ExplicitRange
type RangeMode interface {
	rangeMode()
}

// PastDays selects the range [today - Days, today + LookaheadDays]
type PastDays struct {
	Days int
}

// ExplicitRange selects a range from absolute dates; a nil bound falls back to the default
type ExplicitRange struct {
	Start *time.Time
	End   *time.Time
}

func (PastDays) rangeMode()      {}
func (ExplicitRange) rangeMode() {}

// DateRangeQuery is a fully resolved request for exchange rates
type DateRangeQuery struct {
	// Currency is the alphabetic currency code; empty means all currencies
	Currency  string
	StartDate time.Time
	EndDate   time.Time
	Mode      RangeMode
}

// StartParam returns the start date formatted for transport
func (q DateRangeQuery) StartParam() string {
	return q.StartDate.Format(DateLayout)
}

// EndParam returns the end date formatted for transport
func (q DateRangeQuery) EndParam() string {
	return q.EndDate.Format(DateLayout)
}

// CalendarDate truncates t to midnight UTC of its UTC calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
