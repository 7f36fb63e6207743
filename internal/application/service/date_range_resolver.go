package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/domain/entity"
)

// RangeArgs holds the raw command line values; an empty string means the flag was not given
type RangeArgs struct {
	Currency  string
	StartDate string
	EndDate   string
	PastDays  string
}

// Clock returns the current time
type Clock func() time.Time

// DateRangeResolver turns raw command line values into a validated query.
// It is the only validation step before the network call.
type DateRangeResolver struct {
	now Clock
}

// NewDateRangeResolver creates a resolver; a nil clock uses time.Now
func NewDateRangeResolver(now Clock) *DateRangeResolver {
	if now == nil {
		now = time.Now
	}
	return &DateRangeResolver{now: now}
}

// ParseRangeMode validates the date flags and picks the range mode they describe
func ParseRangeMode(args RangeArgs) (entity.RangeMode, error) {
	if args.PastDays != "" {
		if args.StartDate != "" || args.EndDate != "" {
			return nil, fmt.Errorf("%w: --past-days cannot be used with --start-date or --end-date", entity.ErrInvalidArgument)
		}

		days, err := strconv.Atoi(args.PastDays)
		if err != nil {
			return nil, fmt.Errorf("%w: past days %q is not an integer", entity.ErrInvalidArgument, args.PastDays)
		}
		return entity.PastDays{Days: days}, nil
	}

	var mode entity.ExplicitRange
	if args.StartDate != "" {
		start, err := parseArgDate("start date", args.StartDate)
		if err != nil {
			return nil, err
		}
		mode.Start = &start
	}
	if args.EndDate != "" {
		end, err := parseArgDate("end date", args.EndDate)
		if err != nil {
			return nil, err
		}
		mode.End = &end
	}

	return mode, nil
}

func parseArgDate(name, value string) (time.Time, error) {
	date, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not in format yyyy-MM-dd", entity.ErrInvalidArgument, name, value)
	}
	return date, nil
}

// Resolve validates args and computes the concrete date range
func (r *DateRangeResolver) Resolve(args RangeArgs) (entity.DateRangeQuery, error) {
	mode, err := ParseRangeMode(args)
	if err != nil {
		return entity.DateRangeQuery{}, err
	}
	return r.ResolveMode(args.Currency, mode), nil
}

// ResolveMode computes the date range for an already validated mode.
// Today is read once so both bounds share the same UTC date.
func (r *DateRangeResolver) ResolveMode(currency string, mode entity.RangeMode) entity.DateRangeQuery {
	today := entity.CalendarDate(r.now())
	end := today.AddDate(0, 0, entity.LookaheadDays)

	query := entity.DateRangeQuery{
		Currency:  currency,
		StartDate: today,
		EndDate:   end,
		Mode:      mode,
	}

	switch m := mode.(type) {
	case entity.PastDays:
		query.StartDate = today.AddDate(0, 0, -m.Days)
	case entity.ExplicitRange:
		if m.Start != nil {
			query.StartDate = *m.Start
		}
		if m.End != nil {
			query.EndDate = *m.End
		}
	}

	return query
}
