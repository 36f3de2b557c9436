package recurrence

import (
	"time"

	"github.com/simaogato/cashcycle-backend/internal/domain"
)

// ProjectionResult describes where a recurring event stands relative to a
// caller-supplied reference date. It is never persisted; callers recompute it
// on demand as their "today" advances.
type ProjectionResult struct {
	NextDueDate time.Time
	IsDueToday  bool
	DaysUntil   int
}

// NextOccurrence returns the earliest occurrence of the schedule that falls
// on or after reference. If the anchor itself is on or after reference, the
// anchor is returned unchanged.
//
// Fixed-day frequencies advance by direct multiple-of-period arithmetic,
// calendar frequencies by whole-month addition with end-of-month clamping.
// Both are O(1) in the elapsed time since the anchor.
func NextOccurrence(anchor time.Time, frequency domain.Frequency, reference time.Time) time.Time {
	anchor = domain.DateOf(anchor)
	reference = domain.DateOf(reference)
	if !anchor.Before(reference) {
		return anchor
	}

	period := frequency.Period()
	switch period.Unit {
	case domain.PeriodDays:
		elapsed := domain.DaysBetween(anchor, reference)
		periods := (elapsed + period.Count - 1) / period.Count
		return anchor.AddDate(0, 0, periods*period.Count)

	case domain.PeriodMonths:
		// Land on the nearest whole-period month at or before the
		// reference month, then step one period if clamping left the
		// candidate behind the reference day.
		// anchor < reference here, so the span is never negative.
		span := domain.MonthsBetween(anchor, reference)
		periods := span / period.Count
		candidate := domain.AddMonthsClamped(anchor, periods*period.Count)
		if candidate.Before(reference) {
			periods++
			candidate = domain.AddMonthsClamped(anchor, periods*period.Count)
		}
		return candidate

	default:
		panic("unknown period unit")
	}
}

// IsDueOn reports whether target is an occurrence of the schedule: target is
// on or after the anchor and an exact whole number of periods away from it.
// Calendar frequencies re-derive the clamped day-of-month, so an anchor on
// the 31st is due on the last day of shorter months and IsDueOn can never
// disagree with NextOccurrence about a date.
func IsDueOn(anchor time.Time, frequency domain.Frequency, target time.Time) bool {
	anchor = domain.DateOf(anchor)
	target = domain.DateOf(target)
	if target.Before(anchor) {
		return false
	}

	period := frequency.Period()
	switch period.Unit {
	case domain.PeriodDays:
		return domain.DaysBetween(anchor, target)%period.Count == 0

	case domain.PeriodMonths:
		span := domain.MonthsBetween(anchor, target)
		if span < 0 || span%period.Count != 0 {
			return false
		}
		return domain.AddMonthsClamped(anchor, span).Equal(target)

	default:
		panic("unknown period unit")
	}
}

// Project resolves the schedule against a reference date into an output-only
// ProjectionResult.
func Project(anchor time.Time, frequency domain.Frequency, reference time.Time) ProjectionResult {
	reference = domain.DateOf(reference)
	next := NextOccurrence(anchor, frequency, reference)
	return ProjectionResult{
		NextDueDate: next,
		IsDueToday:  next.Equal(reference),
		DaysUntil:   domain.DaysBetween(reference, next),
	}
}
