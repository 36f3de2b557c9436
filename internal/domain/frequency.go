package domain

import "fmt"

// Frequency represents how often a recurring event occurs
type Frequency string

const (
	FrequencyWeekly     Frequency = "WEEKLY"
	FrequencyBiWeekly   Frequency = "BI_WEEKLY"
	FrequencyFourWeekly Frequency = "FOUR_WEEKLY"
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyYearly     Frequency = "YEARLY"
)

// PeriodUnit represents the unit a recurrence period is measured in
type PeriodUnit int

const (
	// PeriodDays means occurrences lie an exact number of days apart
	PeriodDays PeriodUnit = iota
	// PeriodMonths means occurrences lie a whole number of calendar months
	// apart, with the day-of-month clamped to the target month's last day
	PeriodMonths
)

// PeriodKind is the canonical length contract of one recurrence period:
// a fixed count of days, or a whole count of calendar months
type PeriodKind struct {
	Unit  PeriodUnit
	Count int
}

// FixedDays builds a PeriodKind measured in exact days
func FixedDays(count int) PeriodKind {
	return PeriodKind{Unit: PeriodDays, Count: count}
}

// CalendarMonths builds a PeriodKind measured in whole calendar months
func CalendarMonths(count int) PeriodKind {
	return PeriodKind{Unit: PeriodMonths, Count: count}
}

// Period returns the canonical period for the frequency.
// Panics for values outside the closed set; ParseFrequency is the only
// boundary where unknown strings can enter, so a panic here is a programming
// error, never a data error.
func (f Frequency) Period() PeriodKind {
	switch f {
	case FrequencyWeekly:
		return FixedDays(7)
	case FrequencyBiWeekly:
		return FixedDays(14)
	case FrequencyFourWeekly:
		return FixedDays(28)
	case FrequencyMonthly:
		return CalendarMonths(1)
	case FrequencyYearly:
		return CalendarMonths(12)
	default:
		panic("unknown frequency: " + string(f))
	}
}

// Valid reports whether f is one of the known frequencies
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyFourWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// ParseFrequency converts a wire string into a Frequency.
// Returns an ErrInvalidInput-wrapped error for unknown values.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, s)
	}
	return f, nil
}
