package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/cashcycle-backend/internal/domain"
)

var allFrequencies = []domain.Frequency{
	domain.FrequencyWeekly,
	domain.FrequencyBiWeekly,
	domain.FrequencyFourWeekly,
	domain.FrequencyMonthly,
	domain.FrequencyYearly,
}

func TestNextOccurrence_AnchorInFuture_ReturnsAnchor(t *testing.T) {
	anchor := domain.NewDate(2025, time.September, 15)
	reference := domain.NewDate(2025, time.June, 1)

	for _, frequency := range allFrequencies {
		assert.Equal(t, anchor, NextOccurrence(anchor, frequency, reference), string(frequency))
	}
}

func TestNextOccurrence_AnchorEqualsReference_ReturnsAnchor(t *testing.T) {
	anchor := domain.NewDate(2025, time.June, 1)

	for _, frequency := range allFrequencies {
		assert.Equal(t, anchor, NextOccurrence(anchor, frequency, anchor), string(frequency))
	}
}

func TestNextOccurrence_FixedDayFrequencies(t *testing.T) {
	anchor := domain.NewDate(2025, time.January, 3)

	tests := []struct {
		name      string
		frequency domain.Frequency
		reference time.Time
		expected  time.Time
	}{
		{"WeeklyMidPeriod", domain.FrequencyWeekly, domain.NewDate(2025, time.January, 5), domain.NewDate(2025, time.January, 10)},
		{"WeeklyOnOccurrence", domain.FrequencyWeekly, domain.NewDate(2025, time.January, 10), domain.NewDate(2025, time.January, 10)},
		{"WeeklyYearsLater", domain.FrequencyWeekly, domain.NewDate(2031, time.March, 14), domain.NewDate(2031, time.March, 14)},
		{"BiWeeklyDayAfterOccurrence", domain.FrequencyBiWeekly, domain.NewDate(2025, time.January, 18), domain.NewDate(2025, time.January, 31)},
		{"FourWeeklyAcrossFebruary", domain.FrequencyFourWeekly, domain.NewDate(2025, time.February, 1), domain.NewDate(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextOccurrence(anchor, tt.frequency, tt.reference))
		})
	}
}

func TestNextOccurrence_MonthlyClampsToEndOfFebruary(t *testing.T) {
	anchor := domain.NewDate(2025, time.January, 31)

	next := NextOccurrence(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.February, 1))
	assert.Equal(t, domain.NewDate(2025, time.February, 28), next)
}

func TestNextOccurrence_MonthlyClampsToLeapFebruary(t *testing.T) {
	anchor := domain.NewDate(2024, time.January, 31)

	next := NextOccurrence(anchor, domain.FrequencyMonthly, domain.NewDate(2024, time.February, 1))
	assert.Equal(t, domain.NewDate(2024, time.February, 29), next)
}

func TestNextOccurrence_MonthlyReturnsToAnchorDayAfterShortMonth(t *testing.T) {
	// The clamp applies per occurrence; March gets the 31st back.
	anchor := domain.NewDate(2025, time.January, 31)

	next := NextOccurrence(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.March, 1))
	assert.Equal(t, domain.NewDate(2025, time.March, 31), next)
}

func TestNextOccurrence_YearlyFromLeapDay(t *testing.T) {
	anchor := domain.NewDate(2024, time.February, 29)

	next := NextOccurrence(anchor, domain.FrequencyYearly, domain.NewDate(2024, time.March, 1))
	assert.Equal(t, domain.NewDate(2025, time.February, 28), next)

	next = NextOccurrence(anchor, domain.FrequencyYearly, domain.NewDate(2025, time.March, 1))
	assert.Equal(t, domain.NewDate(2026, time.February, 28), next)
}

func TestIsDueOn_BeforeAnchor_NeverDue(t *testing.T) {
	anchor := domain.NewDate(2025, time.June, 15)

	for _, frequency := range allFrequencies {
		assert.False(t, IsDueOn(anchor, frequency, domain.NewDate(2025, time.June, 14)), string(frequency))
	}
}

func TestIsDueOn_AnchorItselfIsDue(t *testing.T) {
	anchor := domain.NewDate(2025, time.June, 15)

	for _, frequency := range allFrequencies {
		assert.True(t, IsDueOn(anchor, frequency, anchor), string(frequency))
	}
}

func TestIsDueOn_Weekly(t *testing.T) {
	anchor := domain.NewDate(2025, time.January, 6)

	assert.True(t, IsDueOn(anchor, domain.FrequencyWeekly, domain.NewDate(2025, time.January, 13)))
	assert.True(t, IsDueOn(anchor, domain.FrequencyWeekly, domain.NewDate(2025, time.March, 3)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyWeekly, domain.NewDate(2025, time.January, 12)))
}

func TestIsDueOn_MonthlyClampedAnchor(t *testing.T) {
	anchor := domain.NewDate(2025, time.January, 31)

	// Due on the clamped last day of February, not skipped to March.
	assert.True(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.February, 28)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.February, 27)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.March, 1)))
	assert.True(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.March, 31)))
	assert.True(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.April, 30)))
}

func TestIsDueOn_MonthlyShortAnchorDayDoesNotMatchMonthEnd(t *testing.T) {
	// An anchor on the 28th stays on the 28th in longer months.
	anchor := domain.NewDate(2025, time.February, 28)

	assert.True(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.March, 28)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.March, 31)))
}

func TestIsDueOn_YearlyRequiresWholeYearMultiple(t *testing.T) {
	anchor := domain.NewDate(2023, time.May, 10)

	assert.True(t, IsDueOn(anchor, domain.FrequencyYearly, domain.NewDate(2025, time.May, 10)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyYearly, domain.NewDate(2025, time.June, 10)))
	assert.False(t, IsDueOn(anchor, domain.FrequencyYearly, domain.NewDate(2025, time.May, 11)))
}

func TestNextOccurrence_Properties(t *testing.T) {
	anchors := []time.Time{
		domain.NewDate(2024, time.February, 29),
		domain.NewDate(2025, time.January, 31),
		domain.NewDate(2025, time.July, 4),
		domain.NewDate(2023, time.December, 1),
	}

	for _, anchor := range anchors {
		for _, frequency := range allFrequencies {
			reference := anchor
			for i := 0; i < 40; i++ {
				next := NextOccurrence(anchor, frequency, reference)

				// The result is never before the reference and is
				// itself an occurrence.
				require.False(t, next.Before(reference),
					"%s anchor=%s ref=%s next=%s", frequency, anchor, reference, next)
				require.True(t, IsDueOn(anchor, frequency, next),
					"%s anchor=%s next=%s", frequency, anchor, next)

				// Walking the reference strictly past each occurrence
				// never yields the same occurrence twice.
				following := NextOccurrence(anchor, frequency, next.AddDate(0, 0, 1))
				require.True(t, following.After(next),
					"%s anchor=%s next=%s following=%s", frequency, anchor, next, following)

				reference = next.AddDate(0, 0, 1)
			}
		}
	}
}

func TestProject(t *testing.T) {
	anchor := domain.NewDate(2025, time.January, 31)

	result := Project(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.February, 25))
	assert.Equal(t, domain.NewDate(2025, time.February, 28), result.NextDueDate)
	assert.False(t, result.IsDueToday)
	assert.Equal(t, 3, result.DaysUntil)

	result = Project(anchor, domain.FrequencyMonthly, domain.NewDate(2025, time.February, 28))
	assert.True(t, result.IsDueToday)
	assert.Equal(t, 0, result.DaysUntil)
}

func TestProject_FutureAnchor(t *testing.T) {
	anchor := domain.NewDate(2025, time.August, 10)

	result := Project(anchor, domain.FrequencyWeekly, domain.NewDate(2025, time.August, 1))
	assert.Equal(t, anchor, result.NextDueDate)
	assert.False(t, result.IsDueToday)
	assert.Equal(t, 9, result.DaysUntil)
}
