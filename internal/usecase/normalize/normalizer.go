// Package normalize converts per-occurrence amounts into weekly and monthly
// equivalents. The conversion factors live here and only here: every caller
// (summary views, the debt projector) shares the same canonical set, so two
// screens can never disagree about what a bi-weekly payment costs per month.
package normalize

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/cashcycle-backend/internal/domain"
)

// Canonical conversion constants. Weekly<->monthly round trips through these
// are exact for WEEKLY and agree within ~1.5% for the other frequencies
// (4.33 weeks/month vs the 2.17 and 13/12 month factors).
var (
	// WeeksPerMonth is the average number of weeks in a month (52/12, rounded)
	WeeksPerMonth = decimal.RequireFromString("4.33")
	// BiWeeklyPerMonth is the number of bi-weekly periods per month
	BiWeeklyPerMonth = decimal.RequireFromString("2.17")

	// The 4-weekly monthly factor is exactly 13/12. The division is deferred
	// to ToMonthly so the ratio is never truncated to a fixed precision:
	// pre-dividing would turn 120 * 13/12 into 129.999... instead of 130.
	thirteen = decimal.NewFromInt(13)
	twelve   = decimal.NewFromInt(12)

	weeksPerYear = decimal.NewFromInt(52)
	two          = decimal.NewFromInt(2)
	four         = decimal.NewFromInt(4)
)

// ToWeekly converts a per-occurrence amount at the given frequency into its
// weekly equivalent
func ToWeekly(amount decimal.Decimal, frequency domain.Frequency) decimal.Decimal {
	switch frequency {
	case domain.FrequencyWeekly:
		return amount
	case domain.FrequencyBiWeekly:
		return amount.Div(two)
	case domain.FrequencyFourWeekly:
		return amount.Div(four)
	case domain.FrequencyMonthly:
		return amount.Div(WeeksPerMonth)
	case domain.FrequencyYearly:
		return amount.Div(weeksPerYear)
	default:
		panic("unknown frequency: " + string(frequency))
	}
}

// ToMonthly converts a per-occurrence amount at the given frequency into its
// monthly equivalent
func ToMonthly(amount decimal.Decimal, frequency domain.Frequency) decimal.Decimal {
	switch frequency {
	case domain.FrequencyWeekly:
		return amount.Mul(WeeksPerMonth)
	case domain.FrequencyBiWeekly:
		return amount.Mul(BiWeeklyPerMonth)
	case domain.FrequencyFourWeekly:
		return amount.Mul(thirteen).Div(twelve)
	case domain.FrequencyMonthly:
		return amount
	case domain.FrequencyYearly:
		return amount.Div(twelve)
	default:
		panic("unknown frequency: " + string(frequency))
	}
}
