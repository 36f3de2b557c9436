package debt

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/cashcycle-backend/internal/domain"
	"github.com/simaogato/cashcycle-backend/internal/usecase/normalize"
)

// PayoffOutlook disambiguates the three reasons a payoff projection can be
// absent, plus the projected case. Callers must render these distinctly:
// a paid-off debt is not "not paying", and a growing debt is neither.
type PayoffOutlook string

const (
	// OutlookPaidOff means the remaining balance is zero, regardless of payment
	OutlookPaidOff PayoffOutlook = "PAID_OFF"
	// OutlookNotPaying means there is a balance but no current payment
	OutlookNotPaying PayoffOutlook = "NOT_PAYING"
	// OutlookGrowing means the payment does not cover the accruing interest
	OutlookGrowing PayoffOutlook = "GROWING"
	// OutlookProjected means WeeksToPayoff holds a projection
	OutlookProjected PayoffOutlook = "PROJECTED"
)

// AmortizationResult is a point-in-time payoff projection. It is recomputed
// whenever the balance or payment changes upstream; nothing here is a schedule.
type AmortizationResult struct {
	MonthlyInterest   decimal.Decimal
	NetMonthlyPayment decimal.Decimal
	WeeksToPayoff     *int64 // nil unless Outlook is PROJECTED
	Outlook           PayoffOutlook
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyInterest returns the interest accruing on the debt over one month,
// computed against the current balance. Zero once the balance is zero.
func MonthlyInterest(state domain.DebtState) decimal.Decimal {
	if state.RemainingBalance.IsZero() {
		return decimal.Zero
	}
	switch state.Interest.Mode {
	case domain.InterestMonetary:
		return state.Interest.MonthlyAmount
	case domain.InterestPercentage:
		rate := state.Interest.Rate.Div(hundred)
		switch state.Interest.RatePeriod {
		case domain.RatePeriodAnnual:
			return state.RemainingBalance.Mul(rate).Div(twelve)
		case domain.RatePeriodMonthly:
			return state.RemainingBalance.Mul(rate)
		default:
			panic("unknown rate period: " + string(state.Interest.RatePeriod))
		}
	default:
		panic("unknown interest mode: " + string(state.Interest.Mode))
	}
}

// NetMonthlyPayment returns the monthly-normalized payment minus the monthly
// interest. Negative means the debt grows despite the payment.
func NetMonthlyPayment(amountPerPeriod decimal.Decimal, frequency domain.Frequency, state domain.DebtState) decimal.Decimal {
	return normalize.ToMonthly(amountPerPeriod, frequency).Sub(MonthlyInterest(state))
}

// WeeksToPayoff projects the weeks until the balance reaches zero, or nil
// when no payoff is in sight. Use Project when the caller needs to know which
// of the three nil cases applies.
func WeeksToPayoff(amountPerPeriod decimal.Decimal, frequency domain.Frequency, state domain.DebtState) *int64 {
	return Project(amountPerPeriod, frequency, state).WeeksToPayoff
}

// Project computes the full payoff analysis for a debt given its recurring
// payment. Simple amortization: interest is computed once against the current
// balance, not compounded forward month by month.
func Project(amountPerPeriod decimal.Decimal, frequency domain.Frequency, state domain.DebtState) AmortizationResult {
	interest := MonthlyInterest(state)
	net := normalize.ToMonthly(amountPerPeriod, frequency).Sub(interest)

	result := AmortizationResult{
		MonthlyInterest:   interest,
		NetMonthlyPayment: net,
	}

	switch {
	case state.RemainingBalance.IsZero():
		result.Outlook = OutlookPaidOff
	case amountPerPeriod.IsZero():
		result.Outlook = OutlookNotPaying
	case net.LessThanOrEqual(decimal.Zero):
		result.Outlook = OutlookGrowing
	default:
		weeks := state.RemainingBalance.Div(net).Mul(normalize.WeeksPerMonth).Ceil().IntPart()
		result.WeeksToPayoff = &weeks
		result.Outlook = OutlookProjected
	}
	return result
}
