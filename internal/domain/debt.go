package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InterestMode represents how interest on a debt is specified
type InterestMode string

const (
	// InterestMonetary is a flat monthly interest amount in currency units
	InterestMonetary InterestMode = "MONETARY"
	// InterestPercentage is a rate applied to the remaining balance
	InterestPercentage InterestMode = "PERCENTAGE"
)

// RatePeriod represents the period a percentage interest rate is quoted for
type RatePeriod string

const (
	RatePeriodMonthly RatePeriod = "MONTHLY"
	RatePeriodAnnual  RatePeriod = "ANNUAL"
)

// InterestSpec describes the interest accruing on a debt.
// Mode selects which of the remaining fields apply: MonthlyAmount for
// MONETARY, Rate + RatePeriod for PERCENTAGE.
type InterestSpec struct {
	Mode          InterestMode
	MonthlyAmount decimal.Decimal // MONETARY: flat amount accrued per month
	Rate          decimal.Decimal // PERCENTAGE: rate in percent (5 means 5%)
	RatePeriod    RatePeriod      // PERCENTAGE: period the rate is quoted for
}

// Validate ensures the interest spec adheres to domain rules
func (s *InterestSpec) Validate() error {
	switch s.Mode {
	case InterestMonetary:
		if s.MonthlyAmount.IsNegative() {
			return fmt.Errorf("%w: monthly interest amount must not be negative", ErrInvalidInput)
		}
	case InterestPercentage:
		if s.Rate.IsNegative() {
			return fmt.Errorf("%w: interest rate must not be negative", ErrInvalidInput)
		}
		if s.RatePeriod != RatePeriodMonthly && s.RatePeriod != RatePeriodAnnual {
			return fmt.Errorf("%w: unknown rate period %q", ErrInvalidInput, s.RatePeriod)
		}
	default:
		return fmt.Errorf("%w: unknown interest mode %q", ErrInvalidInput, s.Mode)
	}
	return nil
}

// DebtState is the payoff-relevant state of a DEBT_PAYMENT event.
// A zero RemainingBalance means the debt is paid off regardless of the
// payment amount; a zero payment amount means "not currently paying", which
// downstream code must keep distinct from "debt growing".
type DebtState struct {
	RemainingBalance decimal.Decimal
	Interest         InterestSpec
}

// Validate ensures the debt state adheres to domain rules
func (d *DebtState) Validate() error {
	if d.RemainingBalance.IsNegative() {
		return fmt.Errorf("%w: remaining balance must not be negative", ErrInvalidInput)
	}
	return d.Interest.Validate()
}

// ParseInterestMode converts a wire string into an InterestMode
func ParseInterestMode(s string) (InterestMode, error) {
	m := InterestMode(s)
	if m != InterestMonetary && m != InterestPercentage {
		return "", fmt.Errorf("%w: unknown interest mode %q", ErrInvalidInput, s)
	}
	return m, nil
}

// ParseRatePeriod converts a wire string into a RatePeriod
func ParseRatePeriod(s string) (RatePeriod, error) {
	p := RatePeriod(s)
	if p != RatePeriodMonthly && p != RatePeriodAnnual {
		return "", fmt.Errorf("%w: unknown rate period %q", ErrInvalidInput, s)
	}
	return p, nil
}
