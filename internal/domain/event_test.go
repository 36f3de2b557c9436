package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() RecurringEvent {
	return RecurringEvent{
		ID:          uuid.New(),
		Description: "Rent",
		AnchorDate:  NewDate(2025, time.January, 1),
		Frequency:   FrequencyMonthly,
		Amount:      decimal.NewFromInt(850),
		Kind:        EventKindExpense,
	}
}

func TestRecurringEvent_Validate_Success(t *testing.T) {
	event := validEvent()
	require.NoError(t, event.Validate())
}

func TestRecurringEvent_Validate_ZeroAmountIsAllowed(t *testing.T) {
	// A debt row with no current payment is a legal record; it is "not
	// paying", not an input error.
	event := validEvent()
	event.Kind = EventKindDebtPayment
	event.Amount = decimal.Zero

	require.NoError(t, event.Validate())
}

func TestRecurringEvent_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecurringEvent)
	}{
		{"MissingAnchorDate", func(e *RecurringEvent) { e.AnchorDate = time.Time{} }},
		{"UnknownFrequency", func(e *RecurringEvent) { e.Frequency = "DAILY" }},
		{"UnknownKind", func(e *RecurringEvent) { e.Kind = "TRANSFER" }},
		{"NegativeAmount", func(e *RecurringEvent) { e.Amount = decimal.NewFromInt(-5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := validEvent()
			tt.mutate(&event)

			err := event.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDebtState_Validate(t *testing.T) {
	state := DebtState{
		RemainingBalance: decimal.NewFromInt(1000),
		Interest: InterestSpec{
			Mode:       InterestPercentage,
			Rate:       decimal.NewFromFloat(5.5),
			RatePeriod: RatePeriodAnnual,
		},
	}
	require.NoError(t, state.Validate())
}

func TestDebtState_Validate_Failures(t *testing.T) {
	tests := []struct {
		name  string
		state DebtState
	}{
		{
			name: "NegativeBalance",
			state: DebtState{
				RemainingBalance: decimal.NewFromInt(-1),
				Interest:         InterestSpec{Mode: InterestMonetary},
			},
		},
		{
			name: "NegativeMonetaryInterest",
			state: DebtState{
				RemainingBalance: decimal.NewFromInt(100),
				Interest:         InterestSpec{Mode: InterestMonetary, MonthlyAmount: decimal.NewFromInt(-10)},
			},
		},
		{
			name: "NegativeRate",
			state: DebtState{
				RemainingBalance: decimal.NewFromInt(100),
				Interest:         InterestSpec{Mode: InterestPercentage, Rate: decimal.NewFromInt(-3), RatePeriod: RatePeriodMonthly},
			},
		},
		{
			name: "UnknownRatePeriod",
			state: DebtState{
				RemainingBalance: decimal.NewFromInt(100),
				Interest:         InterestSpec{Mode: InterestPercentage, Rate: decimal.NewFromInt(3), RatePeriod: "WEEKLY"},
			},
		},
		{
			name: "UnknownMode",
			state: DebtState{
				RemainingBalance: decimal.NewFromInt(100),
				Interest:         InterestSpec{Mode: "COMPOUND"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseEventKind(t *testing.T) {
	kind, err := ParseEventKind("DEBT_PAYMENT")
	require.NoError(t, err)
	assert.Equal(t, EventKindDebtPayment, kind)

	_, err = ParseEventKind("debt")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
