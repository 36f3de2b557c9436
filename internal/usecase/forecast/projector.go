package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/cashcycle-backend/internal/domain"
	"github.com/simaogato/cashcycle-backend/internal/usecase/recurrence"
)

// DayTotals aggregates the cash moved by the events due on one day, split by
// kind. "Due" and "moves cash" are deliberately separate facts: a zero-amount
// debt row appears in DayProjection.Due but contributes nothing here.
type DayTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Debts    decimal.Decimal
}

// DayProjection is one day of a calendar forecast
type DayProjection struct {
	Date   time.Time
	Due    []*domain.RecurringEvent
	Totals DayTotals
}

// DueOn returns the events with an occurrence on date, preserving input order
func DueOn(events []*domain.RecurringEvent, date time.Time) []*domain.RecurringEvent {
	due := make([]*domain.RecurringEvent, 0)
	for _, event := range events {
		if recurrence.IsDueOn(event.AnchorDate, event.Frequency, date) {
			due = append(due, event)
		}
	}
	return due
}

// TotalsFor sums the amounts of the events due on date by kind
func TotalsFor(events []*domain.RecurringEvent, date time.Time) DayTotals {
	return totalsOf(DueOn(events, date))
}

// ProjectRange produces per-day forecasts for `days` consecutive days
// starting at start, in ascending date order. Each day is computed
// independently from the same immutable event slice, so re-running the
// projection with the same inputs always yields the same result.
func ProjectRange(events []*domain.RecurringEvent, start time.Time, days int) []DayProjection {
	start = domain.DateOf(start)
	projections := make([]DayProjection, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		due := DueOn(events, date)
		projections = append(projections, DayProjection{
			Date:   date,
			Due:    due,
			Totals: totalsOf(due),
		})
	}
	return projections
}

func totalsOf(due []*domain.RecurringEvent) DayTotals {
	totals := DayTotals{Income: decimal.Zero, Expenses: decimal.Zero, Debts: decimal.Zero}
	for _, event := range due {
		switch event.Kind {
		case domain.EventKindIncome:
			totals.Income = totals.Income.Add(event.Amount)
		case domain.EventKindExpense:
			totals.Expenses = totals.Expenses.Add(event.Amount)
		case domain.EventKindDebtPayment:
			// A zero-amount debt row is due for display but moves no cash.
			if event.Amount.IsPositive() {
				totals.Debts = totals.Debts.Add(event.Amount)
			}
		}
	}
	return totals
}
