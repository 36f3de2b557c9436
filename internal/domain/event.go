package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks validation failures at the construction boundary.
// Amount and balance sign rules are enforced here, never clamped deeper in
// the math.
var ErrInvalidInput = errors.New("invalid input")

// EventKind classifies the cash-flow direction of a recurring event
type EventKind string

const (
	EventKindIncome      EventKind = "INCOME"
	EventKindExpense     EventKind = "EXPENSE"
	EventKindDebtPayment EventKind = "DEBT_PAYMENT"
)

// Valid reports whether k is one of the known event kinds
func (k EventKind) Valid() bool {
	switch k {
	case EventKindIncome, EventKindExpense, EventKindDebtPayment:
		return true
	}
	return false
}

// ParseEventKind converts a wire string into an EventKind
func ParseEventKind(s string) (EventKind, error) {
	k := EventKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, s)
	}
	return k, nil
}

// RecurringEvent is the recurrence-relevant slice of a transaction.
// The engine treats it as an immutable value passed in per call: it is owned
// by the caller's persistence layer and is never cached or mutated here.
type RecurringEvent struct {
	ID          uuid.UUID
	Description string
	AnchorDate  time.Time // calendar date at UTC midnight
	Frequency   Frequency
	Amount      decimal.Decimal // per occurrence, always >= 0; Kind carries direction
	Kind        EventKind
}

// Validate ensures the event adheres to domain rules
// Returns an error if validation fails
func (e *RecurringEvent) Validate() error {
	if e.AnchorDate.IsZero() {
		return fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}
	if !e.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, e.Frequency)
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, e.Kind)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}
