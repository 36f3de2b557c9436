package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cashcyclev1 "github.com/simaogato/cashcycle-backend/internal/adapter/grpc/cashcycle/v1"
	"github.com/simaogato/cashcycle-backend/internal/domain"
	"github.com/simaogato/cashcycle-backend/internal/usecase/debt"
	"github.com/simaogato/cashcycle-backend/internal/usecase/forecast"
	"github.com/simaogato/cashcycle-backend/internal/usecase/normalize"
	"github.com/simaogato/cashcycle-backend/internal/usecase/recurrence"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// maxProjectionDays caps a single calendar projection; a month grid needs at
// most 42 cells (6 rendered weeks), a year view 366.
const maxProjectionDays = 366

// Server implements the CashCycleService gRPC server
type Server struct {
	cashcyclev1.UnimplementedCashCycleServiceServer
}

// NewServer creates a new gRPC server instance
func NewServer() *Server {
	return &Server{}
}

// ResolveNext handles the ResolveNext RPC
func (s *Server) ResolveNext(ctx context.Context, req *cashcyclev1.ResolveNextRequest) (*cashcyclev1.ResolveNextResponse, error) {
	anchor, err := parseDate(req.AnchorDate, "anchor_date")
	if err != nil {
		return nil, err
	}

	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, mapError(err)
	}

	reference, err := parseDate(req.ReferenceDate, "reference_date")
	if err != nil {
		return nil, err
	}

	result := recurrence.Project(anchor, frequency, reference)

	return &cashcyclev1.ResolveNextResponse{
		NextDate:         result.NextDueDate.Format(dateLayout),
		IsDueOnReference: result.IsDueToday,
		DaysUntil:        int64(result.DaysUntil),
	}, nil
}

// CheckDue handles the CheckDue RPC
func (s *Server) CheckDue(ctx context.Context, req *cashcyclev1.CheckDueRequest) (*cashcyclev1.CheckDueResponse, error) {
	anchor, err := parseDate(req.AnchorDate, "anchor_date")
	if err != nil {
		return nil, err
	}

	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, mapError(err)
	}

	target, err := parseDate(req.TargetDate, "target_date")
	if err != nil {
		return nil, err
	}

	return &cashcyclev1.CheckDueResponse{
		Due: recurrence.IsDueOn(anchor, frequency, target),
	}, nil
}

// ProjectCalendar handles the ProjectCalendar RPC
func (s *Server) ProjectCalendar(ctx context.Context, req *cashcyclev1.ProjectCalendarRequest) (*cashcyclev1.ProjectCalendarResponse, error) {
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	if req.Days == 0 || req.Days > maxProjectionDays {
		return nil, status.Errorf(codes.InvalidArgument, "days must be between 1 and %d", maxProjectionDays)
	}

	events := make([]*domain.RecurringEvent, 0, len(req.Events))
	for _, protoEvent := range req.Events {
		event, err := eventFromProto(protoEvent)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	projections := forecast.ProjectRange(events, start, int(req.Days))

	days := make([]*cashcyclev1.DayForecast, 0, len(projections))
	for _, projection := range projections {
		dueIDs := make([]string, 0, len(projection.Due))
		for _, event := range projection.Due {
			dueIDs = append(dueIDs, event.ID.String())
		}
		days = append(days, &cashcyclev1.DayForecast{
			Date:        projection.Date.Format(dateLayout),
			DueEventIds: dueIDs,
			Income:      projection.Totals.Income.String(),
			Expenses:    projection.Totals.Expenses.String(),
			Debts:       projection.Totals.Debts.String(),
		})
	}

	return &cashcyclev1.ProjectCalendarResponse{Days: days}, nil
}

// NormalizeAmount handles the NormalizeAmount RPC
func (s *Server) NormalizeAmount(ctx context.Context, req *cashcyclev1.NormalizeAmountRequest) (*cashcyclev1.NormalizeAmountResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, mapError(err)
	}

	return &cashcyclev1.NormalizeAmountResponse{
		Weekly:  normalize.ToWeekly(amount, frequency).String(),
		Monthly: normalize.ToMonthly(amount, frequency).String(),
	}, nil
}

// ProjectDebt handles the ProjectDebt RPC
func (s *Server) ProjectDebt(ctx context.Context, req *cashcyclev1.ProjectDebtRequest) (*cashcyclev1.ProjectDebtResponse, error) {
	amount, err := decimal.NewFromString(req.AmountPerPeriod)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount_per_period format: %v", err)
	}
	if amount.IsNegative() {
		return nil, status.Error(codes.InvalidArgument, "amount_per_period must not be negative")
	}

	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, mapError(err)
	}

	state, err := debtStateFromProto(req)
	if err != nil {
		return nil, err
	}

	result := debt.Project(amount, frequency, *state)

	response := &cashcyclev1.ProjectDebtResponse{
		MonthlyInterest:   result.MonthlyInterest.String(),
		NetMonthlyPayment: result.NetMonthlyPayment.String(),
		Outlook:           string(result.Outlook),
	}
	if result.WeeksToPayoff != nil {
		response.HasWeeksToPayoff = true
		response.WeeksToPayoff = *result.WeeksToPayoff
	}
	return response, nil
}

// eventFromProto converts and validates a wire event
func eventFromProto(protoEvent *cashcyclev1.RecurringEvent) (*domain.RecurringEvent, error) {
	id, err := uuid.Parse(protoEvent.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid event id format: %v", err)
	}

	anchor, err := parseDate(protoEvent.AnchorDate, "anchor_date")
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(protoEvent.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	event := &domain.RecurringEvent{
		ID:          id,
		Description: protoEvent.Description,
		AnchorDate:  anchor,
		Frequency:   domain.Frequency(protoEvent.Frequency),
		Amount:      amount,
		Kind:        domain.EventKind(protoEvent.Kind),
	}
	if err := event.Validate(); err != nil {
		return nil, mapError(err)
	}
	return event, nil
}

// debtStateFromProto converts and validates the debt fields of a request
func debtStateFromProto(req *cashcyclev1.ProjectDebtRequest) (*domain.DebtState, error) {
	balance, err := decimal.NewFromString(req.RemainingBalance)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid remaining_balance format: %v", err)
	}

	mode, err := domain.ParseInterestMode(req.InterestMode)
	if err != nil {
		return nil, mapError(err)
	}

	state := domain.DebtState{
		RemainingBalance: balance,
		Interest:         domain.InterestSpec{Mode: mode},
	}

	switch mode {
	case domain.InterestMonetary:
		monthlyAmount := decimal.Zero
		if req.MonthlyInterestAmount != "" {
			monthlyAmount, err = decimal.NewFromString(req.MonthlyInterestAmount)
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_interest_amount format: %v", err)
			}
		}
		state.Interest.MonthlyAmount = monthlyAmount

	case domain.InterestPercentage:
		rate, err := decimal.NewFromString(req.InterestRate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid interest_rate format: %v", err)
		}
		period, err := domain.ParseRatePeriod(req.RatePeriod)
		if err != nil {
			return nil, mapError(err)
		}
		state.Interest.Rate = rate
		state.Interest.RatePeriod = period
	}

	if err := state.Validate(); err != nil {
		return nil, mapError(err)
	}
	return &state, nil
}

// parseDate parses a YYYY-MM-DD wire date into a UTC-midnight calendar date
func parseDate(value, field string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s format (want YYYY-MM-DD): %v", field, err)
	}
	return date, nil
}

// mapError maps domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
