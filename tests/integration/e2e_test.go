//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	cashcyclev1 "github.com/simaogato/cashcycle-backend/internal/adapter/grpc/cashcycle/v1"
)

var (
	grpcClient cashcyclev1.CashCycleServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	grpcAddr := getGRPCAddress()
	var err error
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = cashcyclev1.NewCashCycleServiceClient(grpcConn)

	code := m.Run()

	os.Exit(code)
}

func getGRPCAddress() string {
	if addr := os.Getenv("GRPC_ADDR"); addr != "" {
		return addr
	}
	return "localhost:8080"
}

func TestResolveNext_MonthlyClampsToFebruary(t *testing.T) {
	resp, err := grpcClient.ResolveNext(context.Background(), &cashcyclev1.ResolveNextRequest{
		AnchorDate:    "2025-01-31",
		Frequency:     "MONTHLY",
		ReferenceDate: "2025-02-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-02-28", resp.NextDate)
	assert.False(t, resp.IsDueOnReference)
	assert.Equal(t, int64(27), resp.DaysUntil)
}

func TestResolveNext_ReferenceOnOccurrence(t *testing.T) {
	resp, err := grpcClient.ResolveNext(context.Background(), &cashcyclev1.ResolveNextRequest{
		AnchorDate:    "2025-01-06",
		Frequency:     "WEEKLY",
		ReferenceDate: "2025-01-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-20", resp.NextDate)
	assert.True(t, resp.IsDueOnReference)
	assert.Equal(t, int64(0), resp.DaysUntil)
}

func TestResolveNext_InvalidFrequency(t *testing.T) {
	_, err := grpcClient.ResolveNext(context.Background(), &cashcyclev1.ResolveNextRequest{
		AnchorDate:    "2025-01-06",
		Frequency:     "DAILY",
		ReferenceDate: "2025-01-20",
	})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestCheckDue(t *testing.T) {
	resp, err := grpcClient.CheckDue(context.Background(), &cashcyclev1.CheckDueRequest{
		AnchorDate: "2025-01-31",
		Frequency:  "MONTHLY",
		TargetDate: "2025-02-28",
	})
	require.NoError(t, err)
	assert.True(t, resp.Due)

	resp, err = grpcClient.CheckDue(context.Background(), &cashcyclev1.CheckDueRequest{
		AnchorDate: "2025-01-31",
		Frequency:  "MONTHLY",
		TargetDate: "2025-03-01",
	})
	require.NoError(t, err)
	assert.False(t, resp.Due)
}

func TestProjectCalendar_WeekAhead(t *testing.T) {
	salaryID := uuid.NewString()
	loanID := uuid.NewString()

	resp, err := grpcClient.ProjectCalendar(context.Background(), &cashcyclev1.ProjectCalendarRequest{
		StartDate: "2025-01-06",
		Days:      7,
		Events: []*cashcyclev1.RecurringEvent{
			{
				Id:          salaryID,
				Description: "Salary",
				AnchorDate:  "2025-01-10",
				Frequency:   "MONTHLY",
				Amount:      "3000",
				Kind:        "INCOME",
			},
			{
				Id:          loanID,
				Description: "Paused loan",
				AnchorDate:  "2025-01-06",
				Frequency:   "WEEKLY",
				Amount:      "0",
				Kind:        "DEBT_PAYMENT",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	monday := resp.Days[0]
	assert.Equal(t, "2025-01-06", monday.Date)
	assert.Equal(t, []string{loanID}, monday.DueEventIds, "paused loan is due for display")
	assert.Equal(t, "0", monday.Debts, "paused loan moves no cash")

	friday := resp.Days[4]
	assert.Equal(t, "2025-01-10", friday.Date)
	assert.Equal(t, []string{salaryID}, friday.DueEventIds)
	assert.Equal(t, "3000", friday.Income)
}

func TestProjectCalendar_RejectsNegativeAmount(t *testing.T) {
	_, err := grpcClient.ProjectCalendar(context.Background(), &cashcyclev1.ProjectCalendarRequest{
		StartDate: "2025-01-06",
		Days:      7,
		Events: []*cashcyclev1.RecurringEvent{
			{
				Id:         uuid.NewString(),
				AnchorDate: "2025-01-06",
				Frequency:  "WEEKLY",
				Amount:     "-10",
				Kind:       "EXPENSE",
			},
		},
	})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestNormalizeAmount(t *testing.T) {
	resp, err := grpcClient.NormalizeAmount(context.Background(), &cashcyclev1.NormalizeAmountRequest{
		Amount:    "100",
		Frequency: "BI_WEEKLY",
	})
	require.NoError(t, err)

	assert.Equal(t, "50", resp.Weekly)
	assert.Equal(t, "217", resp.Monthly)
}

func TestProjectDebt_Projected(t *testing.T) {
	resp, err := grpcClient.ProjectDebt(context.Background(), &cashcyclev1.ProjectDebtRequest{
		AmountPerPeriod:       "100",
		Frequency:             "MONTHLY",
		RemainingBalance:      "600",
		InterestMode:          "MONETARY",
		MonthlyInterestAmount: "20",
	})
	require.NoError(t, err)

	assert.Equal(t, "20", resp.MonthlyInterest)
	assert.Equal(t, "80", resp.NetMonthlyPayment)
	require.True(t, resp.HasWeeksToPayoff)
	assert.Equal(t, int64(33), resp.WeeksToPayoff)
	assert.Equal(t, "PROJECTED", resp.Outlook)
}

func TestProjectDebt_GrowingAndNotPayingAndPaidOff(t *testing.T) {
	growing, err := grpcClient.ProjectDebt(context.Background(), &cashcyclev1.ProjectDebtRequest{
		AmountPerPeriod:       "50",
		Frequency:             "MONTHLY",
		RemainingBalance:      "1000",
		InterestMode:          "MONETARY",
		MonthlyInterestAmount: "60",
	})
	require.NoError(t, err)
	assert.False(t, growing.HasWeeksToPayoff)
	assert.Equal(t, "-10", growing.NetMonthlyPayment)
	assert.Equal(t, "GROWING", growing.Outlook)

	notPaying, err := grpcClient.ProjectDebt(context.Background(), &cashcyclev1.ProjectDebtRequest{
		AmountPerPeriod:       "0",
		Frequency:             "MONTHLY",
		RemainingBalance:      "1000",
		InterestMode:          "MONETARY",
		MonthlyInterestAmount: "60",
	})
	require.NoError(t, err)
	assert.False(t, notPaying.HasWeeksToPayoff)
	assert.Equal(t, "NOT_PAYING", notPaying.Outlook)

	paidOff, err := grpcClient.ProjectDebt(context.Background(), &cashcyclev1.ProjectDebtRequest{
		AmountPerPeriod:       "100",
		Frequency:             "MONTHLY",
		RemainingBalance:      "0",
		InterestMode:          "MONETARY",
		MonthlyInterestAmount: "60",
	})
	require.NoError(t, err)
	assert.False(t, paidOff.HasWeeksToPayoff)
	assert.Equal(t, "PAID_OFF", paidOff.Outlook)
}
