package debt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/cashcycle-backend/internal/domain"
)

func monetaryDebt(balance, monthlyInterest int64) domain.DebtState {
	return domain.DebtState{
		RemainingBalance: decimal.NewFromInt(balance),
		Interest: domain.InterestSpec{
			Mode:          domain.InterestMonetary,
			MonthlyAmount: decimal.NewFromInt(monthlyInterest),
		},
	}
}

func TestMonthlyInterest_ZeroBalanceAccruesNothing(t *testing.T) {
	state := monetaryDebt(0, 60)
	assert.True(t, MonthlyInterest(state).IsZero())
}

func TestMonthlyInterest_Monetary(t *testing.T) {
	state := monetaryDebt(1000, 60)
	assert.True(t, MonthlyInterest(state).Equal(decimal.NewFromInt(60)))
}

func TestMonthlyInterest_PercentageMonthly(t *testing.T) {
	state := domain.DebtState{
		RemainingBalance: decimal.NewFromInt(1000),
		Interest: domain.InterestSpec{
			Mode:       domain.InterestPercentage,
			Rate:       decimal.NewFromInt(2),
			RatePeriod: domain.RatePeriodMonthly,
		},
	}

	// 1000 * 2% = 20
	assert.True(t, MonthlyInterest(state).Equal(decimal.NewFromInt(20)))
}

func TestMonthlyInterest_PercentageAnnual(t *testing.T) {
	state := domain.DebtState{
		RemainingBalance: decimal.NewFromInt(1200),
		Interest: domain.InterestSpec{
			Mode:       domain.InterestPercentage,
			Rate:       decimal.NewFromInt(12),
			RatePeriod: domain.RatePeriodAnnual,
		},
	}

	// 1200 * 12% / 12 = 12
	assert.True(t, MonthlyInterest(state).Equal(decimal.NewFromInt(12)))
}

func TestNetMonthlyPayment_NormalizesPaymentFrequency(t *testing.T) {
	state := monetaryDebt(1000, 17)

	// 100 bi-weekly -> 217 monthly, minus 17 interest.
	net := NetMonthlyPayment(decimal.NewFromInt(100), domain.FrequencyBiWeekly, state)
	assert.True(t, net.Equal(decimal.NewFromInt(200)), "got %s", net)
}

func TestProject_PaidOff(t *testing.T) {
	state := monetaryDebt(0, 60)

	// Zero balance wins over everything, even an active payment.
	result := Project(decimal.NewFromInt(50), domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookPaidOff, result.Outlook)
	assert.Nil(t, result.WeeksToPayoff)

	result = Project(decimal.Zero, domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookPaidOff, result.Outlook)
	assert.Nil(t, result.WeeksToPayoff)
}

func TestProject_NotPaying(t *testing.T) {
	state := monetaryDebt(1000, 0)

	result := Project(decimal.Zero, domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookNotPaying, result.Outlook)
	assert.Nil(t, result.WeeksToPayoff)
}

func TestProject_Growing(t *testing.T) {
	state := monetaryDebt(1000, 60)

	// 50/month against 60 interest: net -10, the debt grows.
	result := Project(decimal.NewFromInt(50), domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookGrowing, result.Outlook)
	assert.Nil(t, result.WeeksToPayoff)
	assert.True(t, result.NetMonthlyPayment.Equal(decimal.NewFromInt(-10)), "got %s", result.NetMonthlyPayment)
}

func TestProject_PaymentExactlyCoversInterestIsGrowing(t *testing.T) {
	state := monetaryDebt(1000, 50)

	result := Project(decimal.NewFromInt(50), domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookGrowing, result.Outlook)
	assert.Nil(t, result.WeeksToPayoff)
	assert.True(t, result.NetMonthlyPayment.IsZero())
}

func TestProject_Projected(t *testing.T) {
	state := monetaryDebt(600, 20)

	// Net 80/month: ceil(600/80 * 4.33) = ceil(32.475) = 33 weeks.
	result := Project(decimal.NewFromInt(100), domain.FrequencyMonthly, state)
	assert.Equal(t, OutlookProjected, result.Outlook)
	assert.True(t, result.MonthlyInterest.Equal(decimal.NewFromInt(20)))
	assert.True(t, result.NetMonthlyPayment.Equal(decimal.NewFromInt(80)))
	require.NotNil(t, result.WeeksToPayoff)
	assert.Equal(t, int64(33), *result.WeeksToPayoff)
}

func TestProject_WeeklyPayment(t *testing.T) {
	state := monetaryDebt(1000, 33)

	// 100 weekly -> 433 monthly, net 400: ceil(1000/400 * 4.33) = ceil(10.825) = 11.
	result := Project(decimal.NewFromInt(100), domain.FrequencyWeekly, state)
	assert.Equal(t, OutlookProjected, result.Outlook)
	require.NotNil(t, result.WeeksToPayoff)
	assert.Equal(t, int64(11), *result.WeeksToPayoff)
}

func TestWeeksToPayoff_MatchesProject(t *testing.T) {
	state := monetaryDebt(600, 20)

	weeks := WeeksToPayoff(decimal.NewFromInt(100), domain.FrequencyMonthly, state)
	require.NotNil(t, weeks)
	assert.Equal(t, int64(33), *weeks)

	assert.Nil(t, WeeksToPayoff(decimal.Zero, domain.FrequencyMonthly, state))
}
