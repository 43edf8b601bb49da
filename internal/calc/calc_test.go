package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundInterest_ContributionsOnly(t *testing.T) {
	g := CompoundInterest(0, 12, 1, 1000)
	require.Equal(t, 12000.0, g.TotalInvested)
	require.Greater(t, g.FinalAmount, 12000.0)
	require.InDelta(t, 12682.50, g.FinalAmount, 0.01)
	require.InDelta(t, g.FinalAmount-g.TotalInvested, g.Gain, 0.01)
}

func TestCompoundInterest_Capital(t *testing.T) {
	g := CompoundInterest(100000, 12, 5, 0)
	require.InDelta(t, 181669.67, g.FinalAmount, 0.01)
	require.Equal(t, 100000.0, g.TotalInvested)
	require.InDelta(t, 81.67, g.GainPct, 0.001)
}

func TestCompoundInterest_TruncatesMonths(t *testing.T) {
	// 0.09 years is 1.08 months, truncated to a single month
	g := CompoundInterest(1000, 12, 0.09, 0)
	require.Equal(t, 1010.0, g.FinalAmount)
}

func TestCompoundInterest_ZeroEverything(t *testing.T) {
	g := CompoundInterest(0, 12, 1, 0)
	require.Zero(t, g.FinalAmount)
	require.Zero(t, g.GainPct)
}

func TestLoanInstallment(t *testing.T) {
	t.Run("zero rate is a flat division", func(t *testing.T) {
		l := LoanInstallment(12000, 0, 12)
		require.Equal(t, 1000.0, l.Installment)
		require.Equal(t, 0.0, l.TotalInterest)
		require.Equal(t, 12000.0, l.TotalPaid)
	})

	t.Run("french system", func(t *testing.T) {
		l := LoanInstallment(100000, 12, 12)
		require.InDelta(t, 8884.88, l.Installment, 0.01)
		require.InDelta(t, 6618.55, l.TotalInterest, 0.05)
	})

	t.Run("non positive months", func(t *testing.T) {
		l := LoanInstallment(500, 0, 0)
		require.Equal(t, 500.0, l.Installment)
	})
}

func TestSavingsPlan(t *testing.T) {
	p := SavingsPlan(120000, 12, 0)
	require.Equal(t, 10000.0, p.Monthly)
	require.Empty(t, p.Feasibility)

	cases := []struct {
		income float64
		want   string
	}{
		{100000, FeasibilityExcellent}, // 10%
		{40000, FeasibilityGood},       // 25%
		{30000, FeasibilityChallenging},
		{20000, FeasibilityVeryHard},
	}
	for _, c := range cases {
		p := SavingsPlan(120000, 12, c.income)
		assert.Equal(t, c.want, p.Feasibility, "income %v", c.income)
	}
}

func TestTimeToPayoff(t *testing.T) {
	t.Run("zero payment is a domain error", func(t *testing.T) {
		_, err := TimeToPayoff(1000, 0, 0)
		require.ErrorIs(t, err, ErrNonPositivePayment)
		require.Equal(t, "El pago mensual debe ser mayor a 0", err.Error())
	})

	t.Run("negative payment", func(t *testing.T) {
		_, err := TimeToPayoff(1000, -5, 10)
		require.True(t, errors.Is(err, ErrNonPositivePayment))
	})

	t.Run("payment below interest", func(t *testing.T) {
		_, err := TimeToPayoff(100000, 1000, 12)
		require.ErrorIs(t, err, ErrPaymentBelowInterest)
	})

	t.Run("flat", func(t *testing.T) {
		p, err := TimeToPayoff(120000, 10000, 0)
		require.NoError(t, err)
		require.Equal(t, 12, p.Months)
		require.Equal(t, 1.0, p.Years)
		require.Zero(t, p.TotalInterest)
	})

	t.Run("flat rounds up", func(t *testing.T) {
		p, err := TimeToPayoff(30000, 7000, 0)
		require.NoError(t, err)
		require.Equal(t, 5, p.Months)
	})

	t.Run("with interest", func(t *testing.T) {
		p, err := TimeToPayoff(10000, 1000, 12)
		require.NoError(t, err)
		require.Equal(t, 11, p.Months)
		require.Equal(t, 11000.0, p.TotalPaid)
		require.Equal(t, 1000.0, p.TotalInterest)
	})
}

func TestBudgetSplit(t *testing.T) {
	s := BudgetSplit(100000)
	require.Equal(t, 50000.0, s.Needs)
	require.Equal(t, 30000.0, s.Wants)
	require.Equal(t, 20000.0, s.Savings)
	require.Equal(t, s.Income, s.Needs+s.Wants+s.Savings)
}

func TestCompareInvestments_KeepsTableOrder(t *testing.T) {
	rows := CompareInvestments(100000, 5, nil)
	require.Len(t, rows, len(DefaultInstruments))
	for i, r := range rows {
		require.Equal(t, DefaultInstruments[i].Name, r.Name)
		require.Greater(t, r.FinalAmount, 100000.0)
	}
	require.Less(t, rows[0].Gain, rows[len(rows)-1].Gain)

	custom := []Instrument{{Name: "B", Rate: 20, Risk: "x"}, {Name: "A", Rate: 1, Risk: "y"}}
	rows = CompareInvestments(1000, 1, custom)
	require.Equal(t, "B", rows[0].Name)
	require.Equal(t, "A", rows[1].Name)
}

func TestRetirementEstimate(t *testing.T) {
	r, err := RetirementEstimate(30, 65, 10000, 12, 0.04)
	require.NoError(t, err)
	require.Equal(t, 35, r.Years)
	require.Equal(t, 4200000.0, r.TotalSaved)
	require.Greater(t, r.Capital, r.TotalSaved)
	require.InDelta(t, r.Capital*0.04/12, r.MonthlyIncome, 0.01)

	_, err = RetirementEstimate(70, 65, 10000, 12, 0.04)
	require.ErrorIs(t, err, ErrInvalidRetirementAge)
}
