// Package calc implements the pure financial calculators used by the
// dialogue handlers. Rates are annual percentages (12 means 12%).
package calc

import (
	"errors"
	"math"
)

var (
	ErrNonPositivePayment   = errors.New("El pago mensual debe ser mayor a 0")
	ErrPaymentBelowInterest = errors.New("El pago mensual no cubre ni los intereses. Nunca terminarás de pagar.")
	ErrInvalidRetirementAge = errors.New("Ya pasaste la edad de jubilación o la edad es inválida")
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func monthlyRate(annual float64) float64 { return annual / 100 / 12 }

// Growth is the outcome of a compound interest simulation.
type Growth struct {
	FinalAmount   float64
	TotalInvested float64
	Gain          float64
	GainPct       float64
}

// CompoundInterest compounds capital monthly for int(years*12) months,
// adding monthly at the end of every month.
func CompoundInterest(capital, annualRate, years, monthly float64) Growth {
	r := monthlyRate(annualRate)
	months := int(years * 12)

	amount := capital
	invested := capital
	for i := 0; i < months; i++ {
		amount = amount*(1+r) + monthly
		invested += monthly
	}

	gain := amount - invested
	pct := 0.0
	if invested != 0 {
		pct = gain / invested * 100
	}
	return Growth{
		FinalAmount:   round2(amount),
		TotalInvested: round2(invested),
		Gain:          round2(gain),
		GainPct:       round2(pct),
	}
}

// Loan is a French-system amortized loan.
type Loan struct {
	Installment   float64
	TotalPaid     float64
	TotalInterest float64
}

// LoanInstallment computes the fixed monthly installment. A zero rate
// degenerates to a flat division.
func LoanInstallment(amount, annualRate float64, months int) Loan {
	if months <= 0 {
		months = 1
	}
	r := monthlyRate(annualRate)
	n := float64(months)

	var installment float64
	if r == 0 {
		installment = amount / n
	} else {
		f := math.Pow(1+r, n)
		installment = amount * (r * f) / (f - 1)
	}
	total := installment * n
	return Loan{
		Installment:   round2(installment),
		TotalPaid:     round2(total),
		TotalInterest: round2(total - amount),
	}
}

// Feasibility bands for a savings plan measured against monthly income.
const (
	FeasibilityExcellent   = "Excelente"
	FeasibilityGood        = "Bueno"
	FeasibilityChallenging = "Desafiante"
	FeasibilityVeryHard    = "Muy difícil"
)

// Plan is a savings plan towards a goal.
type Plan struct {
	Monthly float64
	Goal    float64
	Months  int
	// IncomePct and Feasibility are only set when an income was given.
	IncomePct   float64
	Feasibility string
}

// SavingsPlan divides goal across months and, when income is positive,
// rates how hard the monthly figure is.
func SavingsPlan(goal float64, months int, income float64) Plan {
	if months <= 0 {
		months = 1
	}
	monthly := goal / float64(months)
	p := Plan{Monthly: round2(monthly), Goal: goal, Months: months}
	if income > 0 {
		pct := monthly / income * 100
		p.IncomePct = round2(pct)
		switch {
		case pct < 20:
			p.Feasibility = FeasibilityExcellent
		case pct < 30:
			p.Feasibility = FeasibilityGood
		case pct < 40:
			p.Feasibility = FeasibilityChallenging
		default:
			p.Feasibility = FeasibilityVeryHard
		}
	}
	return p
}

// Payoff describes how long a debt takes to pay off.
type Payoff struct {
	Months        int
	Years         float64
	TotalPaid     float64
	TotalInterest float64
}

// TimeToPayoff returns the number of monthly payments needed to cancel debt.
// It fails with ErrNonPositivePayment or ErrPaymentBelowInterest instead of
// returning a meaningless month count.
func TimeToPayoff(debt, payment, annualRate float64) (Payoff, error) {
	if payment <= 0 {
		return Payoff{}, ErrNonPositivePayment
	}
	r := monthlyRate(annualRate)

	var (
		months   int
		total    float64
		interest float64
	)
	if r == 0 {
		months = int(math.Ceil(debt / payment))
		total = debt
	} else {
		if payment <= debt*r {
			return Payoff{}, ErrPaymentBelowInterest
		}
		n := math.Log(payment/(payment-debt*r)) / math.Log(1+r)
		months = int(math.Ceil(n))
		total = payment * float64(months)
		interest = total - debt
	}
	return Payoff{
		Months:        months,
		Years:         round1(float64(months) / 12),
		TotalPaid:     round2(total),
		TotalInterest: round2(interest),
	}, nil
}

// Split is a 50/30/20 budget.
type Split struct {
	Income  float64
	Needs   float64
	Wants   float64
	Savings float64
}

// BudgetSplit applies the 50/30/20 rule to a monthly income.
func BudgetSplit(income float64) Split {
	return Split{
		Income:  income,
		Needs:   round2(income * 0.50),
		Wants:   round2(income * 0.30),
		Savings: round2(income * 0.20),
	}
}
