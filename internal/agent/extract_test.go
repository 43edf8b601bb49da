package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"50000":     50000,
		"50.000":    50000,
		"1.000.000": 1e6,
		"1.500,50":  1500.5,
		"12,5":      12.5,
		"12.50":     12.5,
	}
	for in, want := range cases {
		got, ok := parseNumber(in)
		require.True(t, ok, in)
		require.InDelta(t, want, got, 1e-9, in)
	}
}

func TestNumbers_UnitsAndMultipliers(t *testing.T) {
	values := func(nums []number) []float64 {
		out := make([]float64, 0, len(nums))
		for _, n := range nums {
			out = append(out, n.value)
		}
		return out
	}
	units := func(nums []number) []unit {
		out := make([]unit, 0, len(nums))
		for _, n := range nums {
			out = append(out, n.unit)
		}
		return out
	}

	got := numbers("cobro 350 lucas")
	require.Equal(t, []float64{350000}, values(got))

	got = numbers("100000 por 5 anos al 12%")
	require.Equal(t, []float64{100000, 5, 12}, values(got))
	require.Equal(t, []unit{unitNone, unitYears, unitPercent}, units(got))

	got = numbers("2 palos en 18 meses")
	require.Equal(t, []float64{2e6, 18}, values(got))
	require.Equal(t, []unit{unitNone, unitMonths}, units(got))

	got = numbers("1,5 millones")
	require.Equal(t, []float64{1.5e6}, values(got))

	require.Empty(t, numbers("sin cifras"))
}

func TestHorizonMonths(t *testing.T) {
	m, ok := horizonMonths(numbers("2 anos"))
	require.True(t, ok)
	require.Equal(t, 24, m)

	for in, want := range map[string]int{"1,5 anos": 18, "en 2,5 anos": 30, "0,5 anos": 6} {
		m, ok = horizonMonths(numbers(in))
		require.True(t, ok, in)
		require.Equal(t, want, m, in)
	}

	m, ok = horizonMonths(numbers("18"))
	require.True(t, ok)
	require.Equal(t, 18, m)

	_, ok = horizonMonths(numbers("no se"))
	require.False(t, ok)
}

func TestRateAndContribution(t *testing.T) {
	text := "tasa 15% y aporte 10000"

	r, rs, ok := rateIn(text)
	require.True(t, ok)
	require.Equal(t, 15.0, r)

	c, cs, ok := contributionIn(text)
	require.True(t, ok)
	require.Equal(t, 10000.0, c)

	for _, n := range numbers(text) {
		require.True(t, rs.covers(n) || cs.covers(n))
	}

	r, _, ok = rateIn("a una tasa de 9,5 anual")
	require.True(t, ok)
	require.Equal(t, 9.5, r)

	_, _, ok = rateIn("sin tasa")
	require.False(t, ok)
}

func TestInvestmentFigures(t *testing.T) {
	none := func(number) bool { return false }

	text := "invertir 150000 en 2 anos"
	amount, months := investmentFigures(text, numbers(text), none)
	require.NotNil(t, amount)
	require.NotNil(t, months)
	require.Equal(t, 150000.0, *amount)
	require.Equal(t, 24, *months)

	text = "invertir 150000 en 1,5 anos"
	amount, months = investmentFigures(text, numbers(text), none)
	require.Equal(t, 150000.0, *amount)
	require.Equal(t, 18, *months)

	// The horizon is removed by position, so an equal amount survives.
	text = "invertir 12 en 12 meses"
	amount, months = investmentFigures(text, numbers(text), none)
	require.NotNil(t, amount)
	require.Equal(t, 12.0, *amount)
	require.Equal(t, 12, *months)

	text = "quiero invertir"
	amount, months = investmentFigures(text, numbers(text), none)
	require.Nil(t, amount)
	require.Nil(t, months)
}

func TestConfirms(t *testing.T) {
	require.True(t, confirms("dale"))
	require.True(t, confirms("si, simula"))
	require.True(t, confirms("ok!"))
	require.False(t, confirms("sin aporte"))
	require.False(t, confirms("no"))
}

func TestFormatting(t *testing.T) {
	require.Equal(t, "$33333", money(33333.33))
	require.Equal(t, "12", rate(12))
	require.Equal(t, "12.5", rate(12.5))
	require.Equal(t, "0.17", rate(1.0/6))
}
