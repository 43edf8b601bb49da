package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rAmIro-89/finance-assistant-bot/internal/calc"
	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

var (
	retirementTerms = []string{"jubilacion", "jubilarme", "jubilar", "retiro", "retirarme"}
	compoundTerms   = []string{"interes compuesto", "invertir", "invierto", "rendimiento", "cuanto ganaria"}
	loanCalcTerms   = []string{"cuota", "prestamo", "financiar"}
	payoffTerms     = []string{"pagar deuda", "cuanto tiempo", "salir de deuda"}
	compareTerms    = []string{"comparar", "opciones", "mejor inversion"}
)

// calcArgs hands out the figures of an utterance. A figure followed by "%"
// is a rate, one followed by a month or year word is the horizon, and the
// rest are consumed in order.
type calcArgs struct {
	positional []float64
	rates      []float64
	months     float64 // 0 when no horizon was written
	total      int
}

func newCalcArgs(nums []number, withUnits bool) *calcArgs {
	a := &calcArgs{total: len(nums)}
	for _, n := range nums {
		switch {
		case n.unit == unitPercent:
			a.rates = append(a.rates, n.value)
		case withUnits && n.unit == unitMonths && a.months == 0:
			a.months = n.value
		case withUnits && n.unit == unitYears && a.months == 0:
			a.months = n.value * 12
		default:
			a.positional = append(a.positional, n.value)
		}
	}
	return a
}

func (a *calcArgs) next() (float64, bool) {
	if len(a.positional) == 0 {
		return 0, false
	}
	v := a.positional[0]
	a.positional = a.positional[1:]
	return v, true
}

func (a *calcArgs) nextOr(def float64) float64 {
	if v, ok := a.next(); ok {
		return v
	}
	return def
}

func (a *calcArgs) rate(def float64) float64 {
	if len(a.rates) > 0 {
		return a.rates[0]
	}
	return a.nextOr(def)
}

func (a *calcArgs) years(def float64) float64 {
	if a.months > 0 {
		return a.months / 12
	}
	return a.nextOr(def)
}

func (a *calcArgs) monthCount(def int) int {
	if a.months > 0 {
		return int(a.months)
	}
	if v, ok := a.next(); ok {
		return int(v)
	}
	return def
}

func (e *Engine) handleCalculator(_ context.Context, t *turn) string {
	c := e.cfg.Calculator
	has := func(terms []string) bool { return textnorm.HasAnyTerm(t.text, terms) }

	switch {
	case has(retirementTerms):
		if reply, ok := e.retirementReply(newCalcArgs(t.nums, false)); ok {
			return reply
		}
	case has(compareTerms):
		a := newCalcArgs(t.nums, true)
		if amount, ok := a.next(); ok {
			years := a.years(c.DefaultYears)
			if years > float64(c.MaxYears) {
				return e.horizonTooLong()
			}
			return e.comparisonReply(amount, int(years))
		}
	case has(compoundTerms):
		a := newCalcArgs(t.nums, true)
		capital, ok := a.next()
		if ok && a.total >= 2 {
			years := a.years(c.DefaultYears)
			if years > float64(c.MaxYears) {
				return e.horizonTooLong()
			}
			r := a.rate(e.cfg.Investment.DefaultRate)
			monthly := a.nextOr(0)
			g := calc.CompoundInterest(capital, r, years, monthly)
			return "📊 Simulación de Inversión:\n\n" +
				fmt.Sprintf("💰 Capital inicial: %s\n", money(capital)) +
				fmt.Sprintf("📅 Plazo: %s años\n", rate(years)) +
				fmt.Sprintf("📈 Tasa: %s%% anual\n", rate(r)) +
				fmt.Sprintf("💸 Aporte mensual: %s\n\n", money(monthly)) +
				"🎯 RESULTADO:\n" +
				fmt.Sprintf("• Total invertido: %s\n", money(g.TotalInvested)) +
				fmt.Sprintf("• Monto final: %s\n", money(g.FinalAmount)) +
				fmt.Sprintf("• Ganancia: %s (%s%%)\n\n", money(g.Gain), rate(g.GainPct)) +
				"💡 Tip: El interés compuesto es tu mejor aliado a largo plazo!"
		}
	case has(loanCalcTerms):
		a := newCalcArgs(t.nums, true)
		amount, ok := a.next()
		if ok && a.total >= 2 {
			months := a.monthCount(c.DefaultLoanMonths)
			r := a.rate(c.DefaultLoanRate)
			l := calc.LoanInstallment(amount, r, months)
			return "📊 Simulación de Préstamo:\n\n" +
				fmt.Sprintf("💰 Monto solicitado: %s\n", money(amount)) +
				fmt.Sprintf("📅 Plazo: %d meses (%.1f años)\n", months, float64(months)/12) +
				fmt.Sprintf("📈 Tasa: %s%% anual\n\n", rate(r)) +
				"🎯 RESULTADO:\n" +
				fmt.Sprintf("• Cuota mensual: %s\n", money(l.Installment)) +
				fmt.Sprintf("• Total a pagar: %s\n", money(l.TotalPaid)) +
				fmt.Sprintf("• Intereses: %s\n\n", money(l.TotalInterest)) +
				fmt.Sprintf("⚠️ Los intereses representan el %.1f%% del préstamo.\n", l.TotalInterest/amount*100) +
				"💡 Tip: Si puedes pagar más rápido, pagarás menos intereses."
		}
	case has(payoffTerms):
		a := newCalcArgs(t.nums, true)
		debt, ok1 := a.next()
		payment, ok2 := a.next()
		if ok1 && ok2 {
			r := a.rate(0)
			p, err := calc.TimeToPayoff(debt, payment, r)
			if err != nil {
				return "⚠️ " + err.Error()
			}
			return "📊 Plan de Pago de Deuda:\n\n" +
				fmt.Sprintf("💳 Deuda actual: %s\n", money(debt)) +
				fmt.Sprintf("💸 Pago mensual: %s\n", money(payment)) +
				fmt.Sprintf("📈 Interés: %s%% anual\n\n", rate(r)) +
				"🎯 RESULTADO:\n" +
				fmt.Sprintf("• Tiempo: %d meses (%s años)\n", p.Months, rate(p.Years)) +
				fmt.Sprintf("• Total a pagar: %s\n", money(p.TotalPaid)) +
				fmt.Sprintf("• Intereses: %s\n\n", money(p.TotalInterest)) +
				fmt.Sprintf("💡 Tip: Si pagas %s/mes, terminarías en %d meses!", money(payment*1.5), int(float64(p.Months)*0.67))
		}
	}
	return calculatorMenu
}

func (e *Engine) horizonTooLong() string {
	return fmt.Sprintf("⚠️ El plazo máximo es de %d años. Probá con un plazo menor.", e.cfg.Calculator.MaxYears)
}

func (e *Engine) comparisonReply(amount float64, years int) string {
	rows := calc.CompareInvestments(amount, years, e.cfg.Instruments)
	if top := e.cfg.Calculator.CompareTop; top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	var b strings.Builder
	b.WriteString("📊 Comparación de Inversiones:\n\n")
	fmt.Fprintf(&b, "💰 Monto: %s por %d años\n\n", money(amount), years)
	for _, r := range rows {
		fmt.Fprintf(&b, "• %s (%s):\n", r.Name, r.Risk)
		fmt.Fprintf(&b, "  Ganancia: %s (%s%% anual)\n", money(r.Gain), rate(r.Rate))
		fmt.Fprintf(&b, "  Total: %s\n\n", money(r.FinalAmount))
	}
	b.WriteString("💡 Recuerda: Mayor rendimiento = Mayor riesgo")
	return b.String()
}

// retirementReply reads age, retirement age and monthly saving in that
// order; the rate is optional.
func (e *Engine) retirementReply(a *calcArgs) (string, bool) {
	if len(a.positional) < 3 {
		return "", false
	}
	age, _ := a.next()
	retireAge, _ := a.next()
	monthly, _ := a.next()
	r := a.rate(e.cfg.Retirement.DefaultRate)
	if retireAge-age > float64(e.cfg.Calculator.MaxYears) {
		return e.horizonTooLong(), true
	}

	est, err := calc.RetirementEstimate(int(age), int(retireAge), monthly, r, e.cfg.Retirement.SafeWithdrawal)
	if err != nil {
		return "⚠️ " + err.Error(), true
	}
	return "🏖️ Estimación de Jubilación:\n\n" +
		fmt.Sprintf("👤 Edad actual: %d años\n", int(age)) +
		fmt.Sprintf("🎯 Edad de retiro: %d años\n", int(retireAge)) +
		fmt.Sprintf("💸 Ahorro mensual: %s\n", money(monthly)) +
		fmt.Sprintf("📈 Tasa: %s%% anual\n\n", rate(r)) +
		"🎯 RESULTADO:\n" +
		fmt.Sprintf("• Años de ahorro: %d\n", est.Years) +
		fmt.Sprintf("• Total aportado: %s\n", money(est.TotalSaved)) +
		fmt.Sprintf("• Capital final: %s\n", money(est.Capital)) +
		fmt.Sprintf("• Intereses ganados: %s\n", money(est.InterestGain)) +
		fmt.Sprintf("• Retiro mensual (regla del %s%%): %s\n\n", rate(est.WithdrawalRatio*100), money(est.MonthlyIncome)) +
		"💡 Tip: Cuanto antes empieces, más tiempo trabaja el interés compuesto a tu favor.", true
}

const calculatorMenu = "🧮 Calculadora Financiera\n\n" +
	"Puedo ayudarte a calcular:\n\n" +
	"📈 Interés compuesto:\n" +
	"  'Cuanto ganaria si invierto 100000 por 5 años al 12%'\n\n" +
	"💳 Cuota de préstamo:\n" +
	"  'Cuanta es la cuota de 50000 en 12 meses al 50%'\n\n" +
	"📅 Tiempo de pago:\n" +
	"  'En cuanto tiempo pago 30000 si pago 5000 por mes'\n\n" +
	"⚖️ Comparar inversiones:\n" +
	"  'Comparar opciones para invertir 200000 por 10 años'\n\n" +
	"🏖️ Jubilación:\n" +
	"  'Jubilación: tengo 30, me retiro a los 65 y ahorro 20000 por mes'\n\n" +
	"Escribe tu consulta con números específicos."
