package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rAmIro-89/finance-assistant-bot/internal/calc"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

var (
	cardTerms     = []string{"tarjeta", "credito", "visa", "mastercard"}
	loanTerms     = []string{"prestamo", "banco"}
	multipleTerms = []string{"varias", "muchas", "multiples"}
	paymentTerms  = []string{"pago", "pagos", "pagar", "cuota", "cuotas", "por mes", "al mes", "mensual", "mensuales"}
)

var planMonths = []int{6, 12, 18}

const snowballTip = "🎯 Método Bola de Nieve (muy efectivo):\n" +
	"1. Lista TODAS tus deudas de menor a mayor\n" +
	"2. Paga el mínimo en todas\n" +
	"3. A la más chica, dale TODO extra que puedas\n" +
	"4. Al pagarla, esa plata va a la siguiente\n" +
	"5. Efecto motivador al ver progreso rápido\n\n"

const immediateActions = "💡 Acciones inmediatas:\n" +
	"• Corta gastos superfluos temporalmente\n" +
	"• Busca ingresos extras (freelance, venta)\n" +
	"• Negocia tasas con los bancos\n" +
	"• No pidas más crédito mientras pagas\n\n" +
	"¿Cuánto puedes destinar mensualmente a pagar deudas?"

func (e *Engine) handleDebt(ctx context.Context, t *turn) string {
	st := t.st
	amounts := plain(t.nums)

	if st.WaitingFor == convo.SlotDebtPayment {
		if len(amounts) == 0 {
			return fmt.Sprintf("¿Cuánto puedes pagar mensualmente para tu deuda de %s? Escribe el monto (ej: 10000).",
				money(st.Partial.DebtTotal))
		}
		return debtPayoff(st, st.Partial.DebtTotal, amounts[0].value)
	}

	// "debo 120000 y pago 10000 por mes": larger is the total, smaller the payment.
	if len(amounts) >= 2 && textnorm.HasAnyTerm(t.text, paymentTerms) {
		total, payment := amounts[0].value, amounts[1].value
		if payment > total {
			total, payment = payment, total
		}
		e.persist(ctx, t.id, profile.Fields{TotalDebt: profile.Float(total)})
		return debtPayoff(st, total, payment)
	}

	multiple := textnorm.HasAnyTerm(t.text, multipleTerms)
	var b strings.Builder

	if len(amounts) == 0 {
		b.WriteString("Entiendo que tienes deudas. No te preocupes, hay solución. 💪\n\n")
	} else {
		debt := amounts[0].value
		e.persist(ctx, t.id, profile.Fields{TotalDebt: profile.Float(debt)})

		fmt.Fprintf(&b, "Entiendo, tienes una deuda de %s. ¡Vamos a resolverlo! 💪\n\n", money(debt))
		switch {
		case textnorm.HasAnyTerm(t.text, cardTerms):
			b.WriteString("💳 Estrategias para deuda de tarjeta:\n" +
				"1. Llama al banco y negocia la tasa (muchos aceptan)\n" +
				"2. Pasa a un préstamo personal (tasa más baja)\n" +
				"3. Deja de usarla hasta saldar\n\n")
		case textnorm.HasAnyTerm(t.text, loanTerms):
			b.WriteString("🏦 Estrategias para préstamos:\n" +
				"1. Pedí al banco el saldo exacto y el CFT\n" +
				"2. Evaluá precancelar parte del capital\n" +
				"3. Consultá si podés refinanciar a una tasa menor\n\n")
		}

		b.WriteString("📅 Planes de pago sugeridos:\n")
		notes := []string{"rápido pero intenso", "equilibrado", "más manejable"}
		for i, m := range planMonths {
			l := calc.LoanInstallment(debt, 0, m)
			fmt.Fprintf(&b, "• %d meses: %s/mes (%s)\n", m, money(l.Installment), notes[i])
		}
		b.WriteString("\n")

		if st.KnownIncome > 0 {
			pct := calc.LoanInstallment(debt, 0, 12).Installment / st.KnownIncome * 100
			fmt.Fprintf(&b, "Con tus ingresos, pagar en 12 meses sería el %.0f%% de tu sueldo.\n\n", pct)
		}

		st.WaitingFor = convo.SlotDebtPayment
		st.Partial.DebtTotal = debt
		b.WriteString("¿Cuánto puedes pagar mensualmente?")
	}

	if len(amounts) > 0 {
		b.WriteString("\n\n")
	}
	if multiple || len(amounts) == 0 {
		b.WriteString(snowballTip)
	}
	b.WriteString(immediateActions)
	return b.String()
}

// debtPayoff finishes the flow, or keeps the payment slot open when the
// payment cannot cancel the debt.
func debtPayoff(st *convo.State, total, payment float64) string {
	p, err := calc.TimeToPayoff(total, payment, 0)
	if err != nil {
		st.WaitingFor = convo.SlotDebtPayment
		st.Partial.DebtTotal = total
		return "⚠️ " + err.Error()
	}
	st.Clear()
	return fmt.Sprintf("Perfecto! Con una deuda de %s y pagos de %s/mes:\n\n", money(total), money(payment)) +
		fmt.Sprintf("📅 Liquidarás tu deuda en %d meses\n", p.Months) +
		fmt.Sprintf("💰 Total a pagar: %s\n\n", money(p.TotalPaid)) +
		"💡 Tip: Si puedes aumentar aunque sea $1000/mes, ahorrarás mucho en intereses.\n" +
		"¿Quieres que calcule con otro monto mensual?"
}
