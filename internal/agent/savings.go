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

type savingsGoal struct {
	label string
	terms []string
}

// savingsGoals is checked in order; the first match wins.
var savingsGoals = []savingsGoal{
	{"🏠 Vivienda", []string{"casa", "vivienda", "departamento", "depto", "hogar", "propiedad"}},
	{"🚗 Auto", []string{"auto", "carro", "coche", "vehiculo", "moto", "camioneta"}},
	{"✈️ Viaje/Vacaciones", []string{"viaje", "viajar", "vacaciones", "vacacionar", "conocer", "turismo"}},
	{"🆘 Fondo emergencia", []string{"emergencia", "emergencias", "imprevisto", "fondo"}},
	{"💍 Boda", []string{"boda", "casamiento", "matrimonio"}},
	{"🎓 Estudios", []string{"estudios", "universidad", "maestria", "curso", "carrera"}},
}

var savingsTips = []string{
	"Automatiza tu ahorro: Programa transferencias automáticas el día que cobras.",
	"Método de los sobres: Divide tu dinero en sobres por categoría.",
	"Regla 24 horas: Espera 24h antes de compras no planificadas.",
	"Challenge 52 semanas: Semana 1 ahorra $100, semana 2 $200, y así...",
}

// suggestedMonths are the horizons offered once goal and amount are known.
var suggestedMonths = []int{10, 15, 20}

func detectGoal(t string) (string, bool) {
	for _, g := range savingsGoals {
		if textnorm.HasAnyTerm(t, g.terms) {
			return g.label, true
		}
	}
	return "", false
}

func (e *Engine) handleSavings(ctx context.Context, t *turn) string {
	st := t.st
	amount, hasAmount := firstAmount(t.nums)

	if goal, ok := detectGoal(t.text); ok {
		st.LastTopic = goal
		st.Partial.Goal = goal
		head := fmt.Sprintf("¡Excelente meta: %s! 🎯\n\n", goal)
		if !hasAmount {
			st.WaitingFor = convo.SlotSavingsAmount
			return head + fmt.Sprintf("¿Cuánto necesitas ahorrar para %s?", goal)
		}
		e.setSavingsAmount(ctx, t, amount)
		if months, ok := explicitHorizon(t.nums); ok {
			return e.finishSavingsPlan(t, months)
		}
		return head + fmt.Sprintf("Para ahorrar %s:\n\n", money(amount)) + suggestions(amount)
	}

	switch st.WaitingFor {
	case convo.SlotSavingsAmount:
		if !hasAmount {
			return fmt.Sprintf("¿Cuánto necesitas ahorrar para %s? Escribe el monto (ej: 500000).", goalOf(st))
		}
		e.setSavingsAmount(ctx, t, amount)
		if months, ok := explicitHorizon(t.nums); ok {
			return e.finishSavingsPlan(t, months)
		}
		return fmt.Sprintf("Perfecto! Para ahorrar %s para %s:\n\n", money(amount), goalOf(st)) + suggestions(amount)

	case convo.SlotSavingsHorizon:
		if months, ok := horizonMonths(t.nums); ok {
			return e.finishSavingsPlan(t, months)
		}
		return "¿En cuánto tiempo quieres lograrlo? Escribe el plazo (ej: 12 meses o 2 años)."
	}

	st.WaitingFor = convo.SlotSavingsGoal
	tip := savingsTips[st.TurnCount%len(savingsTips)]
	return "¡Genial que quieras ahorrar! 🏦\n\n" +
		"💡 " + tip + "\n\n" +
		"Metas populares:\n" +
		"• 🆘 Fondo emergencia: 3-6 meses de gastos\n" +
		"• ✈️ Viaje/Vacaciones: 3-12 meses\n" +
		"• 🚗 Auto: 1-3 años\n" +
		"• 🏠 Vivienda: 5-10 años\n\n" +
		"¿Para qué quieres ahorrar? Escribe tu meta y el monto."
}

func goalOf(st *convo.State) string {
	if st.Partial.Goal == "" {
		return "tu meta"
	}
	return st.Partial.Goal
}

// explicitHorizon only accepts a figure with a month or year word, so the
// goal amount is never read as a horizon.
func explicitHorizon(nums []number) (int, bool) {
	for _, n := range nums {
		switch {
		case n.unit == unitMonths && n.value >= 1:
			return int(n.value), true
		case n.unit == unitYears && int(n.value*12) >= 1:
			return int(n.value * 12), true
		}
	}
	return 0, false
}

func (e *Engine) setSavingsAmount(ctx context.Context, t *turn, amount float64) {
	t.st.Partial.GoalAmount = amount
	t.st.WaitingFor = convo.SlotSavingsHorizon
	e.persist(ctx, t.id, profile.Fields{
		SavingsGoal:    profile.Float(amount),
		SavingsPurpose: profile.String(goalOf(t.st)),
	})
}

func suggestions(amount float64) string {
	var b strings.Builder
	for _, m := range suggestedMonths {
		p := calc.SavingsPlan(amount, m, 0)
		fmt.Fprintf(&b, "📅 En %d meses: ahorra %s/mes\n", m, money(p.Monthly))
	}
	b.WriteString("\n💡 Tip: Automatiza una transferencia el día que cobras.\n")
	b.WriteString("¿En cuánto tiempo quieres lograrlo?")
	return b.String()
}

func (e *Engine) finishSavingsPlan(t *turn, months int) string {
	st := t.st
	goal := goalOf(st)
	p := calc.SavingsPlan(st.Partial.GoalAmount, months, st.KnownIncome)
	st.Clear()

	var b strings.Builder
	fmt.Fprintf(&b, "¡Perfecto! Plan de ahorro para %s:\n\n", goal)
	fmt.Fprintf(&b, "🎯 Meta: %s\n", money(p.Goal))
	fmt.Fprintf(&b, "📅 Plazo: %d meses\n", p.Months)
	fmt.Fprintf(&b, "💰 Ahorro mensual: %s\n", money(p.Monthly))
	if p.Feasibility != "" {
		fmt.Fprintf(&b, "📊 Es el %.0f%% de tus ingresos: %s\n", p.IncomePct, p.Feasibility)
	}
	b.WriteString("\n✅ Consejos para lograrlo:\n")
	b.WriteString("• Automatiza la transferencia el día que cobras\n")
	b.WriteString("• Crea una cuenta separada solo para esto\n")
	b.WriteString("• Considera invertir el dinero (FCI, plazo fijo)\n")
	b.WriteString("• Revisa tu progreso mensualmente\n\n")
	fmt.Fprintf(&b, "💡 Si ahorras %s/mes, en %d meses tendrás %s!", money(p.Monthly), p.Months, money(p.Goal))
	return b.String()
}
