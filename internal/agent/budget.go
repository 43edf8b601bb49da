package agent

import (
	"context"
	"fmt"

	"github.com/rAmIro-89/finance-assistant-bot/internal/calc"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
)

func (e *Engine) handleBudget(ctx context.Context, t *turn) string {
	income, ok := firstAmount(t.nums)
	if !ok {
		t.st.WaitingFor = convo.SlotBudgetIncome
		return "¡Perfecto! Para crear un presupuesto necesito saber:\n\n" +
			"💰 ¿Cuáles son tus ingresos mensuales?\n\n" +
			"Escribe el monto (ej: 50000 o $50000) y te armo un plan personalizado 📊"
	}

	t.st.KnownIncome = income
	e.persist(ctx, t.id, profile.Fields{MonthlyIncome: profile.Float(income)})
	t.st.Clear()

	s := calc.BudgetSplit(income)
	return fmt.Sprintf("¡Excelente! Con ingresos de %s, te sugiero la regla 50/30/20:\n\n", money(income)) +
		fmt.Sprintf("💵 Necesidades básicas (50%%): %s\n", money(s.Needs)) +
		"   → Vivienda, comida, servicios, transporte\n\n" +
		fmt.Sprintf("🎭 Gastos personales (30%%): %s\n", money(s.Wants)) +
		"   → Entretenimiento, salidas, hobbies\n\n" +
		fmt.Sprintf("🏦 Ahorro/Inversión (20%%): %s\n", money(s.Savings)) +
		"   → Fondo emergencia, metas, inversiones\n\n" +
		"¿Quieres ajustar estos porcentajes o que te ayude con algo específico?"
}
