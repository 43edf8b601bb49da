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

type assetBranch struct {
	terms []string
	reply string
	// offer is the slot left pending after the explainer, if any.
	offer convo.Slot
}

// assetBranches short-circuit the generic flow; the first match wins.
var assetBranches = []assetBranch{
	{terms: []string{"oro", "gold"}, reply: goldExplainer},
	{terms: []string{"plata", "silver"}, reply: silverExplainer},
	{terms: []string{"dolar", "dolares", "dollar", "divisa", "moneda extranjera"}, reply: dollarExplainer, offer: convo.SlotInvestBondsUS},
	{terms: []string{"crypto", "cripto", "bitcoin", "btc", "ethereum", "eth", "criptomoneda"}, reply: cryptoExplainer},
	{terms: []string{"accion", "acciones", "stock", "bolsa", "cedear"}, reply: stocksExplainer},
	{terms: []string{"plazo fijo"}, reply: fixedTermExplainer},
}

var (
	beginnerTerms     = []string{"principiante", "comienzo", "empezar", "nuevo", "nunca inverti", "primera vez"}
	conservativeTerms = []string{"seguro", "sin riesgo", "conservador", "tranquilo", "no arriesgar"}
	aggressiveTerms   = []string{"agresivo", "riesgo alto", "rapido"}
	simulateTerms     = []string{"simula", "de una", "hacelo", "hazlo"}
	monthWords        = []string{"mes", "meses"}
	yearWords         = []string{"ano", "anos", "anio", "anios"}
)

var confirmWords = map[string]bool{
	"dale": true, "si": true, "ok": true, "okay": true, "listo": true,
	"perfecto": true, "genial": true, "bueno": true, "claro": true,
}

// confirms reports a go-ahead: a confirmation word or a simulate request.
func confirms(t string) bool {
	return hasWord(t, confirmWords) || textnorm.HasAnyTerm(t, simulateTerms)
}

const (
	maxHorizonMonths = 120
	maxHorizonYears  = 50
)

func (e *Engine) handleInvestment(ctx context.Context, t *turn) string {
	st := t.st

	if st.WaitingFor == convo.SlotInvestBondsUS {
		st.WaitingFor = convo.SlotNone
		if confirms(t.text) {
			return usdBondsExplainer
		}
	}

	for _, a := range assetBranches {
		if textnorm.HasAnyTerm(t.text, a.terms) {
			st.WaitingFor = a.offer
			return a.reply
		}
	}

	beginner := textnorm.HasAnyTerm(t.text, beginnerTerms)
	conservative := textnorm.HasAnyTerm(t.text, conservativeTerms)
	aggressive := textnorm.HasAnyTerm(t.text, aggressiveTerms)

	rateVal, rateSpan, hasRate := rateIn(t.text)
	contrib, contribSpan, hasContrib := contributionIn(t.text)

	amount, months := investmentFigures(t.text, t.nums, func(n number) bool {
		return (hasRate && rateSpan.covers(n)) || (hasContrib && contribSpan.covers(n))
	})
	if amount == nil {
		amount = st.Partial.InvestAmount
	}
	if months == nil {
		months = st.Partial.InvestMonths
	}

	var b strings.Builder
	b.WriteString("📈 Opciones de inversión:\n\n")
	if beginner || conservative {
		b.WriteString("Para empezar de forma segura:\n\n" +
			"🟢 Bajo Riesgo (ideal para principiantes):\n" +
			"• Plazo fijo: 6-12% anual, 100% seguro\n" +
			"• FCI Money Market: Liquidez diaria, bajo riesgo\n" +
			"• Bonos del Estado: Rendimiento predecible\n\n")
	}
	if !conservative || aggressive {
		b.WriteString("🟡 Riesgo Moderado (diversificado):\n" +
			"• ETFs globales: Diversificación automática\n" +
			"• Fondos balanceados: Mix de bonos y acciones\n" +
			"• CEDEARs: Acciones extranjeras en pesos\n\n")
	}
	if aggressive {
		b.WriteString("🔴 Alto Riesgo (solo dinero que puedas perder):\n" +
			"• Acciones individuales: Alta volatilidad\n" +
			"• Criptomonedas: Riesgo extremo, alto potencial\n" +
			"• Trading: Requiere conocimiento técnico\n\n")
	}

	switch {
	case conservative:
		e.persist(ctx, t.id, profile.Fields{RiskProfile: profile.String("conservador")})
	case aggressive:
		e.persist(ctx, t.id, profile.Fields{RiskProfile: profile.String("agresivo")})
	}

	if amount != nil {
		fmt.Fprintf(&b, "💰 Con %s podrías:\n"+
			"• Diversificar en 3-4 instrumentos\n"+
			"• Invertir progresivamente (DCA)\n"+
			"• Empezar conservador y aumentar riesgo\n\n", money(*amount))
	}
	if months != nil {
		fmt.Fprintf(&b, "🕒 Horizonte: %d meses (%.1f años)\n\n", *months, float64(*months)/12)
	}

	if amount != nil || months != nil {
		st.Partial.InvestAmount = amount
		st.Partial.InvestMonths = months
	}

	adjusting := st.WaitingFor == convo.SlotInvestAdjust && (hasRate || hasContrib)
	wantsSim := adjusting || confirms(t.text)

	switch {
	case wantsSim && amount != nil && months != nil:
		if !hasRate {
			rateVal = e.cfg.Investment.DefaultRate
		}
		if !hasContrib {
			contrib = 0
		}
		st.WaitingFor = convo.SlotInvestAdjust
		return b.String() + simulation(*amount, *months, rateVal, contrib)
	case amount == nil && months == nil:
		st.WaitingFor = convo.SlotInvestData
		return b.String() + "Para personalizarlo, decime: \n" +
			"• Monto a invertir (ej: 150000)\n" +
			"• Horizonte (ej: 7 meses o 2 años)\n"
	case amount == nil:
		st.WaitingFor = convo.SlotInvestAmount
		return b.String() + "¿Con qué monto querés empezar a invertir? (ej: $150000)"
	case months == nil:
		st.WaitingFor = convo.SlotInvestHorizon
		return b.String() + "¿Cuánto tiempo puedes dejar el dinero invertido? (ej: 7 meses o 2 años)"
	}
	st.WaitingFor = convo.SlotInvestConfirm
	return b.String() + "¿Querés que simulemos interés compuesto? Podés decir 'dale' o indicar 'tasa 12% y aporte 0'."
}

// investmentFigures splits the figures of an utterance into amount and
// horizon. A month or year word anywhere makes the first small enough figure
// the horizon; the largest remaining figure is the amount. Figures that
// belong to a rate or a contribution are skipped.
func investmentFigures(t string, nums []number, skip func(number) bool) (amount *float64, months *int) {
	var cands []number
	for _, n := range nums {
		if n.unit != unitPercent && !skip(n) {
			cands = append(cands, n)
		}
	}

	horizonIdx := -1
	if textnorm.HasAnyTerm(t, monthWords) {
		for i, n := range cands {
			if n.value >= 1 && n.value <= maxHorizonMonths {
				m := int(n.value)
				months, horizonIdx = &m, i
				break
			}
		}
	}
	if textnorm.HasAnyTerm(t, yearWords) {
		for i, n := range cands {
			if m := int(n.value * 12); m >= 1 && n.value <= maxHorizonYears {
				months, horizonIdx = &m, i
				break
			}
		}
	}

	for i, n := range cands {
		if i == horizonIdx {
			continue
		}
		if amount == nil || n.value > *amount {
			v := n.value
			amount = &v
		}
	}
	return amount, months
}

func simulation(capital float64, months int, annualRate, monthly float64) string {
	years := float64(months) / 12
	if years < 0.1 {
		years = 0.1
	}
	g := calc.CompoundInterest(capital, annualRate, years, monthly)
	return "🧮 Simulación con interés compuesto:\n\n" +
		fmt.Sprintf("💰 Capital inicial: %s\n", money(capital)) +
		fmt.Sprintf("🕒 Plazo: %.1f años (%d meses)\n", years, int(years*12)) +
		fmt.Sprintf("📈 Tasa: %s%% anual\n", rate(annualRate)) +
		fmt.Sprintf("💸 Aporte mensual: %s\n\n", money(monthly)) +
		"🎯 Resultado:\n" +
		fmt.Sprintf("• Total invertido: %s\n", money(g.TotalInvested)) +
		fmt.Sprintf("• Monto final: %s\n", money(g.FinalAmount)) +
		fmt.Sprintf("• Ganancia: %s (%s%%)\n\n", money(g.Gain), rate(g.GainPct)) +
		"¿Querés ajustar la tasa o agregar un aporte mensual distinto? Dime, por ejemplo: 'tasa 15% y aporte 10000'."
}
