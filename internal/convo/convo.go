// Package convo holds the per-identity conversation state shared by the
// classifier and the scenario handlers.
package convo

import "time"

// Scenario is the closed set of topics an utterance can be classified into.
type Scenario string

const (
	Budget     Scenario = "presupuesto"
	Savings    Scenario = "ahorro"
	Investment Scenario = "inversiones"
	Debt       Scenario = "deudas"
	Calculator Scenario = "calculadora"
	Education  Scenario = "educacion"
	Help       Scenario = "ayuda"
)

// Stateful reports whether the scenario runs a multi-turn slot-filling flow.
func (s Scenario) Stateful() bool {
	switch s {
	case Budget, Savings, Debt, Investment:
		return true
	}
	return false
}

// Slot names the piece of information currently being asked for.
type Slot string

const (
	SlotNone Slot = ""

	SlotBudgetIncome Slot = "presupuesto_monto"

	SlotSavingsGoal    Slot = "meta_ahorro"
	SlotSavingsAmount  Slot = "ahorro_monto"
	SlotSavingsHorizon Slot = "ahorro_plazo"

	SlotDebtPayment Slot = "deuda_pago"

	SlotInvestData    Slot = "inversion_datos"
	SlotInvestAmount  Slot = "inversion_monto"
	SlotInvestHorizon Slot = "inversion_plazo"
	SlotInvestConfirm Slot = "inversion_confirmacion"
	SlotInvestAdjust  Slot = "inversion_ajuste"
	SlotInvestBondsUS Slot = "inversion_oferta_bonos"
)

// PartialData accumulates the slots already filled by an in-progress flow.
type PartialData struct {
	// savings
	Goal       string
	GoalAmount float64
	GoalMonths int

	// investment; nil means not known yet
	InvestAmount *float64
	InvestMonths *int

	// debt
	DebtTotal float64
}

// Reset clears every accumulated slot.
func (p *PartialData) Reset() { *p = PartialData{} }

// HasInvestment reports whether any investment slot is known.
func (p PartialData) HasInvestment() bool {
	return p.InvestAmount != nil || p.InvestMonths != nil
}

// State is the mutable per-identity conversation state. It is not safe for
// concurrent use; callers serialize turns per identity.
type State struct {
	WaitingFor   Slot
	Partial      PartialData
	LastTopic    string
	LastScenario Scenario
	TurnCount    int
	// KnownIncome is the monthly income learnt from the profile store or
	// from a budget turn, 0 when unknown.
	KnownIncome float64
}

// Waiting reports whether a slot is pending.
func (s State) Waiting() bool { return s.WaitingFor != SlotNone }

// Clear ends the current flow: no pending slot and no partial data.
func (s *State) Clear() {
	s.WaitingFor = SlotNone
	s.Partial.Reset()
}

// Session binds a State to the identity that owns it.
type Session struct {
	ID       string
	State    State
	LastSeen time.Time
}

// NewSession returns an empty session for id.
func NewSession(id string) *Session {
	return &Session{ID: id}
}
