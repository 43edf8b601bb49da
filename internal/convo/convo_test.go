package convo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioStateful(t *testing.T) {
	for _, s := range []Scenario{Budget, Savings, Debt, Investment} {
		require.True(t, s.Stateful(), s)
	}
	for _, s := range []Scenario{Calculator, Education, Help, ""} {
		require.False(t, s.Stateful(), s)
	}
}

func TestStateClear(t *testing.T) {
	amount := 150000.0
	st := State{
		WaitingFor:   SlotInvestConfirm,
		Partial:      PartialData{Goal: "🚗 Auto", InvestAmount: &amount, DebtTotal: 10},
		LastTopic:    "🚗 Auto",
		LastScenario: Investment,
		TurnCount:    3,
	}
	require.True(t, st.Waiting())
	require.True(t, st.Partial.HasInvestment())

	st.Clear()

	require.False(t, st.Waiting())
	require.Equal(t, PartialData{}, st.Partial)
	require.Equal(t, "🚗 Auto", st.LastTopic)
	require.Equal(t, 3, st.TurnCount)
}
