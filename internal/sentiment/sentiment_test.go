package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		name string
		in   string
		s    Sentiment
		e    Emotion
	}{
		{"distress adds to negative", "Estoy muy preocupado, no me alcanza la plata", Negative, Worried},
		{"motivated", "Quiero empezar a invertir, estoy motivado", Positive, Motivated},
		{"neutral without signals", "hola", Neutral, NoEmotion},
		{"desperate", "Estoy desesperado, es urgente", Negative, Desperate},
		{"accents are irrelevant", "ESTOY ESTRESADO, mucho estrés y presión", Negative, Stressed},
		{"confused", "no entiendo nada, ayuda", Neutral, Confused},
		{"hopeful", "mi meta es ahorrar para el futuro", Neutral, Hopeful},
		{"proactive adds to positive", "necesito organizar mis gastos", Positive, NoEmotion},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, e := Analyze(c.in)
			require.Equal(t, c.s, s)
			require.Equal(t, c.e, e)
		})
	}
}

func TestAnalyze_EmotionTieKeepsFirstDeclared(t *testing.T) {
	// one worried keyword and one stressed keyword: worried is declared first
	_, e := Analyze("nervioso y con presión")
	require.Equal(t, Worried, e)

	// a strictly higher later score wins
	_, e = Analyze("nervioso, agobiado y con presión")
	require.Equal(t, Stressed, e)
}

func TestAnalyze_Deterministic(t *testing.T) {
	in := "no puedo pagar la tarjeta y estoy harto"
	s1, e1 := Analyze(in)
	for i := 0; i < 10; i++ {
		s, e := Analyze(in)
		require.Equal(t, s1, s)
		require.Equal(t, e1, e)
	}
}
