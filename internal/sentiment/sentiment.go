// Package sentiment scores an utterance against Spanish lexicons and returns
// a coarse polarity plus at most one dominant emotion.
package sentiment

import (
	"strings"

	"github.com/elliotchance/pie/v2"

	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

type Sentiment string

const (
	Positive Sentiment = "positivo"
	Negative Sentiment = "negativo"
	Neutral  Sentiment = "neutral"
)

type Emotion string

const (
	Worried    Emotion = "preocupado"
	Stressed   Emotion = "estresado"
	Confused   Emotion = "confundido"
	Desperate  Emotion = "desesperado"
	Motivated  Emotion = "motivado"
	Frustrated Emotion = "frustrado"
	Hopeful    Emotion = "esperanzado"
	NoEmotion  Emotion = "none"
)

var positiveWords = normalizeAll([]string{
	"bien", "genial", "excelente", "bueno", "gracias", "perfecto",
	"feliz", "contento", "alegre", "esperanza", "optimista", "listo",
	"quiero", "voy a", "puedo", "lograr", "éxito", "mejor", "avanzar",
})

var negativeWords = normalizeAll([]string{
	"mal", "terrible", "horrible", "preocupado", "preocupación", "angustia",
	"desesperado", "agobiado", "estresado", "triste", "miedo", "pánico",
	"crisis", "urgente", "no puedo", "imposible", "nunca", "peor",
})

// distressPhrases add +2 to the negative count when any of them appears.
var distressPhrases = normalizeAll([]string{
	"no me alcanza", "no llego", "no puedo pagar", "me quedé sin",
	"problemas de plata", "no tengo", "me falta", "atrasado",
})

// proactivePhrases add +2 to the positive count when any of them appears.
var proactivePhrases = normalizeAll([]string{
	"quiero aprender", "mejorar", "planear", "organizar",
	"hacer un plan", "tomar control", "cambiar",
})

type emotionKeywords struct {
	emotion  Emotion
	keywords []string
}

// emotions is ordered: on equal scores the earlier emotion wins.
var emotions = []emotionKeywords{
	{Worried, normalizeAll([]string{"preocupado", "preocupa", "inquieto", "nervioso", "ansioso", "intranquilo"})},
	{Stressed, normalizeAll([]string{"estresado", "estrés", "agobiado", "presión", "sobrecargado", "no aguanto"})},
	{Confused, normalizeAll([]string{"confundido", "no entiendo", "perdido", "no sé", "ayuda", "como hago"})},
	{Desperate, normalizeAll([]string{"desesperado", "urgente", "no puedo más", "crisis", "grave", "crítico"})},
	{Motivated, normalizeAll([]string{"motivado", "quiero", "voy a", "listo", "empezar", "comenzar", "dale"})},
	{Frustrated, normalizeAll([]string{"frustrado", "harto", "cansado", "siempre", "otra vez", "no funciona"})},
	{Hopeful, normalizeAll([]string{"espero", "ojalá", "deseo", "sueño", "meta", "objetivo", "futuro"})},
}

func normalizeAll(words []string) []string {
	return pie.Map(words, textnorm.Normalize)
}

// countIn returns how many phrases of lexicon are contained in t.
func countIn(t string, lexicon []string) int {
	return len(pie.Filter(lexicon, func(w string) bool { return strings.Contains(t, w) }))
}

func anyIn(t string, lexicon []string) bool {
	return pie.Any(lexicon, func(w string) bool { return strings.Contains(t, w) })
}

// Analyze returns the polarity and dominant emotion of text. Ties between
// positive and negative counts are neutral; an emotion needs a strictly
// higher score than every earlier one to be chosen.
func Analyze(text string) (Sentiment, Emotion) {
	t := textnorm.Normalize(text)

	pos := countIn(t, positiveWords)
	neg := countIn(t, negativeWords)
	if anyIn(t, distressPhrases) {
		neg += 2
	}
	if anyIn(t, proactivePhrases) {
		pos += 2
	}

	s := Neutral
	switch {
	case neg > pos:
		s = Negative
	case pos > neg:
		s = Positive
	}

	e, best := NoEmotion, 0
	for _, em := range emotions {
		if score := countIn(t, em.keywords); score > best {
			e, best = em.emotion, score
		}
	}
	return s, e
}
