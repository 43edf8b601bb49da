package agent

import (
	"time"

	"github.com/rAmIro-89/finance-assistant-bot/internal/sentiment"
)

var empathy = map[sentiment.Emotion]string{
	sentiment.Worried:    ", entiendo tu preocupación",
	sentiment.Stressed:   ", sé que es una situación estresante",
	sentiment.Confused:   ", no te preocupes, te voy a ayudar paso a paso",
	sentiment.Desperate:  ", tranquilo/a, vamos a encontrar una solución",
	sentiment.Motivated:  ", me encanta tu actitud positiva",
	sentiment.Frustrated: ", entiendo tu frustración, pero hay solución",
	sentiment.Hopeful:    ", ¡excelente que tengas esa meta!",
}

// greeting opens the first turn of a conversation.
func greeting(when time.Time, s sentiment.Sentiment, e sentiment.Emotion) string {
	base := "Buenas tardes"
	switch h := when.Hour(); {
	case h < 6 || h >= 20:
		base = "Buenas noches"
	case h < 12:
		base = "Buenos días"
	}

	if clause, ok := empathy[e]; ok {
		return base + clause
	}
	if e == sentiment.NoEmotion {
		switch s {
		case sentiment.Negative:
			return base + ", entiendo cómo te sientes"
		case sentiment.Positive:
			return base + ", ¡qué bueno!"
		}
	}
	return base
}

var negativeSupport = map[sentiment.Emotion]string{
	sentiment.Desperate:  "\n\n💪 Recuerda: toda situación financiera tiene solución. Vamos paso a paso.",
	sentiment.Stressed:   "\n\n🧘 Respira. Tomar control de tus finanzas reduce el estrés. Ya diste el primer paso.",
	sentiment.Frustrated: "\n\n✨ Entiendo tu frustración. Cada pequeño cambio suma. ¡No te rindas!",
	sentiment.Worried:    "\n\n🌟 La preocupación es normal, pero con un buen plan todo es más manejable.",
}

// support is appended to the reply of any turn with a matching mood.
func support(s sentiment.Sentiment, e sentiment.Emotion) string {
	switch {
	case s == sentiment.Negative:
		return negativeSupport[e]
	case s == sentiment.Positive && e == sentiment.Motivated:
		return "\n\n🚀 ¡Me encanta tu energía! Con esa actitud vas a lograr tus metas."
	}
	return ""
}
