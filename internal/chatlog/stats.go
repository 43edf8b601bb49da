package chatlog

import (
	"sort"
	"strings"
	"time"

	"github.com/elliotchance/pie/v2"

	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

const fallbackScenario = "ayuda"

// topicHints flag help-classified turns that mention a known topic; those
// are likely misclassifications worth reviewing.
var topicHints = map[string][]string{
	"inversiones": {"invertir", "inversion", "aguinaldo", "plazo fijo"},
	"ahorro":      {"ahorrar", "ahorro", "guardar", "juntar"},
	"presupuesto": {"presupuesto", "gastos", "ingresos"},
	"deudas":      {"deuda", "prestamo", "tarjeta"},
	"educacion":   {"aprender", "ensenar", "explicar", "que es", "como funciona"},
}

type Suspect struct {
	Record
	Expected string
}

type Stats struct {
	Total       int
	First, Last time.Time
	Scenarios   map[string]int
	Sentiments  map[string]int
	Emotions    map[string]int
	Suspects    []Suspect
}

func Summarize(records []Record) Stats {
	st := Stats{
		Total:      len(records),
		Scenarios:  map[string]int{},
		Sentiments: map[string]int{},
		Emotions:   map[string]int{},
	}
	hintOrder := pie.Sort(pie.Keys(topicHints))

	for _, r := range records {
		st.Scenarios[r.Scenario]++
		st.Sentiments[r.Sentiment]++
		st.Emotions[r.Emotion]++
		if !r.Timestamp.IsZero() {
			if st.First.IsZero() || r.Timestamp.Before(st.First) {
				st.First = r.Timestamp
			}
			if r.Timestamp.After(st.Last) {
				st.Last = r.Timestamp
			}
		}
		if r.Scenario != fallbackScenario {
			continue
		}
		text := textnorm.Normalize(r.User)
		for _, sc := range hintOrder {
			if pie.Any(topicHints[sc], func(h string) bool { return strings.Contains(text, h) }) {
				st.Suspects = append(st.Suspects, Suspect{Record: r, Expected: sc})
				break
			}
		}
	}
	return st
}

// Count is one bucket of a ranked tally.
type Count struct {
	Key string
	N   int
}

// Ranked orders a tally by count, then key.
func Ranked(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{k, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}
