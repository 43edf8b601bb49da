package intent

import (
	"strings"

	"github.com/elliotchance/pie/v2"

	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
)

const (
	patternWeight = 3
	keywordWeight = 2
	fuzzyWeight   = 1
)

// Scores returns the weighted score of every scenario in scoringOrder for
// text. Exposed for debugging and tests.
func (c *Classifier) Scores(text string) map[convo.Scenario]int {
	in := prepare(text, convo.State{})
	scores := c.score(in)
	out := make(map[convo.Scenario]int, len(scores))
	for i, sc := range scoringOrder {
		out[sc] = scores[i]
	}
	return out
}

// score sums intent-pattern and keyword points per scenario, then applies
// the education boost. The result is indexed like scoringOrder.
func (c *Classifier) score(in *input) []int {
	joined := strings.Join(in.content, " ")
	scores := make([]int, len(scoringOrder))

	for i, sc := range scoringOrder {
		for _, p := range intentPatterns[sc] {
			if strings.Contains(in.text, p) {
				scores[i] += patternWeight
			}
		}
		for _, kw := range preparedKeywords[sc] {
			scores[i] += c.keywordPoints(in, joined, kw)
		}
	}

	edu := pie.FindFirstUsing(scoringOrder, func(s convo.Scenario) bool { return s == convo.Education })
	if pie.Any(boostTriggers, func(b string) bool { return strings.Contains(in.text, b) }) && scores[edu] > 0 {
		maxOther := 0
		for i, s := range scores {
			if i != edu && s > maxOther {
				maxOther = s
			}
		}
		if maxOther < 2 {
			scores[edu]++
		}
	}
	return scores
}

func (c *Classifier) keywordPoints(in *input, joined string, kw keyword) int {
	if strings.Contains(in.text, kw.text) || strings.Contains(joined, kw.text) {
		return keywordWeight
	}
	if len(kw.words) > 1 && pie.All(kw.words, func(w string) bool { return strings.Contains(in.text, w) }) {
		return keywordWeight
	}
	points := 0
	for _, w := range in.content {
		if len(w) > 3 && c.similarity(w, kw.text) > c.threshold {
			points += fuzzyWeight
		}
	}
	return points
}

// scoring returns the scenario with the strictly highest positive score;
// ties go to the scenario declared first.
func (c *Classifier) scoring(in *input) (convo.Scenario, bool) {
	scores := c.score(in)
	best, bestScore := -1, 0
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return "", false
	}
	return scoringOrder[best], true
}
