// Package intent maps an utterance plus conversation state to exactly one
// scenario through an ordered cascade of rules. The first rule that matches
// decides; the last rule always matches.
package intent

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/elliotchance/pie/v2"

	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

// Stage names the rule that decided a classification.
type Stage string

const (
	StageEducationTrigger Stage = "education_trigger"
	StageCalculator       Stage = "calculator_pattern"
	StageSavingsPhrase    Stage = "savings_phrase"
	StagePurchasePlan     Stage = "purchase_plan"
	StageAmountWhatNow    Stage = "amount_what_now"
	StageDirectKeyword    Stage = "direct_keyword"
	StageShortReply       Stage = "short_reply"
	StageBareNumber       Stage = "bare_number"
	StagePendingNumber    Stage = "pending_number"
	StageGoalNoun         Stage = "goal_noun"
	StageWordMap          Stage = "word_map"
	StageScoring          Stage = "scoring"
	StageNumericContext   Stage = "numeric_context"
	StageInterrogative    Stage = "interrogative"
	StageFallback         Stage = "fallback"
)

// DefaultFuzzyThreshold is the similarity above which a content word counts
// as a typo of a keyword.
const DefaultFuzzyThreshold = 0.85

type Options struct {
	FuzzyThreshold float64
}

// Classifier is safe for concurrent use; it holds no per-conversation state.
type Classifier struct {
	threshold float64
	metric    *metrics.Levenshtein
	rules     []rule
}

// input is one utterance prepared for the rules.
type input struct {
	text    string
	tokens  []string
	bare    []string // tokens without surrounding punctuation
	content []string // bare tokens minus stop words, longer than two chars
	st      convo.State
}

type rule struct {
	stage Stage
	match func(c *Classifier, in *input) (convo.Scenario, bool)
}

func New(opts Options) *Classifier {
	if opts.FuzzyThreshold <= 0 || opts.FuzzyThreshold > 1 {
		opts.FuzzyThreshold = DefaultFuzzyThreshold
	}
	c := &Classifier{
		threshold: opts.FuzzyThreshold,
		metric:    metrics.NewLevenshtein(),
	}
	c.rules = []rule{
		{StageEducationTrigger, educationTrigger},
		{StageCalculator, calculatorPattern},
		{StageSavingsPhrase, savingsPhrase},
		{StagePurchasePlan, purchasePlan},
		{StageAmountWhatNow, amountWhatNowRule},
		{StageDirectKeyword, directKeyword},
		{StageShortReply, shortReply},
		{StageBareNumber, bareNumber},
		{StagePendingNumber, pendingNumber},
		{StageGoalNoun, goalNoun},
		{StageWordMap, wordMapRule},
		{StageScoring, (*Classifier).scoring},
		{StageNumericContext, numericContext},
		{StageInterrogative, interrogative},
		{StageFallback, func(*Classifier, *input) (convo.Scenario, bool) { return convo.Help, true }},
	}
	return c
}

// Detect returns the scenario for text given the conversation state.
func (c *Classifier) Detect(text string, st convo.State) convo.Scenario {
	sc, _ := c.Explain(text, st)
	return sc
}

// Explain is Detect plus the stage that produced the answer.
func (c *Classifier) Explain(text string, st convo.State) (convo.Scenario, Stage) {
	in := prepare(text, st)
	for _, r := range c.rules {
		if sc, ok := r.match(c, in); ok {
			return sc, r.stage
		}
	}
	return convo.Help, StageFallback
}

func prepare(text string, st convo.State) *input {
	t := textnorm.Normalize(text)
	tokens := strings.Fields(t)
	bare := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if b := trimPunct(tok); b != "" {
			bare = append(bare, b)
		}
	}
	content := pie.Filter(bare, func(w string) bool { return !stopWords[w] && len(w) > 2 })
	return &input{text: t, tokens: tokens, bare: bare, content: content, st: st}
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
}

// carry continues the previous scenario, or help when there is none.
func carry(st convo.State) convo.Scenario {
	if st.LastScenario == "" {
		return convo.Help
	}
	return st.LastScenario
}

func educationTrigger(_ *Classifier, in *input) (convo.Scenario, bool) {
	return convo.Education, textnorm.HasAnyPhrase(in.text, educationTriggers)
}

func calculatorPattern(_ *Classifier, in *input) (convo.Scenario, bool) {
	ok := pie.Any(calculatorPatterns, func(re *regexp.Regexp) bool { return re.MatchString(in.text) })
	return convo.Calculator, ok
}

func savingsPhrase(_ *Classifier, in *input) (convo.Scenario, bool) {
	return convo.Savings, textnorm.HasAnyTerm(in.text, savingsPhrases)
}

// purchasePlan is a planning intent, so it outranks calculator keywords
// such as "cuanto" that would otherwise win during scoring.
func purchasePlan(_ *Classifier, in *input) (convo.Scenario, bool) {
	ok := textnorm.HasAnyTerm(in.text, purchasePhrases) && textnorm.HasAnyTerm(in.text, goodsTerms)
	return convo.Savings, ok
}

func amountWhatNowRule(_ *Classifier, in *input) (convo.Scenario, bool) {
	return convo.Investment, amountWhatNow.MatchString(in.text)
}

func directKeyword(_ *Classifier, in *input) (convo.Scenario, bool) {
	for _, dk := range directKeywords {
		if textnorm.HasAnyTerm(in.text, dk.terms) {
			return dk.scenario, true
		}
	}
	return "", false
}

func shortReply(_ *Classifier, in *input) (convo.Scenario, bool) {
	if len(in.tokens) > 3 {
		return "", false
	}
	if in.st.Waiting() || in.st.LastScenario.Stateful() {
		return carry(in.st), true
	}
	if confirmationWords[strings.Join(in.bare, " ")] {
		return carry(in.st), true
	}
	return "", false
}

func bareNumber(_ *Classifier, in *input) (convo.Scenario, bool) {
	if !pureNumber.MatchString(in.text) {
		return "", false
	}
	if in.st.Waiting() || in.st.LastScenario.Stateful() {
		return carry(in.st), true
	}
	return "", false
}

// pendingNumber lets a short answer with a figure fill the pending slot even
// when it carries filler words, e.g. "pago 10000 por mes".
func pendingNumber(_ *Classifier, in *input) (convo.Scenario, bool) {
	if !in.st.Waiting() || !hasDigit.MatchString(in.text) || len(in.content) > 3 {
		return "", false
	}
	return carry(in.st), true
}

func goalNoun(_ *Classifier, in *input) (convo.Scenario, bool) {
	if len(in.bare) != 1 || !goalNouns[in.bare[0]] {
		return "", false
	}
	if in.st.LastScenario.Stateful() || in.st.WaitingFor == convo.SlotSavingsGoal {
		return convo.Savings, true
	}
	return "", false
}

func wordMapRule(_ *Classifier, in *input) (convo.Scenario, bool) {
	if len(in.tokens) > 2 {
		return "", false
	}
	for _, w := range in.bare {
		if sc, ok := wordMap[w]; ok {
			return sc, true
		}
	}
	return "", false
}

func numericContext(_ *Classifier, in *input) (convo.Scenario, bool) {
	if !longNumber.MatchString(in.text) {
		return "", false
	}
	switch {
	case textnorm.HasAnyTerm(in.text, debtHints):
		return convo.Debt, true
	case textnorm.HasAnyTerm(in.text, savingsHints):
		return convo.Savings, true
	}
	return convo.Budget, true
}

func interrogative(_ *Classifier, in *input) (convo.Scenario, bool) {
	return convo.Education, pie.Any(in.bare, func(w string) bool { return questionWords[w] })
}

func (c *Classifier) similarity(a, b string) float64 {
	return strutil.Similarity(a, b, c.metric)
}
