// Package agent turns one user utterance into one reply. The Engine runs the
// sentiment analyzer and the classifier, hands the turn to the handler of the
// chosen scenario and records the outcome through its collaborators.
package agent

import (
	"context"
	"errors"
	"time"

	"github.com/rAmIro-89/finance-assistant-bot/internal/chatlog"
	"github.com/rAmIro-89/finance-assistant-bot/internal/config"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/intent"
	"github.com/rAmIro-89/finance-assistant-bot/internal/logx"
	"github.com/rAmIro-89/finance-assistant-bot/internal/metrics"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
	"github.com/rAmIro-89/finance-assistant-bot/internal/sentiment"
	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

// ProfileStore reads and patches end-user profiles.
type ProfileStore interface {
	Fetch(ctx context.Context, id string) (*profile.Profile, error)
	Upsert(ctx context.Context, id string, f profile.Fields) error
}

// TurnLogger records one row per processed turn.
type TurnLogger interface {
	Append(ctx context.Context, r chatlog.Record) error
}

// Result is what a caller gets back for one utterance.
type Result struct {
	Scenario  convo.Scenario      `json:"scenario"`
	Reply     string              `json:"reply"`
	When      time.Time           `json:"timestamp"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	Emotion   sentiment.Emotion   `json:"emotion"`
}

type handler func(ctx context.Context, t *turn) string

// Engine is safe for concurrent use as long as every Session is only
// processed by one goroutine at a time.
type Engine struct {
	cfg        *config.Config
	classifier *intent.Classifier
	profiles   ProfileStore
	log        TurnLogger
	handlers   map[convo.Scenario]handler
	now        func() time.Time
}

// NewEngine wires the engine. profiles and log may be nil; the matching
// side effects are then skipped.
func NewEngine(cfg *config.Config, profiles ProfileStore, log TurnLogger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Engine{
		cfg:        cfg,
		classifier: intent.New(intent.Options{FuzzyThreshold: cfg.Classifier.FuzzyThreshold}),
		profiles:   profiles,
		log:        log,
		now:        time.Now,
	}
	e.handlers = map[convo.Scenario]handler{
		convo.Budget:     e.handleBudget,
		convo.Savings:    e.handleSavings,
		convo.Investment: e.handleInvestment,
		convo.Debt:       e.handleDebt,
		convo.Calculator: e.handleCalculator,
		convo.Education:  e.handleEducation,
		convo.Help:       e.handleHelp,
	}
	return e
}

// turn is one utterance on its way through a handler.
type turn struct {
	id   string
	text string // normalized
	nums []number
	st   *convo.State
}

// Process handles one utterance for sess and mutates its state. It never
// fails: profile and log errors are logged, counted and skipped.
func (e *Engine) Process(ctx context.Context, sess *convo.Session, text string, when time.Time) Result {
	if when.IsZero() {
		when = e.now()
	}
	timer := logx.Start(sess.ID, "Engine", "process")
	st := &sess.State

	st.TurnCount++
	e.loadProfile(ctx, sess.ID, st)

	sent, emo := sentiment.Analyze(text)
	sc, stage := e.classifier.Explain(text, *st)
	logx.Debug("Engine", "[%s] turno=%d escenario=%s etapa=%s", sess.ID, st.TurnCount, sc, stage)

	norm := textnorm.Normalize(text)
	t := &turn{id: sess.ID, text: norm, nums: numbers(norm), st: st}
	h, ok := e.handlers[sc]
	if !ok {
		h = e.handleHelp
	}
	reply := h(ctx, t) + support(sent, emo)
	if st.TurnCount == 1 {
		reply = greeting(when, sent, emo) + ". " + reply
	}
	st.LastScenario = sc

	e.record(ctx, sess.ID, chatlog.Record{
		Timestamp: when,
		Scenario:  string(sc),
		Sentiment: string(sent),
		Emotion:   string(emo),
		User:      text,
		Bot:       reply,
	})

	elapsed := timer.End()
	metrics.Turns.Inc(map[string]string{"scenario": string(sc), "stage": string(stage)})
	metrics.TurnDuration.Observe(map[string]string{"scenario": string(sc)}, elapsed.Seconds())

	return Result{Scenario: sc, Reply: reply, When: when, Sentiment: sent, Emotion: emo}
}

// loadProfile creates the profile on first contact and seeds the known
// income from it.
func (e *Engine) loadProfile(ctx context.Context, id string, st *convo.State) {
	if e.profiles == nil {
		return
	}
	p, err := e.profiles.Fetch(ctx, id)
	if errors.Is(err, profile.ErrNotFound) {
		if err := e.profiles.Upsert(ctx, id, profile.Fields{}); err != nil {
			e.collaboratorFailed(id, "profile", "upsert", err)
		}
		return
	}
	if err != nil {
		e.collaboratorFailed(id, "profile", "fetch", err)
		return
	}
	if st.KnownIncome == 0 && p.MonthlyIncome > 0 {
		st.KnownIncome = p.MonthlyIncome
	}
}

func (e *Engine) persist(ctx context.Context, id string, f profile.Fields) {
	if e.profiles == nil || f.Empty() {
		return
	}
	if err := e.profiles.Upsert(ctx, id, f); err != nil {
		e.collaboratorFailed(id, "profile", "upsert", err)
	}
}

func (e *Engine) record(ctx context.Context, id string, r chatlog.Record) {
	if e.log == nil {
		return
	}
	if err := e.log.Append(ctx, r); err != nil {
		e.collaboratorFailed(id, "chatlog", "append", err)
	}
}

func (e *Engine) collaboratorFailed(id, collaborator, op string, err error) {
	metrics.CollaboratorFailures.Inc(map[string]string{"collaborator": collaborator, "op": op})
	logx.Warn("Engine", "[%s] %s %s falló, se continúa sin él: %v", id, collaborator, op, err)
}
