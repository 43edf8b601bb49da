package app

import (
	"context"
	"io"
	"time"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/rAmIro-89/finance-assistant-bot/internal/agent"
	"github.com/rAmIro-89/finance-assistant-bot/internal/chatlog"
	"github.com/rAmIro-89/finance-assistant-bot/internal/config"
	"github.com/rAmIro-89/finance-assistant-bot/internal/logx"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
	"github.com/rAmIro-89/finance-assistant-bot/internal/runtime"
	"github.com/rAmIro-89/finance-assistant-bot/internal/session"
)

const version = "0.3.0"

// profileStore is what the app needs from a profile backend on top of what
// the engine uses.
type profileStore interface {
	agent.ProfileStore
	runtime.Pinger
	io.Closer
}

type App struct {
	env      *config.EnvVars
	cfg      *config.Config
	store    profileStore
	turnLog  *chatlog.CSVLogger
	sessions *session.Registry
	engine   *agent.Engine
	http     *HTTPServer
}

func New() (*App, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	logx.Init(env.LogLevel, logx.UseColor(env.AppEnv))

	cfg, err := config.LoadFromDir(env.DefinitionsDir)
	if err != nil {
		return nil, err
	}

	store, err := openStore(env.ProfileDB)
	if err != nil {
		return nil, err
	}

	// A nil *CSVLogger must not reach the engine as a non-nil interface.
	var turnLog *chatlog.CSVLogger
	var engineLog agent.TurnLogger
	if !env.ChatLogDisabled() {
		turnLog = chatlog.NewCSVLogger(env.ChatLog)
		engineLog = turnLog
	}

	sessions := session.NewRegistry(nil)
	engine := agent.NewEngine(cfg, store, engineLog)

	rt := &runtime.Runtime{
		DefinitionsLoaded: true,
		ProfileStore:      store,
	}

	chat := newChatHandler(engine, sessions, cfg.Limits.MaxMessageLen, env)

	return &App{
		env:      env,
		cfg:      cfg,
		store:    store,
		turnLog:  turnLog,
		sessions: sessions,
		engine:   engine,
		http:     NewHTTPServer(chat, rt, listenAddr(env.Port)),
	}, nil
}

func openStore(path string) (profileStore, error) {
	if path == "" {
		logx.Info("App", "profile store: memory")
		return profile.NewMemoryStore(), nil
	}
	s, err := profile.Open(path)
	if err != nil {
		return nil, oops.In("app").With("path", path).Wrapf(err, "abriendo perfiles")
	}
	logx.Info("App", "profile store: sqlite %s", path)
	return s, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.http.Start(gctx)
	})

	if a.sessions != nil && a.env != nil {
		every, ttl := a.env.SessionSweep, a.env.SessionTTL
		if every <= 0 {
			every = 5 * time.Minute
		}
		g.Go(func() error {
			return a.sessions.RunJanitor(gctx, every, ttl)
		})
	}

	logx.Info("App", "finbot v%s started", version)

	return g.Wait()
}

func (a *App) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logx.Warn("App", "closing profile store: %v", err)
		}
	}
	if a.turnLog != nil {
		if err := a.turnLog.Close(); err != nil {
			logx.Warn("App", "closing chat log: %v", err)
		}
	}
}
