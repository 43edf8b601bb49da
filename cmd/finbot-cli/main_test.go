package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rAmIro-89/finance-assistant-bot/internal/agent"
	"github.com/rAmIro-89/finance-assistant-bot/internal/chatlog"
	"github.com/rAmIro-89/finance-assistant-bot/internal/config"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
)

var _ processor = (*agent.Engine)(nil)

func TestREPL_RunsTurnsUntilExit(t *testing.T) {
	engine := agent.NewEngine(config.Default(), profile.NewMemoryStore(), nil)
	sess := convo.NewSession("cli")
	in := strings.NewReader("presupuesto con 50000\n\nsalir\nesto no se procesa\n")
	var out bytes.Buffer

	require.NoError(t, repl(context.Background(), in, &out, engine, sess))

	require.Contains(t, out.String(), "[presupuesto]")
	require.Contains(t, out.String(), "$25000")
	require.Contains(t, out.String(), "¡Hasta luego!")
	require.Equal(t, 1, sess.State.TurnCount)
}

func TestREPL_StopsAtEOF(t *testing.T) {
	engine := agent.NewEngine(nil, nil, nil)
	sess := convo.NewSession("cli")
	var out bytes.Buffer

	require.NoError(t, repl(context.Background(), strings.NewReader("hola"), &out, engine, sess))
	require.Equal(t, 1, sess.State.TurnCount)
}

func TestPrintStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.csv")
	l := chatlog.NewCSVLogger(path)
	at := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	rows := []chatlog.Record{
		{Timestamp: at, Scenario: "presupuesto", Sentiment: "neutral", Emotion: "none", User: "presupuesto 50000", Bot: "ok"},
		{Timestamp: at.Add(time.Minute), Scenario: "ayuda", Sentiment: "neutral", Emotion: "none", User: "quiero invertir algo", Bot: "menu"},
	}
	for _, r := range rows {
		require.NoError(t, l.Append(context.Background(), r))
	}

	var out bytes.Buffer
	require.NoError(t, printStats(&out, path))

	require.Contains(t, out.String(), "Turnos: 2")
	require.Contains(t, out.String(), "presupuesto")
	require.Contains(t, out.String(), "esperado inversiones")
}

func TestPrintStats_MissingFile(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, printStats(&out, filepath.Join(t.TempDir(), "nope.csv")))
}
