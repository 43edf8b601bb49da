// Command finbot-cli chats with the assistant from a terminal, or prints a
// summary of a turn log with -stats.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rAmIro-89/finance-assistant-bot/internal/agent"
	"github.com/rAmIro-89/finance-assistant-bot/internal/chatlog"
	"github.com/rAmIro-89/finance-assistant-bot/internal/config"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/logx"
	"github.com/rAmIro-89/finance-assistant-bot/internal/profile"
)

var exitWords = map[string]bool{"salir": true, "exit": true, "quit": true, "chau": true}

func main() {
	logx.Preinit()

	stats := flag.String("stats", "", "print a summary of this CSV turn log and exit")
	user := flag.String("user", "cli", "identity used for the session and profile")
	logPath := flag.String("log", "", "append every turn to this CSV file")
	defs := flag.String("definitions", "definitions", "directory holding bot.yaml")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logx.Init(*level, logx.UseColor(os.Getenv("APP_ENV")))

	if *stats != "" {
		if err := printStats(os.Stdout, *stats); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadFromDir(*defs)
	if err != nil {
		logx.Warn("CLI", "using built-in definitions: %v", err)
		cfg = config.Default()
	}

	var turnLog agent.TurnLogger
	if *logPath != "" {
		turnLog = chatlog.NewCSVLogger(*logPath)
	}
	engine := agent.NewEngine(cfg, profile.NewMemoryStore(), turnLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repl(ctx, os.Stdin, os.Stdout, engine, convo.NewSession(*user)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type processor interface {
	Process(ctx context.Context, sess *convo.Session, text string, when time.Time) agent.Result
}

// repl answers one line at a time until EOF, an exit word or cancellation.
func repl(ctx context.Context, in io.Reader, out io.Writer, p processor, sess *convo.Session) error {
	fmt.Fprintln(out, "💬 Asistente financiero. Escribí 'salir' para terminar.")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if exitWords[strings.ToLower(line)] {
			fmt.Fprintln(out, "¡Hasta luego! 👋")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		res := p.Process(ctx, sess, line, time.Time{})
		fmt.Fprintf(out, "[%s] %s\n\n", res.Scenario, res.Reply)
	}
}

func printStats(out io.Writer, path string) error {
	records, err := chatlog.ReadFile(path)
	if err != nil {
		return err
	}
	st := chatlog.Summarize(records)

	fmt.Fprintf(out, "Turnos: %d\n", st.Total)
	if st.Total == 0 {
		return nil
	}
	fmt.Fprintf(out, "Desde %s hasta %s\n", st.First.Format(time.RFC3339), st.Last.Format(time.RFC3339))

	section := func(title string, m map[string]int) {
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, c := range chatlog.Ranked(m) {
			fmt.Fprintf(out, "  %-12s %5d  (%.1f%%)\n", c.Key, c.N, float64(c.N)*100/float64(st.Total))
		}
	}
	section("Escenarios", st.Scenarios)
	section("Sentimientos", st.Sentiments)
	section("Emociones", st.Emotions)

	if len(st.Suspects) > 0 {
		fmt.Fprintf(out, "\nPosibles errores de clasificación (%d):\n", len(st.Suspects))
		for _, s := range st.Suspects {
			fmt.Fprintf(out, "  %q -> esperado %s\n", s.User, s.Expected)
		}
	}
	return nil
}
