package logx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phsym/console-slog"
)

// Preinit installs a console handler so anything logged before the
// configuration is loaded still reaches stderr.
func Preinit() {
	Init("debug", UseColor(os.Getenv("APP_ENV")))
}

// Init installs the console handler as the slog default.
func Init(level string, color bool) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:   ParseLevel(level),
		NoColor: !color,
	})))
}

// UseColor is true for local and dev environments.
func UseColor(env string) bool {
	return env == "local" || env == "dev"
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// --- Public API ---

func Debug(component, msg string, args ...any) {
	logGeneric(slog.LevelDebug, component, msg, args...)
}

func Info(component, msg string, args ...any) {
	logGeneric(slog.LevelInfo, component, msg, args...)
}

func Warn(component, msg string, args ...any) {
	logGeneric(slog.LevelWarn, component, msg, args...)
}

func Error(component, msg string, args ...any) {
	logGeneric(slog.LevelError, component, msg, args...)
}

// --- Core ---

func logGeneric(level slog.Level, component, msg string, args ...any) {
	l := slog.Default()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(msg, args...), slog.String("component", component))
}
