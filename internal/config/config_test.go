package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rAmIro-89/finance-assistant-bot/internal/calc"
)

// chdirToRepoRoot ensures relative paths like "definitions/..." resolve during tests
func chdirToRepoRoot(t *testing.T) {
	t.Helper()
	_, file, _, _ := runtime.Caller(0)
	// internal/config/config_test.go -> repo root is two levels up
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "../.."))
	wd, _ := os.Getwd()
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir to repo root: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeDefs(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write defs: %v", err)
	}
	return dir
}

func TestLoadFromDir_Success(t *testing.T) {
	chdirToRepoRoot(t)
	cfg, err := LoadFromDir("definitions")
	if err != nil {
		t.Fatalf("LoadFromDir returned error: %v", err)
	}

	require.Equal(t, 0.85, cfg.Classifier.FuzzyThreshold)
	require.Equal(t, 12.0, cfg.Investment.DefaultRate)
	require.Equal(t, 12, cfg.Calculator.DefaultLoanMonths)
	require.Equal(t, 50, cfg.Calculator.MaxYears)
	require.Equal(t, 2000, cfg.Limits.MaxMessageLen)
	require.Equal(t, calc.DefaultInstruments, cfg.Instruments)
}

func TestLoadFromDir_NotFound(t *testing.T) {
	chdirToRepoRoot(t)
	if _, err := LoadFromDir("non-existent-dir-12345"); err == nil {
		t.Fatalf("expected error when loading from non-existent dir")
	}
}

func TestLoadFromDir_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeDefs(t, "classifier:\n  fuzzy_threshold: 0.9\ninstruments:\n  - {name: Caja, rate: 3, risk: Bajo}\n")
	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.Equal(t, 0.9, cfg.Classifier.FuzzyThreshold)
	require.Equal(t, 5.0, cfg.Calculator.DefaultYears)
	require.Equal(t, []calc.Instrument{{Name: "Caja", Rate: 3, Risk: "Bajo"}}, cfg.Instruments)
}

func TestLoadFromDir_ZeroOverridesDefault(t *testing.T) {
	dir := writeDefs(t, "calculator:\n  default_loan_rate: 0\n")
	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.Calculator.DefaultLoanRate)
	require.Equal(t, 12, cfg.Calculator.DefaultLoanMonths)
	require.Equal(t, 50, cfg.Calculator.MaxYears)
	require.Equal(t, calc.DefaultInstruments, cfg.Instruments)
}

func TestLoadFromDir_Invalid(t *testing.T) {
	cases := map[string]string{
		"threshold above one": "classifier:\n  fuzzy_threshold: 1.5\n",
		"instrument no name":  "instruments:\n  - {rate: 3, risk: Bajo}\n",
		"withdrawal too big":  "retirement:\n  safe_withdrawal: 2\n",
		"no max years":        "calculator:\n  max_years: 0\n",
		"broken yaml":         "classifier: [\n",
	}
	for name, body := range cases {
		if _, err := LoadFromDir(writeDefs(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())

	// the default table is a copy
	d := Default()
	d.Instruments[0].Rate = 99
	require.NotEqual(t, 99.0, calc.DefaultInstruments[0].Rate)
}

func TestLoadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "7070")
	t.Setenv("CHAT_LOG", "-")
	t.Setenv("RATE_WINDOW", "30s")

	env, err := LoadEnv()
	require.NoError(t, err)
	require.Equal(t, 7070, env.Port)
	require.Equal(t, "dev", env.AppEnv)
	require.Equal(t, "definitions", env.DefinitionsDir)
	require.Equal(t, 60, env.RateLimit)
	require.Equal(t, 30*time.Second, env.RateWindow)
	require.Equal(t, 2*time.Hour, env.SessionTTL)
	require.True(t, env.ChatLogDisabled())
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nAPI_KEY=secret\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("API_KEY", "")
	os.Unsetenv("API_KEY")

	env, err := LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "warn", env.LogLevel)
	require.Equal(t, "secret", env.APIKey)
	os.Unsetenv("API_KEY")
}

func TestLoadEnv_BadValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "not-a-number")
	_, err := LoadEnv()
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
