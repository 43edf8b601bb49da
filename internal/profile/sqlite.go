package profile

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/oops"
)

//go:embed schema.sql
var schemaSQL string

const timeLayout = time.RFC3339

// SQLiteStore persists profiles in a single SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the database file if needed and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	errb := oops.In("profile").With("path", path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errb.Wrapf(err, "create directory")
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errb.Wrapf(err, "open database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errb.Wrapf(err, "ping database")
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errb.Wrapf(err, "apply schema")
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Fetch(ctx context.Context, id string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT identity, name, monthly_income, total_debt, savings_goal, savings_purpose,
		       current_savings, risk_profile, notes, created_at, last_interaction
		FROM users WHERE identity = ?`, id)

	var (
		p                 Profile
		created, lastSeen string
	)
	err := row.Scan(&p.Identity, &p.Name, &p.MonthlyIncome, &p.TotalDebt, &p.SavingsGoal,
		&p.SavingsPurpose, &p.CurrentSavings, &p.RiskProfile, &p.Notes, &created, &lastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, oops.In("profile").With("identity", id).Wrapf(err, "fetch profile")
	}
	p.CreatedAt, _ = time.Parse(timeLayout, created)
	p.LastInteraction, _ = time.Parse(timeLayout, lastSeen)
	return &p, nil
}

// Upsert creates the row on first use and patches the non-nil fields.
func (s *SQLiteStore) Upsert(ctx context.Context, id string, f Fields) error {
	errb := oops.In("profile").With("identity", id)
	now := s.now().UTC().Format(timeLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errb.Wrapf(err, "begin upsert")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (identity, created_at, last_interaction) VALUES (?, ?, ?)`,
		id, now, now); err != nil {
		return errb.Wrapf(err, "insert profile")
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET
			monthly_income   = COALESCE(?, monthly_income),
			total_debt       = COALESCE(?, total_debt),
			savings_goal     = COALESCE(?, savings_goal),
			savings_purpose  = COALESCE(?, savings_purpose),
			risk_profile     = COALESCE(?, risk_profile),
			last_interaction = ?
		WHERE identity = ?`,
		f.MonthlyIncome, f.TotalDebt, f.SavingsGoal, f.SavingsPurpose, f.RiskProfile, now, id); err != nil {
		return errb.Wrapf(err, "update profile")
	}
	if err := tx.Commit(); err != nil {
		return errb.Wrapf(err, "commit upsert")
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return oops.In("profile").Wrapf(err, "ping")
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
