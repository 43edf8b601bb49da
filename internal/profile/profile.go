// Package profile stores the financial profile of each end user. The bot only
// reads and patches profiles; it never owns their persistence.
package profile

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("perfil no encontrado")

type Profile struct {
	Identity        string    `json:"identity"`
	Name            string    `json:"name,omitempty"`
	MonthlyIncome   float64   `json:"monthly_income"`
	TotalDebt       float64   `json:"total_debt"`
	SavingsGoal     float64   `json:"savings_goal"`
	SavingsPurpose  string    `json:"savings_purpose,omitempty"`
	CurrentSavings  float64   `json:"current_savings"`
	RiskProfile     string    `json:"risk_profile,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

// Fields is a partial update; nil pointers leave the stored value untouched.
type Fields struct {
	MonthlyIncome  *float64
	TotalDebt      *float64
	SavingsGoal    *float64
	SavingsPurpose *string
	RiskProfile    *string
}

func (f Fields) Empty() bool {
	return f.MonthlyIncome == nil && f.TotalDebt == nil && f.SavingsGoal == nil &&
		f.SavingsPurpose == nil && f.RiskProfile == nil
}

func (f Fields) apply(p *Profile) {
	if f.MonthlyIncome != nil {
		p.MonthlyIncome = *f.MonthlyIncome
	}
	if f.TotalDebt != nil {
		p.TotalDebt = *f.TotalDebt
	}
	if f.SavingsGoal != nil {
		p.SavingsGoal = *f.SavingsGoal
	}
	if f.SavingsPurpose != nil {
		p.SavingsPurpose = *f.SavingsPurpose
	}
	if f.RiskProfile != nil {
		p.RiskProfile = *f.RiskProfile
	}
}

// MemoryStore keeps profiles in a map. It is the default when no database is
// configured and is handy in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Profile
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Profile), now: time.Now}
}

func (s *MemoryStore) Fetch(_ context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) Upsert(_ context.Context, id string, f Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p, ok := s.data[id]
	if !ok {
		p = Profile{Identity: id, CreatedAt: now}
	}
	f.apply(&p)
	p.LastInteraction = now
	s.data[id] = p
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// Float and String build Fields values inline.
func Float(v float64) *float64 { return &v }

func String(v string) *string { return &v }
