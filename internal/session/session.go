// Package session maps end-user identities to their conversation state and
// serializes turns per identity.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/logx"
	"github.com/rAmIro-89/finance-assistant-bot/internal/metrics"
)

// Backend holds sessions between turns. Implementations must be safe for
// concurrent use; the Registry guarantees a single writer per identity.
type Backend interface {
	Load(id string) (*convo.Session, bool)
	Store(s *convo.Session)
	Delete(id string)
	Range(fn func(s *convo.Session) bool)
}

type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]*convo.Session
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]*convo.Session)}
}

func (b *MemoryBackend) Load(id string) (*convo.Session, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.data[id]
	return s, ok
}

func (b *MemoryBackend) Store(s *convo.Session) {
	b.mu.Lock()
	b.data[s.ID] = s
	b.mu.Unlock()
}

func (b *MemoryBackend) Delete(id string) {
	b.mu.Lock()
	delete(b.data, id)
	b.mu.Unlock()
}

// Range iterates over a snapshot so fn may call Delete.
func (b *MemoryBackend) Range(fn func(s *convo.Session) bool) {
	b.mu.RLock()
	snap := make([]*convo.Session, 0, len(b.data))
	for _, s := range b.data {
		snap = append(snap, s)
	}
	b.mu.RUnlock()
	for _, s := range snap {
		if !fn(s) {
			return
		}
	}
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

type Registry struct {
	backend Backend
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewRegistry uses a MemoryBackend when backend is nil.
func NewRegistry(backend Backend) *Registry {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	return &Registry{backend: backend, now: time.Now, locks: make(map[string]*lockEntry)}
}

func (r *Registry) acquire(id string) *lockEntry {
	r.mu.Lock()
	e, ok := r.locks[id]
	if !ok {
		e = &lockEntry{}
		r.locks[id] = e
	}
	e.refs++
	r.mu.Unlock()
	e.mu.Lock()
	return e
}

func (r *Registry) release(id string, e *lockEntry) {
	e.mu.Unlock()
	r.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(r.locks, id)
	}
	r.mu.Unlock()
}

// Do runs fn with the session for id, creating it on first use. Calls for
// the same id run one at a time; different ids run in parallel. The session
// is stored back even when fn fails.
func (r *Registry) Do(ctx context.Context, id string, fn func(*convo.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := r.acquire(id)
	defer r.release(id, e)

	s, ok := r.backend.Load(id)
	if !ok {
		s = convo.NewSession(id)
	}
	err := fn(s)
	s.LastSeen = r.now()
	r.backend.Store(s)
	return err
}

// Get returns a copy of the stored state, mainly for diagnostics.
func (r *Registry) Get(id string) (convo.State, bool) {
	e := r.acquire(id)
	defer r.release(id, e)
	s, ok := r.backend.Load(id)
	if !ok {
		return convo.State{}, false
	}
	return s.State, true
}

// Sweep drops sessions idle for longer than ttl. Sessions with a turn in
// flight are skipped.
func (r *Registry) Sweep(now time.Time, ttl time.Duration) int {
	var stale []string
	r.backend.Range(func(s *convo.Session) bool {
		if now.Sub(s.LastSeen) > ttl {
			stale = append(stale, s.ID)
		}
		return true
	})

	removed := 0
	for _, id := range stale {
		r.mu.Lock()
		_, busy := r.locks[id]
		if !busy {
			if s, ok := r.backend.Load(id); ok && now.Sub(s.LastSeen) > ttl {
				r.backend.Delete(id)
				removed++
			}
		}
		r.mu.Unlock()
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is cancelled.
func (r *Registry) RunJanitor(ctx context.Context, every, ttl time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := r.Sweep(r.now(), ttl); n > 0 {
				metrics.SessionsSwept.Add(nil, float64(n))
				logx.Debug("Session", "swept %d idle sessions", n)
			}
		}
	}
}
