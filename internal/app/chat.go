package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rAmIro-89/finance-assistant-bot/internal/agent"
	"github.com/rAmIro-89/finance-assistant-bot/internal/config"
	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/guard"
	"github.com/rAmIro-89/finance-assistant-bot/internal/logx"
	"github.com/rAmIro-89/finance-assistant-bot/internal/metrics"
	"github.com/rAmIro-89/finance-assistant-bot/internal/session"
)

// Max request size for POST /chat (1MB)
const maxChatBodyBytes int64 = 1 << 20

const (
	identityHeader = "X-User-ID"
	identityCookie = "finbot_uid"
)

type processor interface {
	Process(ctx context.Context, sess *convo.Session, text string, when time.Time) agent.Result
}

type chatHandler struct {
	engine   processor
	sessions *session.Registry
	maxLen   int

	apiKey string
	rl     struct {
		Window  time.Duration
		Limit   int
		mu      sync.Mutex
		buckets map[string]*rateBucket
	}
}

func newChatHandler(engine processor, sessions *session.Registry, maxLen int, env *config.EnvVars) *chatHandler {
	h := &chatHandler{engine: engine, sessions: sessions, maxLen: maxLen}
	h.rl.Window = time.Minute
	h.rl.Limit = 60
	if env != nil {
		h.apiKey = strings.TrimSpace(env.APIKey)
		if env.RateWindow > 0 {
			h.rl.Window = env.RateWindow
		}
		if env.RateLimit > 0 {
			h.rl.Limit = env.RateLimit
		}
	}
	h.rl.buckets = make(map[string]*rateBucket)
	return h
}

func (h *chatHandler) register(mux *http.ServeMux) {
	mux.HandleFunc("/chat", h.handleChat)
}

// rateBucket tracks hits in a fixed window
type rateBucket struct {
	start time.Time
	hits  int
}

var errRateLimited = errors.New("rate limit exceeded")

func (h *chatHandler) acquireRL(key string) error {
	if key == "" {
		key = "anon"
	}
	h.rl.mu.Lock()
	defer h.rl.mu.Unlock()

	b, ok := h.rl.buckets[key]
	now := time.Now()
	if !ok || now.Sub(b.start) >= h.rl.Window {
		h.rl.buckets[key] = &rateBucket{start: now, hits: 1}
		return nil
	}
	if b.hits >= h.rl.Limit {
		return errRateLimited
	}
	b.hits++
	return nil
}

// getClientKey picks an identifier for rate limiting: API key if present, else IP
func getClientKey(r *http.Request) string {
	if k := r.Header.Get("X-API-Key"); k != "" {
		return "key:" + k
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return "key:" + strings.TrimSpace(auth[7:])
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return "ip:" + host
}

// checkAuth enforces the API key when one is configured.
func (h *chatHandler) checkAuth(r *http.Request) bool {
	if h.apiKey == "" {
		return true
	}
	if k := r.Header.Get("X-API-Key"); k != "" && k == h.apiKey {
		return true
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:]) == h.apiKey
	}
	return false
}

// identity resolves who is talking: body, header, cookie, else a fresh
// cookie. ok is false when an explicit identity is malformed.
func identity(w http.ResponseWriter, r *http.Request, fromBody string) (string, bool) {
	if fromBody != "" {
		return fromBody, true
	}
	if id := strings.TrimSpace(r.Header.Get(identityHeader)); id != "" {
		return id, guard.ValidIdentity(id)
	}
	if c, err := r.Cookie(identityCookie); err == nil && guard.ValidIdentity(c.Value) {
		return c.Value, true
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     identityCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return id, true
}

func (h *chatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !h.checkAuth(r) {
		w.Header().Set("WWW-Authenticate", "Bearer, X-API-Key")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.acquireRL(getClientKey(r)); err != nil {
		metrics.RateLimited.Inc(map[string]string{"path": "/chat"})
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	var req guard.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, "invalid request body", status)
		return
	}
	if err := guard.ValidateChatRequest(req, h.maxLen); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, ok := identity(w, r, req.UserID)
	if !ok {
		http.Error(w, "user_id no válido", http.StatusBadRequest)
		return
	}

	var res agent.Result
	err := h.sessions.Do(r.Context(), id, func(s *convo.Session) error {
		res = h.engine.Process(r.Context(), s, req.Message, time.Time{})
		return nil
	})
	if err != nil {
		logx.Warn("Chat", "id=%s session unavailable: %v", id, err)
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
