package health

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rAmIro-89/finance-assistant-bot/internal/runtime"
)

type fakeStore struct{ pingErr error }

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

var _ runtime.Pinger = (*fakeStore)(nil)

func TestLiveHandler_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	w := httptest.NewRecorder()

	LiveHandler(w, req)

	res := w.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) == "" {
		t.Fatalf("expected non-empty body")
	}
}

func TestReadyHandler_DefinitionsNotLoaded(t *testing.T) {
	rt := &runtime.Runtime{DefinitionsLoaded: false, ProfileStore: &fakeStore{}}
	h := ReadyHandler(rt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	h(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestReadyHandler_StoreUnreachable(t *testing.T) {
	rt := &runtime.Runtime{DefinitionsLoaded: true, ProfileStore: &fakeStore{pingErr: errors.New("locked")}}
	h := ReadyHandler(rt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	h(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestReadyHandler_OK(t *testing.T) {
	for _, rt := range []*runtime.Runtime{
		{DefinitionsLoaded: true, ProfileStore: &fakeStore{}},
		{DefinitionsLoaded: true},
	} {
		h := ReadyHandler(rt)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		h(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body, _ := io.ReadAll(w.Body)
		if string(body) == "" {
			t.Fatalf("expected non-empty body")
		}
	}
}
