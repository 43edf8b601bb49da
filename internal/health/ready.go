package health

import (
	"context"
	"net/http"
	"time"

	"github.com/rAmIro-89/finance-assistant-bot/internal/runtime"
)

const pingTimeout = 2 * time.Second

func ReadyHandler(rt *runtime.Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !rt.DefinitionsLoaded {
			http.Error(w, "definitions not loaded", http.StatusServiceUnavailable)
			return
		}

		if rt.ProfileStore != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()
			if err := rt.ProfileStore.Ping(ctx); err != nil {
				http.Error(w, "profile store unreachable", http.StatusServiceUnavailable)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}
}
