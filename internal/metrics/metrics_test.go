package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeKey(t *testing.T) {
	require.Equal(t, labelsKey(""), makeKey(nil))
	require.Equal(t, labelsKey(`a="1",b="x\"y"`), makeKey(map[string]string{"b": `x"y`, "a": "1"}))
}

func TestCounterAndSummary(t *testing.T) {
	c := NewCounterVec("t_total", "test", "k")
	c.Inc(map[string]string{"k": "v"})
	c.Add(map[string]string{"k": "v"}, 2)
	require.Equal(t, 3.0, c.Get(map[string]string{"k": "v"}))
	require.Zero(t, c.Get(map[string]string{"k": "other"}))

	s := NewSummaryVec("t_seconds", "test", "k")
	s.Observe(map[string]string{"k": "v"}, 0.5)
	s.Observe(map[string]string{"k": "v"}, 1.5)
	require.Equal(t, 2.0, s.Count(map[string]string{"k": "v"}))

	var b strings.Builder
	c.write(&b)
	s.write(&b)
	out := b.String()
	require.Contains(t, out, `t_total{k="v"} 3`)
	require.Contains(t, out, `t_seconds_sum{k="v"} 2`)
	require.Contains(t, out, `t_seconds_count{k="v"} 2`)
}

func TestCounterOutputSorted(t *testing.T) {
	c := NewCounterVec("s_total", "sorted", "k")
	for _, v := range []string{"c", "a", "b"} {
		c.Inc(map[string]string{"k": v})
	}
	var b strings.Builder
	c.write(&b)
	out := b.String()
	ia, ib, ic := strings.Index(out, `"a"`), strings.Index(out, `"b"`), strings.Index(out, `"c"`)
	require.True(t, ia < ib && ib < ic, out)
}

func TestServeHTTP(t *testing.T) {
	Turns.Inc(map[string]string{"scenario": "ahorro", "stage": "direct_keyword"})
	SessionsSwept.Inc(nil)

	w := httptest.NewRecorder()
	ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, "text/plain; version=0.0.4", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Contains(t, body, "# TYPE finbot_turns_total counter")
	require.Contains(t, body, `finbot_turns_total{scenario="ahorro",stage="direct_keyword"}`)
	require.Contains(t, body, "finbot_sessions_swept_total ")
	require.Contains(t, body, "# TYPE finbot_http_request_seconds summary")
}
