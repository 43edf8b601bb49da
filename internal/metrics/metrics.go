package metrics

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// A very small in-process metrics registry that exports Prometheus-like text.
// It supports counters and simple summaries (count/sum), with labeled samples.

type labelsKey string

func makeKey(lbls map[string]string) labelsKey {
	if len(lbls) == 0 {
		return labelsKey("")
	}
	keys := make([]string, 0, len(lbls))
	for k := range lbls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		// escape quotes
		v := strings.ReplaceAll(lbls[k], "\"", "\\\"")
		b.WriteString("\"")
		b.WriteString(v)
		b.WriteString("\"")
	}
	return labelsKey(b.String())
}

func sortedKeys(m map[labelsKey]float64) []labelsKey {
	keys := make([]labelsKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type CounterVec struct {
	Name       string
	Help       string
	mu         sync.RWMutex
	labelNames []string
	values     map[labelsKey]float64
}

func NewCounterVec(name, help string, labelNames ...string) *CounterVec {
	return &CounterVec{Name: name, Help: help, labelNames: labelNames, values: make(map[labelsKey]float64)}
}

func (cv *CounterVec) Inc(lbls map[string]string) {
	cv.Add(lbls, 1)
}

func (cv *CounterVec) Add(lbls map[string]string, v float64) {
	key := makeKey(lbls)
	cv.mu.Lock()
	cv.values[key] += v
	cv.mu.Unlock()
}

// Get returns the current value for the label set, 0 if never incremented.
func (cv *CounterVec) Get(lbls map[string]string) float64 {
	key := makeKey(lbls)
	cv.mu.RLock()
	defer cv.mu.RUnlock()
	return cv.values[key]
}

func (cv *CounterVec) write(w io.Writer) {
	fmt.Fprintf(w, "# HELP %s %s\n", cv.Name, cv.Help)
	fmt.Fprintf(w, "# TYPE %s counter\n", cv.Name)
	cv.mu.RLock()
	defer cv.mu.RUnlock()
	for _, key := range sortedKeys(cv.values) {
		if key == "" {
			fmt.Fprintf(w, "%s %g\n", cv.Name, cv.values[key])
		} else {
			fmt.Fprintf(w, "%s{%s} %g\n", cv.Name, key, cv.values[key])
		}
	}
}

// SummaryVec stores count and sum; we export metric_count and metric_sum.
type SummaryVec struct {
	Name       string
	Help       string
	mu         sync.RWMutex
	labelNames []string
	count      map[labelsKey]float64
	sum        map[labelsKey]float64
}

func NewSummaryVec(name, help string, labelNames ...string) *SummaryVec {
	return &SummaryVec{Name: name, Help: help, labelNames: labelNames, count: make(map[labelsKey]float64), sum: make(map[labelsKey]float64)}
}

func (sv *SummaryVec) Observe(lbls map[string]string, v float64) {
	key := makeKey(lbls)
	sv.mu.Lock()
	sv.count[key] += 1
	sv.sum[key] += v
	sv.mu.Unlock()
}

// Count returns how many observations were made for the label set.
func (sv *SummaryVec) Count(lbls map[string]string) float64 {
	key := makeKey(lbls)
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	return sv.count[key]
}

func (sv *SummaryVec) write(w io.Writer) {
	// Prometheus summary convention: name_sum and name_count
	fmt.Fprintf(w, "# HELP %s %s\n", sv.Name, sv.Help)
	fmt.Fprintf(w, "# TYPE %s summary\n", sv.Name)
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	for _, key := range sortedKeys(sv.count) {
		cnt, sum := sv.count[key], sv.sum[key]
		if key == "" {
			fmt.Fprintf(w, "%s_sum %g\n", sv.Name, sum)
			fmt.Fprintf(w, "%s_count %g\n", sv.Name, cnt)
		} else {
			fmt.Fprintf(w, "%s_sum{%s} %g\n", sv.Name, key, sum)
			fmt.Fprintf(w, "%s_count{%s} %g\n", sv.Name, key, cnt)
		}
	}
}

// Global metrics we care about
var (
	HTTPRequests = NewCounterVec("finbot_http_requests_total", "Total HTTP requests", "method", "path", "status")
	HTTPDuration = NewSummaryVec("finbot_http_request_seconds", "HTTP request duration seconds", "method", "path", "status")
	RateLimited  = NewCounterVec("finbot_rate_limited_total", "Requests rejected by the rate limiter", "path")

	Turns        = NewCounterVec("finbot_turns_total", "Processed turns by scenario and deciding classifier stage", "scenario", "stage")
	TurnDuration = NewSummaryVec("finbot_turn_seconds", "Turn processing duration seconds", "scenario")

	CollaboratorFailures = NewCounterVec("finbot_collaborator_failures_total", "Profile store and turn log failures", "collaborator", "op")
	SessionsSwept        = NewCounterVec("finbot_sessions_swept_total", "Idle sessions removed by the janitor")
)

// ServeHTTP exposes all metrics in Prometheus text format.
func ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	WriteTo(w)
}

// WriteTo dumps every registered metric in a stable order.
func WriteTo(w io.Writer) {
	HTTPRequests.write(w)
	HTTPDuration.write(w)
	RateLimited.write(w)
	Turns.write(w)
	TurnDuration.write(w)
	CollaboratorFailures.write(w)
	SessionsSwept.write(w)
}
