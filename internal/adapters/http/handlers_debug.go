package web

import (
	"net/http"
	"strconv"
	"time"
)

// defaultPerfWindow is how far back /debug/perf looks without a ?minutes= parameter.
const defaultPerfWindow = 15 * time.Minute

// handleDebugPerf handles GET /debug/perf (JSON snapshot of the perf collector). Wrapped in RequireAuth.
func handleDebugPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collector disabled", http.StatusNotFound)
		return
	}

	window := defaultPerfWindow
	if m, err := strconv.Atoi(r.URL.Query().Get("minutes")); err == nil && m > 0 {
		window = time.Duration(m) * time.Minute
	}
	topN := 10
	if n, err := strconv.Atoi(r.URL.Query().Get("top")); err == nil && n > 0 {
		topN = n
	}

	writeJSON(w, http.StatusOK, perfCollector.Snapshot(timeNow().Add(-window), topN))
}
