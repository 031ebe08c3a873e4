package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof and expvar under prefix, e.g. /debug/pprof/heap
// responses are marked uncacheable since profiles are point in time
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := mw.NoCache(stdhttp.StripPrefix(prefix, mw.Profiler()))
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
