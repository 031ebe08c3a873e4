package httpkit

import "net/http"

// Get registers a no-body JSON handler for GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetHead registers h for GET and HEAD; HEAD answers with headers only
func GetHead(r Router, path string, h func(*http.Request) (any, error)) {
	handler := Call(h)
	r.Get(path, handler)
	r.Head(path, func(w http.ResponseWriter, req *http.Request) {
		handler(headOnly{w}, req)
	})
}

type headOnly struct{ http.ResponseWriter }

func (headOnly) Write(b []byte) (int, error) { return len(b), nil }
