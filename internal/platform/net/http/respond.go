// Package http provides the router facade, server and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/logger"
	pnet "foodproxy/internal/platform/net"
)

// JSON writes v as application/json with the given status
// v is encoded before the header goes out; a value that cannot be encoded answers 500
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Get().Error().Err(err).Int("status", status).Msg("response encode failed")
		status = stdhttp.StatusInternalServerError
		b, _ = json.Marshal(perr.Wire{Error: stdhttp.StatusText(status)})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

// RespondOK writes data as a bare 200 JSON body
func RespondOK(w stdhttp.ResponseWriter, _ *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps err to a status and client facing body and writes it
// server side failures are logged with the request id
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.ErrorReply(err)
	if status >= stdhttp.StatusInternalServerError || perr.IsCode(err, perr.ErrorCodeUpstream) {
		evt := logger.C(r.Context()).Error()
		if status < stdhttp.StatusInternalServerError {
			evt = logger.C(r.Context()).Warn()
		}
		evt.Err(err).
			Int("status", status).
			Str("code", perr.CodeOf(err).String()).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	JSON(w, status, body)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Status returns a response with an explicit status
func Status(status int, data any) Response { return Response{Status: status, Body: data} }

// Error returns a response that maps the error to status and body
func Error(err error) Response { return Response{Body: err} }
