package http

import (
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves Swagger UI under prefix, so "/api/docs" answers at /api/docs/index.html
// the UI loads its document from docURL and opens with operations listed, not expanded
func MountSwagger(r Router, prefix, docURL string, enabled bool) {
	if !enabled {
		return
	}
	r.Handle(prefix+"/*", httpSwagger.Handler(
		httpSwagger.URL(docURL),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))
}
