// Package swaggerkit serves the embedded OpenAPI document and Swagger UI
package swaggerkit

import (
	_ "embed"
	"net/http"

	phttp "foodproxy/internal/platform/net/http"
	"foodproxy/internal/platform/net/middleware"
)

const (
	// Prefix is where the UI lives
	Prefix = "/api/docs"
	// DocPath is where the UI loads the document from
	DocPath = Prefix + "/doc.json"
)

//go:embed openapi.json
var doc []byte

// Doc returns the embedded OpenAPI document
func Doc() []byte { return doc }

// Mount the Swagger UI and JSON document if enabled
// the UI needs inline scripts, so its routes get a relaxed CSP
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docs := r.With(middleware.SetHeader("Content-Security-Policy", middleware.DocsCSP))
	docs.Get(Prefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, Prefix+"/index.html", http.StatusPermanentRedirect)
	})
	docs.Get(DocPath, serveDoc)
	phttp.MountSwagger(docs, Prefix, DocPath, true)
}

func serveDoc(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(doc)
}
