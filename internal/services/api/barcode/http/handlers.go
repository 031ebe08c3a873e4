// Package http provides http transport for barcode lookups
package http

import (
	stdhttp "net/http"

	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/platform/net/http/bind"
	"foodproxy/internal/services/api/barcode/domain"
	svc "foodproxy/internal/services/api/barcode/service"
)

var lookupMessages = bind.Messages{"code.required": "Missing barcode"}

// Register mounts the barcode endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.lookup)
	httpkit.Get(r, "/{code}", h.lookup)
}

type handlers struct{ svc svc.Service }

// @Summary Open Food Facts product by barcode
// @Tags Barcode
// @Produce json
// @Param code path string true "barcode"
// @Success 200 {object} domain.ItemResult
// @Failure 404 {object} errors.Wire "Product not found"
// @Router /api/barcode/{code} [get]
func (h *handlers) lookup(r *stdhttp.Request) (any, error) {
	in := domain.LookupInput{Code: httpkit.Param(r, "code")}
	if err := bind.Validate(in, lookupMessages); err != nil {
		return nil, err
	}
	return h.svc.Lookup(r.Context(), in)
}
