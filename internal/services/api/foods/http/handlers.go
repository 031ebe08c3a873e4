// Package http provides http transport for foods
package http

import (
	stdhttp "net/http"

	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/platform/net/http/bind"
	"foodproxy/internal/services/api/foods/domain"
	svc "foodproxy/internal/services/api/foods/service"
)

var (
	searchMessages = bind.Messages{"q.required": "Missing query ?q="}
	detailMessages = bind.Messages{"fdcId.required": "Missing fdcId"}
)

// Register mounts foods endpoints on the given router
// /search is static so it wins over /{fdcId}
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/search", h.search)
	httpkit.Get(r, "/", h.detail)
	httpkit.Get(r, "/{fdcId}", h.detail)
}

type handlers struct{ svc svc.Service }

// @Summary Search FoodData Central
// @Tags Foods
// @Produce json
// @Param q query string true "search terms"
// @Param pageSize query int false "1..200, default 25"
// @Param pageNumber query int false ">= 1, default 1"
// @Success 200 {object} domain.SearchResult
// @Router /api/foods/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	in := domain.SearchInput{
		Q:          bind.Query(r, "q"),
		PageSize:   bind.QueryInt(r, "pageSize", domain.DefaultPageSize, 1, domain.MaxPageSize),
		PageNumber: bind.QueryInt(r, "pageNumber", domain.DefaultPageNumber, 1, 0),
	}
	if err := bind.Validate(in, searchMessages); err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), in)
}

// @Summary FoodData Central record by id
// @Tags Foods
// @Produce json
// @Param fdcId path string true "numeric id"
// @Success 200 {object} domain.ItemResult
// @Router /api/foods/{fdcId} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	in := domain.DetailInput{FdcID: httpkit.Param(r, "fdcId")}
	if err := bind.Validate(in, detailMessages); err != nil {
		return nil, err
	}
	return h.svc.Detail(r.Context(), in)
}
