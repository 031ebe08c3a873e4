// Package service contains the foods workflows
package service

import (
	"context"

	"foodproxy/internal/adapters/upstream/fdc"
	"foodproxy/internal/core/nutrition"
	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/metrics"
	"foodproxy/internal/services/api/foods/domain"
)

// Client facing messages for failed upstream calls
const (
	MsgSearchFailed = "USDA proxy failed"
	MsgDetailFailed = "USDA detail failed"
)

// Service defines the service contract for foods
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	src     domain.FoodSource
	metrics *metrics.Registry
}

// New creates a foods service; reg may be nil
func New(src domain.FoodSource, reg *metrics.Registry) *Svc {
	if src == nil {
		panic("foods.Service requires a non nil FoodSource")
	}
	return &Svc{src: src, metrics: reg}
}

// Search runs a FoodData Central search and normalizes every hit
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResult, error) {
	res, err := s.src.Search(ctx, in.Q, in.PageSize, in.PageNumber)
	if err != nil {
		return domain.SearchResult{}, perr.WithOp(perr.WithMessage(err, MsgSearchFailed), "foods.search")
	}
	items := make([]nutrition.FoodItem, 0, len(res.Foods))
	for _, f := range res.Foods {
		items = append(items, nutrition.NormalizeFood(f))
	}
	s.metrics.Normalized(string(nutrition.SourceFDC), len(items))
	return domain.SearchResult{
		TotalHits:  res.TotalHits,
		PageNumber: res.CurrentPage,
		Items:      items,
	}, nil
}

// Detail fetches and normalizes one record
func (s *Svc) Detail(ctx context.Context, in domain.DetailInput) (domain.ItemResult, error) {
	f, err := s.src.Food(ctx, in.FdcID)
	if err != nil {
		return domain.ItemResult{}, perr.WithOp(perr.WithMessage(err, MsgDetailFailed), "foods.detail")
	}
	item := nutrition.NormalizeFood(f)
	s.metrics.Normalized(string(nutrition.SourceFDC), 1)
	return domain.ItemResult{Item: item}, nil
}

// Ready fails when the source needs an api key and has none
func (s *Svc) Ready(context.Context) (string, error) {
	if k, ok := s.src.(interface{ HasKey() bool }); ok && !k.HasKey() {
		return fdc.Source, perr.Unavailablef("USDA_FDC_API_KEY is not set")
	}
	return fdc.Source, nil
}
