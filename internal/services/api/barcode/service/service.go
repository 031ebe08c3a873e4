// Package service contains the barcode lookup workflow
package service

import (
	"context"

	"foodproxy/internal/adapters/upstream/off"
	"foodproxy/internal/core/nutrition"
	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/metrics"
	"foodproxy/internal/services/api/barcode/domain"
)

// MsgLookupFailed is the client facing message for a failed upstream call
const MsgLookupFailed = "OFF proxy failed"

// Service defines the service contract for barcode lookups
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	src     domain.ProductSource
	metrics *metrics.Registry
}

// New creates a barcode service; reg may be nil
func New(src domain.ProductSource, reg *metrics.Registry) *Svc {
	if src == nil {
		panic("barcode.Service requires a non nil ProductSource")
	}
	return &Svc{src: src, metrics: reg}
}

// Lookup fetches a product by barcode and normalizes it
// a lookup that finds no product stays a not found error
func (s *Svc) Lookup(ctx context.Context, in domain.LookupInput) (domain.ItemResult, error) {
	p, err := s.src.Product(ctx, in.Code)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.ItemResult{}, err
		}
		return domain.ItemResult{}, perr.WithOp(perr.WithMessage(err, MsgLookupFailed), "barcode.lookup")
	}
	item := nutrition.NormalizeProduct(p)
	s.metrics.Normalized(string(nutrition.SourceOFF), 1)
	return domain.ItemResult{Item: item}, nil
}

// Ready reports the Open Food Facts check; the public API needs no credentials
func (s *Svc) Ready(context.Context) (string, error) { return off.Source, nil }
