// Package domain holds the barcode contracts and payloads
package domain

import (
	"context"

	"foodproxy/internal/core/nutrition"
)

// LookupInput is a validated barcode lookup
type LookupInput struct {
	Code string `json:"code" validate:"required"`
}

// ItemResult wraps a single normalized item
type ItemResult struct {
	Item nutrition.FoodItem `json:"item"`
}

// ProductSource is the Open Food Facts surface the service needs
type ProductSource interface {
	Product(ctx context.Context, code string) (nutrition.Product, error)
}

// ServicePort defines the service contract for barcode lookups
type ServicePort interface {
	Lookup(ctx context.Context, in LookupInput) (ItemResult, error)
}
