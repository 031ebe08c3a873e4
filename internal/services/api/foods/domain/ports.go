package domain

import (
	"context"

	"foodproxy/internal/adapters/upstream/fdc"
	"foodproxy/internal/core/nutrition"
)

// FoodSource is the FoodData Central surface the service needs
type FoodSource interface {
	Search(ctx context.Context, query string, pageSize, pageNumber int) (fdc.SearchResult, error)
	Food(ctx context.Context, id string) (nutrition.Food, error)
}

// ServicePort defines the service contract for foods
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResult, error)
	Detail(ctx context.Context, in DetailInput) (ItemResult, error)
}
