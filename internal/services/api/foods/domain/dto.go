// Package domain holds the foods contracts and payloads
package domain

import "foodproxy/internal/core/nutrition"

// Paging bounds for search
const (
	DefaultPageSize   = 25
	MaxPageSize       = 200
	DefaultPageNumber = 1
)

// SearchInput is a validated keyword search
type SearchInput struct {
	Q          string `json:"q"          validate:"required"`
	PageSize   int    `json:"pageSize"   validate:"min=1,max=200"`
	PageNumber int    `json:"pageNumber" validate:"min=1"`
}

// DetailInput names one FoodData Central record
type DetailInput struct {
	FdcID string `json:"fdcId" validate:"required,digits"`
}

// SearchResult is the search reply
type SearchResult struct {
	TotalHits  int                  `json:"totalHits"`
	PageNumber int                  `json:"pageNumber"`
	Items      []nutrition.FoodItem `json:"items"`
}

// ItemResult wraps a single normalized item
type ItemResult struct {
	Item nutrition.FoodItem `json:"item"`
}
