// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 100
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 500
	// DefaultOffset is the starting position (0-indexed).
	DefaultOffset = 0
)

// Params holds the requested offset and limit.
type Params struct {
	Offset int
	Limit  int
}

// Normalize fills in defaults and clamps excessive limits.
func (p Params) Normalize() Params {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	return p
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	// Total counts every matching record, ignoring offset and limit.
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Page is the paginated result envelope: `{data, metadata}`.
type Page[T any] struct {
	Data     []T  `json:"data"`
	Metadata Meta `json:"metadata"`
}

// NewPage wraps one page of items with the metadata of the request that produced it.
// A nil slice is rendered as an empty JSON array.
func NewPage[T any](items []T, total int, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Data: items,
		Metadata: Meta{
			Total:  total,
			Offset: params.Offset,
			Limit:  params.Limit,
		},
	}
}
