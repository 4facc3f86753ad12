// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses URL query parameters of list endpoints.
//
// Parsing is strict: a malformed value is reported instead of being replaced by
// a default, so handlers can answer 400 rather than silently widening a listing.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListParams holds the generic listing parameters shared by every entity.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     *int
	Offset    *int
}

// ParseList reads search, sortBy, sortOrder, limit and offset.
// Absent values are left at their zero value; absent numbers are nil.
func ParseList(values url.Values) (ListParams, error) {
	params := ListParams{
		Search:    strings.TrimSpace(values.Get("search")),
		SortBy:    strings.TrimSpace(values.Get("sortBy")),
		SortOrder: strings.ToUpper(strings.TrimSpace(values.Get("sortOrder"))),
	}

	var err error
	if params.Limit, err = Int(values, "limit"); err != nil {
		return params, err
	}
	if params.Offset, err = Int(values, "offset"); err != nil {
		return params, err
	}

	return params, nil
}

// Int parses an optional integer parameter. It returns nil when the key is absent.
func Int(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: must be an integer", key)
	}
	return &value, nil
}

// String returns the trimmed value of an optional text parameter.
func String(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
