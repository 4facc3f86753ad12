// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/constants"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/internal/platform/validate"
	"github.com/taibuivan/kaamelott/pkg/pagination"
	"github.com/taibuivan/kaamelott/pkg/query"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named integer URL parameter (record identifier).

Returns:
  - int: The identifier
  - error: VALIDATION_ERROR if the parameter is not a positive integer
*/
func ID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return id, nil
}

/*
IntQuery parses an optional integer query parameter (e.g. a foreign-key filter).
*/
func IntQuery(request *http.Request, name string) (*int, error) {
	value, err := query.Int(request.URL.Query(), name)
	if err != nil {
		return nil, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
StringQuery returns the trimmed value of an optional text query parameter.
*/
func StringQuery(request *http.Request, name string) string {
	return query.String(request.URL.Query(), name)
}

/*
ListFilter parses and validates the generic listing parameters.

Parameters:
  - request: *http.Request
  - sortKeys: The entity's sortBy allow-list

Returns:
  - repository.Filter: Filter without criteria, ready for entity-specific fields
  - error: VALIDATION_ERROR listing every invalid parameter
*/
func ListFilter(request *http.Request, sortKeys []string) (repository.Filter, error) {
	params, err := query.ParseList(request.URL.Query())
	if err != nil {
		return repository.Filter{}, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: "query", Message: err.Error()})
	}

	validator := &validate.Validator{}
	validator.OptionalMinLen("search", params.Search, constants.SearchMinLength)
	if params.SortOrder != "" {
		validator.OneOf("sortOrder", params.SortOrder, repository.SortASC, repository.SortDESC)
	}
	if params.SortBy != "" {
		validator.OneOf("sortBy", params.SortBy, sortKeys...)
	}
	if params.Limit != nil {
		validator.Range("limit", *params.Limit, 1, pagination.MaxLimit)
	}
	if params.Offset != nil {
		validator.Min("offset", *params.Offset, 0)
	}
	if err := validator.Err(); err != nil {
		return repository.Filter{}, err
	}

	filter := repository.Filter{
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}
	return filter.Normalize(), nil
}

