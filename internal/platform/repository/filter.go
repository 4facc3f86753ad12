// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repository

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/kaamelott/pkg/pagination"
)

// Ordering defaults applied by [Filter.Normalize].
const (
	SortASC  = "ASC"
	SortDESC = "DESC"

	// DefaultSortBy is the logical sort key used when none is requested.
	DefaultSortBy = "createdAt"
)

// Criteria holds exact-match filter values keyed by logical field name.
// Absent values (nil, "", 0, nil pointers) are ignored.
type Criteria map[string]any

// Filter is the listing request understood by [SelectBy].
type Filter struct {
	Criteria  Criteria
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Normalize applies defaults to an incoming filter. Paging follows
// [pagination.Params.Normalize].
func (f Filter) Normalize() Filter {
	page := f.Page().Normalize()
	f.Limit, f.Offset = page.Limit, page.Offset

	switch strings.ToUpper(f.SortOrder) {
	case SortASC:
		f.SortOrder = SortASC
	default:
		f.SortOrder = SortDESC
	}

	f.Search = strings.TrimSpace(f.Search)
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	return f
}

// Page returns the paging bounds of the filter.
func (f Filter) Page() pagination.Params {
	return pagination.Params{Offset: f.Offset, Limit: f.Limit}
}

// isAbsent reports whether a criteria value is unset and must not constrain the query.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isAbsent(v.Elem().Interface())
	case reflect.String:
		return v.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

// present unwraps pointers so drivers receive plain values.
func present(value any) any {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v.Interface()
}

// # Predicates

// where builds the AND of every present criterion. Keys are visited in
// sorted order so generated SQL is stable.
func (e Entity) where(criteria Criteria) (squirrel.And, error) {
	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	conditions := squirrel.And{}
	for _, key := range keys {
		value := criteria[key]
		if isAbsent(value) {
			continue
		}

		field, ok := e.ExactFields[key]
		if !ok {
			return nil, fmt.Errorf("repository: %s has no filter field %q", e.Table, key)
		}
		conditions = append(conditions, field.predicate(present(value)))
	}

	return conditions, nil
}

// search builds the OR of a case-insensitive substring match over every search field.
func (e Entity) search(term string) squirrel.Sqlizer {
	if term == "" || len(e.SearchFields) == 0 {
		return nil
	}

	pattern := "%" + escapeLike(term) + "%"
	matches := squirrel.Or{}
	for _, field := range e.SearchFields {
		matches = append(matches, squirrel.Expr(field+" ILIKE ?", pattern))
	}
	return matches
}

// orderBy maps a logical sort key to its expression. Unknown keys fall back to the
// entity default, then to the primary key. The primary key always breaks ties.
func (e Entity) orderBy(sortBy, order string) []string {
	column, ok := e.SortFields[sortBy]
	if !ok {
		column, ok = e.SortFields[e.DefaultSort]
	}
	if !ok {
		column = e.KeyColumn()
	}

	clauses := []string{column + " " + order}
	if column != e.KeyColumn() {
		clauses = append(clauses, e.KeyColumn()+" "+order)
	}
	return clauses
}
