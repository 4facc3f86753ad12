// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/postgres"
)

// ScanFunc reads one result row into a value. Both pgx.Rows and the
// pgx.Row returned by QueryRow satisfy [pgx.Row].
type ScanFunc[T any] func(row pgx.Row) (T, error)

// # Query Construction

// ListQuery builds the paginated page query for a filter.
func (e Entity) ListQuery(filter Filter) (squirrel.SelectBuilder, error) {
	filter = filter.Normalize()

	query, err := e.filtered(e.base(e.Columns...), filter)
	if err != nil {
		return query, err
	}

	return query.
		OrderBy(e.orderBy(filter.SortBy, filter.SortOrder)...).
		Offset(uint64(filter.Offset)).
		Limit(uint64(filter.Limit)), nil
}

// CountQuery builds the total-count query for a filter. Pagination and ordering
// are ignored so the count covers every matching record.
func (e Entity) CountQuery(filter Filter) (squirrel.SelectBuilder, error) {
	return e.filtered(e.base("COUNT(*)"), filter.Normalize())
}

// OneQuery builds the single-record lookup query for exact criteria.
// constrained is false when no criterion is present.
func (e Entity) OneQuery(criteria Criteria) (query squirrel.SelectBuilder, constrained bool, err error) {
	conditions, err := e.where(criteria)
	if err != nil {
		return query, false, err
	}

	query = e.base(e.Columns...).Limit(1)
	if len(conditions) == 0 {
		return query, false, nil
	}
	return query.Where(conditions), true, nil
}

func (e Entity) filtered(query squirrel.SelectBuilder, filter Filter) (squirrel.SelectBuilder, error) {
	conditions, err := e.where(filter.Criteria)
	if err != nil {
		return query, err
	}
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}
	if matches := e.search(filter.Search); matches != nil {
		query = query.Where(matches)
	}
	return query, nil
}

// # Execution

// SelectBy returns one page of records matching the filter together with the
// total number of matching records.
//
// # Parameters
//   - q: The pool or the surrounding transaction.
//   - e: The entity description.
//   - filter: Exact criteria, search term, ordering and pagination.
//   - scan: Reads one row in the order of e.Columns.
func SelectBy[T any](ctx context.Context, q postgres.Querier, e Entity, filter Filter, scan ScanFunc[T]) ([]T, int, error) {
	countQuery, err := e.CountQuery(filter)
	if err != nil {
		return nil, 0, err
	}
	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", e.Table, err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", e.Table, err)
	}

	listQuery, err := e.ListQuery(filter)
	if err != nil {
		return nil, 0, err
	}
	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select %s: %w", e.Table, err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", e.Table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", e.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", e.Table, err)
	}

	return items, total, nil
}

// SelectOneBy returns the single record matching every present criterion.
//
// When nothing matches, or when no criterion is present at all, the returned
// error wraps [pgx.ErrNoRows].
func SelectOneBy[T any](ctx context.Context, q postgres.Querier, e Entity, criteria Criteria, scan ScanFunc[T]) (T, error) {
	var zero T

	query, constrained, err := e.OneQuery(criteria)
	if err != nil {
		return zero, err
	}
	if !constrained {
		return zero, fmt.Errorf("select one %s: no criteria: %w", e.Table, pgx.ErrNoRows)
	}

	statement, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build select one %s: %w", e.Table, err)
	}

	item, err := scan(q.QueryRow(ctx, statement, args...))
	if err != nil {
		return zero, fmt.Errorf("select one %s: %w", e.Table, err)
	}
	return item, nil
}
