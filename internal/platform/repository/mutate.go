// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/kaamelott/internal/platform/postgres"
)

// Values maps unqualified column names to the values written by a mutation.
type Values map[string]any

// Now is the database clock, for timestamp columns.
var Now = squirrel.Expr("NOW()")

// Insert writes one row and returns its generated key.
func Insert(ctx context.Context, q postgres.Querier, e Entity, values Values) (int, error) {
	statement, args, err := sql.Insert(e.Table).
		SetMap(values).
		Suffix("RETURNING " + e.Key).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", e.Table, err)
	}

	var id int
	if err := q.QueryRow(ctx, statement, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", e.Table, err)
	}
	return id, nil
}

// UpdateByID overwrites the given columns of one row and reports the affected row count.
func UpdateByID(ctx context.Context, q postgres.Querier, e Entity, id int, values Values) (int64, error) {
	statement, args, err := sql.Update(e.Table).
		SetMap(values).
		Where(squirrel.Eq{e.Key: id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update %s: %w", e.Table, err)
	}

	tag, err := q.Exec(ctx, statement, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", e.Table, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByID removes one row and reports the affected row count.
func DeleteByID(ctx context.Context, q postgres.Querier, e Entity, id int) (int64, error) {
	statement, args, err := sql.Delete(e.Table).
		Where(squirrel.Eq{e.Key: id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete %s: %w", e.Table, err)
	}

	tag, err := q.Exec(ctx, statement, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", e.Table, err)
	}
	return tag.RowsAffected(), nil
}
