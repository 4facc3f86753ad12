// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/kaamelott/internal/platform/postgres"
)

// Aliases reserved for link subqueries. Entity aliases must not reuse them.
const (
	linkAlias    = "lnk"
	relatedAlias = "rel"
)

// Link describes a many-to-many junction table between an owner entity and a related entity.
type Link struct {
	// Table is the junction table (e.g. "catalog.characteractor").
	Table string
	// OwnerColumn references the owner in Table.
	OwnerColumn string
	// RelatedColumn references the related record in Table.
	RelatedColumn string
	// RelatedTable is the related entity table, used for display subqueries.
	RelatedTable string
	// RelatedKey is the primary key column of RelatedTable.
	RelatedKey string
}

// JSONField is one key of an aggregated JSON object. Column is read from the related row.
type JSONField struct {
	Key    string
	Column string
}

// # Mutations

// Associate links owner and related. Linking an already linked pair is a no-op.
func (l Link) Associate(ctx context.Context, q postgres.Querier, ownerID, relatedID int) error {
	statement, args, err := sql.Insert(l.Table).
		Columns(l.OwnerColumn, l.RelatedColumn).
		Values(ownerID, relatedID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build associate %s: %w", l.Table, err)
	}

	if _, err := q.Exec(ctx, statement, args...); err != nil {
		return fmt.Errorf("associate %s: %w", l.Table, err)
	}
	return nil
}

// AssociateAll links owner to every related id.
func (l Link) AssociateAll(ctx context.Context, q postgres.Querier, ownerID int, relatedIDs []int) error {
	for _, relatedID := range relatedIDs {
		if err := l.Associate(ctx, q, ownerID, relatedID); err != nil {
			return err
		}
	}
	return nil
}

// Dissociate removes one link. Removing a missing link is a no-op.
func (l Link) Dissociate(ctx context.Context, q postgres.Querier, ownerID, relatedID int) error {
	statement, args, err := sql.Delete(l.Table).
		Where(squirrel.Eq{l.OwnerColumn: ownerID, l.RelatedColumn: relatedID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build dissociate %s: %w", l.Table, err)
	}

	if _, err := q.Exec(ctx, statement, args...); err != nil {
		return fmt.Errorf("dissociate %s: %w", l.Table, err)
	}
	return nil
}

// DissociateAll removes every link of the owner.
func (l Link) DissociateAll(ctx context.Context, q postgres.Querier, ownerID int) error {
	statement, args, err := sql.Delete(l.Table).
		Where(squirrel.Eq{l.OwnerColumn: ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build dissociate all %s: %w", l.Table, err)
	}

	if _, err := q.Exec(ctx, statement, args...); err != nil {
		return fmt.Errorf("dissociate all %s: %w", l.Table, err)
	}
	return nil
}

// Replace makes the owner's link set exactly relatedIDs.
func (l Link) Replace(ctx context.Context, q postgres.Querier, ownerID int, relatedIDs []int) error {
	if err := l.DissociateAll(ctx, q, ownerID); err != nil {
		return err
	}
	return l.AssociateAll(ctx, q, ownerID, relatedIDs)
}

// RelatedIDs lists the ids linked to the owner in ascending order.
func (l Link) RelatedIDs(ctx context.Context, q postgres.Querier, ownerID int) ([]int, error) {
	statement, args, err := sql.Select(l.RelatedColumn).
		From(l.Table).
		Where(squirrel.Eq{l.OwnerColumn: ownerID}).
		OrderBy(l.RelatedColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build related ids %s: %w", l.Table, err)
	}

	rows, err := q.Query(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("related ids %s: %w", l.Table, err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan related id %s: %w", l.Table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// # Display Expressions

// JSONColumn renders a select expression aggregating the related records of
// ownerRef into a JSON array of objects, ordered by related key. Owners without
// links yield "[]" and the owner row is never duplicated.
func (l Link) JSONColumn(ownerRef, as string, fields ...JSONField) string {
	pairs := make([]string, 0, len(fields))
	for _, field := range fields {
		pairs = append(pairs, "'"+field.Key+"', "+Qualify(relatedAlias, field.Column))
	}

	return "COALESCE((SELECT json_agg(json_build_object(" + strings.Join(pairs, ", ") + ")" +
		" ORDER BY " + Qualify(relatedAlias, l.RelatedKey) + ")" +
		l.fromClause(ownerRef) + "), '[]') AS " + as
}

// TextColumn renders an expression concatenating expr over every related record
// of ownerRef. It is meant for search fields; expr refers to the related row as "rel".
func (l Link) TextColumn(ownerRef, expr string) string {
	return "COALESCE((SELECT string_agg(" + expr + ", ' ')" + l.fromClause(ownerRef) + "), '')"
}

// Exists returns a filter field matching owners linked to the given related id.
func (l Link) Exists(ownerRef string) Field {
	return Field{
		Column: Qualify(linkAlias, l.RelatedColumn),
		Kind:   KindNumber,
		Predicate: func(value any) squirrel.Sqlizer {
			return squirrel.Expr(
				"EXISTS (SELECT 1 FROM "+l.Table+" "+linkAlias+
					" WHERE "+Qualify(linkAlias, l.OwnerColumn)+" = "+ownerRef+
					" AND "+Qualify(linkAlias, l.RelatedColumn)+" = ?)",
				value,
			)
		},
	}
}

func (l Link) fromClause(ownerRef string) string {
	return " FROM " + l.RelatedTable + " " + relatedAlias +
		" JOIN " + l.Table + " " + linkAlias +
		" ON " + Qualify(linkAlias, l.RelatedColumn) + " = " + Qualify(relatedAlias, l.RelatedKey) +
		" WHERE " + Qualify(linkAlias, l.OwnerColumn) + " = " + ownerRef
}

// # One-To-Many Display

// Children describes the records of Table pointing at their owner through ForeignKey.
type Children struct {
	Table      string
	ForeignKey string
	Key        string
	// OrderBy is the related column the aggregated array is sorted on. Defaults to Key.
	OrderBy string
}

// JSONColumn renders a select expression aggregating the children of ownerRef into
// a JSON array of objects. Owners without children yield "[]".
func (c Children) JSONColumn(ownerRef, as string, fields ...JSONField) string {
	pairs := make([]string, 0, len(fields))
	for _, field := range fields {
		pairs = append(pairs, "'"+field.Key+"', "+Qualify(relatedAlias, field.Column))
	}

	order := c.OrderBy
	if order == "" {
		order = c.Key
	}

	return "COALESCE((SELECT json_agg(json_build_object(" + strings.Join(pairs, ", ") + ")" +
		" ORDER BY " + Qualify(relatedAlias, order) + ")" +
		" FROM " + c.Table + " " + relatedAlias +
		" WHERE " + Qualify(relatedAlias, c.ForeignKey) + " = " + ownerRef + "), '[]') AS " + as
}
