// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package repository implements the data-access pattern shared by every catalogue entity.

Each entity is described once, as data, by an [Entity] value: its table, the columns
it selects (including denormalized display data from related tables), the fields it can
be filtered on, the expressions its free-text search reaches, and the logical sort keys
it accepts. From that description the package builds every query:

  - [SelectBy]: filtered, searched, sorted and paginated listing plus the total count.
  - [SelectOneBy]: single-record lookup by exact criteria.
  - [Link]: many-to-many association management.
  - [Insert], [UpdateByID], [DeleteByID]: plain mutations.

All SQL is produced with squirrel using PostgreSQL "$n" placeholders.
*/
package repository

import (
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
)

// sql is the statement builder shared by all queries.
var sql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// # Field Descriptors

// FieldKind selects how an exact-match filter compares values.
type FieldKind int

const (
	// KindText compares case-insensitively.
	KindText FieldKind = iota
	// KindNumber compares by exact value.
	KindNumber
)

// Field describes one exact-match filter.
type Field struct {
	// Column is the qualified SQL expression compared against the value.
	Column string
	// Kind selects the comparison.
	Kind FieldKind
	// Predicate, when set, replaces the default comparison.
	Predicate func(value any) squirrel.Sqlizer
}

// Text declares a case-insensitive exact-match field.
func Text(column string) Field {
	return Field{Column: column, Kind: KindText}
}

// Number declares an exact-value field (numbers and foreign keys).
func Number(column string) Field {
	return Field{Column: column, Kind: KindNumber}
}

// predicate returns the SQL condition of the field for a present value.
func (f Field) predicate(value any) squirrel.Sqlizer {
	if f.Predicate != nil {
		return f.Predicate(value)
	}
	if f.Kind == KindText {
		return squirrel.Expr("LOWER("+f.Column+") = LOWER(?)", value)
	}
	return squirrel.Eq{f.Column: value}
}

// # Entity Description

// Entity is the per-entity configuration of the query builder.
type Entity struct {
	// Table is the schema-qualified table name (e.g. "catalog.actor").
	Table string
	// Alias is the alias of Table used by every qualified expression.
	Alias string
	// Key is the unqualified primary key column.
	Key string
	// Columns are the select expressions, in scan order.
	Columns []string
	// Joins are LEFT JOIN clauses surfacing one-hop display data. They never filter rows.
	Joins []string
	// ExactFields maps logical filter names to their column descriptor.
	ExactFields map[string]Field
	// SearchFields are the expressions matched by the free-text search.
	SearchFields []string
	// SortFields maps logical sortBy keys to sortable expressions.
	SortFields map[string]string
	// DefaultSort is the logical sortBy used when none or an unmapped one is given.
	DefaultSort string
}

// KeyColumn returns the alias-qualified primary key.
func (e Entity) KeyColumn() string {
	return e.Alias + "." + e.Key
}

// from renders the FROM target with its alias.
func (e Entity) from() string {
	return e.Table + " " + e.Alias
}

// base starts a SELECT over the entity with its display joins applied.
func (e Entity) base(columns ...string) squirrel.SelectBuilder {
	query := sql.Select(columns...).From(e.from())
	for _, join := range e.Joins {
		query = query.JoinClause(join)
	}
	return query
}

// Qualify prefixes a bare column with an alias.
func Qualify(alias, column string) string {
	return alias + "." + column
}

// LeftJoin renders "LEFT JOIN <table> <alias> ON <on>".
func LeftJoin(table, alias, on string) string {
	return "LEFT JOIN " + table + " " + alias + " ON " + on
}

// SortKeys lists the logical sort keys the entity accepts.
func (e Entity) SortKeys() []string {
	keys := make([]string, 0, len(e.SortFields))
	for key := range e.SortFields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// escapeLike neutralizes LIKE wildcards so the search term matches literally.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
