// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const alias = "au"

var citationLinks = repository.Link{
	Table:         schema.CitationAuthor.Table,
	OwnerColumn:   schema.CitationAuthor.AuthorID,
	RelatedColumn: schema.CitationAuthor.CitationID,
	RelatedTable:  schema.Citation.Table,
	RelatedKey:    schema.Citation.ID,
}

func column(name string) string { return repository.Qualify(alias, name) }

var entity = repository.Entity{
	Table: schema.Author.Table,
	Alias: alias,
	Key:   schema.Author.ID,
	Columns: []string{
		column(schema.Author.ID),
		column(schema.Author.FirstName),
		column(schema.Author.LastName),
		citationLinks.JSONColumn(column(schema.Author.ID), "citations",
			repository.JSONField{Key: "id", Column: schema.Citation.ID},
			repository.JSONField{Key: "text", Column: schema.Citation.Text},
		),
		column(schema.Author.CreatedAt),
		column(schema.Author.UpdatedAt),
	},
	ExactFields: map[string]repository.Field{
		FieldID:        repository.Number(column(schema.Author.ID)),
		FieldFirstName: repository.Text(column(schema.Author.FirstName)),
		FieldLastName:  repository.Text(column(schema.Author.LastName)),
	},
	SearchFields: []string{
		column(schema.Author.FirstName),
		column(schema.Author.LastName),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Author.ID),
		FieldFirstName: column(schema.Author.FirstName),
		FieldLastName:  column(schema.Author.LastName),
		FieldCreatedAt: column(schema.Author.CreatedAt),
		FieldUpdatedAt: column(schema.Author.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanAuthor(row pgx.Row) (*Author, error) {
	a := &Author{}
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Citations, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListAuthors(ctx context.Context, filter repository.Filter) ([]*Author, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanAuthor)
}

func (store *PostgresRepository) FindAuthor(ctx context.Context, criteria repository.Criteria) (*Author, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanAuthor)
}

func (store *PostgresRepository) CreateAuthor(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Author.FirstName: input.FirstName,
		schema.Author.LastName:  input.LastName,
	})
}

func (store *PostgresRepository) UpdateAuthor(ctx context.Context, a *Author) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, a.ID, repository.Values{
		schema.Author.FirstName: a.FirstName,
		schema.Author.LastName:  a.LastName,
		schema.Author.UpdatedAt: repository.Now,
	})
}

func (store *PostgresRepository) DeleteAuthor(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}

func (store *PostgresRepository) CitationIDs(ctx context.Context, id int) ([]int, error) {
	return citationLinks.RelatedIDs(ctx, postgres.QuerierFromCtx(ctx, store.db), id)
}

func (store *PostgresRepository) UnlinkAuthor(ctx context.Context, id int) error {
	return citationLinks.DissociateAll(ctx, postgres.QuerierFromCtx(ctx, store.db), id)
}
