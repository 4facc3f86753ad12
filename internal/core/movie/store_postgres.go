// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const alias = "mv"

func column(name string) string { return repository.Qualify(alias, name) }

var entity = repository.Entity{
	Table: schema.Movie.Table,
	Alias: alias,
	Key:   schema.Movie.ID,
	Columns: []string{
		column(schema.Movie.ID),
		column(schema.Movie.Name),
		column(schema.Movie.Slug),
		column(schema.Movie.Description),
		column(schema.Movie.ReleaseYear),
		column(schema.Movie.CreatedAt),
		column(schema.Movie.UpdatedAt),
	},
	ExactFields: map[string]repository.Field{
		FieldID:          repository.Number(column(schema.Movie.ID)),
		FieldName:        repository.Text(column(schema.Movie.Name)),
		FieldSlug:        repository.Text(column(schema.Movie.Slug)),
		FieldReleaseYear: repository.Number(column(schema.Movie.ReleaseYear)),
	},
	SearchFields: []string{
		column(schema.Movie.Name),
		column(schema.Movie.Description),
	},
	SortFields: map[string]string{
		FieldID:          column(schema.Movie.ID),
		FieldName:        column(schema.Movie.Name),
		FieldReleaseYear: column(schema.Movie.ReleaseYear),
		FieldCreatedAt:   column(schema.Movie.CreatedAt),
		FieldUpdatedAt:   column(schema.Movie.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanMovie(row pgx.Row) (*Movie, error) {
	m := &Movie{}
	err := row.Scan(&m.ID, &m.Name, &m.Slug, &m.Description, &m.ReleaseYear, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListMovies(ctx context.Context, filter repository.Filter) ([]*Movie, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanMovie)
}

func (store *PostgresRepository) FindMovie(ctx context.Context, criteria repository.Criteria) (*Movie, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanMovie)
}

func (store *PostgresRepository) CreateMovie(ctx context.Context, m *Movie) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Movie.Name:        m.Name,
		schema.Movie.Slug:        m.Slug,
		schema.Movie.Description: m.Description,
		schema.Movie.ReleaseYear: m.ReleaseYear,
	})
}

func (store *PostgresRepository) UpdateMovie(ctx context.Context, m *Movie) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, m.ID, repository.Values{
		schema.Movie.Name:        m.Name,
		schema.Movie.Slug:        m.Slug,
		schema.Movie.Description: m.Description,
		schema.Movie.ReleaseYear: m.ReleaseYear,
		schema.Movie.UpdatedAt:   repository.Now,
	})
}

func (store *PostgresRepository) DeleteMovie(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}
