// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const alias = "sh"

var seasons = repository.Children{
	Table:      schema.Season.Table,
	ForeignKey: schema.Season.ShowID,
	Key:        schema.Season.ID,
	OrderBy:    schema.Season.Number,
}

func column(name string) string { return repository.Qualify(alias, name) }

var entity = repository.Entity{
	Table: schema.Show.Table,
	Alias: alias,
	Key:   schema.Show.ID,
	Columns: []string{
		column(schema.Show.ID),
		column(schema.Show.Name),
		column(schema.Show.Slug),
		column(schema.Show.Description),
		seasons.JSONColumn(column(schema.Show.ID), "seasons",
			repository.JSONField{Key: "id", Column: schema.Season.ID},
			repository.JSONField{Key: "name", Column: schema.Season.Name},
			repository.JSONField{Key: "number", Column: schema.Season.Number},
		),
		column(schema.Show.CreatedAt),
		column(schema.Show.UpdatedAt),
	},
	ExactFields: map[string]repository.Field{
		FieldID:   repository.Number(column(schema.Show.ID)),
		FieldName: repository.Text(column(schema.Show.Name)),
		FieldSlug: repository.Text(column(schema.Show.Slug)),
	},
	SearchFields: []string{
		column(schema.Show.Name),
		column(schema.Show.Description),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Show.ID),
		FieldName:      column(schema.Show.Name),
		FieldCreatedAt: column(schema.Show.CreatedAt),
		FieldUpdatedAt: column(schema.Show.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanShow(row pgx.Row) (*Show, error) {
	s := &Show{}
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Seasons, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListShows(ctx context.Context, filter repository.Filter) ([]*Show, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanShow)
}

func (store *PostgresRepository) FindShow(ctx context.Context, criteria repository.Criteria) (*Show, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanShow)
}

func (store *PostgresRepository) CreateShow(ctx context.Context, s *Show) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Show.Name:        s.Name,
		schema.Show.Slug:        s.Slug,
		schema.Show.Description: s.Description,
	})
}

func (store *PostgresRepository) UpdateShow(ctx context.Context, s *Show) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, s.ID, repository.Values{
		schema.Show.Name:        s.Name,
		schema.Show.Slug:        s.Slug,
		schema.Show.Description: s.Description,
		schema.Show.UpdatedAt:   repository.Now,
	})
}

func (store *PostgresRepository) DeleteShow(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}
