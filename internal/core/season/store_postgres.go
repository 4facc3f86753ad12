// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const (
	alias     = "se"
	showAlias = "sh"
)

var episodes = repository.Children{
	Table:      schema.Episode.Table,
	ForeignKey: schema.Episode.SeasonID,
	Key:        schema.Episode.ID,
	OrderBy:    schema.Episode.Number,
}

func column(name string) string { return repository.Qualify(alias, name) }

var entity = repository.Entity{
	Table: schema.Season.Table,
	Alias: alias,
	Key:   schema.Season.ID,
	Columns: []string{
		column(schema.Season.ID),
		column(schema.Season.Name),
		column(schema.Season.Number),
		column(schema.Season.ShowID),
		repository.Qualify(showAlias, schema.Show.Name),
		episodes.JSONColumn(column(schema.Season.ID), "episodes",
			repository.JSONField{Key: "id", Column: schema.Episode.ID},
			repository.JSONField{Key: "name", Column: schema.Episode.Name},
			repository.JSONField{Key: "number", Column: schema.Episode.Number},
		),
		column(schema.Season.CreatedAt),
		column(schema.Season.UpdatedAt),
	},
	Joins: []string{
		repository.LeftJoin(schema.Show.Table, showAlias,
			repository.Qualify(showAlias, schema.Show.ID)+" = "+column(schema.Season.ShowID)),
	},
	ExactFields: map[string]repository.Field{
		FieldID:     repository.Number(column(schema.Season.ID)),
		FieldName:   repository.Text(column(schema.Season.Name)),
		FieldNumber: repository.Number(column(schema.Season.Number)),
		FieldShowID: repository.Number(repository.Qualify(showAlias, schema.Show.ID)),
	},
	SearchFields: []string{
		column(schema.Season.Name),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Season.ID),
		FieldName:      column(schema.Season.Name),
		FieldNumber:    column(schema.Season.Number),
		FieldShowID:    repository.Qualify(showAlias, schema.Show.ID),
		FieldCreatedAt: column(schema.Season.CreatedAt),
		FieldUpdatedAt: column(schema.Season.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanSeason(row pgx.Row) (*Season, error) {
	s := &Season{}
	err := row.Scan(&s.ID, &s.Name, &s.Number, &s.ShowID, &s.Show.Name, &s.Episodes, &s.CreatedAt, &s.UpdatedAt)
	s.Show.ID = s.ShowID
	return s, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListSeasons(ctx context.Context, filter repository.Filter) ([]*Season, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanSeason)
}

func (store *PostgresRepository) FindSeason(ctx context.Context, criteria repository.Criteria) (*Season, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanSeason)
}

func (store *PostgresRepository) CreateSeason(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Season.Name:   input.Name,
		schema.Season.Number: input.Number,
		schema.Season.ShowID: input.ShowID,
	})
}

func (store *PostgresRepository) UpdateSeason(ctx context.Context, s *Season) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, s.ID, repository.Values{
		schema.Season.Name:      s.Name,
		schema.Season.Number:    s.Number,
		schema.Season.ShowID:    s.ShowID,
		schema.Season.UpdatedAt: repository.Now,
	})
}

func (store *PostgresRepository) DeleteSeason(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}
