// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const (
	alias       = "ep"
	seasonAlias = "sn"
)

func column(name string) string { return repository.Qualify(alias, name) }

func seasonColumn(name string) string { return repository.Qualify(seasonAlias, name) }

var entity = repository.Entity{
	Table: schema.Episode.Table,
	Alias: alias,
	Key:   schema.Episode.ID,
	Columns: []string{
		column(schema.Episode.ID),
		column(schema.Episode.Name),
		column(schema.Episode.Number),
		column(schema.Episode.SeasonID),
		seasonColumn(schema.Season.Name),
		seasonColumn(schema.Season.Number),
		column(schema.Episode.CreatedAt),
		column(schema.Episode.UpdatedAt),
	},
	Joins: []string{
		repository.LeftJoin(schema.Season.Table, seasonAlias,
			seasonColumn(schema.Season.ID)+" = "+column(schema.Episode.SeasonID)),
	},
	ExactFields: map[string]repository.Field{
		FieldID:       repository.Number(column(schema.Episode.ID)),
		FieldName:     repository.Text(column(schema.Episode.Name)),
		FieldNumber:   repository.Number(column(schema.Episode.Number)),
		FieldSeasonID: repository.Number(seasonColumn(schema.Season.ID)),
	},
	SearchFields: []string{
		column(schema.Episode.Name),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Episode.ID),
		FieldName:      column(schema.Episode.Name),
		FieldNumber:    column(schema.Episode.Number),
		FieldSeasonID:  seasonColumn(schema.Season.ID),
		FieldCreatedAt: column(schema.Episode.CreatedAt),
		FieldUpdatedAt: column(schema.Episode.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanEpisode(row pgx.Row) (*Episode, error) {
	e := &Episode{}
	err := row.Scan(&e.ID, &e.Name, &e.Number, &e.SeasonID, &e.Season.Name, &e.Season.Number, &e.CreatedAt, &e.UpdatedAt)
	e.Season.ID = e.SeasonID
	return e, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListEpisodes(ctx context.Context, filter repository.Filter) ([]*Episode, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanEpisode)
}

func (store *PostgresRepository) FindEpisode(ctx context.Context, criteria repository.Criteria) (*Episode, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanEpisode)
}

func (store *PostgresRepository) CreateEpisode(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Episode.Name:     input.Name,
		schema.Episode.Number:   input.Number,
		schema.Episode.SeasonID: input.SeasonID,
	})
}

func (store *PostgresRepository) UpdateEpisode(ctx context.Context, e *Episode) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, e.ID, repository.Values{
		schema.Episode.Name:      e.Name,
		schema.Episode.Number:    e.Number,
		schema.Episode.SeasonID:  e.SeasonID,
		schema.Episode.UpdatedAt: repository.Now,
	})
}

func (store *PostgresRepository) DeleteEpisode(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}
