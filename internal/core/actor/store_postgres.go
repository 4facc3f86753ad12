// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const alias = "a"

var (
	characterLinks = repository.Link{
		Table:         schema.CharacterActor.Table,
		OwnerColumn:   schema.CharacterActor.ActorID,
		RelatedColumn: schema.CharacterActor.CharacterID,
		RelatedTable:  schema.Character.Table,
		RelatedKey:    schema.Character.ID,
	}

	citationLinks = repository.Link{
		Table:         schema.CitationActor.Table,
		OwnerColumn:   schema.CitationActor.ActorID,
		RelatedColumn: schema.CitationActor.CitationID,
		RelatedTable:  schema.Citation.Table,
		RelatedKey:    schema.Citation.ID,
	}
)

func column(name string) string { return repository.Qualify(alias, name) }

var entity = repository.Entity{
	Table: schema.Actor.Table,
	Alias: alias,
	Key:   schema.Actor.ID,
	Columns: []string{
		column(schema.Actor.ID),
		column(schema.Actor.FirstName),
		column(schema.Actor.LastName),
		characterLinks.JSONColumn(column(schema.Actor.ID), "characters",
			repository.JSONField{Key: "id", Column: schema.Character.ID},
			repository.JSONField{Key: "name", Column: schema.Character.Name},
		),
		column(schema.Actor.CreatedAt),
		column(schema.Actor.UpdatedAt),
	},
	ExactFields: map[string]repository.Field{
		FieldID:        repository.Number(column(schema.Actor.ID)),
		FieldFirstName: repository.Text(column(schema.Actor.FirstName)),
		FieldLastName:  repository.Text(column(schema.Actor.LastName)),
	},
	SearchFields: []string{
		column(schema.Actor.FirstName),
		column(schema.Actor.LastName),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Actor.ID),
		FieldFirstName: column(schema.Actor.FirstName),
		FieldLastName:  column(schema.Actor.LastName),
		FieldCreatedAt: column(schema.Actor.CreatedAt),
		FieldUpdatedAt: column(schema.Actor.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanActor(row pgx.Row) (*Actor, error) {
	a := &Actor{}
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Characters, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListActors(ctx context.Context, filter repository.Filter) ([]*Actor, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanActor)
}

func (store *PostgresRepository) FindActor(ctx context.Context, criteria repository.Criteria) (*Actor, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanActor)
}

func (store *PostgresRepository) CreateActor(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Actor.FirstName: input.FirstName,
		schema.Actor.LastName:  input.LastName,
	})
}

func (store *PostgresRepository) UpdateActor(ctx context.Context, a *Actor) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, a.ID, repository.Values{
		schema.Actor.FirstName: a.FirstName,
		schema.Actor.LastName:  a.LastName,
		schema.Actor.UpdatedAt: repository.Now,
	})
}

func (store *PostgresRepository) DeleteActor(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}

func (store *PostgresRepository) LinkedIDs(ctx context.Context, id int) (characterIDs, citationIDs []int, err error) {
	q := postgres.QuerierFromCtx(ctx, store.db)
	if characterIDs, err = characterLinks.RelatedIDs(ctx, q, id); err != nil {
		return nil, nil, err
	}
	if citationIDs, err = citationLinks.RelatedIDs(ctx, q, id); err != nil {
		return nil, nil, err
	}
	return characterIDs, citationIDs, nil
}

func (store *PostgresRepository) UnlinkActor(ctx context.Context, id int) error {
	q := postgres.QuerierFromCtx(ctx, store.db)
	if err := characterLinks.DissociateAll(ctx, q, id); err != nil {
		return err
	}
	return citationLinks.DissociateAll(ctx, q, id)
}
