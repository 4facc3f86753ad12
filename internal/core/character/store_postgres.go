// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const alias = "ch"

var actorLinks = repository.Link{
	Table:         schema.CharacterActor.Table,
	OwnerColumn:   schema.CharacterActor.CharacterID,
	RelatedColumn: schema.CharacterActor.ActorID,
	RelatedTable:  schema.Actor.Table,
	RelatedKey:    schema.Actor.ID,
}

func column(name string) string { return repository.Qualify(alias, name) }

// actorName is the searchable full name of a linked actor.
const actorName = "rel.firstname || ' ' || rel.lastname"

var entity = repository.Entity{
	Table: schema.Character.Table,
	Alias: alias,
	Key:   schema.Character.ID,
	Columns: []string{
		column(schema.Character.ID),
		column(schema.Character.Name),
		column(schema.Character.Description),
		actorLinks.JSONColumn(column(schema.Character.ID), "actors",
			repository.JSONField{Key: "id", Column: schema.Actor.ID},
			repository.JSONField{Key: "firstName", Column: schema.Actor.FirstName},
			repository.JSONField{Key: "lastName", Column: schema.Actor.LastName},
		),
		column(schema.Character.CreatedAt),
		column(schema.Character.UpdatedAt),
	},
	ExactFields: map[string]repository.Field{
		FieldID:      repository.Number(column(schema.Character.ID)),
		FieldName:    repository.Text(column(schema.Character.Name)),
		FieldActorID: actorLinks.Exists(column(schema.Character.ID)),
	},
	SearchFields: []string{
		column(schema.Character.Name),
		actorLinks.TextColumn(column(schema.Character.ID), actorName),
	},
	SortFields: map[string]string{
		FieldID:        column(schema.Character.ID),
		FieldName:      column(schema.Character.Name),
		FieldCreatedAt: column(schema.Character.CreatedAt),
		FieldUpdatedAt: column(schema.Character.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanCharacter(row pgx.Row) (*Character, error) {
	c := &Character{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Actors, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListCharacters(ctx context.Context, filter repository.Filter) ([]*Character, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanCharacter)
}

func (store *PostgresRepository) FindCharacter(ctx context.Context, criteria repository.Criteria) (*Character, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanCharacter)
}

func (store *PostgresRepository) CreateCharacter(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Character.Name:        input.Name,
		schema.Character.Description: input.Description,
	})
}

func (store *PostgresRepository) UpdateCharacter(ctx context.Context, c *Character) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, c.ID, repository.Values{
		schema.Character.Name:        c.Name,
		schema.Character.Description: c.Description,
		schema.Character.UpdatedAt:   repository.Now,
	})
}

func (store *PostgresRepository) DeleteCharacter(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}

func (store *PostgresRepository) ActorIDs(ctx context.Context, id int) ([]int, error) {
	return actorLinks.RelatedIDs(ctx, postgres.QuerierFromCtx(ctx, store.db), id)
}

func (store *PostgresRepository) AssociateActors(ctx context.Context, id int, actorIDs []int) error {
	return actorLinks.AssociateAll(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorIDs)
}

func (store *PostgresRepository) ReplaceActors(ctx context.Context, id int, actorIDs []int) error {
	return actorLinks.Replace(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorIDs)
}

func (store *PostgresRepository) DissociateActor(ctx context.Context, id, actorID int) error {
	return actorLinks.Dissociate(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorID)
}

func (store *PostgresRepository) DissociateActors(ctx context.Context, id int) error {
	return actorLinks.DissociateAll(ctx, postgres.QuerierFromCtx(ctx, store.db), id)
}
