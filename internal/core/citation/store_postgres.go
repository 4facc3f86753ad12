// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/kaamelott/internal/platform/database/schema"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

const (
	alias          = "ct"
	characterAlias = "ch"
	episodeAlias   = "ep"
	movieAlias     = "mv"
)

var (
	actorLinks = repository.Link{
		Table:         schema.CitationActor.Table,
		OwnerColumn:   schema.CitationActor.CitationID,
		RelatedColumn: schema.CitationActor.ActorID,
		RelatedTable:  schema.Actor.Table,
		RelatedKey:    schema.Actor.ID,
	}

	authorLinks = repository.Link{
		Table:         schema.CitationAuthor.Table,
		OwnerColumn:   schema.CitationAuthor.CitationID,
		RelatedColumn: schema.CitationAuthor.AuthorID,
		RelatedTable:  schema.Author.Table,
		RelatedKey:    schema.Author.ID,
	}
)

func column(name string) string { return repository.Qualify(alias, name) }

// fullName is the searchable name of a linked actor or author.
const fullName = "rel.firstname || ' ' || rel.lastname"

var (
	characterKey = repository.Qualify(characterAlias, schema.Character.ID)
	episodeKey   = repository.Qualify(episodeAlias, schema.Episode.ID)
	movieKey     = repository.Qualify(movieAlias, schema.Movie.ID)
)

var entity = repository.Entity{
	Table: schema.Citation.Table,
	Alias: alias,
	Key:   schema.Citation.ID,
	Columns: []string{
		column(schema.Citation.ID),
		column(schema.Citation.Text),
		column(schema.Citation.CharacterID),
		repository.Qualify(characterAlias, schema.Character.Name),
		column(schema.Citation.EpisodeID),
		repository.Qualify(episodeAlias, schema.Episode.Name),
		column(schema.Citation.MovieID),
		repository.Qualify(movieAlias, schema.Movie.Name),
		actorLinks.JSONColumn(column(schema.Citation.ID), "actors",
			repository.JSONField{Key: "id", Column: schema.Actor.ID},
			repository.JSONField{Key: "firstName", Column: schema.Actor.FirstName},
			repository.JSONField{Key: "lastName", Column: schema.Actor.LastName},
		),
		authorLinks.JSONColumn(column(schema.Citation.ID), "authors",
			repository.JSONField{Key: "id", Column: schema.Author.ID},
			repository.JSONField{Key: "firstName", Column: schema.Author.FirstName},
			repository.JSONField{Key: "lastName", Column: schema.Author.LastName},
		),
		column(schema.Citation.CreatedAt),
		column(schema.Citation.UpdatedAt),
	},
	Joins: []string{
		repository.LeftJoin(schema.Character.Table, characterAlias, characterKey+" = "+column(schema.Citation.CharacterID)),
		repository.LeftJoin(schema.Episode.Table, episodeAlias, episodeKey+" = "+column(schema.Citation.EpisodeID)),
		repository.LeftJoin(schema.Movie.Table, movieAlias, movieKey+" = "+column(schema.Citation.MovieID)),
	},
	ExactFields: map[string]repository.Field{
		FieldID:          repository.Number(column(schema.Citation.ID)),
		FieldText:        repository.Text(column(schema.Citation.Text)),
		FieldCharacterID: repository.Number(characterKey),
		FieldEpisodeID:   repository.Number(episodeKey),
		FieldMovieID:     repository.Number(movieKey),
	},
	SearchFields: []string{
		column(schema.Citation.Text),
		repository.Qualify(characterAlias, schema.Character.Name),
		repository.Qualify(episodeAlias, schema.Episode.Name),
		repository.Qualify(movieAlias, schema.Movie.Name),
		actorLinks.TextColumn(column(schema.Citation.ID), fullName),
		authorLinks.TextColumn(column(schema.Citation.ID), fullName),
	},
	SortFields: map[string]string{
		FieldID:          column(schema.Citation.ID),
		FieldText:        column(schema.Citation.Text),
		FieldCharacterID: characterKey,
		FieldEpisodeID:   episodeKey,
		FieldMovieID:     movieKey,
		FieldCreatedAt:   column(schema.Citation.CreatedAt),
		FieldUpdatedAt:   column(schema.Citation.UpdatedAt),
	},
	DefaultSort: FieldCreatedAt,
}

func scanCitation(row pgx.Row) (*Citation, error) {
	c := &Citation{}
	var episodeName, movieName *string
	err := row.Scan(
		&c.ID, &c.Text,
		&c.CharacterID, &c.Character.Name,
		&c.EpisodeID, &episodeName,
		&c.MovieID, &movieName,
		&c.Actors, &c.Authors,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Character.ID = c.CharacterID
	c.Episode = ref(c.EpisodeID, episodeName)
	c.Movie = ref(c.MovieID, movieName)
	return c, nil
}

func ref(id *int, name *string) *Ref {
	if id == nil || name == nil {
		return nil
	}
	return &Ref{ID: *id, Name: *name}
}

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (store *PostgresRepository) ListCitations(ctx context.Context, filter repository.Filter) ([]*Citation, int, error) {
	return repository.SelectBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, filter, scanCitation)
}

func (store *PostgresRepository) FindCitation(ctx context.Context, criteria repository.Criteria) (*Citation, error) {
	return repository.SelectOneBy(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, criteria, scanCitation)
}

func (store *PostgresRepository) CreateCitation(ctx context.Context, input CreateInput) (int, error) {
	return repository.Insert(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, repository.Values{
		schema.Citation.Text:        input.Text,
		schema.Citation.CharacterID: input.CharacterID,
		schema.Citation.EpisodeID:   input.EpisodeID,
		schema.Citation.MovieID:     input.MovieID,
	})
}

func (store *PostgresRepository) UpdateCitation(ctx context.Context, c *Citation) (int64, error) {
	return repository.UpdateByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, c.ID, repository.Values{
		schema.Citation.Text:        c.Text,
		schema.Citation.CharacterID: c.CharacterID,
		schema.Citation.EpisodeID:   c.EpisodeID,
		schema.Citation.MovieID:     c.MovieID,
		schema.Citation.UpdatedAt:   repository.Now,
	})
}

func (store *PostgresRepository) DeleteCitation(ctx context.Context, id int) (int64, error) {
	return repository.DeleteByID(ctx, postgres.QuerierFromCtx(ctx, store.db), entity, id)
}

func (store *PostgresRepository) AssociateActors(ctx context.Context, id int, actorIDs []int) error {
	return actorLinks.AssociateAll(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorIDs)
}

func (store *PostgresRepository) AssociateAuthors(ctx context.Context, id int, authorIDs []int) error {
	return authorLinks.AssociateAll(ctx, postgres.QuerierFromCtx(ctx, store.db), id, authorIDs)
}

func (store *PostgresRepository) ReplaceActors(ctx context.Context, id int, actorIDs []int) error {
	return actorLinks.Replace(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorIDs)
}

func (store *PostgresRepository) ReplaceAuthors(ctx context.Context, id int, authorIDs []int) error {
	return authorLinks.Replace(ctx, postgres.QuerierFromCtx(ctx, store.db), id, authorIDs)
}

func (store *PostgresRepository) DissociateActor(ctx context.Context, id, actorID int) error {
	return actorLinks.Dissociate(ctx, postgres.QuerierFromCtx(ctx, store.db), id, actorID)
}

func (store *PostgresRepository) DissociateAuthor(ctx context.Context, id, authorID int) error {
	return authorLinks.Dissociate(ctx, postgres.QuerierFromCtx(ctx, store.db), id, authorID)
}

// UnlinkCitation removes every actor and author link of the citation.
func (store *PostgresRepository) UnlinkCitation(ctx context.Context, id int) error {
	q := postgres.QuerierFromCtx(ctx, store.db)
	if err := actorLinks.DissociateAll(ctx, q, id); err != nil {
		return err
	}
	return authorLinks.DissociateAll(ctx, q, id)
}
