// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/constants"
	"github.com/taibuivan/kaamelott/internal/platform/dberr"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/internal/platform/validate"
	"github.com/taibuivan/kaamelott/pkg/pagination"
	"github.com/taibuivan/kaamelott/pkg/slice"
)

type Service struct {
	repo   Repository
	runner postgres.Runner
	cache  cache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, runner postgres.Runner, records cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		runner: runner,
		cache:  records,
		logger: logger,
	}
}

func (service *Service) ListCitations(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Citation], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	citations, total, err := service.repo.ListCitations(ctx, list)
	if err != nil {
		return pagination.Page[*Citation]{}, dberr.Translate(err, constants.ContextCitation)
	}
	return pagination.NewPage(citations, total, list.Page()), nil
}

func (service *Service) GetCitation(ctx context.Context, id int) (*Citation, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixCitation, id), func(ctx context.Context) (*Citation, error) {
		return service.find(ctx, id)
	})
}

// CreateCitation stores the citation, then links every actor and author in order.
// Unknown references yield FK_VIOLATION.
func (service *Service) CreateCitation(ctx context.Context, input CreateInput) (*Citation, error) {
	validator := validateCitation(input.Text, input.CharacterID, input.EpisodeID, input.MovieID)
	validator.PositiveAll(FieldActorsID, input.ActorsID)
	validator.PositiveAll(FieldAuthorsID, input.AuthorsID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var id int
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		var err error
		if id, err = service.repo.CreateCitation(ctx, input); err != nil {
			return err
		}
		if err := service.repo.AssociateActors(ctx, id, input.ActorsID); err != nil {
			return err
		}
		return service.repo.AssociateAuthors(ctx, id, input.AuthorsID)
	})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCitation)
	}

	service.cache.Delete(ctx, linkKeys(input.ActorsID, input.AuthorsID)...)
	service.logger.InfoContext(ctx, "citation_created",
		slog.Int("citation_id", id),
		slog.Int("character_id", input.CharacterID),
		slog.Int("actors", len(input.ActorsID)),
		slog.Int("authors", len(input.AuthorsID)),
	)
	return service.find(ctx, id)
}

func (service *Service) UpdateCitation(ctx context.Context, id int, patch Patch) (*Citation, error) {
	citation, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	previousKeys := linkKeys(personIDs(citation.Actors), personIDs(citation.Authors))
	patch.Apply(citation)

	validator := validateCitation(citation.Text, citation.CharacterID, citation.EpisodeID, citation.MovieID)
	if patch.ActorsID != nil {
		validator.PositiveAll(FieldActorsID, *patch.ActorsID)
	}
	if patch.AuthorsID != nil {
		validator.PositiveAll(FieldAuthorsID, *patch.AuthorsID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	err = service.runner.Run(ctx, func(ctx context.Context) error {
		affected, err := service.repo.UpdateCitation(ctx, citation)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextCitation)
		}

		if patch.ActorsID != nil {
			if err := service.repo.ReplaceActors(ctx, id, *patch.ActorsID); err != nil {
				return err
			}
		}
		if patch.AuthorsID != nil {
			return service.repo.ReplaceAuthors(ctx, id, *patch.AuthorsID)
		}
		return nil
	})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCitation)
	}

	keys := append(previousKeys, cache.Key(constants.RedisPrefixCitation, id))
	if patch.ActorsID != nil {
		keys = append(keys, linkKeys(*patch.ActorsID, nil)...)
	}
	if patch.AuthorsID != nil {
		keys = append(keys, linkKeys(nil, *patch.AuthorsID)...)
	}
	service.cache.Delete(ctx, keys...)
	service.logger.InfoContext(ctx, "citation_updated", slog.Int("citation_id", id))
	return service.find(ctx, id)
}

// DeleteCitation removes every actor and author link, then the citation itself.
func (service *Service) DeleteCitation(ctx context.Context, id int) error {
	var keys []string
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		citation, err := service.repo.FindCitation(ctx, repository.Criteria{FieldID: id})
		if err != nil {
			return err
		}
		keys = linkKeys(personIDs(citation.Actors), personIDs(citation.Authors))

		if err := service.repo.UnlinkCitation(ctx, id); err != nil {
			return err
		}

		affected, err := service.repo.DeleteCitation(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextCitation)
		}
		return nil
	})
	if err != nil {
		return dberr.Translate(err, constants.ContextCitation)
	}

	service.cache.Delete(ctx, append(keys, cache.Key(constants.RedisPrefixCitation, id))...)
	service.logger.WarnContext(ctx, "citation_deleted", slog.Int("citation_id", id))
	return nil
}

// # Links

// AddActor links an actor to the citation. Linking twice is a no-op.
func (service *Service) AddActor(ctx context.Context, id, actorID int) (*Citation, error) {
	return service.link(ctx, id, FieldActorID, actorID, constants.RedisPrefixActor, service.repo.AssociateActors)
}

// AddAuthor links an author to the citation. Linking twice is a no-op.
func (service *Service) AddAuthor(ctx context.Context, id, authorID int) (*Citation, error) {
	return service.link(ctx, id, FieldAuthorID, authorID, constants.RedisPrefixAuthor, service.repo.AssociateAuthors)
}

// RemoveActor unlinks an actor from the citation. Removing a missing link is a no-op.
func (service *Service) RemoveActor(ctx context.Context, id, actorID int) (*Citation, error) {
	return service.unlink(ctx, id, FieldActorID, actorID, constants.RedisPrefixActor, service.repo.DissociateActor)
}

// RemoveAuthor unlinks an author from the citation. Removing a missing link is a no-op.
func (service *Service) RemoveAuthor(ctx context.Context, id, authorID int) (*Citation, error) {
	return service.unlink(ctx, id, FieldAuthorID, authorID, constants.RedisPrefixAuthor, service.repo.DissociateAuthor)
}

func (service *Service) link(
	ctx context.Context, id int, field string, relatedID int, prefix string,
	associate func(ctx context.Context, id int, relatedIDs []int) error,
) (*Citation, error) {
	if err := (&validate.Validator{}).Positive(field, relatedID).Err(); err != nil {
		return nil, err
	}
	if _, err := service.find(ctx, id); err != nil {
		return nil, err
	}

	if err := associate(ctx, id, []int{relatedID}); err != nil {
		return nil, dberr.Translate(err, constants.ContextCitation)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixCitation, id), cache.Key(prefix, relatedID))
	service.logger.InfoContext(ctx, "citation_linked", slog.Int("citation_id", id), slog.String("relation", field), slog.Int("related_id", relatedID))
	return service.find(ctx, id)
}

func (service *Service) unlink(
	ctx context.Context, id int, field string, relatedID int, prefix string,
	dissociate func(ctx context.Context, id, relatedID int) error,
) (*Citation, error) {
	if _, err := service.find(ctx, id); err != nil {
		return nil, err
	}

	if err := dissociate(ctx, id, relatedID); err != nil {
		return nil, dberr.Translate(err, constants.ContextCitation)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixCitation, id), cache.Key(prefix, relatedID))
	service.logger.InfoContext(ctx, "citation_unlinked", slog.Int("citation_id", id), slog.String("relation", field), slog.Int("related_id", relatedID))
	return service.find(ctx, id)
}

func (service *Service) find(ctx context.Context, id int) (*Citation, error) {
	citation, err := service.repo.FindCitation(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCitation)
	}
	return citation, nil
}

func personIDs(people []PersonRef) []int {
	return slice.Map(people, func(person PersonRef) int { return person.ID })
}

// linkKeys lists the cache keys of the given actors and authors.
func linkKeys(actorIDs, authorIDs []int) []string {
	keys := slice.Map(actorIDs, func(actorID int) string { return cache.Key(constants.RedisPrefixActor, actorID) })
	return append(keys, slice.Map(authorIDs, func(authorID int) string { return cache.Key(constants.RedisPrefixAuthor, authorID) })...)
}

func validateCitation(text string, characterID int, episodeID, movieID *int) *validate.Validator {
	validator := &validate.Validator{}
	validator.Required(FieldText, text).MaxLen(FieldText, text, maxTextLength)
	validator.Positive(FieldCharacterID, characterID)
	if episodeID != nil {
		validator.Positive(FieldEpisodeID, *episodeID)
	}
	if movieID != nil {
		validator.Positive(FieldMovieID, *movieID)
	}
	validator.Custom(FieldMovieID, episodeID != nil && movieID != nil, "Cannot reference both an episode and a movie")
	return validator
}
