// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

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

func (service *Service) ListCharacters(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Character], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	characters, total, err := service.repo.ListCharacters(ctx, list)
	if err != nil {
		return pagination.Page[*Character]{}, dberr.Translate(err, constants.ContextCharacter)
	}
	return pagination.NewPage(characters, total, list.Page()), nil
}

func (service *Service) GetCharacter(ctx context.Context, id int) (*Character, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixCharacter, id), func(ctx context.Context) (*Character, error) {
		return service.find(ctx, id)
	})
}

// CreateCharacter stores the character and links the given actors.
// An unknown actor yields FK_VIOLATION.
func (service *Service) CreateCharacter(ctx context.Context, input CreateInput) (*Character, error) {
	validator := validateCharacter(input.Name)
	validator.PositiveAll(FieldActorsID, input.ActorsID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var id int
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		var err error
		if id, err = service.repo.CreateCharacter(ctx, input); err != nil {
			return err
		}
		return service.repo.AssociateActors(ctx, id, input.ActorsID)
	})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCharacter)
	}

	service.cache.Delete(ctx, actorKeys(input.ActorsID)...)
	service.logger.InfoContext(ctx, "character_created", slog.Int("character_id", id), slog.Int("actors", len(input.ActorsID)))
	return service.find(ctx, id)
}

func (service *Service) UpdateCharacter(ctx context.Context, id int, patch Patch) (*Character, error) {
	character, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(character)

	validator := validateCharacter(character.Name)
	if patch.ActorsID != nil {
		validator.PositiveAll(FieldActorsID, *patch.ActorsID)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	err = service.runner.Run(ctx, func(ctx context.Context) error {
		affected, err := service.repo.UpdateCharacter(ctx, character)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextCharacter)
		}
		if patch.ActorsID == nil {
			return nil
		}
		return service.repo.ReplaceActors(ctx, id, *patch.ActorsID)
	})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCharacter)
	}

	keys := actorKeys(slice.Map(character.Actors, func(actor ActorRef) int { return actor.ID }))
	if patch.ActorsID != nil {
		keys = append(keys, actorKeys(*patch.ActorsID)...)
	}
	service.cache.Delete(ctx, append(keys, cache.Key(constants.RedisPrefixCharacter, id))...)
	service.logger.InfoContext(ctx, "character_updated", slog.Int("character_id", id))
	return service.find(ctx, id)
}

// DeleteCharacter unlinks every actor, then removes the character.
// Characters quoted by citations cannot be deleted.
func (service *Service) DeleteCharacter(ctx context.Context, id int) error {
	var actorIDs []int
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		var err error
		if actorIDs, err = service.repo.ActorIDs(ctx, id); err != nil {
			return err
		}
		if err := service.repo.DissociateActors(ctx, id); err != nil {
			return err
		}

		affected, err := service.repo.DeleteCharacter(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextCharacter)
		}
		return nil
	})
	if err != nil {
		return dberr.Translate(err, constants.ContextCharacter)
	}

	service.cache.Delete(ctx, append(actorKeys(actorIDs), cache.Key(constants.RedisPrefixCharacter, id))...)
	service.logger.WarnContext(ctx, "character_deleted", slog.Int("character_id", id))
	return nil
}

// AddActor links an actor to the character. Linking twice is a no-op.
func (service *Service) AddActor(ctx context.Context, id, actorID int) (*Character, error) {
	if err := (&validate.Validator{}).Positive(FieldActorID, actorID).Err(); err != nil {
		return nil, err
	}
	if _, err := service.find(ctx, id); err != nil {
		return nil, err
	}

	if err := service.repo.AssociateActors(ctx, id, []int{actorID}); err != nil {
		return nil, dberr.Translate(err, constants.ContextCharacter)
	}

	service.invalidateLink(ctx, id, actorID)
	service.logger.InfoContext(ctx, "character_actor_linked", slog.Int("character_id", id), slog.Int("actor_id", actorID))
	return service.find(ctx, id)
}

// RemoveActor unlinks an actor from the character. Removing a missing link is a no-op.
func (service *Service) RemoveActor(ctx context.Context, id, actorID int) (*Character, error) {
	if _, err := service.find(ctx, id); err != nil {
		return nil, err
	}

	if err := service.repo.DissociateActor(ctx, id, actorID); err != nil {
		return nil, dberr.Translate(err, constants.ContextCharacter)
	}

	service.invalidateLink(ctx, id, actorID)
	service.logger.InfoContext(ctx, "character_actor_unlinked", slog.Int("character_id", id), slog.Int("actor_id", actorID))
	return service.find(ctx, id)
}

func (service *Service) invalidateLink(ctx context.Context, id, actorID int) {
	service.cache.Delete(ctx,
		cache.Key(constants.RedisPrefixCharacter, id),
		cache.Key(constants.RedisPrefixActor, actorID),
	)
}

func (service *Service) find(ctx context.Context, id int) (*Character, error) {
	character, err := service.repo.FindCharacter(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextCharacter)
	}
	return character, nil
}

func actorKeys(actorIDs []int) []string {
	return slice.Map(actorIDs, func(actorID int) string {
		return cache.Key(constants.RedisPrefixActor, actorID)
	})
}

func validateCharacter(name string) *validate.Validator {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLength)
	return validator
}
