// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

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

func (service *Service) ListActors(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Actor], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	actors, total, err := service.repo.ListActors(ctx, list)
	if err != nil {
		return pagination.Page[*Actor]{}, dberr.Translate(err, constants.ContextActor)
	}

	return pagination.NewPage(actors, total, list.Page()), nil
}

func (service *Service) GetActor(ctx context.Context, id int) (*Actor, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixActor, id), func(ctx context.Context) (*Actor, error) {
		return service.find(ctx, id)
	})
}

func (service *Service) CreateActor(ctx context.Context, input CreateInput) (*Actor, error) {
	if err := validateNames(input.FirstName, input.LastName); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateActor(ctx, input)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextActor)
	}

	service.logger.InfoContext(ctx, "actor_created", slog.Int("actor_id", id))
	return service.find(ctx, id)
}

func (service *Service) UpdateActor(ctx context.Context, id int, patch Patch) (*Actor, error) {
	actor, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(actor)

	if err := validateNames(actor.FirstName, actor.LastName); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateActor(ctx, actor)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextActor)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextActor)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixActor, id))
	service.logger.InfoContext(ctx, "actor_updated", slog.Int("actor_id", id))
	return service.find(ctx, id)
}

// DeleteActor detaches the actor from characters and citations, then removes it.
// The cached characters and citations that listed the actor are evicted too.
func (service *Service) DeleteActor(ctx context.Context, id int) error {
	var characterIDs, citationIDs []int
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		var err error
		characterIDs, citationIDs, err = service.repo.LinkedIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := service.repo.UnlinkActor(ctx, id); err != nil {
			return err
		}

		affected, err := service.repo.DeleteActor(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextActor)
		}
		return nil
	})
	if err != nil {
		return dberr.Translate(err, constants.ContextActor)
	}

	keys := append([]string{cache.Key(constants.RedisPrefixActor, id)}, cache.Keys(constants.RedisPrefixCharacter, characterIDs)...)
	service.cache.Delete(ctx, append(keys, cache.Keys(constants.RedisPrefixCitation, citationIDs)...)...)
	service.logger.WarnContext(ctx, "actor_deleted",
		slog.Int("actor_id", id),
		slog.Int("characters", len(characterIDs)),
		slog.Int("citations", len(citationIDs)),
	)
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Actor, error) {
	actor, err := service.repo.FindActor(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextActor)
	}
	return actor, nil
}

func validateNames(firstName, lastName string) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, firstName).MaxLen(FieldFirstName, firstName, maxNameLength)
	validator.Required(FieldLastName, lastName).MaxLen(FieldLastName, lastName, maxNameLength)
	return validator.Err()
}
