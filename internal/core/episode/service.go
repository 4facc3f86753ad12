// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

import (
	"context"
	"log/slog"

	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/constants"
	"github.com/taibuivan/kaamelott/internal/platform/dberr"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/internal/platform/validate"
	"github.com/taibuivan/kaamelott/pkg/pagination"
)

type Service struct {
	repo   Repository
	cache  cache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, records cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  records,
		logger: logger,
	}
}

func (service *Service) ListEpisodes(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Episode], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	episodes, total, err := service.repo.ListEpisodes(ctx, list)
	if err != nil {
		return pagination.Page[*Episode]{}, dberr.Translate(err, constants.ContextEpisode)
	}
	return pagination.NewPage(episodes, total, list.Page()), nil
}

func (service *Service) GetEpisode(ctx context.Context, id int) (*Episode, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixEpisode, id), func(ctx context.Context) (*Episode, error) {
		return service.find(ctx, id)
	})
}

// CreateEpisode stores an episode. A missing season yields FK_VIOLATION.
func (service *Service) CreateEpisode(ctx context.Context, input CreateInput) (*Episode, error) {
	if err := validateEpisode(input.Name, input.Number, input.SeasonID); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateEpisode(ctx, input)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextEpisode)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixSeason, input.SeasonID))
	service.logger.InfoContext(ctx, "episode_created", slog.Int("episode_id", id), slog.Int("season_id", input.SeasonID))
	return service.find(ctx, id)
}

func (service *Service) UpdateEpisode(ctx context.Context, id int, patch Patch) (*Episode, error) {
	episode, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	previousSeasonID := episode.SeasonID
	patch.Apply(episode)
	if err := validateEpisode(episode.Name, episode.Number, episode.SeasonID); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateEpisode(ctx, episode)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextEpisode)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextEpisode)
	}

	service.cache.Delete(ctx,
		cache.Key(constants.RedisPrefixEpisode, id),
		cache.Key(constants.RedisPrefixSeason, previousSeasonID),
		cache.Key(constants.RedisPrefixSeason, episode.SeasonID),
	)
	service.logger.InfoContext(ctx, "episode_updated", slog.Int("episode_id", id))
	return service.find(ctx, id)
}

// DeleteEpisode removes an episode. Episodes quoted by citations cannot be deleted.
func (service *Service) DeleteEpisode(ctx context.Context, id int) error {
	affected, err := service.repo.DeleteEpisode(ctx, id)
	if err != nil {
		return dberr.Translate(err, constants.ContextEpisode)
	}
	if affected == 0 {
		return apperr.NotFound(constants.ContextEpisode)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixEpisode, id))
	service.logger.WarnContext(ctx, "episode_deleted", slog.Int("episode_id", id))
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Episode, error) {
	episode, err := service.repo.FindEpisode(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextEpisode)
	}
	return episode, nil
}

func validateEpisode(name string, number, seasonID int) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLength)
	validator.Positive(FieldNumber, number)
	validator.Positive(FieldSeasonID, seasonID)
	return validator.Err()
}
