// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season

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

func (service *Service) ListSeasons(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Season], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	seasons, total, err := service.repo.ListSeasons(ctx, list)
	if err != nil {
		return pagination.Page[*Season]{}, dberr.Translate(err, constants.ContextSeason)
	}
	return pagination.NewPage(seasons, total, list.Page()), nil
}

func (service *Service) GetSeason(ctx context.Context, id int) (*Season, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixSeason, id), func(ctx context.Context) (*Season, error) {
		return service.find(ctx, id)
	})
}

// CreateSeason stores a season. A missing show yields FK_VIOLATION.
func (service *Service) CreateSeason(ctx context.Context, input CreateInput) (*Season, error) {
	if err := validateSeason(input.Name, input.Number, input.ShowID); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateSeason(ctx, input)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextSeason)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixShow, input.ShowID))
	service.logger.InfoContext(ctx, "season_created", slog.Int("season_id", id), slog.Int("show_id", input.ShowID))
	return service.find(ctx, id)
}

func (service *Service) UpdateSeason(ctx context.Context, id int, patch Patch) (*Season, error) {
	season, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	previousShowID := season.ShowID
	patch.Apply(season)
	if err := validateSeason(season.Name, season.Number, season.ShowID); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateSeason(ctx, season)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextSeason)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextSeason)
	}

	service.cache.Delete(ctx,
		cache.Key(constants.RedisPrefixSeason, id),
		cache.Key(constants.RedisPrefixShow, previousShowID),
		cache.Key(constants.RedisPrefixShow, season.ShowID),
	)
	service.logger.InfoContext(ctx, "season_updated", slog.Int("season_id", id))
	return service.find(ctx, id)
}

// DeleteSeason removes a season. Seasons that still have episodes cannot be deleted.
func (service *Service) DeleteSeason(ctx context.Context, id int) error {
	affected, err := service.repo.DeleteSeason(ctx, id)
	if err != nil {
		return dberr.Translate(err, constants.ContextSeason)
	}
	if affected == 0 {
		return apperr.NotFound(constants.ContextSeason)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixSeason, id))
	service.logger.WarnContext(ctx, "season_deleted", slog.Int("season_id", id))
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Season, error) {
	season, err := service.repo.FindSeason(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextSeason)
	}
	return season, nil
}

func validateSeason(name string, number, showID int) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, maxNameLength)
	validator.Positive(FieldNumber, number)
	validator.Positive(FieldShowID, showID)
	return validator.Err()
}
