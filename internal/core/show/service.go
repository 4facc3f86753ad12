// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

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
	"github.com/taibuivan/kaamelott/pkg/slug"
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

func (service *Service) ListShows(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Show], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	shows, total, err := service.repo.ListShows(ctx, list)
	if err != nil {
		return pagination.Page[*Show]{}, dberr.Translate(err, constants.ContextShow)
	}
	return pagination.NewPage(shows, total, list.Page()), nil
}

func (service *Service) GetShow(ctx context.Context, id int) (*Show, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixShow, id), func(ctx context.Context) (*Show, error) {
		return service.find(ctx, id)
	})
}

func (service *Service) CreateShow(ctx context.Context, input CreateInput) (*Show, error) {
	show := &Show{
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
	}
	if err := validateShow(show); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateShow(ctx, show)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextShow)
	}

	service.logger.InfoContext(ctx, "show_created", slog.Int("show_id", id), slog.String("slug", show.Slug))
	return service.find(ctx, id)
}

func (service *Service) UpdateShow(ctx context.Context, id int, patch Patch) (*Show, error) {
	show, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(show)
	show.Slug = slug.From(show.Name)
	if err := validateShow(show); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateShow(ctx, show)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextShow)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextShow)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixShow, id))
	service.logger.InfoContext(ctx, "show_updated", slog.Int("show_id", id))
	return service.find(ctx, id)
}

// DeleteShow removes a show. Shows that still have seasons cannot be deleted.
func (service *Service) DeleteShow(ctx context.Context, id int) error {
	affected, err := service.repo.DeleteShow(ctx, id)
	if err != nil {
		return dberr.Translate(err, constants.ContextShow)
	}
	if affected == 0 {
		return apperr.NotFound(constants.ContextShow)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixShow, id))
	service.logger.WarnContext(ctx, "show_deleted", slog.Int("show_id", id))
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Show, error) {
	show, err := service.repo.FindShow(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextShow)
	}
	return show, nil
}

func validateShow(show *Show) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, show.Name).MaxLen(FieldName, show.Name, maxNameLength)
	if !validator.HasErrors() {
		validator.Slug(FieldName, show.Slug)
	}
	if show.Description != nil {
		validator.MaxLen(FieldDescription, *show.Description, maxDescriptionLength)
	}
	return validator.Err()
}
