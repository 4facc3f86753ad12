// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

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

func (service *Service) ListMovies(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Movie], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	movies, total, err := service.repo.ListMovies(ctx, list)
	if err != nil {
		return pagination.Page[*Movie]{}, dberr.Translate(err, constants.ContextMovie)
	}
	return pagination.NewPage(movies, total, list.Page()), nil
}

func (service *Service) GetMovie(ctx context.Context, id int) (*Movie, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixMovie, id), func(ctx context.Context) (*Movie, error) {
		return service.find(ctx, id)
	})
}

func (service *Service) CreateMovie(ctx context.Context, input CreateInput) (*Movie, error) {
	movie := &Movie{
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	}
	if err := validateMovie(movie); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateMovie(ctx, movie)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextMovie)
	}

	service.logger.InfoContext(ctx, "movie_created", slog.Int("movie_id", id), slog.String("slug", movie.Slug))
	return service.find(ctx, id)
}

func (service *Service) UpdateMovie(ctx context.Context, id int, patch Patch) (*Movie, error) {
	movie, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(movie)
	movie.Slug = slug.From(movie.Name)
	if err := validateMovie(movie); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateMovie(ctx, movie)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextMovie)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextMovie)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixMovie, id))
	service.logger.InfoContext(ctx, "movie_updated", slog.Int("movie_id", id))
	return service.find(ctx, id)
}

// DeleteMovie removes a movie. Movies quoted by citations cannot be deleted.
func (service *Service) DeleteMovie(ctx context.Context, id int) error {
	affected, err := service.repo.DeleteMovie(ctx, id)
	if err != nil {
		return dberr.Translate(err, constants.ContextMovie)
	}
	if affected == 0 {
		return apperr.NotFound(constants.ContextMovie)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixMovie, id))
	service.logger.WarnContext(ctx, "movie_deleted", slog.Int("movie_id", id))
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Movie, error) {
	movie, err := service.repo.FindMovie(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextMovie)
	}
	return movie, nil
}

func validateMovie(movie *Movie) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, movie.Name).MaxLen(FieldName, movie.Name, maxNameLength)
	if !validator.HasErrors() {
		validator.Slug(FieldName, movie.Slug)
	}
	if movie.Description != nil {
		validator.MaxLen(FieldDescription, *movie.Description, maxDescriptionLength)
	}
	if movie.ReleaseYear != nil {
		validator.Range(FieldReleaseYear, *movie.ReleaseYear, minReleaseYear, maxReleaseYear)
	}
	return validator.Err()
}
