// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

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

func (service *Service) ListAuthors(ctx context.Context, filter Filter, list repository.Filter) (pagination.Page[*Author], error) {
	list.Criteria = filter.Criteria()
	list = list.Normalize()

	authors, total, err := service.repo.ListAuthors(ctx, list)
	if err != nil {
		return pagination.Page[*Author]{}, dberr.Translate(err, constants.ContextAuthor)
	}

	return pagination.NewPage(authors, total, list.Page()), nil
}

func (service *Service) GetAuthor(ctx context.Context, id int) (*Author, error) {
	return cache.Fetch(ctx, service.cache, cache.Key(constants.RedisPrefixAuthor, id), func(ctx context.Context) (*Author, error) {
		return service.find(ctx, id)
	})
}

func (service *Service) CreateAuthor(ctx context.Context, input CreateInput) (*Author, error) {
	if err := validateNames(input.FirstName, input.LastName); err != nil {
		return nil, err
	}

	id, err := service.repo.CreateAuthor(ctx, input)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextAuthor)
	}

	service.logger.InfoContext(ctx, "author_created", slog.Int("author_id", id))
	return service.find(ctx, id)
}

func (service *Service) UpdateAuthor(ctx context.Context, id int, patch Patch) (*Author, error) {
	author, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(author)

	if err := validateNames(author.FirstName, author.LastName); err != nil {
		return nil, err
	}

	affected, err := service.repo.UpdateAuthor(ctx, author)
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextAuthor)
	}
	if affected == 0 {
		return nil, apperr.NotFound(constants.ContextAuthor)
	}

	service.cache.Delete(ctx, cache.Key(constants.RedisPrefixAuthor, id))
	service.logger.InfoContext(ctx, "author_updated", slog.Int("author_id", id))
	return service.find(ctx, id)
}

// DeleteAuthor detaches the author from its citations, then removes it.
// Cached citations that listed the author are evicted too.
func (service *Service) DeleteAuthor(ctx context.Context, id int) error {
	var citationIDs []int
	err := service.runner.Run(ctx, func(ctx context.Context) error {
		var err error
		if citationIDs, err = service.repo.CitationIDs(ctx, id); err != nil {
			return err
		}
		if err := service.repo.UnlinkAuthor(ctx, id); err != nil {
			return err
		}

		affected, err := service.repo.DeleteAuthor(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound(constants.ContextAuthor)
		}
		return nil
	})
	if err != nil {
		return dberr.Translate(err, constants.ContextAuthor)
	}

	service.cache.Delete(ctx, append(cache.Keys(constants.RedisPrefixCitation, citationIDs), cache.Key(constants.RedisPrefixAuthor, id))...)
	service.logger.WarnContext(ctx, "author_deleted", slog.Int("author_id", id), slog.Int("citations", len(citationIDs)))
	return nil
}

func (service *Service) find(ctx context.Context, id int) (*Author, error) {
	author, err := service.repo.FindAuthor(ctx, repository.Criteria{FieldID: id})
	if err != nil {
		return nil, dberr.Translate(err, constants.ContextAuthor)
	}
	return author, nil
}

func validateNames(firstName, lastName string) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, firstName).MaxLen(FieldFirstName, firstName, maxNameLength)
	validator.Required(FieldLastName, lastName).MaxLen(FieldLastName, lastName, maxNameLength)
	return validator.Err()
}
