// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/core/episode"
	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/pkg/pointer"
)

type fakeRepo struct {
	episodes  map[int]*episode.Episode
	writeErr  error
	deleteErr error
}

func (f *fakeRepo) ListEpisodes(context.Context, repository.Filter) ([]*episode.Episode, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) FindEpisode(_ context.Context, criteria repository.Criteria) (*episode.Episode, error) {
	e, ok := f.episodes[criteria[episode.FieldID].(int)]
	if !ok {
		return nil, fmt.Errorf("select one catalog.episode: %w", pgx.ErrNoRows)
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRepo) CreateEpisode(_ context.Context, input episode.CreateInput) (int, error) {
	id := len(f.episodes) + 1
	f.episodes[id] = &episode.Episode{ID: id, Name: input.Name, Number: input.Number, SeasonID: input.SeasonID}
	return id, nil
}

func (f *fakeRepo) UpdateEpisode(_ context.Context, e *episode.Episode) (int64, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	stored := *e
	f.episodes[e.ID] = &stored
	return 1, nil
}

func (f *fakeRepo) DeleteEpisode(context.Context, int) (int64, error) {
	return 0, f.deleteErr
}

func newService(repo *fakeRepo) *episode.Service {
	return episode.NewService(repo, cache.Noop{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUpdateEpisode_DuplicateNumber(t *testing.T) {
	repo := &fakeRepo{episodes: map[int]*episode.Episode{}}
	service := newService(repo)
	ctx := context.Background()

	created, err := service.CreateEpisode(ctx, episode.CreateInput{Name: "Heat", Number: 1, SeasonID: 1})
	require.NoError(t, err)

	repo.writeErr = &pgconn.PgError{Code: "23505"}
	_, err = service.UpdateEpisode(ctx, created.ID, episode.Patch{Number: pointer.To(2)})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusConflict, appError.HTTPStatus)
	assert.Equal(t, "Episode", appError.Context)
}

func TestDeleteEpisode_Translation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "quoted by a citation",
			err:     &pgconn.PgError{Code: "23001"},
			status:  http.StatusBadRequest,
			message: "(Episode)[RESTRICT_VIOLATION] Cannot perform operation: Resource is still referenced by other resources",
		},
		{
			name:    "missing",
			status:  http.StatusNotFound,
			message: "(Episode)[NO_DATA_FOUND] Cannot perform operation: Resource not found",
		},
		{
			name:    "connection lost",
			err:     fmt.Errorf("delete catalog.episode: %w", errors.New("i/o timeout")),
			status:  http.StatusInternalServerError,
			message: "(Episode)[OPERATION_FAILED] Cannot perform operation: delete catalog.episode: i/o timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(&fakeRepo{episodes: map[int]*episode.Episode{}, deleteErr: tt.err})

			err := service.DeleteEpisode(context.Background(), 1)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.status, appError.HTTPStatus)
			assert.Equal(t, tt.message, appError.Message)
		})
	}
}
