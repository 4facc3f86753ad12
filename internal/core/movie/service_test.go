// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/core/movie"
	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/pkg/pointer"
)

type fakeRepo struct {
	movies map[int]*movie.Movie
}

func (f *fakeRepo) ListMovies(context.Context, repository.Filter) ([]*movie.Movie, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) FindMovie(_ context.Context, criteria repository.Criteria) (*movie.Movie, error) {
	m, ok := f.movies[criteria[movie.FieldID].(int)]
	if !ok {
		return nil, fmt.Errorf("select one catalog.movie: %w", pgx.ErrNoRows)
	}
	copied := *m
	return &copied, nil
}

func (f *fakeRepo) CreateMovie(_ context.Context, m *movie.Movie) (int, error) {
	stored := *m
	stored.ID = len(f.movies) + 1
	f.movies[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeRepo) UpdateMovie(_ context.Context, m *movie.Movie) (int64, error) {
	stored := *m
	f.movies[m.ID] = &stored
	return 1, nil
}

func (f *fakeRepo) DeleteMovie(_ context.Context, id int) (int64, error) {
	if _, ok := f.movies[id]; !ok {
		return 0, nil
	}
	delete(f.movies, id)
	return 1, nil
}

func newService() *movie.Service {
	return movie.NewService(&fakeRepo{movies: map[int]*movie.Movie{}}, cache.Noop{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateMovie(t *testing.T) {
	created, err := newService().CreateMovie(context.Background(), movie.CreateInput{
		Name:        "Kaamelott : Premier Volet",
		ReleaseYear: pointer.To(2021),
	})

	require.NoError(t, err)
	assert.Equal(t, "kaamelott-premier-volet", created.Slug)
	assert.Equal(t, 2021, *created.ReleaseYear)
	assert.Nil(t, created.Description)
}

func TestCreateMovie_ReleaseYearOutOfRange(t *testing.T) {
	_, err := newService().CreateMovie(context.Background(), movie.CreateInput{
		Name:        "Kaamelott : Deuxième Volet",
		ReleaseYear: pointer.To(12),
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, movie.FieldReleaseYear, appError.Details[0].Field)
}

func TestUpdateMovie_KeepsReleaseYear(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, movie.CreateInput{Name: "Kaamelott", ReleaseYear: pointer.To(2021)})
	require.NoError(t, err)

	updated, err := service.UpdateMovie(ctx, created.ID, movie.Patch{Description: pointer.To("Premier volet")})

	require.NoError(t, err)
	assert.Equal(t, 2021, *updated.ReleaseYear)
	assert.Equal(t, "Premier volet", *updated.Description)
	assert.Equal(t, "kaamelott", updated.Slug)
}

func TestGetMovie_Missing(t *testing.T) {
	_, err := newService().GetMovie(context.Background(), 3)

	assert.EqualError(t, err, "(Movie)[NO_DATA_FOUND] Cannot perform operation: Resource not found")
}
