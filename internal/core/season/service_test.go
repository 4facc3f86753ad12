// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/core/season"
	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/pkg/pointer"
)

type fakeRepo struct {
	seasons   map[int]*season.Season
	createErr error
}

func (f *fakeRepo) ListSeasons(context.Context, repository.Filter) ([]*season.Season, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) FindSeason(_ context.Context, criteria repository.Criteria) (*season.Season, error) {
	s, ok := f.seasons[criteria[season.FieldID].(int)]
	if !ok {
		return nil, fmt.Errorf("select one catalog.season: %w", pgx.ErrNoRows)
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepo) CreateSeason(_ context.Context, input season.CreateInput) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := len(f.seasons) + 1
	f.seasons[id] = &season.Season{
		ID:     id,
		Name:   input.Name,
		Number: input.Number,
		ShowID: input.ShowID,
		Show:   season.ShowRef{ID: input.ShowID, Name: "Kaamelott"},
	}
	return id, nil
}

func (f *fakeRepo) UpdateSeason(_ context.Context, s *season.Season) (int64, error) {
	stored := *s
	f.seasons[s.ID] = &stored
	return 1, nil
}

func (f *fakeRepo) DeleteSeason(_ context.Context, id int) (int64, error) {
	if _, ok := f.seasons[id]; !ok {
		return 0, nil
	}
	delete(f.seasons, id)
	return 1, nil
}

type recordingCache struct {
	deleted []string
}

func (c *recordingCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (c *recordingCache) Set(context.Context, string, []byte)        {}
func (c *recordingCache) Delete(_ context.Context, keys ...string) {
	c.deleted = append(c.deleted, keys...)
}

func newService(repo *fakeRepo, records *recordingCache) *season.Service {
	return season.NewService(repo, records, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateSeason_InvalidatesShow(t *testing.T) {
	records := &recordingCache{}
	service := newService(&fakeRepo{seasons: map[int]*season.Season{}}, records)

	created, err := service.CreateSeason(context.Background(), season.CreateInput{Name: "Livre I", Number: 1, ShowID: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, created.Show.ID)
	assert.Equal(t, []string{"catalog:show:2"}, records.deleted)
}

func TestCreateSeason_UnknownShow(t *testing.T) {
	repo := &fakeRepo{
		seasons:   map[int]*season.Season{},
		createErr: fmt.Errorf("insert catalog.season: %w", &pgconn.PgError{Code: "23503"}),
	}

	_, err := newService(repo, &recordingCache{}).CreateSeason(context.Background(), season.CreateInput{Name: "Livre I", Number: 1, ShowID: 99})

	assert.EqualError(t, err, "(Season)[FK_VIOLATION] Cannot perform operation: Referenced resource does not exist")
}

func TestCreateSeason_Validation(t *testing.T) {
	_, err := newService(&fakeRepo{seasons: map[int]*season.Season{}}, &recordingCache{}).
		CreateSeason(context.Background(), season.CreateInput{Name: "Livre I"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	fields := []string{}
	for _, detail := range appError.Details {
		fields = append(fields, detail.Field)
	}
	assert.Equal(t, []string{season.FieldNumber, season.FieldShowID}, fields)
}

func TestUpdateSeason_MoveToAnotherShow(t *testing.T) {
	records := &recordingCache{}
	repo := &fakeRepo{seasons: map[int]*season.Season{}}
	service := newService(repo, records)
	ctx := context.Background()

	created, err := service.CreateSeason(ctx, season.CreateInput{Name: "Livre I", Number: 1, ShowID: 2})
	require.NoError(t, err)
	records.deleted = nil

	updated, err := service.UpdateSeason(ctx, created.ID, season.Patch{ShowID: pointer.To(3)})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.ShowID)
	assert.Equal(t, "Livre I", updated.Name)
	assert.ElementsMatch(t, []string{"catalog:season:1", "catalog:show:2", "catalog:show:3"}, records.deleted)
}
