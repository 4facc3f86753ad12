// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/pkg/pointer"
)

func TestEntity_SortKeysMatchAllowList(t *testing.T) {
	assert.ElementsMatch(t, SortKeys, entity.SortKeys())
}

func TestListQuery_ZeroValuesAreIgnored(t *testing.T) {
	unfiltered, err := entity.ListQuery(repository.Filter{})
	require.NoError(t, err)
	zeroed, err := entity.ListQuery(repository.Filter{
		Criteria: Filter{Name: "", ReleaseYear: pointer.To(0)}.Criteria(),
	})
	require.NoError(t, err)

	want, _, err := unfiltered.ToSql()
	require.NoError(t, err)
	got, args, err := zeroed.ToSql()
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Empty(t, args)
}

func TestListMovies_ByReleaseYear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	released := time.Date(2021, 7, 21, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM catalog\.movie mv WHERE \(mv\.releaseyear = \$1\)`).
		WithArgs(2021).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`WHERE \(mv\.releaseyear = \$1\) ORDER BY mv\.releaseyear DESC, mv\.id DESC LIMIT 100 OFFSET 0`).
		WithArgs(2021).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug", "description", "releaseyear", "createdat", "updatedat"}).
			AddRow(1, "Kaamelott : Premier Volet", "kaamelott-premier-volet", pointer.To("Le retour d'Arthur"), pointer.To(2021), released, released))

	movies, total, err := NewPostgresRepository(mock).ListMovies(context.Background(), repository.Filter{
		Criteria: Filter{ReleaseYear: pointer.To(2021)}.Criteria(),
		SortBy:   FieldReleaseYear,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, movies, 1)
	assert.Equal(t, 2021, *movies[0].ReleaseYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}
