// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
	"github.com/taibuivan/kaamelott/pkg/pointer"
)

func TestEntity_SortKeysMatchAllowList(t *testing.T) {
	assert.ElementsMatch(t, SortKeys, entity.SortKeys())
}

func TestListQuery_SeasonsAreAggregated(t *testing.T) {
	query, err := entity.ListQuery(repository.Filter{Criteria: Filter{Slug: "Kaamelott"}.Criteria()})
	require.NoError(t, err)

	statement, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, statement, "FROM catalog.season rel WHERE rel.showid = sh.id), '[]') AS seasons")
	assert.Contains(t, statement, "ORDER BY rel.number")
	assert.Contains(t, statement, "WHERE (LOWER(sh.slug) = LOWER($1))")
	assert.Equal(t, []any{"Kaamelott"}, args)
}

func TestCreateShow_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	description := pointer.To("Série")
	mock.ExpectQuery(`INSERT INTO catalog\.show \(description,name,slug\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs(description, "Kaamelott", "kaamelott").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	id, err := NewPostgresRepository(mock).CreateShow(context.Background(), &Show{
		Name:        "Kaamelott",
		Slug:        "kaamelott",
		Description: description,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
