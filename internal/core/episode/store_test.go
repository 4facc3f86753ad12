// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

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

func TestListEpisodes_BySeason(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	aired := time.Date(2005, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM catalog\.episode ep LEFT JOIN catalog\.season sn ON sn\.id = ep\.seasonid WHERE \(sn\.id = \$1\)`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`WHERE \(sn\.id = \$1\) ORDER BY ep\.number ASC, ep\.id ASC LIMIT 2 OFFSET 0`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "number", "seasonid", "name", "number", "createdat", "updatedat"}).
			AddRow(1, "Heat", 1, 1, "Livre I", 1, aired, aired).
			AddRow(2, "Les Chevaliers de Provence", 2, 1, "Livre I", 1, aired, aired))

	episodes, total, err := NewPostgresRepository(mock).ListEpisodes(context.Background(), repository.Filter{
		Criteria:  Filter{SeasonID: pointer.To(1)}.Criteria(),
		SortBy:    FieldNumber,
		SortOrder: repository.SortASC,
		Limit:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, episodes, 2)
	assert.LessOrEqual(t, len(episodes), total)
	assert.Equal(t, SeasonRef{ID: 1, Name: "Livre I", Number: 1}, episodes[1].Season)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuery_SortBySeasonUsesJoinedKey(t *testing.T) {
	query, err := entity.ListQuery(repository.Filter{SortBy: FieldSeasonID, SortOrder: repository.SortDESC})
	require.NoError(t, err)

	statement, _, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, statement, "ORDER BY sn.id DESC, ep.id DESC")
}
