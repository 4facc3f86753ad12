// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

func TestEntity_SortKeysMatchAllowList(t *testing.T) {
	assert.ElementsMatch(t, SortKeys, entity.SortKeys())
}

func TestListQuery_SearchCoversBothNames(t *testing.T) {
	query, err := entity.ListQuery(repository.Filter{Search: "FAUX"})
	require.NoError(t, err)

	statement, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, statement, "WHERE (au.firstname ILIKE $1 OR au.lastname ILIKE $2)")
	assert.Equal(t, []any{"%FAUX%", "%FAUX%"}, args)
}

func TestFindAuthor_WithCitations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2009, 10, 19, 0, 0, 0, 0, time.UTC)
	citations := []CitationRef{{ID: 3, Text: "C'est pas faux."}}

	mock.ExpectQuery(`SELECT au\.id, au\.firstname, au\.lastname, COALESCE\(\(SELECT json_agg`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "firstname", "lastname", "citations", "createdat", "updatedat"}).
			AddRow(1, "Alexandre", "Astier", citations, created, created))

	found, err := NewPostgresRepository(mock).FindAuthor(context.Background(), repository.Criteria{FieldID: 1})

	require.NoError(t, err)
	assert.Equal(t, citations, found.Citations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAuthor_TouchesUpdatedAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE catalog\.author SET firstname = \$1, lastname = \$2, updatedat = NOW\(\) WHERE id = \$3`).
		WithArgs("Alexandre", "Astier", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := NewPostgresRepository(mock).UpdateAuthor(context.Background(), &Author{ID: 1, FirstName: "Alexandre", LastName: "Astier"})

	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAuthor_ReportsAffectedRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM catalog\.author WHERE id = \$1`).
		WithArgs(8).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := NewPostgresRepository(mock).DeleteAuthor(context.Background(), 8)

	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCitationIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT citationid FROM catalog\.citationauthor WHERE authorid = \$1 ORDER BY citationid`).
		WithArgs(8).
		WillReturnRows(pgxmock.NewRows([]string{"citationid"}))

	ids, err := NewPostgresRepository(mock).CitationIDs(context.Background(), 8)

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
