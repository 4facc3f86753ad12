// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

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

func TestListQuery_ForeignKeysUseJoinedRelations(t *testing.T) {
	query, err := entity.ListQuery(repository.Filter{
		Criteria: Filter{CharacterID: pointer.To(1), MovieID: pointer.To(2)}.Criteria(),
		SortBy:   FieldCharacterID,
	})
	require.NoError(t, err)

	statement, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, statement, "LEFT JOIN catalog.character ch ON ch.id = ct.characterid")
	assert.Contains(t, statement, "LEFT JOIN catalog.episode ep ON ep.id = ct.episodeid")
	assert.Contains(t, statement, "LEFT JOIN catalog.movie mv ON mv.id = ct.movieid")
	assert.Contains(t, statement, "WHERE (ch.id = $1 AND mv.id = $2)")
	assert.Contains(t, statement, "ORDER BY ch.id DESC, ct.id DESC")
	assert.Equal(t, []any{1, 2}, args)
}

func TestListQuery_SearchReachesRelations(t *testing.T) {
	query, err := entity.ListQuery(repository.Filter{Search: "Perceval"})
	require.NoError(t, err)

	statement, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, statement, "ct.text ILIKE $1 OR ch.name ILIKE $2 OR ep.name ILIKE $3 OR mv.name ILIKE $4")
	assert.Contains(t, statement, "FROM catalog.author rel JOIN catalog.citationauthor lnk")
	assert.Len(t, args, 6)
}

func TestFindCitation_FromMovie(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2021, 7, 21, 0, 0, 0, 0, time.UTC)
	authors := []PersonRef{{ID: 1, FirstName: "Alexandre", LastName: "Astier"}}

	mock.ExpectQuery(`FROM catalog\.citation ct LEFT JOIN .* WHERE \(ct\.id = \$1\) LIMIT 1`).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "text", "characterid", "name", "episodeid", "name", "movieid", "name", "actors", "authors", "createdat", "updatedat",
		}).AddRow(
			5, "Mais c'est pas faux !", 2, "Perceval",
			(*int)(nil), (*string)(nil),
			pointer.To(1), pointer.To("Kaamelott : Premier Volet"),
			[]PersonRef{}, authors, created, created,
		))

	found, err := NewPostgresRepository(mock).FindCitation(context.Background(), repository.Criteria{FieldID: 5})

	require.NoError(t, err)
	assert.Equal(t, Ref{ID: 2, Name: "Perceval"}, found.Character)
	assert.Nil(t, found.Episode)
	assert.Equal(t, &Ref{ID: 1, Name: "Kaamelott : Premier Volet"}, found.Movie)
	assert.Empty(t, found.Actors)
	assert.Equal(t, authors, found.Authors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkCitation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM catalog\.citationactor WHERE citationid = \$1`).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM catalog\.citationauthor WHERE citationid = \$1`).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, NewPostgresRepository(mock).UnlinkCitation(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCitation_NullableSource(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO catalog\.citation \(characterid,episodeid,movieid,text\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(2, pointer.To(3), (*int)(nil), "C'est pas faux.").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

	id, err := NewPostgresRepository(mock).CreateCitation(context.Background(), CreateInput{
		Text:        "C'est pas faux.",
		CharacterID: 2,
		EpisodeID:   pointer.To(3),
	})

	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
