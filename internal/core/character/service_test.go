// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/core/character"
	"github.com/taibuivan/kaamelott/internal/platform/apperr"
	"github.com/taibuivan/kaamelott/internal/platform/cache"
	"github.com/taibuivan/kaamelott/internal/platform/postgres"
	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// fakeRepo keeps characters and their actor links in memory. Linking an actor
// outside knownActors fails like the foreign key would.
type fakeRepo struct {
	characters  map[int]*character.Character
	links       map[int][]int
	knownActors map[int]bool
	calls       []string
	nextID      int
}

func newFakeRepo(actorIDs ...int) *fakeRepo {
	known := map[int]bool{}
	for _, id := range actorIDs {
		known[id] = true
	}
	return &fakeRepo{characters: map[int]*character.Character{}, links: map[int][]int{}, knownActors: known, nextID: 1}
}

func (f *fakeRepo) ListCharacters(context.Context, repository.Filter) ([]*character.Character, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) FindCharacter(_ context.Context, criteria repository.Criteria) (*character.Character, error) {
	id := criteria[character.FieldID].(int)
	c, ok := f.characters[id]
	if !ok {
		return nil, fmt.Errorf("select one catalog.character: %w", pgx.ErrNoRows)
	}
	copied := *c
	copied.Actors = []character.ActorRef{}
	for _, actorID := range f.links[id] {
		copied.Actors = append(copied.Actors, character.ActorRef{ID: actorID})
	}
	return &copied, nil
}

func (f *fakeRepo) CreateCharacter(_ context.Context, input character.CreateInput) (int, error) {
	f.calls = append(f.calls, "create")
	id := f.nextID
	f.nextID++
	f.characters[id] = &character.Character{ID: id, Name: input.Name, Description: input.Description}
	return id, nil
}

func (f *fakeRepo) UpdateCharacter(_ context.Context, c *character.Character) (int64, error) {
	f.calls = append(f.calls, "update")
	if _, ok := f.characters[c.ID]; !ok {
		return 0, nil
	}
	stored := *c
	f.characters[c.ID] = &stored
	return 1, nil
}

func (f *fakeRepo) DeleteCharacter(_ context.Context, id int) (int64, error) {
	f.calls = append(f.calls, "delete")
	if _, ok := f.characters[id]; !ok {
		return 0, nil
	}
	delete(f.characters, id)
	return 1, nil
}

func (f *fakeRepo) ActorIDs(_ context.Context, id int) ([]int, error) {
	return slices.Clone(f.links[id]), nil
}

func (f *fakeRepo) AssociateActors(_ context.Context, id int, actorIDs []int) error {
	f.calls = append(f.calls, "associate")
	for _, actorID := range actorIDs {
		if !f.knownActors[actorID] {
			return fmt.Errorf("associate catalog.characteractor: %w", &pgconn.PgError{Code: "23503"})
		}
		if !slices.Contains(f.links[id], actorID) {
			f.links[id] = append(f.links[id], actorID)
		}
	}
	return nil
}

func (f *fakeRepo) ReplaceActors(ctx context.Context, id int, actorIDs []int) error {
	f.calls = append(f.calls, "replace")
	delete(f.links, id)
	return f.AssociateActors(ctx, id, actorIDs)
}

func (f *fakeRepo) DissociateActor(_ context.Context, id, actorID int) error {
	f.calls = append(f.calls, "dissociate")
	f.links[id] = slices.DeleteFunc(f.links[id], func(linked int) bool { return linked == actorID })
	return nil
}

func (f *fakeRepo) DissociateActors(_ context.Context, id int) error {
	f.calls = append(f.calls, "dissociate_all")
	delete(f.links, id)
	return nil
}

type recordingCache struct {
	cache.Noop
	deleted []string
}

func (r *recordingCache) Delete(_ context.Context, keys ...string) {
	r.deleted = append(r.deleted, keys...)
}

func newService(repo *fakeRepo, records cache.Cache) *character.Service {
	return character.NewService(repo, postgres.Sequential{}, records, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func actorIDs(c *character.Character) []int {
	ids := make([]int, 0, len(c.Actors))
	for _, actor := range c.Actors {
		ids = append(ids, actor.ID)
	}
	return ids
}

func TestCreateCharacter_LinksActors(t *testing.T) {
	repo := newFakeRepo(1, 2)
	records := &recordingCache{}

	created, err := newService(repo, records).CreateCharacter(context.Background(), character.CreateInput{Name: "Arthur", ActorsID: []int{1, 2}})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, actorIDs(created))
	assert.Equal(t, []string{"create", "associate"}, repo.calls)
	assert.Equal(t, []string{"catalog:actor:1", "catalog:actor:2"}, records.deleted)
}

func TestCreateCharacter_UnknownActor(t *testing.T) {
	_, err := newService(newFakeRepo(1), cache.Noop{}).CreateCharacter(context.Background(), character.CreateInput{Name: "Arthur", ActorsID: []int{1, 42}})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Equal(t, "(Character)[FK_VIOLATION] Cannot perform operation: Referenced resource does not exist", appError.Message)
}

func TestCreateCharacter_InvalidActorIDs(t *testing.T) {
	repo := newFakeRepo()

	_, err := newService(repo, cache.Noop{}).CreateCharacter(context.Background(), character.CreateInput{Name: "Arthur", ActorsID: []int{0}})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, character.FieldActorsID, appError.Details[0].Field)
	assert.Empty(t, repo.calls)
}

func TestUpdateCharacter_ActorSet(t *testing.T) {
	tests := []struct {
		name     string
		actors   *[]int
		expected []int
		calls    []string
	}{
		{"unset keeps links", nil, []int{1}, []string{"update"}},
		{"list replaces links", &[]int{2, 3}, []int{2, 3}, []string{"update", "replace", "associate"}},
		{"empty list clears links", &[]int{}, []int{}, []string{"update", "replace", "associate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(1, 2, 3)
			service := newService(repo, cache.Noop{})
			ctx := context.Background()

			created, err := service.CreateCharacter(ctx, character.CreateInput{Name: "Arthur", ActorsID: []int{1}})
			require.NoError(t, err)
			repo.calls = nil

			updated, err := service.UpdateCharacter(ctx, created.ID, character.Patch{ActorsID: tt.actors})

			require.NoError(t, err)
			assert.Equal(t, "Arthur", updated.Name)
			assert.Equal(t, tt.expected, actorIDs(updated))
			assert.Equal(t, tt.calls, repo.calls)
		})
	}
}

func TestDeleteCharacter_UnlinksFirst(t *testing.T) {
	repo := newFakeRepo(1)
	records := &recordingCache{}
	service := newService(repo, records)
	ctx := context.Background()

	created, err := service.CreateCharacter(ctx, character.CreateInput{Name: "Perceval", ActorsID: []int{1}})
	require.NoError(t, err)
	repo.calls, records.deleted = nil, nil

	require.NoError(t, service.DeleteCharacter(ctx, created.ID))

	assert.Equal(t, []string{"dissociate_all", "delete"}, repo.calls)
	assert.ElementsMatch(t, []string{"catalog:actor:1", "catalog:character:1"}, records.deleted)

	err = service.DeleteCharacter(ctx, created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNoDataFound))
}

func TestAddActor_MissingCharacter(t *testing.T) {
	repo := newFakeRepo(1)

	_, err := newService(repo, cache.Noop{}).AddActor(context.Background(), 9, 1)

	assert.Equal(t, "(Character)[NO_DATA_FOUND] Cannot perform operation: Resource not found", err.Error())
	assert.Empty(t, repo.calls)
}

func TestActorLink_Idempotent(t *testing.T) {
	repo := newFakeRepo(1)
	service := newService(repo, cache.Noop{})
	ctx := context.Background()

	created, err := service.CreateCharacter(ctx, character.CreateInput{Name: "Karadoc"})
	require.NoError(t, err)

	for range 2 {
		linked, err := service.AddActor(ctx, created.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, actorIDs(linked))
	}

	for range 2 {
		unlinked, err := service.RemoveActor(ctx, created.ID, 1)
		require.NoError(t, err)
		assert.Empty(t, unlinked.Actors)
	}
}
