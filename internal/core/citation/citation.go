// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Citation is a quote said by a character, in an episode or a movie.
type Citation struct {
	ID          int         `json:"id"`
	Text        string      `json:"text"`
	CharacterID int         `json:"characterId"`
	Character   Ref         `json:"character"`
	EpisodeID   *int        `json:"episodeId"`
	Episode     *Ref        `json:"episode"`
	MovieID     *int        `json:"movieId"`
	Movie       *Ref        `json:"movie"`
	Actors      []PersonRef `json:"actors"`
	Authors     []PersonRef `json:"authors"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Ref is the display form of a named related record.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PersonRef is the display form of a linked actor or author.
type PersonRef struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateInput is the payload of a new citation.
type CreateInput struct {
	Text        string `json:"text"`
	CharacterID int    `json:"characterId"`
	EpisodeID   *int   `json:"episodeId"`
	MovieID     *int   `json:"movieId"`
	ActorsID    []int  `json:"actorsId"`
	AuthorsID   []int  `json:"authorsId"`
}

// Patch holds the fields of a partial update.
//
// Setting the episode clears the movie and the other way round. A non-nil
// ActorsID or AuthorsID replaces the whole link set.
type Patch struct {
	Text        *string `json:"text"`
	CharacterID *int    `json:"characterId"`
	EpisodeID   *int    `json:"episodeId"`
	MovieID     *int    `json:"movieId"`
	ActorsID    *[]int  `json:"actorsId"`
	AuthorsID   *[]int  `json:"authorsId"`
}

// Apply overlays the scalar fields of the patch. Links are handled by the service.
func (p Patch) Apply(citation *Citation) {
	if p.Text != nil {
		citation.Text = *p.Text
	}
	if p.CharacterID != nil {
		citation.CharacterID = *p.CharacterID
	}
	if p.EpisodeID != nil {
		citation.EpisodeID = p.EpisodeID
		if p.MovieID == nil {
			citation.MovieID = nil
		}
	}
	if p.MovieID != nil {
		citation.MovieID = p.MovieID
		if p.EpisodeID == nil {
			citation.EpisodeID = nil
		}
	}
}

// Filter holds the exact-match fields of a citation listing.
type Filter struct {
	Text        string
	CharacterID *int
	EpisodeID   *int
	MovieID     *int
}

func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldText:        f.Text,
		FieldCharacterID: f.CharacterID,
		FieldEpisodeID:   f.EpisodeID,
		FieldMovieID:     f.MovieID,
	}
}

const (
	FieldID          = "id"
	FieldText        = "text"
	FieldCharacterID = "characterId"
	FieldEpisodeID   = "episodeId"
	FieldMovieID     = "movieId"
	FieldActorsID    = "actorsId"
	FieldAuthorsID   = "authorsId"
	FieldActorID     = "actorId"
	FieldAuthorID    = "authorId"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// SortKeys is the sortBy allow-list of citation listings.
var SortKeys = []string{FieldCharacterID, FieldCreatedAt, FieldEpisodeID, FieldID, FieldMovieID, FieldText, FieldUpdatedAt}

const maxTextLength = 2000
