// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package episode

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Episode is one numbered episode of a season.
type Episode struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	SeasonID  int       `json:"seasonId"`
	Season    SeasonRef `json:"season"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SeasonRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type CreateInput struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	SeasonID int    `json:"seasonId"`
}

// Patch holds the fields of a partial update. Nil fields keep their stored value.
type Patch struct {
	Name     *string `json:"name"`
	Number   *int    `json:"number"`
	SeasonID *int    `json:"seasonId"`
}

// Apply overlays the patch on the stored episode.
func (p Patch) Apply(episode *Episode) {
	if p.Name != nil {
		episode.Name = *p.Name
	}
	if p.Number != nil {
		episode.Number = *p.Number
	}
	if p.SeasonID != nil {
		episode.SeasonID = *p.SeasonID
	}
}

// Filter holds the exact-match fields of an episode listing.
type Filter struct {
	Name     string
	Number   *int
	SeasonID *int
}

func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldName:     f.Name,
		FieldNumber:   f.Number,
		FieldSeasonID: f.SeasonID,
	}
}

const (
	FieldID        = "id"
	FieldName      = "name"
	FieldNumber    = "number"
	FieldSeasonID  = "seasonId"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// SortKeys is the sortBy allow-list of episode listings.
var SortKeys = []string{FieldCreatedAt, FieldID, FieldName, FieldNumber, FieldSeasonID, FieldUpdatedAt}

const maxNameLength = 255
