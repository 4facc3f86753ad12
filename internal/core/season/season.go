// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package season

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Season is one numbered season of a show.
type Season struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Number    int          `json:"number"`
	ShowID    int          `json:"showId"`
	Show      ShowRef      `json:"show"`
	Episodes  []EpisodeRef `json:"episodes"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type ShowRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EpisodeRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type CreateInput struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	ShowID int    `json:"showId"`
}

// Patch holds the fields of a partial update. Nil fields keep their stored value.
type Patch struct {
	Name   *string `json:"name"`
	Number *int    `json:"number"`
	ShowID *int    `json:"showId"`
}

// Apply overlays the patch on the stored season.
func (p Patch) Apply(season *Season) {
	if p.Name != nil {
		season.Name = *p.Name
	}
	if p.Number != nil {
		season.Number = *p.Number
	}
	if p.ShowID != nil {
		season.ShowID = *p.ShowID
	}
}

// Filter holds the exact-match fields of a season listing.
type Filter struct {
	Name   string
	Number *int
	ShowID *int
}

func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldName:   f.Name,
		FieldNumber: f.Number,
		FieldShowID: f.ShowID,
	}
}

const (
	FieldID        = "id"
	FieldName      = "name"
	FieldNumber    = "number"
	FieldShowID    = "showId"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// SortKeys is the sortBy allow-list of season listings.
var SortKeys = []string{FieldCreatedAt, FieldID, FieldName, FieldNumber, FieldShowID, FieldUpdatedAt}

const maxNameLength = 255
