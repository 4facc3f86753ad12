// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Movie is a feature film of the catalogue.
type Movie struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	ReleaseYear *int      `json:"releaseYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ReleaseYear *int    `json:"releaseYear"`
}

// Patch holds the fields of a partial update. Renaming a movie regenerates its slug.
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ReleaseYear *int    `json:"releaseYear"`
}

// Apply overlays the patch on the stored movie.
func (p Patch) Apply(movie *Movie) {
	if p.Name != nil {
		movie.Name = *p.Name
	}
	if p.Description != nil {
		movie.Description = p.Description
	}
	if p.ReleaseYear != nil {
		movie.ReleaseYear = p.ReleaseYear
	}
}

// Filter holds the exact-match fields of a movie listing.
type Filter struct {
	Name        string
	Slug        string
	ReleaseYear *int
}

func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldName:        f.Name,
		FieldSlug:        f.Slug,
		FieldReleaseYear: f.ReleaseYear,
	}
}

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldReleaseYear = "releaseYear"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// SortKeys is the sortBy allow-list of movie listings.
var SortKeys = []string{FieldCreatedAt, FieldID, FieldName, FieldReleaseYear, FieldUpdatedAt}

const (
	maxNameLength        = 255
	maxDescriptionLength = 5000

	// Release years are stored as SMALLINT.
	minReleaseYear = 1888
	maxReleaseYear = 9999
)
