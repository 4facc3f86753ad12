// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Show is a television series of the catalogue.
type Show struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description *string     `json:"description"`
	Seasons     []SeasonRef `json:"seasons"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SeasonRef is the display form of one season of the show, ordered by number.
type SeasonRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// CreateInput is the payload of a new show. The slug is derived from the name.
type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Patch holds the fields of a partial update. Renaming a show regenerates its slug.
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply overlays the patch on the stored show.
func (p Patch) Apply(show *Show) {
	if p.Name != nil {
		show.Name = *p.Name
	}
	if p.Description != nil {
		show.Description = p.Description
	}
}

// Filter holds the exact-match fields of a show listing.
type Filter struct {
	Name string
	Slug string
}

// Criteria converts the filter for the query builder.
func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldName: f.Name,
		FieldSlug: f.Slug,
	}
}

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// SortKeys is the sortBy allow-list of show listings.
var SortKeys = []string{FieldCreatedAt, FieldID, FieldName, FieldUpdatedAt}

const (
	maxNameLength        = 255
	maxDescriptionLength = 5000
)
