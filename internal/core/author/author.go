// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Author represents the writer credited on citations.
type Author struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Citations []CitationRef `json:"citations"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CitationRef is the display form of a citation written by the author.
type CitationRef struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// CreateInput is the payload of a new author.
type CreateInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Patch holds the fields of a partial update. Nil fields keep their stored value.
type Patch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Apply overlays the patch on the stored author.
func (p Patch) Apply(author *Author) {
	if p.FirstName != nil {
		author.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		author.LastName = *p.LastName
	}
}

// Filter holds the exact-match fields of an author listing.
type Filter struct {
	FirstName string
	LastName  string
}

// Criteria converts the filter for the query builder.
func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldFirstName: f.FirstName,
		FieldLastName:  f.LastName,
	}
}

// Field names, shared by validation, filters and sorting.
const (
	FieldID        = "id"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// SortKeys is the sortBy allow-list of author listings.
var SortKeys = []string{FieldCreatedAt, FieldFirstName, FieldID, FieldLastName, FieldUpdatedAt}

const maxNameLength = 100
