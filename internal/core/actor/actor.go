// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package actor

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Actor is a performer credited on the catalogue.
type Actor struct {
	ID         int            `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Characters []CharacterRef `json:"characters"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// CharacterRef is the display form of a character played by the actor.
type CharacterRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateInput is the payload of a new actor.
type CreateInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Patch holds the fields of a partial update. Nil fields keep their stored value.
type Patch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Apply overlays the patch on the stored actor.
func (p Patch) Apply(actor *Actor) {
	if p.FirstName != nil {
		actor.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		actor.LastName = *p.LastName
	}
}

// Filter holds the exact-match fields of an actor listing.
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

// SortKeys is the sortBy allow-list of actor listings.
var SortKeys = []string{FieldCreatedAt, FieldFirstName, FieldID, FieldLastName, FieldUpdatedAt}

const maxNameLength = 100
