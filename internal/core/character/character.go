// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import (
	"time"

	"github.com/taibuivan/kaamelott/internal/platform/repository"
)

// Character is a role of the saga, played by one or more actors.
type Character struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Actors      []ActorRef `json:"actors"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ActorRef is the display form of an actor playing the character.
type ActorRef struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateInput is the payload of a new character. ActorsID lists the actors linked on creation.
type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ActorsID    []int   `json:"actorsId"`
}

// Patch holds the fields of a partial update.
//
// A non-nil ActorsID replaces the whole actor set; an empty list removes every link.
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ActorsID    *[]int  `json:"actorsId"`
}

// Apply overlays the scalar fields of the patch. Links are handled by the service.
func (p Patch) Apply(character *Character) {
	if p.Name != nil {
		character.Name = *p.Name
	}
	if p.Description != nil {
		character.Description = p.Description
	}
}

// Filter holds the exact-match fields of a character listing.
type Filter struct {
	Name    string
	ActorID *int
}

func (f Filter) Criteria() repository.Criteria {
	return repository.Criteria{
		FieldName:    f.Name,
		FieldActorID: f.ActorID,
	}
}

const (
	FieldID        = "id"
	FieldName      = "name"
	FieldActorID   = "actorId"
	FieldActorsID  = "actorsId"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// SortKeys is the sortBy allow-list of character listings.
var SortKeys = []string{FieldCreatedAt, FieldID, FieldName, FieldUpdatedAt}

const maxNameLength = 255
