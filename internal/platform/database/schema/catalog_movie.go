// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// MovieTable represents the 'catalog.movie' table
type MovieTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	ReleaseYear string
	CreatedAt   string
	UpdatedAt   string
}

// Movie is the schema definition for catalog.movie
var Movie = MovieTable{
	Table:       "catalog.movie",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	ReleaseYear: "releaseyear",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
