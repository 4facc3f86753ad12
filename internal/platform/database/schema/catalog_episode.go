// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// EpisodeTable represents the 'catalog.episode' table
type EpisodeTable struct {
	Table     string
	ID        string
	Name      string
	Number    string
	SeasonID  string
	CreatedAt string
	UpdatedAt string
}

// Episode is the schema definition for catalog.episode
var Episode = EpisodeTable{
	Table:     "catalog.episode",
	ID:        "id",
	Name:      "name",
	Number:    "number",
	SeasonID:  "seasonid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
