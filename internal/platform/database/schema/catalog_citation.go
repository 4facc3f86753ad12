// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CitationTable represents the 'catalog.citation' table
type CitationTable struct {
	Table       string
	ID          string
	Text        string
	CharacterID string
	EpisodeID   string
	MovieID     string
	CreatedAt   string
	UpdatedAt   string
}

// Citation is the schema definition for catalog.citation
var Citation = CitationTable{
	Table:       "catalog.citation",
	ID:          "id",
	Text:        "text",
	CharacterID: "characterid",
	EpisodeID:   "episodeid",
	MovieID:     "movieid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
