// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SeasonTable represents the 'catalog.season' table
type SeasonTable struct {
	Table     string
	ID        string
	Name      string
	Number    string
	ShowID    string
	CreatedAt string
	UpdatedAt string
}

// Season is the schema definition for catalog.season
var Season = SeasonTable{
	Table:     "catalog.season",
	ID:        "id",
	Name:      "name",
	Number:    "number",
	ShowID:    "showid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
