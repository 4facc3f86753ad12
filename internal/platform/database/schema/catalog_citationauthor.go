// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CitationAuthorTable represents the 'catalog.citationauthor' table
type CitationAuthorTable struct {
	Table      string
	CitationID string
	AuthorID   string
}

// CitationAuthor is the schema definition for catalog.citationauthor
var CitationAuthor = CitationAuthorTable{
	Table:      "catalog.citationauthor",
	CitationID: "citationid",
	AuthorID:   "authorid",
}
