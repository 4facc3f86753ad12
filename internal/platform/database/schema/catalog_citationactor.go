// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CitationActorTable represents the 'catalog.citationactor' table
type CitationActorTable struct {
	Table      string
	CitationID string
	ActorID    string
}

// CitationActor is the schema definition for catalog.citationactor
var CitationActor = CitationActorTable{
	Table:      "catalog.citationactor",
	CitationID: "citationid",
	ActorID:    "actorid",
}
