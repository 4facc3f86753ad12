// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CharacterActorTable represents the 'catalog.characteractor' table
type CharacterActorTable struct {
	Table       string
	CharacterID string
	ActorID     string
}

// CharacterActor is the schema definition for catalog.characteractor
var CharacterActor = CharacterActorTable{
	Table:       "catalog.characteractor",
	CharacterID: "characterid",
	ActorID:     "actorid",
}
