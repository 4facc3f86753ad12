// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ActorTable represents the 'catalog.actor' table
type ActorTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	CreatedAt string
	UpdatedAt string
}

// Actor is the schema definition for catalog.actor
var Actor = ActorTable{
	Table:     "catalog.actor",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
