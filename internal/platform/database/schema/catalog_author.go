// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AuthorTable represents the 'catalog.author' table
type AuthorTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	CreatedAt string
	UpdatedAt string
}

// Author is the schema definition for catalog.author
var Author = AuthorTable{
	Table:     "catalog.author",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
