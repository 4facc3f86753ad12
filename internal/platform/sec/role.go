// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// UserRole is the catalogue permission carried in the "rol" claim.
type UserRole string

const (
	RoleReader UserRole = "reader"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

var roleRank = map[UserRole]int{
	RoleReader: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// Known reports whether r belongs to the catalogue hierarchy.
func (r UserRole) Known() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants target. Unknown roles grant nothing.
func (r UserRole) AtLeast(target UserRole) bool {
	rank, ok := roleRank[r]
	return ok && rank >= roleRank[target]
}
