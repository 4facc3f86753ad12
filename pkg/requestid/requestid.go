// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestid issues correlation IDs for HTTP requests.
//
// IDs are UUIDv7 so that log lines sort by creation time.
package requestid

import "github.com/google/uuid"

// New returns a UUIDv7, or a random UUIDv4 when the clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Normalize keeps a client-supplied ID that parses as a UUID of any version
// and replaces anything else with [New].
func Normalize(candidate string) string {
	if candidate != "" && uuid.Validate(candidate) == nil {
		return candidate
	}
	return New()
}
