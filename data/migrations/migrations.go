// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the catalogue schema so the binary can migrate
// without the SQL files on disk.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
