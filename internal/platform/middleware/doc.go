// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package middleware holds the HTTP chain shared by every catalogue route:
// request tracing, access logging, per-IP throttling, panic recovery, CORS
// and the editor guard on write routes.
package middleware
