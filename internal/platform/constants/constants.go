// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Catalogue: Error contexts and cache key prefixes per entity.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "kaamelott-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
)

// # Authentication

const (
	// AuthIssuer is the expected 'iss' claim of editor tokens.
	AuthIssuer = "kaamelott.app"

	// AllowedOriginSuffix is the production domain accepted by CORS.
	AllowedOriginSuffix = "kaamelott.app"
)

// # Listing

const (
	// SearchMinLength is the shortest accepted free-text search term.
	SearchMinLength = 3

	// MaxPageLimit caps the number of records a single listing may return.
	MaxPageLimit = 500
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
)

// # Error Contexts
//
// Entity names used as the "(Context)" prefix of data-access error messages.

const (
	ContextShow      = "Show"
	ContextSeason    = "Season"
	ContextEpisode   = "Episode"
	ContextMovie     = "Movie"
	ContextActor     = "Actor"
	ContextAuthor    = "Author"
	ContextCharacter = "Character"
	ContextCitation  = "Citation"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixShow      = "catalog:show:"
	RedisPrefixSeason    = "catalog:season:"
	RedisPrefixEpisode   = "catalog:episode:"
	RedisPrefixMovie     = "catalog:movie:"
	RedisPrefixActor     = "catalog:actor:"
	RedisPrefixAuthor    = "catalog:author:"
	RedisPrefixCharacter = "catalog:character:"
	RedisPrefixCitation  = "catalog:citation:"
)
