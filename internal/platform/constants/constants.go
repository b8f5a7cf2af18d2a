// Copyright (c) 2026 Verbum. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Corpus: Search caps and cache lifetimes for the scripture corpus.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "verbum-api"
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

// # Viewer Identity

const (
	// ViewerTokenCookieName is the cookie that carries the opaque viewer token.
	// The token keys a per-viewer display configuration; it is not an
	// authentication credential.
	ViewerTokenCookieName = "verbum_viewer"

	// ViewerTokenCookieMaxAge is the lifetime of the viewer token cookie.
	ViewerTokenCookieMaxAge = 180 * 24 * time.Hour
)

// # Corpus & Search

const (
	// SearchMinQueryLength is the minimum trimmed query length (in runes)
	// before a search is executed. Shorter queries yield an empty result set.
	SearchMinQueryLength = 2

	// SearchPerSourceLimit caps each of the three corpus lookups so common
	// words cannot trigger unbounded scans.
	SearchPerSourceLimit = 50

	// LexiconCitationLimit caps how many citing verses are returned with a
	// lexicon entry.
	LexiconCitationLimit = 20
)

// # Cache Taxonomy (Redis)

const (
	// BookListCacheKey stores the full canonical book/chapter listing.
	BookListCacheKey = "corpus:books"

	// BookListCacheTTL is the lifetime of the cached book listing. The corpus
	// only changes on re-import, which invalidates the key explicitly.
	BookListCacheTTL = 6 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldTotal   = "total"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaCorpus  = "corpus"
	SchemaDisplay = "display"
)
