// Copyright (c) 2026 Verbum. All rights reserved.

package scripture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/verbum/verbum/internal/platform/constants"
)

// # Book List Cache

// BookCache caches the full canon listing in Redis. The corpus changes only
// on import, so a long TTL plus explicit invalidation keeps reads hot.
type BookCache struct {
	client *redis.Client
}

// NewBookCache constructs a Redis backed book list cache.
func NewBookCache(client *redis.Client) *BookCache {
	return &BookCache{client: client}
}

/*
Get retrieves the cached canon listing.

Returns:
  - []*Book: Cached books, or nil on a cache miss
  - error: Redis or decode failures (a miss is not an error)
*/
func (cache *BookCache) Get(context context.Context) ([]*Book, error) {
	payload, err := cache.client.Get(context, constants.BookListCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis: failed to get book list: %w", err)
	}

	var books []*Book
	if err := json.Unmarshal(payload, &books); err != nil {
		return nil, fmt.Errorf("redis: failed to decode book list: %w", err)
	}

	return books, nil
}

// Set stores the canon listing under the book list key with its TTL.
func (cache *BookCache) Set(context context.Context, books []*Book) error {
	payload, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("redis: failed to encode book list: %w", err)
	}

	err = cache.client.Set(context, constants.BookListCacheKey, payload, constants.BookListCacheTTL).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to set book list: %w", err)
	}

	return nil
}

// Invalidate drops the cached listing. The importer calls this after loading.
func (cache *BookCache) Invalidate(context context.Context) error {
	err := cache.client.Del(context, constants.BookListCacheKey).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to invalidate book list: %w", err)
	}
	return nil
}
