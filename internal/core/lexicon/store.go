// Copyright (c) 2026 Verbum. All rights reserved.

package lexicon

import "context"

// # Lexicon Data Access

// Repository defines the read contract for dictionary entries.
type Repository interface {

	/*
		GetByNumber fetches a single entry by its Strong's number.

		Parameters:
		  - context: context.Context
		  - strongNumber: string (unprefixed, e.g. "3056")

		Returns:
		  - *Entry: The hydrated dictionary record
		  - error: apperr.NotFound if missing
	*/
	GetByNumber(context context.Context, strongNumber string) (*Entry, error)

	/*
		Citations returns verses whose words reference the entry, in canonical
		corpus order, capped at limit.

		Parameters:
		  - context: context.Context
		  - strongNumber: string
		  - limit: int

		Returns:
		  - []*Citation: Referencing verses with reference metadata
		  - error: Database retrieval failures
	*/
	Citations(context context.Context, strongNumber string, limit int) ([]*Citation, error)
}

// Importer defines the bulk write contract used only by the corpus loader.
type Importer interface {

	/*
		CreateEntries batch-inserts dictionary records. Existing Strong's
		numbers are overwritten so re-imports are idempotent.

		Parameters:
		  - context: context.Context
		  - entries: []*Entry

		Returns:
		  - error: Batch failure
	*/
	CreateEntries(context context.Context, entries []*Entry) error
}
