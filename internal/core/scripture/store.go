// Copyright (c) 2026 Verbum. All rights reserved.

package scripture

import "context"

// # Corpus Data Access

// Repository defines the read contract for the corpus hierarchy.
//
// Neighbor queries ("next"/"previous") return (nil, nil) when no neighbor
// exists — absence of a sibling is an expected outcome, not an error.
type Repository interface {

	// ## Book Data Access

	/*
		ListBooks retrieves all books in canonical order, each with its
		ordered chapters prefetched.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Book: Canonical-order collection with chapters attached
		  - error: Database retrieval failures
	*/
	ListBooks(context context.Context) ([]*Book, error)

	/*
		GetBook retrieves a single book with its ordered chapters.

		Parameters:
		  - context: context.Context
		  - id: int identifier

		Returns:
		  - *Book: Hydrated book with chapters
		  - error: apperr.NotFound if missing
	*/
	GetBook(context context.Context, id int) (*Book, error)

	/*
		BookStats aggregates the chapter, verse and word counts of a book.

		Parameters:
		  - context: context.Context
		  - bookID: int

		Returns:
		  - *BookStats: Aggregated counts, all zero for an unknown book
		  - error: Database retrieval failures
	*/
	BookStats(context context.Context, bookID int) (*BookStats, error)

	// ## Chapter Data Access

	/*
		GetChapter resolves a chapter by its book and chapter number.

		Parameters:
		  - context: context.Context
		  - bookID: int
		  - chapterNumber: int

		Returns:
		  - *Chapter: Hydrated chapter
		  - error: apperr.NotFound if missing
	*/
	GetChapter(context context.Context, bookID, chapterNumber int) (*Chapter, error)

	/*
		NextChapter returns the chapter in the same book with the smallest
		chapter number strictly greater than afterNumber, or nil.
	*/
	NextChapter(context context.Context, bookID, afterNumber int) (*Chapter, error)

	/*
		PreviousChapter returns the chapter in the same book with the largest
		chapter number strictly smaller than beforeNumber, or nil.
	*/
	PreviousChapter(context context.Context, bookID, beforeNumber int) (*Chapter, error)

	// ## Verse Data Access

	/*
		GetVerse resolves a verse by its chapter and verse number.

		Parameters:
		  - context: context.Context
		  - chapterID: int
		  - verseNumber: int

		Returns:
		  - *Verse: Hydrated verse
		  - error: apperr.NotFound if missing
	*/
	GetVerse(context context.Context, chapterID, verseNumber int) (*Verse, error)

	/*
		ListVerses returns a page of a chapter's verses ordered by verse
		number, plus the chapter's total verse count.

		Parameters:
		  - context: context.Context
		  - chapterID: int
		  - limit, offset: int (Pagination bounds)

		Returns:
		  - []*Verse: Ordered page of verses
		  - int: Total verses in the chapter
		  - error: Database execution errors
	*/
	ListVerses(context context.Context, chapterID, limit, offset int) ([]*Verse, int, error)

	/*
		NextVerse returns the verse in the same chapter with the smallest
		verse number strictly greater than afterNumber, or nil.
	*/
	NextVerse(context context.Context, chapterID, afterNumber int) (*Verse, error)

	/*
		PreviousVerse returns the verse in the same chapter with the largest
		verse number strictly smaller than beforeNumber, or nil.
	*/
	PreviousVerse(context context.Context, chapterID, beforeNumber int) (*Verse, error)

	/*
		FirstVerse returns the chapter's verse with the lowest verse number,
		or nil for an empty chapter.
	*/
	FirstVerse(context context.Context, chapterID int) (*Verse, error)

	/*
		LastVerse returns the chapter's verse with the highest verse number,
		or nil for an empty chapter.
	*/
	LastVerse(context context.Context, chapterID int) (*Verse, error)

	// ## Word Data Access

	/*
		ListWords returns every word of a verse ordered by word order, each
		pre-joined with its lexicon entry when a Strong's number is set.

		Parameters:
		  - context: context.Context
		  - verseID: int

		Returns:
		  - []*Word: Ordered interlinear tokens
		  - error: Database retrieval failures
	*/
	ListWords(context context.Context, verseID int) ([]*Word, error)

	// ## Cache Freshness

	/*
		TouchAncestors bumps the updated_at timestamps of a word's verse and
		chapter. The import write path calls this explicitly after modifying
		a word so external HTTP caches keyed on timestamps expire.

		Parameters:
		  - context: context.Context
		  - wordID: int

		Returns:
		  - error: apperr.NotFound if the word does not exist
	*/
	TouchAncestors(context context.Context, wordID int) error
}

// Importer defines the bulk write contract used only by the corpus loader.
type Importer interface {

	// CreateBook persists a book and assigns its canonical id.
	CreateBook(context context.Context, book *Book) error

	// CreateChapter persists a chapter and assigns its id.
	CreateChapter(context context.Context, chapter *Chapter) error

	// CreateVerse persists a verse and assigns its id.
	CreateVerse(context context.Context, verse *Verse) error

	/*
		UpsertWords batch-writes a verse's words keyed on (verse, word order).

		Returns:
		  - []int: IDs of words that already existed and were overwritten —
		    the caller must TouchAncestors these to keep caches honest
		  - error: Batch failure
	*/
	UpsertWords(context context.Context, words []*Word) ([]int, error)
}
