// Copyright (c) 2026 Verbum. All rights reserved.

package scripture

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service orchestrates corpus reads and the navigation boundary policy.
//
// The cache is optional: a nil BookCache disables caching, and cache failures
// degrade to direct repository reads rather than failing the request.
type Service struct {
	repo   Repository
	cache  *BookCache
	logger *slog.Logger
}

// NewService constructs a new scripture [Service].
func NewService(repo Repository, cache *BookCache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// # Book Operations

/*
ListBooks returns the full canon in canonical order, read through the cache.

Description: The corpus only changes on import, so a stale-tolerant cache is
safe. Cache errors are logged and bypassed.

Parameters:
  - context: context.Context

Returns:
  - []*Book: Ordered books with chapters
  - error: Database retrieval failures
*/
func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	if service.cache != nil {
		books, err := service.cache.Get(context)
		if err != nil {
			service.logger.Warn("book list cache read failed", "error", err)
		} else if books != nil {
			return books, nil
		}
	}

	books, err := service.repo.ListBooks(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Set(context, books); err != nil {
			service.logger.Warn("book list cache write failed", "error", err)
		}
	}

	return books, nil
}

// GetBook retrieves one book with its ordered chapters.
func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// BookStats aggregates the chapter, verse and word counts of a book.
func (service *Service) BookStats(context context.Context, bookID int) (*BookStats, error) {
	return service.repo.BookStats(context, bookID)
}

// # Chapter Operations

// GetChapter resolves a chapter by book id and chapter number.
func (service *Service) GetChapter(context context.Context, bookID, chapterNumber int) (*Chapter, error) {
	return service.repo.GetChapter(context, bookID, chapterNumber)
}

// NextChapter returns the next chapter in the book, or nil at the last.
func (service *Service) NextChapter(context context.Context, bookID, afterNumber int) (*Chapter, error) {
	return service.repo.NextChapter(context, bookID, afterNumber)
}

// PreviousChapter returns the previous chapter in the book, or nil at the first.
func (service *Service) PreviousChapter(context context.Context, bookID, beforeNumber int) (*Chapter, error) {
	return service.repo.PreviousChapter(context, bookID, beforeNumber)
}

// # Verse Operations

// GetVerse resolves a verse within a chapter.
func (service *Service) GetVerse(context context.Context, chapterID, verseNumber int) (*Verse, error) {
	return service.repo.GetVerse(context, chapterID, verseNumber)
}

// ListVerses returns one page of a chapter's verses and the total count.
func (service *Service) ListVerses(context context.Context, chapterID, limit, offset int) ([]*Verse, int, error) {
	return service.repo.ListVerses(context, chapterID, limit, offset)
}

// ListWords returns a verse's interlinear tokens with lexicon entries joined.
func (service *Service) ListWords(context context.Context, verseID int) ([]*Word, error) {
	return service.repo.ListWords(context, verseID)
}

// # Boundary Navigation

/*
NextVerseTarget resolves the reader's "next" step from a verse.

Description: Within the chapter, the target is the verse with the smallest
greater number. At the chapter's last verse, navigation crosses into the next
chapter's first verse and the Neighbor is marked CrossesChapter. At the last
verse of the last chapter the result is nil: the reader renders a terminal
boundary.

Parameters:
  - context: context.Context
  - chapter: *Chapter the verse belongs to
  - verseNumber: int

Returns:
  - *Neighbor: Resolved target, or nil at the corpus edge
  - error: Database retrieval failures
*/
func (service *Service) NextVerseTarget(context context.Context, chapter *Chapter, verseNumber int) (*Neighbor, error) {
	verse, err := service.repo.NextVerse(context, chapter.ID, verseNumber)
	if err != nil {
		return nil, err
	}
	if verse != nil {
		return &Neighbor{Chapter: chapter, Verse: verse}, nil
	}

	nextChapter, err := service.repo.NextChapter(context, chapter.BookID, chapter.ChapterNumber)
	if err != nil {
		return nil, err
	}
	if nextChapter == nil {
		return nil, nil
	}

	firstVerse, err := service.repo.FirstVerse(context, nextChapter.ID)
	if err != nil {
		return nil, err
	}
	if firstVerse == nil {
		// Adjacent chapter imported without verses; treat as the corpus edge.
		return nil, nil
	}

	return &Neighbor{Chapter: nextChapter, Verse: firstVerse, CrossesChapter: true}, nil
}

/*
PreviousVerseTarget resolves the reader's "previous" step from a verse.

Description: Mirror of NextVerseTarget: within the chapter it is the verse
with the largest smaller number, at the chapter's first verse it crosses to
the previous chapter's last verse, and at the very first verse it is nil.

Parameters:
  - context: context.Context
  - chapter: *Chapter the verse belongs to
  - verseNumber: int

Returns:
  - *Neighbor: Resolved target, or nil at the corpus edge
  - error: Database retrieval failures
*/
func (service *Service) PreviousVerseTarget(context context.Context, chapter *Chapter, verseNumber int) (*Neighbor, error) {
	verse, err := service.repo.PreviousVerse(context, chapter.ID, verseNumber)
	if err != nil {
		return nil, err
	}
	if verse != nil {
		return &Neighbor{Chapter: chapter, Verse: verse}, nil
	}

	previousChapter, err := service.repo.PreviousChapter(context, chapter.BookID, chapter.ChapterNumber)
	if err != nil {
		return nil, err
	}
	if previousChapter == nil {
		return nil, nil
	}

	lastVerse, err := service.repo.LastVerse(context, previousChapter.ID)
	if err != nil {
		return nil, err
	}
	if lastVerse == nil {
		return nil, nil
	}

	return &Neighbor{Chapter: previousChapter, Verse: lastVerse, CrossesChapter: true}, nil
}

// # Freshness

/*
InvalidateWord propagates a word modification outward: bumps the verse and
chapter timestamps and drops the cached book listing.

Parameters:
  - context: context.Context
  - wordID: int

Returns:
  - error: apperr.NotFound if the word does not exist, or storage errors
*/
func (service *Service) InvalidateWord(context context.Context, wordID int) error {
	if err := service.repo.TouchAncestors(context, wordID); err != nil {
		return err
	}

	if service.cache != nil {
		if err := service.cache.Invalidate(context); err != nil {
			service.logger.Warn("book list cache invalidation failed", "error", err)
		}
	}

	return nil
}
