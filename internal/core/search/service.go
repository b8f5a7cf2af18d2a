// Copyright (c) 2026 Verbum. All rights reserved.

package search

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/verbum/verbum/internal/platform/constants"
)

// # Service Layer

// Service merges per-surface matches into one canonical-order result set.
type Service struct {
	repo Repository
}

// NewService constructs a new search [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
Search runs one query across translation text, interlinear words, and
lexicon definitions.

Description: The query is trimmed and NFC normalized so composed and
decomposed inputs for accented Greek and pointed Hebrew match the stored
forms. Queries shorter than constants.SearchMinQueryLength runes return an
empty set without touching storage. Each surface contributes at most
constants.SearchPerSourceLimit hits; a verse matched by several surfaces
appears once. The merged set is ordered by canonical position, so Total is
the deduplicated size and can reach three times the per-surface cap.

Parameters:
  - context: context.Context
  - rawQuery: string (User input, unnormalized)

Returns:
  - *ResultSet: Deduplicated, canonically ordered matches (never nil)
  - error: Database execution errors
*/
func (service *Service) Search(context context.Context, rawQuery string) (*ResultSet, error) {
	query := norm.NFC.String(strings.TrimSpace(rawQuery))
	if utf8.RuneCountInString(query) < constants.SearchMinQueryLength {
		return EmptyResultSet(), nil
	}

	verseHits, err := service.repo.MatchVerses(context, query, constants.SearchPerSourceLimit)
	if err != nil {
		return nil, err
	}

	wordHits, err := service.repo.MatchWords(context, query, constants.SearchPerSourceLimit)
	if err != nil {
		return nil, err
	}

	lexiconHits, err := service.repo.MatchLexicon(context, query, constants.SearchPerSourceLimit)
	if err != nil {
		return nil, err
	}

	merged := dedupe(verseHits, wordHits, lexiconHits)

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].BookID != merged[j].BookID {
			return merged[i].BookID < merged[j].BookID
		}
		if merged[i].ChapterNumber != merged[j].ChapterNumber {
			return merged[i].ChapterNumber < merged[j].ChapterNumber
		}
		return merged[i].VerseNumber < merged[j].VerseNumber
	})

	return &ResultSet{Results: merged, Total: len(merged)}, nil
}

// dedupe merges the surface hits, keeping the first occurrence per verse.
func dedupe(sources ...[]*Result) []*Result {
	seen := make(map[int]bool)
	merged := []*Result{}

	for _, source := range sources {
		for _, result := range source {
			if seen[result.VerseID] {
				continue
			}
			seen[result.VerseID] = true
			merged = append(merged, result)
		}
	}

	return merged
}
