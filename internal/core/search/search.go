// Copyright (c) 2026 Verbum. All rights reserved.

/*
Package search finds verses across the three corpus surfaces.

# Core Responsibility

A single query string is matched against translation text, against the words
of the interlinear layer (source-script forms and glosses), and against
lexicon definitions. Each surface is capped independently, the hits are merged
into one deduplicated verse set, and the set is ordered by canonical position
(book, chapter, verse) rather than by match relevance.
*/
package search

// Result is one matching verse with enough reference context to render a
// citation and link into the reader.
type Result struct {
	VerseID          int     `json:"verse_id"`
	BookID           int     `json:"book_id"`
	BookName         string  `json:"book_name"`
	BookAbbreviation string  `json:"book_abbreviation"`
	ChapterNumber    int     `json:"chapter_number"`
	VerseNumber      int     `json:"verse_number"`
	Text             *string `json:"text"`
}

// ResultSet is the merged outcome of one query across all surfaces.
type ResultSet struct {
	Results []*Result `json:"results"`
	Total   int       `json:"total"`
}

// EmptyResultSet is returned for queries below the minimum length; clients
// always receive a well-formed set, never nil.
func EmptyResultSet() *ResultSet {
	return &ResultSet{Results: []*Result{}, Total: 0}
}
