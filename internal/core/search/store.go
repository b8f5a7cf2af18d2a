// Copyright (c) 2026 Verbum. All rights reserved.

package search

import "context"

// # Search Data Access

// Repository defines the per-surface match lookups. Each lookup applies its
// own result cap; merging and ordering happen in the service layer.
type Repository interface {

	/*
		MatchVerses finds verses whose translation text contains the query
		substring.

		Parameters:
		  - context: context.Context
		  - query: string (Literal substring, already normalized)
		  - limit: int

		Returns:
		  - []*Result: Matching verses with reference context
		  - error: Database execution errors
	*/
	MatchVerses(context context.Context, query string, limit int) ([]*Result, error)

	/*
		MatchWords finds verses containing an interlinear word whose Greek
		text, Hebrew text, or gloss contains the query substring.

		Parameters:
		  - context: context.Context
		  - query: string
		  - limit: int

		Returns:
		  - []*Result: Verses owning the matching words
		  - error: Database execution errors
	*/
	MatchWords(context context.Context, query string, limit int) ([]*Result, error)

	/*
		MatchLexicon finds verses that cite a lexicon entry whose definition
		text contains the query substring.

		Parameters:
		  - context: context.Context
		  - query: string
		  - limit: int

		Returns:
		  - []*Result: Verses citing the matching entries
		  - error: Database execution errors
	*/
	MatchLexicon(context context.Context, query string, limit int) ([]*Result, error)
}
