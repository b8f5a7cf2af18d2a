// Copyright (c) 2026 Verbum. All rights reserved.

package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum/verbum/internal/core/search"
)

// fakeRepository returns canned hits per surface and records the queries it
// received.
type fakeRepository struct {
	verseHits   []*search.Result
	wordHits    []*search.Result
	lexiconHits []*search.Result

	queries []string
}

func (repo *fakeRepository) MatchVerses(_ context.Context, query string, _ int) ([]*search.Result, error) {
	repo.queries = append(repo.queries, query)
	return repo.verseHits, nil
}

func (repo *fakeRepository) MatchWords(_ context.Context, query string, _ int) ([]*search.Result, error) {
	repo.queries = append(repo.queries, query)
	return repo.wordHits, nil
}

func (repo *fakeRepository) MatchLexicon(_ context.Context, query string, _ int) ([]*search.Result, error) {
	repo.queries = append(repo.queries, query)
	return repo.lexiconHits, nil
}

func result(verseID, bookID, chapterNumber, verseNumber int) *search.Result {
	return &search.Result{
		VerseID:       verseID,
		BookID:        bookID,
		ChapterNumber: chapterNumber,
		VerseNumber:   verseNumber,
	}
}

/*
TestService_Search_ShortQuery verifies sub-minimum queries short-circuit to
an empty set without hitting storage.
*/
func TestService_Search_ShortQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"single_rune", "a"},
		{"single_rune_multibyte", "λ"},
		{"whitespace_padded", "  a  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := search.NewService(repo)

			resultSet, err := service.Search(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Empty(t, resultSet.Results)
			assert.Zero(t, resultSet.Total)
			assert.Empty(t, repo.queries, "storage must not be queried")
		})
	}
}

/*
TestService_Search_QueryNormalization verifies trimming before matching.
*/
func TestService_Search_QueryNormalization(t *testing.T) {
	repo := &fakeRepository{}
	service := search.NewService(repo)

	_, err := service.Search(context.Background(), "  beginning  ")
	require.NoError(t, err)

	require.Len(t, repo.queries, 3)
	for _, query := range repo.queries {
		assert.Equal(t, "beginning", query)
	}
}

/*
TestService_Search_Deduplication verifies a verse hit by several surfaces
appears exactly once and Total counts the deduplicated set.
*/
func TestService_Search_Deduplication(t *testing.T) {
	repo := &fakeRepository{
		verseHits:   []*search.Result{result(301, 1, 3, 1)},
		wordHits:    []*search.Result{result(301, 1, 3, 1), result(302, 1, 3, 2)},
		lexiconHits: []*search.Result{result(301, 1, 3, 1)},
	}
	service := search.NewService(repo)

	resultSet, err := service.Search(context.Background(), "sample")
	require.NoError(t, err)

	assert.Equal(t, 2, resultSet.Total)
	require.Len(t, resultSet.Results, 2)
	assert.Equal(t, 301, resultSet.Results[0].VerseID)
	assert.Equal(t, 302, resultSet.Results[1].VerseID)
}

/*
TestService_Search_CanonicalOrder verifies ordering by book id, then chapter,
then verse — never by book name or match surface.
*/
func TestService_Search_CanonicalOrder(t *testing.T) {
	repo := &fakeRepository{
		verseHits: []*search.Result{
			result(900, 40, 1, 1),
		},
		wordHits: []*search.Result{
			result(200, 2, 5, 9),
			result(100, 1, 10, 3),
		},
		lexiconHits: []*search.Result{
			result(150, 1, 10, 1),
			result(101, 1, 2, 7),
		},
	}
	service := search.NewService(repo)

	resultSet, err := service.Search(context.Background(), "light")
	require.NoError(t, err)
	require.Len(t, resultSet.Results, 5)

	ids := make([]int, 0, len(resultSet.Results))
	for _, r := range resultSet.Results {
		ids = append(ids, r.VerseID)
	}

	// (1,2,7) < (1,10,1) < (1,10,3) < (2,5,9) < (40,1,1)
	assert.Equal(t, []int{101, 150, 100, 200, 900}, ids)
}

/*
TestService_Search_EmptyResult verifies a well-formed empty set for queries
with no matches.
*/
func TestService_Search_EmptyResult(t *testing.T) {
	repo := &fakeRepository{}
	service := search.NewService(repo)

	resultSet, err := service.Search(context.Background(), "nomatch")
	require.NoError(t, err)

	assert.NotNil(t, resultSet.Results)
	assert.Empty(t, resultSet.Results)
	assert.Zero(t, resultSet.Total)
}
