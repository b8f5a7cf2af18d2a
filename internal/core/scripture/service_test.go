// Copyright (c) 2026 Verbum. All rights reserved.

package scripture_test

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/internal/platform/apperr"
)

// fakeRepository serves a small in-memory corpus with numbering gaps:
// book 1 has chapters 1, 3, 4 (no chapter 2), and chapter 3 has verses
// 1, 2, 3, 5 (no verse 4).
type fakeRepository struct {
	chapters map[int][]*scripture.Chapter // keyed by book id
	verses   map[int][]*scripture.Verse   // keyed by chapter id
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		chapters: make(map[int][]*scripture.Chapter),
		verses:   make(map[int][]*scripture.Verse),
	}

	repo.chapters[1] = []*scripture.Chapter{
		{ID: 10, BookID: 1, ChapterNumber: 1},
		{ID: 30, BookID: 1, ChapterNumber: 3},
		{ID: 40, BookID: 1, ChapterNumber: 4},
	}

	repo.verses[10] = []*scripture.Verse{
		{ID: 101, ChapterID: 10, VerseNumber: 1},
		{ID: 102, ChapterID: 10, VerseNumber: 2},
	}
	repo.verses[30] = []*scripture.Verse{
		{ID: 301, ChapterID: 30, VerseNumber: 1},
		{ID: 302, ChapterID: 30, VerseNumber: 2},
		{ID: 303, ChapterID: 30, VerseNumber: 3},
		{ID: 305, ChapterID: 30, VerseNumber: 5},
	}
	repo.verses[40] = []*scripture.Verse{
		{ID: 401, ChapterID: 40, VerseNumber: 1},
		{ID: 402, ChapterID: 40, VerseNumber: 2},
	}

	return repo
}

func (repo *fakeRepository) ListBooks(context.Context) ([]*scripture.Book, error) {
	return []*scripture.Book{{ID: 1, Name: "Genesis", Abbreviation: "Gen", Testament: scripture.TestamentOld}}, nil
}

func (repo *fakeRepository) GetBook(_ context.Context, id int) (*scripture.Book, error) {
	if id != 1 {
		return nil, apperr.NotFound("Book")
	}
	return &scripture.Book{ID: 1, Name: "Genesis", Abbreviation: "Gen"}, nil
}

func (repo *fakeRepository) BookStats(_ context.Context, bookID int) (*scripture.BookStats, error) {
	stats := &scripture.BookStats{ChapterCount: len(repo.chapters[bookID])}
	for _, chapter := range repo.chapters[bookID] {
		stats.VerseCount += len(repo.verses[chapter.ID])
	}
	return stats, nil
}

func (repo *fakeRepository) GetChapter(_ context.Context, bookID, chapterNumber int) (*scripture.Chapter, error) {
	for _, chapter := range repo.chapters[bookID] {
		if chapter.ChapterNumber == chapterNumber {
			return chapter, nil
		}
	}
	return nil, apperr.NotFound("Chapter")
}

func (repo *fakeRepository) NextChapter(_ context.Context, bookID, afterNumber int) (*scripture.Chapter, error) {
	var best *scripture.Chapter
	for _, chapter := range repo.chapters[bookID] {
		if chapter.ChapterNumber > afterNumber && (best == nil || chapter.ChapterNumber < best.ChapterNumber) {
			best = chapter
		}
	}
	return best, nil
}

func (repo *fakeRepository) PreviousChapter(_ context.Context, bookID, beforeNumber int) (*scripture.Chapter, error) {
	var best *scripture.Chapter
	for _, chapter := range repo.chapters[bookID] {
		if chapter.ChapterNumber < beforeNumber && (best == nil || chapter.ChapterNumber > best.ChapterNumber) {
			best = chapter
		}
	}
	return best, nil
}

func (repo *fakeRepository) GetVerse(_ context.Context, chapterID, verseNumber int) (*scripture.Verse, error) {
	for _, verse := range repo.verses[chapterID] {
		if verse.VerseNumber == verseNumber {
			return verse, nil
		}
	}
	return nil, apperr.NotFound("Verse")
}

func (repo *fakeRepository) ListVerses(_ context.Context, chapterID, limit, offset int) ([]*scripture.Verse, int, error) {
	all := append([]*scripture.Verse{}, repo.verses[chapterID]...)
	sort.Slice(all, func(i, j int) bool { return all[i].VerseNumber < all[j].VerseNumber })

	total := len(all)
	if offset >= total {
		return []*scripture.Verse{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (repo *fakeRepository) NextVerse(_ context.Context, chapterID, afterNumber int) (*scripture.Verse, error) {
	var best *scripture.Verse
	for _, verse := range repo.verses[chapterID] {
		if verse.VerseNumber > afterNumber && (best == nil || verse.VerseNumber < best.VerseNumber) {
			best = verse
		}
	}
	return best, nil
}

func (repo *fakeRepository) PreviousVerse(_ context.Context, chapterID, beforeNumber int) (*scripture.Verse, error) {
	var best *scripture.Verse
	for _, verse := range repo.verses[chapterID] {
		if verse.VerseNumber < beforeNumber && (best == nil || verse.VerseNumber > best.VerseNumber) {
			best = verse
		}
	}
	return best, nil
}

func (repo *fakeRepository) FirstVerse(ctx context.Context, chapterID int) (*scripture.Verse, error) {
	return repo.NextVerse(ctx, chapterID, 0)
}

func (repo *fakeRepository) LastVerse(_ context.Context, chapterID int) (*scripture.Verse, error) {
	var best *scripture.Verse
	for _, verse := range repo.verses[chapterID] {
		if best == nil || verse.VerseNumber > best.VerseNumber {
			best = verse
		}
	}
	return best, nil
}

func (repo *fakeRepository) ListWords(context.Context, int) ([]*scripture.Word, error) {
	return nil, nil
}

func (repo *fakeRepository) TouchAncestors(context.Context, int) error {
	return nil
}

func newTestService() *scripture.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return scripture.NewService(newFakeRepository(), nil, logger)
}

/*
TestService_NextVerseTarget_WithinChapter verifies gap-tolerant stepping.
*/
func TestService_NextVerseTarget_WithinChapter(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 30, BookID: 1, ChapterNumber: 3}

	// Verse 4 does not exist: next after 3 must be 5.
	neighbor, err := service.NextVerseTarget(context.Background(), chapter, 3)
	require.NoError(t, err)
	require.NotNil(t, neighbor)

	assert.False(t, neighbor.CrossesChapter)
	assert.Equal(t, 30, neighbor.Chapter.ID)
	assert.Equal(t, 5, neighbor.Verse.VerseNumber)
}

/*
TestService_NextVerseTarget_CrossesChapter verifies the boundary policy:
stepping past the last verse lands on the next chapter's first verse, even
across a chapter numbering gap.
*/
func TestService_NextVerseTarget_CrossesChapter(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 30, BookID: 1, ChapterNumber: 3}

	neighbor, err := service.NextVerseTarget(context.Background(), chapter, 5)
	require.NoError(t, err)
	require.NotNil(t, neighbor)

	assert.True(t, neighbor.CrossesChapter)
	assert.Equal(t, 4, neighbor.Chapter.ChapterNumber)
	assert.Equal(t, 1, neighbor.Verse.VerseNumber)
}

/*
TestService_NextVerseTarget_Terminal verifies the corpus edge returns nil.
*/
func TestService_NextVerseTarget_Terminal(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 40, BookID: 1, ChapterNumber: 4}

	neighbor, err := service.NextVerseTarget(context.Background(), chapter, 2)
	require.NoError(t, err)
	assert.Nil(t, neighbor)
}

/*
TestService_PreviousVerseTarget_CrossesChapter verifies backward boundary
crossing lands on the previous chapter's last verse.
*/
func TestService_PreviousVerseTarget_CrossesChapter(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 30, BookID: 1, ChapterNumber: 3}

	neighbor, err := service.PreviousVerseTarget(context.Background(), chapter, 1)
	require.NoError(t, err)
	require.NotNil(t, neighbor)

	assert.True(t, neighbor.CrossesChapter)
	assert.Equal(t, 1, neighbor.Chapter.ChapterNumber)
	assert.Equal(t, 2, neighbor.Verse.VerseNumber)
}

/*
TestService_PreviousVerseTarget_Terminal verifies the start of the corpus.
*/
func TestService_PreviousVerseTarget_Terminal(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 10, BookID: 1, ChapterNumber: 1}

	neighbor, err := service.PreviousVerseTarget(context.Background(), chapter, 1)
	require.NoError(t, err)
	assert.Nil(t, neighbor)
}

/*
TestService_Navigation_RoundTrip verifies next and previous are inverses
across a chapter boundary.
*/
func TestService_Navigation_RoundTrip(t *testing.T) {
	service := newTestService()
	chapter := &scripture.Chapter{ID: 30, BookID: 1, ChapterNumber: 3}

	forward, err := service.NextVerseTarget(context.Background(), chapter, 5)
	require.NoError(t, err)
	require.NotNil(t, forward)

	backward, err := service.PreviousVerseTarget(context.Background(), forward.Chapter, forward.Verse.VerseNumber)
	require.NoError(t, err)
	require.NotNil(t, backward)

	assert.True(t, backward.CrossesChapter)
	assert.Equal(t, chapter.ChapterNumber, backward.Chapter.ChapterNumber)
	assert.Equal(t, 5, backward.Verse.VerseNumber)
}

/*
TestService_ListVerses_Pagination verifies paging and total counts.
*/
func TestService_ListVerses_Pagination(t *testing.T) {
	service := newTestService()

	verses, total, err := service.ListVerses(context.Background(), 30, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	require.Len(t, verses, 2)
	assert.Equal(t, 3, verses[0].VerseNumber)
	assert.Equal(t, 5, verses[1].VerseNumber)
}
