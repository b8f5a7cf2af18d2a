// Copyright (c) 2026 Verbum. All rights reserved.

/*
PostgreSQL implementation of the corpus hierarchy store.

Query strategy:
  - Hierarchy prefetch: books and chapters are loaded in two ordered scans
    and stitched in memory — the whole canon is a few thousand rows.
  - Window Functions: verse listings compute total counts without a second
    'COUNT' round-trip.
  - Neighbor queries: ORDER BY + LIMIT 1 expresses "smallest greater" /
    "largest smaller" directly, tolerating gaps in numbering.
*/
package scripture

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbum/verbum/internal/core/lexicon"
	"github.com/verbum/verbum/internal/platform/apperr"
	"github.com/verbum/verbum/internal/platform/database/schema"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] and [Importer] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed corpus store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// NewImporter exposes the same store through its bulk-load contract.
func NewImporter(pool *pgxpool.Pool) Importer {
	return &postgresRepository{pool: pool}
}

// # Book Queries

/*
ListBooks retrieves the full canon with chapters prefetched.

Description: Canonical order is id order — the importer inserts books in
canon sequence, and nothing here ever sorts by name.

Parameters:
  - context: context.Context

Returns:
  - []*Book: Ordered books, each with ordered chapters
  - error: Database retrieval failures
*/
func (repository *postgresRepository) ListBooks(context context.Context) ([]*Book, error) {

	bookQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s
	`,
		schema.CorpusBook.ID, schema.CorpusBook.Name, schema.CorpusBook.Abbreviation,
		schema.CorpusBook.Testament, schema.CorpusBook.CreatedAt,
		schema.CorpusBook.Table,
		schema.CorpusBook.ID,
	)

	rows, err := repository.pool.Query(context, bookQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*Book
	byID := make(map[int]*Book)

	for rows.Next() {
		var book Book
		err := rows.Scan(&book.ID, &book.Name, &book.Abbreviation, &book.Testament, &book.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan book: %w", err)
		}
		book.Chapters = []*Chapter{}
		books = append(books, &book)
		byID[book.ID] = &book
	}
	rows.Close()

	// Chapter prefetch: one ordered scan, stitched onto the parent books.
	chapterQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s, %s
	`,
		schema.CorpusChapter.ID, schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
		schema.CorpusChapter.CreatedAt, schema.CorpusChapter.UpdatedAt,
		schema.CorpusChapter.Table,
		schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
	)

	chapterRows, err := repository.pool.Query(context, chapterQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list chapters: %w", err)
	}
	defer chapterRows.Close()

	for chapterRows.Next() {
		var chapter Chapter
		err := chapterRows.Scan(&chapter.ID, &chapter.BookID, &chapter.ChapterNumber, &chapter.CreatedAt, &chapter.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan chapter: %w", err)
		}
		if book, found := byID[chapter.BookID]; found {
			book.Chapters = append(book.Chapters, &chapter)
		}
	}

	return books, nil
}

/*
GetBook retrieves one book with its ordered chapters.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Book: Hydrated book
  - error: apperr.NotFound on absent rows
*/
func (repository *postgresRepository) GetBook(context context.Context, id int) (*Book, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CorpusBook.ID, schema.CorpusBook.Name, schema.CorpusBook.Abbreviation,
		schema.CorpusBook.Testament, schema.CorpusBook.CreatedAt,
		schema.CorpusBook.Table,
		schema.CorpusBook.ID,
	)

	var book Book
	err := repository.pool.QueryRow(context, query, id).Scan(
		&book.ID, &book.Name, &book.Abbreviation, &book.Testament, &book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, fmt.Errorf("postgres: failed to find book: %w", err)
	}

	chapterQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s
	`,
		schema.CorpusChapter.ID, schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
		schema.CorpusChapter.CreatedAt, schema.CorpusChapter.UpdatedAt,
		schema.CorpusChapter.Table,
		schema.CorpusChapter.BookID,
		schema.CorpusChapter.ChapterNumber,
	)

	rows, err := repository.pool.Query(context, chapterQuery, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book chapters: %w", err)
	}
	defer rows.Close()

	book.Chapters = []*Chapter{}
	for rows.Next() {
		var chapter Chapter
		err := rows.Scan(&chapter.ID, &chapter.BookID, &chapter.ChapterNumber, &chapter.CreatedAt, &chapter.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan chapter: %w", err)
		}
		book.Chapters = append(book.Chapters, &chapter)
	}

	return &book, nil
}

/*
BookStats aggregates chapter, verse and word counts for one book.

Description: A single left-joined aggregate; unknown books produce all-zero
counts rather than an error.
*/
func (repository *postgresRepository) BookStats(context context.Context, bookID int) (*BookStats, error) {

	query := fmt.Sprintf(`
		SELECT
			COUNT(DISTINCT c.%s),
			COUNT(DISTINCT v.%s),
			COUNT(w.%s)
		FROM %s c
		LEFT JOIN %s v ON v.%s = c.%s
		LEFT JOIN %s w ON w.%s = v.%s
		WHERE c.%s = $1
	`,
		schema.CorpusChapter.ID,
		schema.CorpusVerse.ID,
		schema.CorpusWord.ID,
		schema.CorpusChapter.Table,
		schema.CorpusVerse.Table, schema.CorpusVerse.ChapterID, schema.CorpusChapter.ID,
		schema.CorpusWord.Table, schema.CorpusWord.VerseID, schema.CorpusVerse.ID,
		schema.CorpusChapter.BookID,
	)

	var stats BookStats
	err := repository.pool.QueryRow(context, query, bookID).Scan(
		&stats.ChapterCount, &stats.VerseCount, &stats.WordCount,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to aggregate book stats: %w", err)
	}

	return &stats, nil
}

// # Chapter Queries

func (repository *postgresRepository) GetChapter(context context.Context, bookID, chapterNumber int) (*Chapter, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CorpusChapter.ID, schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
		schema.CorpusChapter.CreatedAt, schema.CorpusChapter.UpdatedAt,
		schema.CorpusChapter.Table,
		schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
	)

	var chapter Chapter
	err := repository.pool.QueryRow(context, query, bookID, chapterNumber).Scan(
		&chapter.ID, &chapter.BookID, &chapter.ChapterNumber, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Chapter")
		}
		return nil, fmt.Errorf("postgres: failed to find chapter: %w", err)
	}

	return &chapter, nil
}

/*
NextChapter returns the smallest chapter number strictly greater than
afterNumber within the book, or nil when the book is exhausted.
*/
func (repository *postgresRepository) NextChapter(context context.Context, bookID, afterNumber int) (*Chapter, error) {
	return repository.neighborChapter(context, bookID, afterNumber, ">", "ASC")
}

/*
PreviousChapter returns the largest chapter number strictly smaller than
beforeNumber within the book, or nil.
*/
func (repository *postgresRepository) PreviousChapter(context context.Context, bookID, beforeNumber int) (*Chapter, error) {
	return repository.neighborChapter(context, bookID, beforeNumber, "<", "DESC")
}

// neighborChapter expresses "smallest greater" / "largest smaller" as an
// ordered LIMIT 1 scan; numbering gaps fall out naturally.
func (repository *postgresRepository) neighborChapter(context context.Context, bookID, pivot int, comparator, direction string) (*Chapter, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s %s $2
		ORDER BY %s %s
		LIMIT 1
	`,
		schema.CorpusChapter.ID, schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
		schema.CorpusChapter.CreatedAt, schema.CorpusChapter.UpdatedAt,
		schema.CorpusChapter.Table,
		schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber, comparator,
		schema.CorpusChapter.ChapterNumber, direction,
	)

	var chapter Chapter
	err := repository.pool.QueryRow(context, query, bookID, pivot).Scan(
		&chapter.ID, &chapter.BookID, &chapter.ChapterNumber, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No sibling in this direction — an expected outcome, not a failure.
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to resolve neighbor chapter: %w", err)
	}

	return &chapter, nil
}

// # Verse Queries

func (repository *postgresRepository) GetVerse(context context.Context, chapterID, verseNumber int) (*Verse, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CorpusVerse.ID, schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber,
		schema.CorpusVerse.TranslationText, schema.CorpusVerse.CreatedAt, schema.CorpusVerse.UpdatedAt,
		schema.CorpusVerse.Table,
		schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber,
	)

	var verse Verse
	err := repository.pool.QueryRow(context, query, chapterID, verseNumber).Scan(
		&verse.ID, &verse.ChapterID, &verse.VerseNumber, &verse.Text, &verse.CreatedAt, &verse.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Verse")
		}
		return nil, fmt.Errorf("postgres: failed to find verse: %w", err)
	}

	return &verse, nil
}

/*
ListVerses returns one page of a chapter's verses ordered by verse number.

Description: Uses a window function to compute the chapter's total verse
count without a separate COUNT query.
*/
func (repository *postgresRepository) ListVerses(context context.Context, chapterID, limit, offset int) ([]*Verse, int, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`,
		schema.CorpusVerse.ID, schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber,
		schema.CorpusVerse.TranslationText, schema.CorpusVerse.CreatedAt, schema.CorpusVerse.UpdatedAt,
		schema.CorpusVerse.Table,
		schema.CorpusVerse.ChapterID,
		schema.CorpusVerse.VerseNumber,
	)

	rows, err := repository.pool.Query(context, query, chapterID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list verses: %w", err)
	}
	defer rows.Close()

	var verses []*Verse
	var totalCount int

	for rows.Next() {
		var verse Verse
		err := rows.Scan(
			&verse.ID, &verse.ChapterID, &verse.VerseNumber, &verse.Text,
			&verse.CreatedAt, &verse.UpdatedAt, &totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan verse: %w", err)
		}
		verses = append(verses, &verse)
	}

	return verses, totalCount, nil
}

func (repository *postgresRepository) NextVerse(context context.Context, chapterID, afterNumber int) (*Verse, error) {
	return repository.neighborVerse(context, chapterID, afterNumber, ">", "ASC")
}

func (repository *postgresRepository) PreviousVerse(context context.Context, chapterID, beforeNumber int) (*Verse, error) {
	return repository.neighborVerse(context, chapterID, beforeNumber, "<", "DESC")
}

// FirstVerse returns the lowest-numbered verse of the chapter, or nil.
func (repository *postgresRepository) FirstVerse(context context.Context, chapterID int) (*Verse, error) {
	// Pivot 0 is below every valid verse number, so "next after 0" is the first.
	return repository.neighborVerse(context, chapterID, 0, ">", "ASC")
}

// LastVerse returns the highest-numbered verse of the chapter, or nil.
func (repository *postgresRepository) LastVerse(context context.Context, chapterID int) (*Verse, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT 1
	`,
		schema.CorpusVerse.ID, schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber,
		schema.CorpusVerse.TranslationText, schema.CorpusVerse.CreatedAt, schema.CorpusVerse.UpdatedAt,
		schema.CorpusVerse.Table,
		schema.CorpusVerse.ChapterID,
		schema.CorpusVerse.VerseNumber,
	)

	var verse Verse
	err := repository.pool.QueryRow(context, query, chapterID).Scan(
		&verse.ID, &verse.ChapterID, &verse.VerseNumber, &verse.Text, &verse.CreatedAt, &verse.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to resolve last verse: %w", err)
	}

	return &verse, nil
}

func (repository *postgresRepository) neighborVerse(context context.Context, chapterID, pivot int, comparator, direction string) (*Verse, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s %s $2
		ORDER BY %s %s
		LIMIT 1
	`,
		schema.CorpusVerse.ID, schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber,
		schema.CorpusVerse.TranslationText, schema.CorpusVerse.CreatedAt, schema.CorpusVerse.UpdatedAt,
		schema.CorpusVerse.Table,
		schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber, comparator,
		schema.CorpusVerse.VerseNumber, direction,
	)

	var verse Verse
	err := repository.pool.QueryRow(context, query, chapterID, pivot).Scan(
		&verse.ID, &verse.ChapterID, &verse.VerseNumber, &verse.Text, &verse.CreatedAt, &verse.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to resolve neighbor verse: %w", err)
	}

	return &verse, nil
}

// # Word Queries

/*
ListWords returns the interlinear tokens of a verse, lexicon entries joined.

Description: LEFT JOIN keeps words without a Strong's reference; the joined
lexicon columns scan into nullable locals and only materialize an Entry when
the key matched.
*/
func (repository *postgresRepository) ListWords(context context.Context, verseID int) ([]*Word, error) {

	query := fmt.Sprintf(`
		SELECT
			w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s,
			l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s
		FROM %s w
		LEFT JOIN %s l ON w.%s = l.%s
		WHERE w.%s = $1
		ORDER BY w.%s ASC
	`,
		schema.CorpusWord.ID, schema.CorpusWord.VerseID, schema.CorpusWord.WordOrder,
		schema.CorpusWord.StrongNumber, schema.CorpusWord.GreekText, schema.CorpusWord.GreekGrammar,
		schema.CorpusWord.HebrewText, schema.CorpusWord.HebrewGrammar, schema.CorpusWord.Gloss,
		schema.CorpusWord.Script, schema.CorpusWord.CreatedAt, schema.CorpusWord.UpdatedAt,
		schema.CorpusLexicon.ID, schema.CorpusLexicon.GreekHeadword, schema.CorpusLexicon.HebrewHeadword,
		schema.CorpusLexicon.Pronunciation, schema.CorpusLexicon.Definition, schema.CorpusLexicon.Definition2,
		schema.CorpusLexicon.PartOfSpeech, schema.CorpusLexicon.Derivation, schema.CorpusLexicon.LegacyDefinition,
		schema.CorpusWord.Table,
		schema.CorpusLexicon.Table, schema.CorpusWord.StrongNumber, schema.CorpusLexicon.StrongNumber,
		schema.CorpusWord.VerseID,
		schema.CorpusWord.WordOrder,
	)

	rows, err := repository.pool.Query(context, query, verseID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list words: %w", err)
	}
	defer rows.Close()

	var words []*Word
	for rows.Next() {
		var word Word
		var entryID *int
		var greekHeadword, hebrewHeadword, pronunciation *string
		var definition, definition2, partOfSpeech, derivation, legacyDefinition *string

		err := rows.Scan(
			&word.ID, &word.VerseID, &word.WordOrder,
			&word.StrongNumber, &word.GreekText, &word.GreekGrammar,
			&word.HebrewText, &word.HebrewGrammar, &word.Gloss,
			&word.StoredScript, &word.CreatedAt, &word.UpdatedAt,
			&entryID, &greekHeadword, &hebrewHeadword,
			&pronunciation, &definition, &definition2,
			&partOfSpeech, &derivation, &legacyDefinition,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan word: %w", err)
		}

		if entryID != nil && word.StrongNumber != nil {
			word.Lexicon = &lexicon.Entry{
				ID:               *entryID,
				StrongNumber:     *word.StrongNumber,
				GreekHeadword:    greekHeadword,
				HebrewHeadword:   hebrewHeadword,
				Pronunciation:    pronunciation,
				Definition:       definition,
				Definition2:      definition2,
				PartOfSpeech:     partOfSpeech,
				Derivation:       derivation,
				LegacyDefinition: legacyDefinition,
			}
		}

		words = append(words, &word)
	}

	return words, nil
}

// # Cache Freshness

/*
TouchAncestors bumps the verse and chapter updated_at for one word.

Description: Runs as a single statement so both timestamps move together;
external caches keyed on either timestamp see a consistent bump.
*/
func (repository *postgresRepository) TouchAncestors(context context.Context, wordID int) error {

	query := fmt.Sprintf(`
		WITH touched_verse AS (
			UPDATE %s SET %s = NOW()
			WHERE %s = (SELECT %s FROM %s WHERE %s = $1)
			RETURNING %s
		)
		UPDATE %s SET %s = NOW()
		WHERE %s IN (SELECT %s FROM touched_verse)
	`,
		schema.CorpusVerse.Table, schema.CorpusVerse.UpdatedAt,
		schema.CorpusVerse.ID, schema.CorpusWord.VerseID, schema.CorpusWord.Table, schema.CorpusWord.ID,
		schema.CorpusVerse.ChapterID,
		schema.CorpusChapter.Table, schema.CorpusChapter.UpdatedAt,
		schema.CorpusChapter.ID, schema.CorpusVerse.ChapterID,
	)

	result, err := repository.pool.Exec(context, query, wordID)
	if err != nil {
		return fmt.Errorf("postgres: failed to touch ancestors: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Word")
	}

	return nil
}

// # Bulk Loading

// CreateBook persists a book; the assigned id becomes its canonical position.
func (repository *postgresRepository) CreateBook(context context.Context, book *Book) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.CorpusBook.Table,
		schema.CorpusBook.Name, schema.CorpusBook.Abbreviation, schema.CorpusBook.Testament,
		schema.CorpusBook.ID, schema.CorpusBook.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query, book.Name, book.Abbreviation, book.Testament).
		Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create book: %w", err)
	}

	return nil
}

func (repository *postgresRepository) CreateChapter(context context.Context, chapter *Chapter) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`,
		schema.CorpusChapter.Table,
		schema.CorpusChapter.BookID, schema.CorpusChapter.ChapterNumber,
		schema.CorpusChapter.ID, schema.CorpusChapter.CreatedAt, schema.CorpusChapter.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, chapter.BookID, chapter.ChapterNumber).
		Scan(&chapter.ID, &chapter.CreatedAt, &chapter.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create chapter: %w", err)
	}

	return nil
}

func (repository *postgresRepository) CreateVerse(context context.Context, verse *Verse) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		schema.CorpusVerse.Table,
		schema.CorpusVerse.ChapterID, schema.CorpusVerse.VerseNumber, schema.CorpusVerse.TranslationText,
		schema.CorpusVerse.ID, schema.CorpusVerse.CreatedAt, schema.CorpusVerse.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, verse.ChapterID, verse.VerseNumber, verse.Text).
		Scan(&verse.ID, &verse.CreatedAt, &verse.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create verse: %w", err)
	}

	return nil
}

/*
UpsertWords batch-writes words keyed on (verse, word order).

Description: Re-imports overwrite in place. Each statement reports whether it
updated an existing row (xmax is nonzero for updated tuples); the returned ids
are the overwritten words whose ancestors still need touching.
*/
func (repository *postgresRepository) UpsertWords(context context.Context, words []*Word) ([]int, error) {
	if len(words) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, (xmax <> 0) AS overwritten
	`,
		schema.CorpusWord.Table,
		schema.CorpusWord.VerseID, schema.CorpusWord.WordOrder, schema.CorpusWord.StrongNumber,
		schema.CorpusWord.GreekText, schema.CorpusWord.GreekGrammar,
		schema.CorpusWord.HebrewText, schema.CorpusWord.HebrewGrammar,
		schema.CorpusWord.Gloss, schema.CorpusWord.Script,
		schema.CorpusWord.VerseID, schema.CorpusWord.WordOrder,
		schema.CorpusWord.StrongNumber, schema.CorpusWord.StrongNumber,
		schema.CorpusWord.GreekText, schema.CorpusWord.GreekText,
		schema.CorpusWord.GreekGrammar, schema.CorpusWord.GreekGrammar,
		schema.CorpusWord.HebrewText, schema.CorpusWord.HebrewText,
		schema.CorpusWord.HebrewGrammar, schema.CorpusWord.HebrewGrammar,
		schema.CorpusWord.Gloss, schema.CorpusWord.Gloss,
		schema.CorpusWord.Script, schema.CorpusWord.Script,
		schema.CorpusWord.UpdatedAt,
		schema.CorpusWord.ID,
	)

	batch := &pgx.Batch{}
	for _, word := range words {
		batch.Queue(query,
			word.VerseID, word.WordOrder, word.StrongNumber,
			word.GreekText, word.GreekGrammar,
			word.HebrewText, word.HebrewGrammar,
			word.Gloss, word.StoredScript,
		)
	}

	results := repository.pool.SendBatch(context, batch)
	defer results.Close()

	var overwrittenIDs []int
	for index, word := range words {
		var overwritten bool
		err := results.QueryRow().Scan(&word.ID, &overwritten)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to upsert word %d: %w", index, err)
		}
		if overwritten {
			overwrittenIDs = append(overwrittenIDs, word.ID)
		}
	}

	return overwrittenIDs, nil
}
