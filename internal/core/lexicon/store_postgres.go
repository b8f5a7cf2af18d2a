// Copyright (c) 2026 Verbum. All rights reserved.

package lexicon

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbum/verbum/internal/platform/apperr"
	"github.com/verbum/verbum/internal/platform/database/schema"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] and [Importer] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed lexicon store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// NewImporter exposes the same store through its bulk-load contract.
func NewImporter(pool *pgxpool.Pool) Importer {
	return &postgresRepository{pool: pool}
}

/*
GetByNumber returns the dictionary entry for one Strong's number.

Parameters:
  - context: context.Context
  - strongNumber: string

Returns:
  - *Entry: Hydrated entry
  - error: apperr.NotFound on absent rows
*/
func (repository *postgresRepository) GetByNumber(context context.Context, strongNumber string) (*Entry, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CorpusLexicon.ID, schema.CorpusLexicon.StrongNumber,
		schema.CorpusLexicon.GreekHeadword, schema.CorpusLexicon.HebrewHeadword,
		schema.CorpusLexicon.Pronunciation, schema.CorpusLexicon.Definition,
		schema.CorpusLexicon.Definition2, schema.CorpusLexicon.PartOfSpeech,
		schema.CorpusLexicon.Derivation, schema.CorpusLexicon.LegacyDefinition,
		schema.CorpusLexicon.CreatedAt,
		schema.CorpusLexicon.Table,
		schema.CorpusLexicon.StrongNumber,
	)

	var entry Entry
	err := repository.pool.QueryRow(context, query, strongNumber).Scan(
		&entry.ID,
		&entry.StrongNumber,
		&entry.GreekHeadword,
		&entry.HebrewHeadword,
		&entry.Pronunciation,
		&entry.Definition,
		&entry.Definition2,
		&entry.PartOfSpeech,
		&entry.Derivation,
		&entry.LegacyDefinition,
		&entry.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Lexicon entry")
		}
		return nil, fmt.Errorf("postgres: failed to find lexicon entry: %w", err)
	}

	return &entry, nil
}

/*
Citations returns verses containing a word that references the entry.

Description: Joins lexicon -> word -> verse -> chapter -> book, deduplicating
verses that cite the entry more than once, in canonical corpus order.

Parameters:
  - context: context.Context
  - strongNumber: string
  - limit: int

Returns:
  - []*Citation: Distinct citing verses, canonically ordered
  - error: Database retrieval failures
*/
func (repository *postgresRepository) Citations(context context.Context, strongNumber string, limit int) ([]*Citation, error) {

	query := fmt.Sprintf(`
		SELECT DISTINCT v.%s, b.%s, b.%s, c.%s, v.%s, v.%s
		FROM %s w
		JOIN %s v ON w.%s = v.%s
		JOIN %s c ON v.%s = c.%s
		JOIN %s b ON c.%s = b.%s
		WHERE w.%s = $1
		ORDER BY b.%s, c.%s, v.%s
		LIMIT $2
	`,
		schema.CorpusVerse.ID, schema.CorpusBook.ID, schema.CorpusBook.Name,
		schema.CorpusChapter.ChapterNumber, schema.CorpusVerse.VerseNumber, schema.CorpusVerse.TranslationText,
		schema.CorpusWord.Table,
		schema.CorpusVerse.Table, schema.CorpusWord.VerseID, schema.CorpusVerse.ID,
		schema.CorpusChapter.Table, schema.CorpusVerse.ChapterID, schema.CorpusChapter.ID,
		schema.CorpusBook.Table, schema.CorpusChapter.BookID, schema.CorpusBook.ID,
		schema.CorpusWord.StrongNumber,
		schema.CorpusBook.ID, schema.CorpusChapter.ChapterNumber, schema.CorpusVerse.VerseNumber,
	)

	rows, err := repository.pool.Query(context, query, strongNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list citations: %w", err)
	}
	defer rows.Close()

	var citations []*Citation
	for rows.Next() {
		var citation Citation
		err := rows.Scan(
			&citation.VerseID,
			&citation.BookID,
			&citation.BookName,
			&citation.ChapterNumber,
			&citation.VerseNumber,
			&citation.Text,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan citation: %w", err)
		}
		citations = append(citations, &citation)
	}

	return citations, nil
}

// # Bulk Import

/*
CreateEntries persists dictionary records in a high-performance batch.

Description: Uses Postgres batching (pipelining) to reduce round-trips for
the multi-thousand-entry Strong's lexicon. Conflicting Strong's numbers are
overwritten so a corrected lexicon file can be re-imported in place.
*/
func (repository *postgresRepository) CreateEntries(context context.Context, entries []*Entry) error {

	if len(entries) == 0 {
		return nil
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CorpusLexicon.Table,
		schema.CorpusLexicon.StrongNumber, schema.CorpusLexicon.GreekHeadword,
		schema.CorpusLexicon.HebrewHeadword, schema.CorpusLexicon.Pronunciation,
		schema.CorpusLexicon.Definition, schema.CorpusLexicon.Definition2,
		schema.CorpusLexicon.PartOfSpeech, schema.CorpusLexicon.Derivation,
		schema.CorpusLexicon.LegacyDefinition,
		schema.CorpusLexicon.StrongNumber,
		schema.CorpusLexicon.GreekHeadword, schema.CorpusLexicon.GreekHeadword,
		schema.CorpusLexicon.HebrewHeadword, schema.CorpusLexicon.HebrewHeadword,
		schema.CorpusLexicon.Pronunciation, schema.CorpusLexicon.Pronunciation,
		schema.CorpusLexicon.Definition, schema.CorpusLexicon.Definition,
		schema.CorpusLexicon.Definition2, schema.CorpusLexicon.Definition2,
		schema.CorpusLexicon.PartOfSpeech, schema.CorpusLexicon.PartOfSpeech,
		schema.CorpusLexicon.Derivation, schema.CorpusLexicon.Derivation,
		schema.CorpusLexicon.LegacyDefinition, schema.CorpusLexicon.LegacyDefinition,
	)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insert,
			entry.StrongNumber,
			entry.GreekHeadword,
			entry.HebrewHeadword,
			entry.Pronunciation,
			entry.Definition,
			entry.Definition2,
			entry.PartOfSpeech,
			entry.Derivation,
			entry.LegacyDefinition,
		)
	}

	result := repository.pool.SendBatch(context, batch)
	defer result.Close()

	for i := 0; i < len(entries); i++ {
		if _, err := result.Exec(); err != nil {
			return fmt.Errorf("postgres: failed to batch insert lexicon entry %d: %w", i, err)
		}
	}

	return nil
}
