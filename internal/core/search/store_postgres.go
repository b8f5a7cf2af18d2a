// Copyright (c) 2026 Verbum. All rights reserved.

package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbum/verbum/internal/platform/database/schema"
)

// # PostgreSQL Repository

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed search store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// likePattern wraps the query in a containment LIKE pattern, escaping the
// LIKE metacharacters so user input always matches literally.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}

// resultColumns is the shared projection: verse joined up to its book so each
// hit carries full reference context.
func resultColumns() string {
	return fmt.Sprintf(`
		v.%s, b.%s, b.%s, b.%s, c.%s, v.%s, v.%s`,
		schema.CorpusVerse.ID,
		schema.CorpusBook.ID, schema.CorpusBook.Name, schema.CorpusBook.Abbreviation,
		schema.CorpusChapter.ChapterNumber,
		schema.CorpusVerse.VerseNumber, schema.CorpusVerse.TranslationText,
	)
}

// referenceJoins is the shared verse -> chapter -> book join chain.
func referenceJoins() string {
	return fmt.Sprintf(`
		FROM %s v
		JOIN %s c ON v.%s = c.%s
		JOIN %s b ON c.%s = b.%s`,
		schema.CorpusVerse.Table,
		schema.CorpusChapter.Table, schema.CorpusVerse.ChapterID, schema.CorpusChapter.ID,
		schema.CorpusBook.Table, schema.CorpusChapter.BookID, schema.CorpusBook.ID,
	)
}

func (repository *postgresRepository) collect(context context.Context, query string, arguments ...interface{}) ([]*Result, error) {
	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to execute search: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		var result Result
		err := rows.Scan(
			&result.VerseID, &result.BookID, &result.BookName, &result.BookAbbreviation,
			&result.ChapterNumber, &result.VerseNumber, &result.Text,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan search result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

// # Surface Lookups

func (repository *postgresRepository) MatchVerses(context context.Context, query string, limit int) ([]*Result, error) {

	statement := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE v.%s LIKE $1
		LIMIT $2
	`,
		resultColumns(),
		referenceJoins(),
		schema.CorpusVerse.TranslationText,
	)

	return repository.collect(context, statement, likePattern(query), limit)
}

func (repository *postgresRepository) MatchWords(context context.Context, query string, limit int) ([]*Result, error) {

	statement := fmt.Sprintf(`
		SELECT DISTINCT %s
		%s
		JOIN %s w ON w.%s = v.%s
		WHERE w.%s LIKE $1 OR w.%s LIKE $1 OR w.%s LIKE $1
		LIMIT $2
	`,
		resultColumns(),
		referenceJoins(),
		schema.CorpusWord.Table, schema.CorpusWord.VerseID, schema.CorpusVerse.ID,
		schema.CorpusWord.GreekText, schema.CorpusWord.HebrewText, schema.CorpusWord.Gloss,
	)

	return repository.collect(context, statement, likePattern(query), limit)
}

func (repository *postgresRepository) MatchLexicon(context context.Context, query string, limit int) ([]*Result, error) {

	statement := fmt.Sprintf(`
		SELECT DISTINCT %s
		%s
		JOIN %s w ON w.%s = v.%s
		JOIN %s l ON l.%s = w.%s
		WHERE l.%s LIKE $1 OR l.%s LIKE $1
		LIMIT $2
	`,
		resultColumns(),
		referenceJoins(),
		schema.CorpusWord.Table, schema.CorpusWord.VerseID, schema.CorpusVerse.ID,
		schema.CorpusLexicon.Table, schema.CorpusLexicon.StrongNumber, schema.CorpusWord.StrongNumber,
		schema.CorpusLexicon.Definition, schema.CorpusLexicon.Definition2,
	)

	return repository.collect(context, statement, likePattern(query), limit)
}
