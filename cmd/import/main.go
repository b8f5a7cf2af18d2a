// Copyright (c) 2026 Verbum. All rights reserved.

// Command import bulk-loads corpus and lexicon data into PostgreSQL.
//
// # Usage
//
//	import -corpus data/corpus.json -lexicon data/lexicon.json
//
// The corpus file holds the full book/chapter/verse/word hierarchy in canon
// order; the lexicon file holds Strong's dictionary entries. Both loads are
// idempotent: existing words and entries are overwritten in place, and any
// overwritten word gets its ancestor timestamps bumped so downstream caches
// expire. The cached book listing in Redis is invalidated at the end.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/verbum/verbum/internal/core/lexicon"
	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/internal/platform/config"
	"github.com/verbum/verbum/internal/platform/migration"
	pgstore "github.com/verbum/verbum/internal/platform/postgres"
	redisstore "github.com/verbum/verbum/internal/platform/redis"
)

// # Input Formats

// corpusBook mirrors one book of the corpus input file. Books must appear in
// canonical order: insertion order becomes the canonical book order.
type corpusBook struct {
	Name         string          `json:"name"`
	Abbreviation string          `json:"abbreviation"`
	Testament    string          `json:"testament"`
	Chapters     []corpusChapter `json:"chapters"`
}

type corpusChapter struct {
	Number int           `json:"number"`
	Verses []corpusVerse `json:"verses"`
}

type corpusVerse struct {
	Number int          `json:"number"`
	Text   *string      `json:"text"`
	Words  []corpusWord `json:"words"`
}

type corpusWord struct {
	Order         int     `json:"order"`
	GreekText     *string `json:"greek_text"`
	GreekGrammar  *string `json:"greek_grammar"`
	HebrewText    *string `json:"hebrew_text"`
	HebrewGrammar *string `json:"hebrew_grammar"`
	Gloss         *string `json:"gloss"`
	StrongNumber  *string `json:"strong_number"`
	Script        *string `json:"script"`
}

// lexiconEntry mirrors one dictionary record of the lexicon input file.
type lexiconEntry struct {
	StrongNumber     string  `json:"strong_number"`
	GreekHeadword    *string `json:"greek_headword"`
	HebrewHeadword   *string `json:"hebrew_headword"`
	Pronunciation    *string `json:"pronunciation"`
	Definition       *string `json:"definition"`
	Definition2      *string `json:"definition2"`
	PartOfSpeech     *string `json:"part_of_speech"`
	Derivation       *string `json:"derivation"`
	LegacyDefinition *string `json:"legacy_definition"`
}

// lexiconBatchSize bounds how many entries go into one pgx batch.
const lexiconBatchSize = 500

func main() {
	corpusPath := flag.String("corpus", "", "path to the corpus JSON file")
	lexiconPath := flag.String("lexicon", "", "path to the lexicon JSON file")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "verbum-import"))

	if *corpusPath == "" && *lexiconPath == "" {
		log.Error("nothing to do: provide -corpus and/or -lexicon")
		os.Exit(2)
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() { _ = rdb.Close() }()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// Loads can take a while on the full canon; no deadline here.
	ctx := context.Background()

	if *lexiconPath != "" {
		must(log, importLexicon(ctx, lexicon.NewImporter(pool), *lexiconPath, log), "import lexicon")
	}

	if *corpusPath != "" {
		repository := scripture.NewRepository(pool)
		importer := scripture.NewImporter(pool)
		must(log, importCorpus(ctx, importer, repository, *corpusPath, log), "import corpus")
	}

	// Drop the cached book listing so readers see the new corpus immediately.
	bookCache := scripture.NewBookCache(rdb)
	if err := bookCache.Invalidate(ctx); err != nil {
		log.Warn("book list cache invalidation failed", slog.Any("error", err))
	}

	log.Info("import finished")
}

// importLexicon loads dictionary entries in batches.
func importLexicon(ctx context.Context, importer lexicon.Importer, path string, log *slog.Logger) error {
	var records []lexiconEntry
	if err := decodeFile(path, &records); err != nil {
		return err
	}

	batch := make([]*lexicon.Entry, 0, lexiconBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := importer.CreateEntries(ctx, batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for _, record := range records {
		batch = append(batch, &lexicon.Entry{
			StrongNumber:     record.StrongNumber,
			GreekHeadword:    record.GreekHeadword,
			HebrewHeadword:   record.HebrewHeadword,
			Pronunciation:    record.Pronunciation,
			Definition:       record.Definition,
			Definition2:      record.Definition2,
			PartOfSpeech:     record.PartOfSpeech,
			Derivation:       record.Derivation,
			LegacyDefinition: record.LegacyDefinition,
		})
		if len(batch) == lexiconBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	log.Info("lexicon imported", slog.Int("entries", len(records)))
	return nil
}

// importCorpus loads the hierarchy top-down, upserting words per verse and
// touching ancestors for every overwritten word.
func importCorpus(ctx context.Context, importer scripture.Importer, repository scripture.Repository, path string, log *slog.Logger) error {
	var records []corpusBook
	if err := decodeFile(path, &records); err != nil {
		return err
	}

	totalVerses := 0
	totalWords := 0
	totalOverwritten := 0

	for _, bookRecord := range records {
		book := &scripture.Book{
			Name:         bookRecord.Name,
			Abbreviation: bookRecord.Abbreviation,
			Testament:    scripture.Testament(bookRecord.Testament),
		}
		if err := importer.CreateBook(ctx, book); err != nil {
			return fmt.Errorf("book %q: %w", bookRecord.Name, err)
		}

		for _, chapterRecord := range bookRecord.Chapters {
			chapter := &scripture.Chapter{
				BookID:        book.ID,
				ChapterNumber: chapterRecord.Number,
			}
			if err := importer.CreateChapter(ctx, chapter); err != nil {
				return fmt.Errorf("book %q chapter %d: %w", bookRecord.Name, chapterRecord.Number, err)
			}

			for _, verseRecord := range chapterRecord.Verses {
				verse := &scripture.Verse{
					ChapterID:   chapter.ID,
					VerseNumber: verseRecord.Number,
					Text:        verseRecord.Text,
				}
				if err := importer.CreateVerse(ctx, verse); err != nil {
					return fmt.Errorf("book %q chapter %d verse %d: %w",
						bookRecord.Name, chapterRecord.Number, verseRecord.Number, err)
				}
				totalVerses++

				words := make([]*scripture.Word, 0, len(verseRecord.Words))
				for _, wordRecord := range verseRecord.Words {
					words = append(words, &scripture.Word{
						VerseID:       verse.ID,
						WordOrder:     wordRecord.Order,
						GreekText:     wordRecord.GreekText,
						GreekGrammar:  wordRecord.GreekGrammar,
						HebrewText:    wordRecord.HebrewText,
						HebrewGrammar: wordRecord.HebrewGrammar,
						Gloss:         wordRecord.Gloss,
						StrongNumber:  wordRecord.StrongNumber,
						StoredScript:  wordRecord.Script,
					})
				}

				overwrittenIDs, err := importer.UpsertWords(ctx, words)
				if err != nil {
					return fmt.Errorf("book %q chapter %d verse %d words: %w",
						bookRecord.Name, chapterRecord.Number, verseRecord.Number, err)
				}
				totalWords += len(words)

				for _, wordID := range overwrittenIDs {
					if err := repository.TouchAncestors(ctx, wordID); err != nil {
						return fmt.Errorf("touch ancestors of word %d: %w", wordID, err)
					}
				}
				totalOverwritten += len(overwrittenIDs)
			}
		}

		log.Info("book imported",
			slog.String("name", book.Name),
			slog.Int("chapters", len(bookRecord.Chapters)),
		)
	}

	log.Info("corpus imported",
		slog.Int("books", len(records)),
		slog.Int("verses", totalVerses),
		slog.Int("words", totalWords),
		slog.Int("overwritten_words", totalOverwritten),
	)
	return nil
}

// decodeFile reads a JSON file into target.
func decodeFile(path string, target any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("import failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
