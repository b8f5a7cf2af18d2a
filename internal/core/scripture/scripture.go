// Copyright (c) 2026 Verbum. All rights reserved.

/*
Package scripture owns the canonical corpus hierarchy and its navigation.

# Core Responsibility

  - Hierarchy: Book -> Chapter -> Verse -> Word, each level ordered by its
    number column (books by canonical insertion order, never alphabetical).
  - Navigation: next/previous chapter and verse resolution that tolerates
    gaps in numbering, plus the chapter-boundary crossing policy used by the
    verse reader.
  - Freshness: explicit ancestor touching so the import write path can expire
    caches without hidden side effects.

The corpus is bulk-loaded once and read-only afterwards; every lookup here is
a pure read.
*/
package scripture

import (
	"fmt"
	"time"

	"github.com/verbum/verbum/internal/core/lexicon"
	"github.com/verbum/verbum/pkg/pointer"
)

// # Hierarchy Entities

// Testament partitions books into the two canonical collections.
type Testament string

const (
	TestamentOld Testament = "OT"
	TestamentNew Testament = "NT"
)

// Book is the top of the corpus hierarchy. Canonical order is id order —
// books are imported in canon sequence and never re-sorted by name.
type Book struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Testament    Testament `json:"testament"`
	CreatedAt    time.Time `json:"-"`

	// Chapters contains the ordered child chapters, populated by listing
	// queries that prefetch the hierarchy.
	Chapters []*Chapter `json:"chapters,omitempty"`
}

// FullName renders "Name (Abbreviation)".
func (book *Book) FullName() string {
	return fmt.Sprintf("%s (%s)", book.Name, book.Abbreviation)
}

// BookStats aggregates the corpus size of one book.
type BookStats struct {
	ChapterCount int `json:"chapter_count"`
	VerseCount   int `json:"verse_count"`
	WordCount    int `json:"word_count"`
}

// FullReference renders the conventional citation form, "Genesis 1:1".
func FullReference(book *Book, chapter *Chapter, verseNumber int) string {
	return fmt.Sprintf("%s %d:%d", book.Name, chapter.ChapterNumber, verseNumber)
}

// Chapter groups verses within a book. ChapterNumber is unique per book but
// may have gaps (partial corpora import only attested chapters).
type Chapter struct {
	ID            int       `json:"id"`
	BookID        int       `json:"book_id"`
	ChapterNumber int       `json:"chapter_number"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// Verse carries the target-language reading of one verse. Text is nil when
// the translation lacks this verse.
type Verse struct {
	ID          int       `json:"id"`
	ChapterID   int       `json:"chapter_id"`
	VerseNumber int       `json:"verse_number"`
	Text        *string   `json:"text"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// # Words

// Script identifies which source writing system a word's favored form uses.
type Script string

const (
	ScriptGreek  Script = "greek"
	ScriptHebrew Script = "hebrew"
	ScriptNone   Script = ""
)

// Word is one interlinear token of a verse. Either GreekText or HebrewText is
// populated for attested words; both nil means a supplied (translation-only)
// token.
type Word struct {
	ID        int `json:"id"`
	VerseID   int `json:"verse_id"`
	WordOrder int `json:"word_order"`

	GreekText     *string `json:"greek_text"`
	GreekGrammar  *string `json:"greek_grammar"`
	HebrewText    *string `json:"hebrew_text"`
	HebrewGrammar *string `json:"hebrew_grammar"`
	Gloss         *string `json:"gloss"`

	StrongNumber *string `json:"strong_number"`

	// StoredScript is the script tag recorded at import time. It is only a
	// fallback: Script() derives the effective tag from the text fields so a
	// stale stored value can never contradict the actual content.
	StoredScript *string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Lexicon is the joined dictionary entry when StrongNumber is set.
	Lexicon *lexicon.Entry `json:"lexicon,omitempty"`
}

// Script derives the effective script tag from the stored text fields.
//
// Hebrew text wins over Greek for dual-script words; the stored tag is
// consulted only when both text fields are absent.
func (word *Word) Script() Script {
	if pointer.Val(word.HebrewText) != "" {
		return ScriptHebrew
	}
	if pointer.Val(word.GreekText) != "" {
		return ScriptGreek
	}
	switch Script(pointer.Val(word.StoredScript)) {
	case ScriptGreek:
		return ScriptGreek
	case ScriptHebrew:
		return ScriptHebrew
	}
	return ScriptNone
}

// DisplayStrong renders the word's prefixed Strong's number ("H430"/"G25"),
// choosing the prefix by the word's effective script. Empty when the word has
// no lexicon reference.
func (word *Word) DisplayStrong() string {
	number := pointer.Val(word.StrongNumber)
	if number == "" {
		return ""
	}
	if word.Script() == ScriptHebrew {
		return "H" + number
	}
	return "G" + number
}

// # Navigation

// Neighbor is the resolved target of a next/previous navigation step.
//
// CrossesChapter marks that the verse neighbor lives in an adjacent chapter,
// so readers render a chapter boundary rather than a plain verse step. A nil
// Neighbor means the edge of the corpus: callers render a terminal boundary
// and must not retry.
type Neighbor struct {
	Chapter        *Chapter `json:"chapter"`
	Verse          *Verse   `json:"verse,omitempty"`
	CrossesChapter bool     `json:"crosses_chapter"`
}
