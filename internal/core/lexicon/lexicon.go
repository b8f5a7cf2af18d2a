// Copyright (c) 2026 Verbum. All rights reserved.

/*
Package lexicon manages the Strong's-style dictionary layer of the corpus.

A lexicon entry is a dictionary record (headword, pronunciation, definitions)
referenced by zero or more interlinear words through a shared Strong's number.
Entries are bulk-loaded at corpus import time and read-only afterwards.
*/
package lexicon

import (
	"strings"
	"time"
)

// Entry is one Strong's-style dictionary record.
//
// At least one of GreekHeadword / HebrewHeadword is always populated; the
// corpus importer rejects entries with neither.
type Entry struct {
	ID             int     `json:"id"`
	StrongNumber   string  `json:"strong_number"`
	GreekHeadword  *string `json:"greek_headword"`
	HebrewHeadword *string `json:"hebrew_headword"`
	Pronunciation  *string `json:"pronunciation"`

	// Definition is the primary gloss; Definition2 extends it.
	Definition   *string `json:"definition"`
	Definition2  *string `json:"definition2"`
	PartOfSpeech *string `json:"part_of_speech"`
	Derivation   *string `json:"derivation"`

	// LegacyDefinition carries the historical translation-specific gloss.
	LegacyDefinition *string `json:"legacy_definition,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// Citation is a verse that uses a lexicon entry, carried with enough
// reference data to render a "Book 3:16" link without another lookup.
type Citation struct {
	VerseID       int     `json:"verse_id"`
	BookID        int     `json:"book_id"`
	BookName      string  `json:"book_name"`
	ChapterNumber int     `json:"chapter_number"`
	VerseNumber   int     `json:"verse_number"`
	Text          *string `json:"text"`
}

// DisplayNumber renders the conventional prefixed Strong's number:
// "H" for Hebrew entries, "G" for Greek.
func (entry *Entry) DisplayNumber() string {
	if entry.StrongNumber == "" {
		return ""
	}
	if entry.HebrewHeadword != nil && *entry.HebrewHeadword != "" {
		return "H" + entry.StrongNumber
	}
	return "G" + entry.StrongNumber
}

// FullDefinition joins the primary and secondary definitions with "; ",
// skipping whichever is absent.
func (entry *Entry) FullDefinition() string {
	parts := make([]string, 0, 2)
	if entry.Definition != nil && *entry.Definition != "" {
		parts = append(parts, *entry.Definition)
	}
	if entry.Definition2 != nil && *entry.Definition2 != "" {
		parts = append(parts, *entry.Definition2)
	}
	return strings.Join(parts, "; ")
}

// # Field Identifiers

// Field names for validation and dynamic query mapping in the lexicon domain.
const (
	FieldStrongNumber = "strong_number"
	FieldHeadword     = "headword"
)
