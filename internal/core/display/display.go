// Copyright (c) 2026 Verbum. All rights reserved.

/*
Package display owns per-viewer interlinear presentation settings and the
word arrangement engine that applies them.

# Core Responsibility

  - Config: one row of display preferences per anonymous viewer token, with
    a shared default row for viewers who never customized anything.
  - Arrangement: the fixed permutation table that orders a word card's
    primary, secondary, and translation lines.

Settings updates are atomic: a patch either validates as a whole and
persists, or the stored configuration stays untouched.
*/
package display

import "time"

// # Roles and Themes

// Role names a text layer of the interlinear display.
type Role string

const (
	RoleTranslation Role = "translation"
	RoleGreek       Role = "greek"
	RoleHebrew      Role = "hebrew"
)

// Roles lists every assignable layer role.
func Roles() []string {
	return []string{string(RoleTranslation), string(RoleGreek), string(RoleHebrew)}
}

// Theme names a card layout density preset.
type Theme string

const (
	ThemeDefault  Theme = "default"
	ThemeCompact  Theme = "compact"
	ThemeSpacious Theme = "spacious"
)

// Themes lists every selectable theme.
func Themes() []string {
	return []string{string(ThemeDefault), string(ThemeCompact), string(ThemeSpacious)}
}

// # Value Bounds

const (
	FontScaleMin = 50
	FontScaleMax = 200

	CardMetricMin = 50
	CardMetricMax = 150

	ArrangementMin = 1
	ArrangementMax = 6

	NameMaxLength = 100
)

// # Patch Field Keys

// Settings patch keys, matching the JSON field names of [Config].
const (
	FieldName              = "name"
	FieldShowGreek         = "show_greek"
	FieldShowHebrew        = "show_hebrew"
	FieldShowTranslation   = "show_translation"
	FieldShowStrongs       = "show_strongs"
	FieldShowGrammar       = "show_grammar"
	FieldShowPronunciation = "show_pronunciation"
	FieldShowWordOrder     = "show_word_order"

	FieldPrimaryRole   = "primary_role"
	FieldSecondaryRole = "secondary_role"
	FieldArrangement   = "arrangement"

	FieldGreekFontScale         = "greek_font_scale"
	FieldHebrewFontScale        = "hebrew_font_scale"
	FieldTranslationFontScale   = "translation_font_scale"
	FieldStrongsFontScale       = "strongs_font_scale"
	FieldGrammarFontScale       = "grammar_font_scale"
	FieldPronunciationFontScale = "pronunciation_font_scale"

	FieldCardPadding = "card_padding"
	FieldCardSpacing = "card_spacing"
	FieldTheme       = "theme"
)

// # Configuration

// Config is one viewer's interlinear display preferences.
//
// ViewerToken is nil on exactly one row: the shared default configuration
// served to viewers who have never saved their own.
type Config struct {
	ID          int     `json:"id"`
	ViewerToken *string `json:"-"`
	Name        string  `json:"name"`

	ShowGreek         bool `json:"show_greek"`
	ShowHebrew        bool `json:"show_hebrew"`
	ShowTranslation   bool `json:"show_translation"`
	ShowStrongs       bool `json:"show_strongs"`
	ShowGrammar       bool `json:"show_grammar"`
	ShowPronunciation bool `json:"show_pronunciation"`
	ShowWordOrder     bool `json:"show_word_order"`

	PrimaryRole   Role `json:"primary_role"`
	SecondaryRole Role `json:"secondary_role"`
	Arrangement   int  `json:"arrangement"`

	GreekFontScale         int `json:"greek_font_scale"`
	HebrewFontScale        int `json:"hebrew_font_scale"`
	TranslationFontScale   int `json:"translation_font_scale"`
	StrongsFontScale       int `json:"strongs_font_scale"`
	GrammarFontScale       int `json:"grammar_font_scale"`
	PronunciationFontScale int `json:"pronunciation_font_scale"`

	CardPadding int   `json:"card_padding"`
	CardSpacing int   `json:"card_spacing"`
	Theme       Theme `json:"theme"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultConfig builds the factory settings for a viewer. The shared default
// row (nil token) gets a distinct name so it is recognizable in storage.
func DefaultConfig(viewerToken *string) *Config {
	name := "My Configuration"
	if viewerToken == nil {
		name = "Default Configuration"
	}

	return &Config{
		ViewerToken: viewerToken,
		Name:        name,

		ShowGreek:         true,
		ShowHebrew:        true,
		ShowTranslation:   true,
		ShowStrongs:       true,
		ShowGrammar:       true,
		ShowPronunciation: false,
		ShowWordOrder:     false,

		PrimaryRole:   RoleTranslation,
		SecondaryRole: RoleGreek,
		Arrangement:   ArrangementMin,

		GreekFontScale:         100,
		HebrewFontScale:        100,
		TranslationFontScale:   100,
		StrongsFontScale:       100,
		GrammarFontScale:       100,
		PronunciationFontScale: 100,

		CardPadding: 100,
		CardSpacing: 100,
		Theme:       ThemeDefault,
	}
}
