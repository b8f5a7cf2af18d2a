// Copyright (c) 2026 Verbum. All rights reserved.

package display

import (
	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/pkg/pointer"
)

// # Arrangement Engine

// Style classes applied per text layer.
const (
	styleGreek       = "text-sky-300"
	styleHebrew      = "text-orange-300"
	styleTranslation = "text-white"
	styleMuted       = "text-gray-400"
)

// glossPlaceholder is rendered in the translation slot when a word has no
// gloss, keeping card rows aligned across the verse.
const glossPlaceholder = "—"

// Element is one rendered line of a word card.
type Element struct {
	Kind       Role   `json:"kind"`
	Text       string `json:"text"`
	StyleClass string `json:"style_class"`
	FontScale  int    `json:"font_scale"`
}

// slot indexes into an arrangement permutation.
type slot int

const (
	slotPrimary slot = iota
	slotSecondary
	slotTranslation
)

// arrangements maps arrangement numbers 1..6 to slot orders. Every
// permutation of (primary, secondary, translation) is reachable; the
// numbering is a fixed contract shared with stored configs, so rows must
// never be reordered.
var arrangements = [6][3]slot{
	{slotPrimary, slotSecondary, slotTranslation},
	{slotTranslation, slotPrimary, slotSecondary},
	{slotPrimary, slotTranslation, slotSecondary},
	{slotSecondary, slotPrimary, slotTranslation},
	{slotTranslation, slotSecondary, slotPrimary},
	{slotSecondary, slotTranslation, slotPrimary},
}

/*
ArrangeWord renders one word into its ordered card elements.

Description: The primary and secondary slots resolve through the configured
roles; a slot contributes nothing when its layer toggle is off or the word
has no text for that layer. The translation slot always renders when the
translation toggle is on, substituting a muted placeholder for missing
glosses so cards stay row-aligned. Arrangement numbers outside 1..6 fall
back to the first permutation.

Parameters:
  - config: *Config (Validated viewer settings)
  - word: *scripture.Word

Returns:
  - []Element: Ordered card lines, possibly empty
*/
func ArrangeWord(config *Config, word *scripture.Word) []Element {
	index := config.Arrangement - 1
	if index < 0 || index >= len(arrangements) {
		index = 0
	}

	elements := []Element{}
	for _, position := range arrangements[index] {
		var element *Element
		switch position {
		case slotPrimary:
			element = roleElement(config, config.PrimaryRole, word)
		case slotSecondary:
			element = roleElement(config, config.SecondaryRole, word)
		case slotTranslation:
			element = translationElement(config, word)
		}
		if element != nil {
			elements = append(elements, *element)
		}
	}

	return elements
}

// roleElement resolves a configured role against one word. Returns nil when
// the layer is toggled off or the word lacks text for it.
func roleElement(config *Config, role Role, word *scripture.Word) *Element {
	switch role {
	case RoleGreek:
		if text := pointer.Val(word.GreekText); config.ShowGreek && text != "" {
			return &Element{
				Kind:       RoleGreek,
				Text:       text,
				StyleClass: styleGreek,
				FontScale:  config.GreekFontScale,
			}
		}

	case RoleHebrew:
		if text := pointer.Val(word.HebrewText); config.ShowHebrew && text != "" {
			return &Element{
				Kind:       RoleHebrew,
				Text:       text,
				StyleClass: styleHebrew,
				FontScale:  config.HebrewFontScale,
			}
		}

	case RoleTranslation:
		if text := pointer.Val(word.Gloss); config.ShowTranslation && text != "" {
			return &Element{
				Kind:       RoleTranslation,
				Text:       text,
				StyleClass: styleTranslation,
				FontScale:  config.TranslationFontScale,
			}
		}
	}

	return nil
}

// translationElement renders the fixed translation slot, with the aligned
// placeholder for gloss-less words.
func translationElement(config *Config, word *scripture.Word) *Element {
	if !config.ShowTranslation {
		return nil
	}

	if gloss := pointer.Val(word.Gloss); gloss != "" {
		return &Element{
			Kind:       RoleTranslation,
			Text:       gloss,
			StyleClass: styleTranslation,
			FontScale:  config.TranslationFontScale,
		}
	}

	return &Element{
		Kind:       RoleTranslation,
		Text:       glossPlaceholder,
		StyleClass: styleMuted,
		FontScale:  config.TranslationFontScale,
	}
}
