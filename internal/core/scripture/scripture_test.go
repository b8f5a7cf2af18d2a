// Copyright (c) 2026 Verbum. All rights reserved.

package scripture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/pkg/pointer"
)

/*
TestWord_Script verifies derivation of the effective script tag.
*/
func TestWord_Script(t *testing.T) {
	tests := []struct {
		name string
		word scripture.Word
		want scripture.Script
	}{
		{
			"greek_text_only",
			scripture.Word{GreekText: pointer.To("λόγος")},
			scripture.ScriptGreek,
		},
		{
			"hebrew_text_only",
			scripture.Word{HebrewText: pointer.To("דָּבָר")},
			scripture.ScriptHebrew,
		},
		{
			"hebrew_wins_over_greek",
			scripture.Word{GreekText: pointer.To("λόγος"), HebrewText: pointer.To("דָּבָר")},
			scripture.ScriptHebrew,
		},
		{
			"stored_tag_fallback",
			scripture.Word{StoredScript: pointer.To("greek")},
			scripture.ScriptGreek,
		},
		{
			"stored_tag_ignored_when_text_present",
			scripture.Word{GreekText: pointer.To("λόγος"), StoredScript: pointer.To("hebrew")},
			scripture.ScriptGreek,
		},
		{
			"invalid_stored_tag",
			scripture.Word{StoredScript: pointer.To("latin")},
			scripture.ScriptNone,
		},
		{
			"empty_strings_count_as_absent",
			scripture.Word{GreekText: pointer.To(""), HebrewText: pointer.To("")},
			scripture.ScriptNone,
		},
		{
			"nothing_set",
			scripture.Word{},
			scripture.ScriptNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.word.Script())
		})
	}
}

/*
TestWord_DisplayStrong verifies the prefixed Strong's rendering per script.
*/
func TestWord_DisplayStrong(t *testing.T) {
	tests := []struct {
		name string
		word scripture.Word
		want string
	}{
		{
			"hebrew_prefix",
			scripture.Word{HebrewText: pointer.To("אֱלֹהִים"), StrongNumber: pointer.To("430")},
			"H430",
		},
		{
			"greek_prefix",
			scripture.Word{GreekText: pointer.To("λόγος"), StrongNumber: pointer.To("3056")},
			"G3056",
		},
		{
			"greek_prefix_when_no_text",
			scripture.Word{StrongNumber: pointer.To("3056")},
			"G3056",
		},
		{
			"no_number",
			scripture.Word{GreekText: pointer.To("καί")},
			"",
		},
		{
			"empty_number",
			scripture.Word{GreekText: pointer.To("καί"), StrongNumber: pointer.To("")},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.word.DisplayStrong())
		})
	}
}

/*
TestBook_FullName verifies the combined name rendering.
*/
func TestBook_FullName(t *testing.T) {
	book := &scripture.Book{Name: "Genesis", Abbreviation: "Gen"}
	assert.Equal(t, "Genesis (Gen)", book.FullName())
}

/*
TestFullReference verifies the conventional citation form.
*/
func TestFullReference(t *testing.T) {
	book := &scripture.Book{Name: "Genesis"}
	chapter := &scripture.Chapter{ChapterNumber: 1}
	assert.Equal(t, "Genesis 1:1", scripture.FullReference(book, chapter, 1))
}
