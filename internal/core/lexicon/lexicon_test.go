// Copyright (c) 2026 Verbum. All rights reserved.

package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verbum/verbum/internal/core/lexicon"
	"github.com/verbum/verbum/pkg/pointer"
)

/*
TestEntry_DisplayNumber verifies the H/G prefix convention.
*/
func TestEntry_DisplayNumber(t *testing.T) {
	tests := []struct {
		name  string
		entry lexicon.Entry
		want  string
	}{
		{
			"hebrew_entry",
			lexicon.Entry{StrongNumber: "430", HebrewHeadword: pointer.To("אֱלֹהִים")},
			"H430",
		},
		{
			"greek_entry",
			lexicon.Entry{StrongNumber: "3056", GreekHeadword: pointer.To("λόγος")},
			"G3056",
		},
		{
			"hebrew_wins_over_greek",
			lexicon.Entry{StrongNumber: "1", GreekHeadword: pointer.To("Α"), HebrewHeadword: pointer.To("אָב")},
			"H1",
		},
		{
			"empty_number",
			lexicon.Entry{HebrewHeadword: pointer.To("אָב")},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.DisplayNumber())
		})
	}
}

/*
TestEntry_FullDefinition verifies joining of primary and secondary definitions.
*/
func TestEntry_FullDefinition(t *testing.T) {
	tests := []struct {
		name  string
		entry lexicon.Entry
		want  string
	}{
		{
			"both_definitions",
			lexicon.Entry{Definition: pointer.To("word"), Definition2: pointer.To("speech, account")},
			"word; speech, account",
		},
		{
			"primary_only",
			lexicon.Entry{Definition: pointer.To("word")},
			"word",
		},
		{
			"secondary_only",
			lexicon.Entry{Definition2: pointer.To("speech")},
			"speech",
		},
		{
			"empty_strings_skipped",
			lexicon.Entry{Definition: pointer.To(""), Definition2: pointer.To("speech")},
			"speech",
		},
		{
			"neither",
			lexicon.Entry{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.FullDefinition())
		})
	}
}
