// Copyright (c) 2026 Verbum. All rights reserved.

package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum/verbum/internal/core/display"
	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/pkg/pointer"
)

// testConfig returns factory settings with greek/hebrew in the role slots,
// which is the interesting case for permutation checks.
func testConfig() *display.Config {
	config := display.DefaultConfig(nil)
	config.PrimaryRole = display.RoleGreek
	config.SecondaryRole = display.RoleHebrew
	return config
}

// dualWord has text in every layer so all three slots resolve.
func dualWord() *scripture.Word {
	return &scripture.Word{
		GreekText:  pointer.To("λόγος"),
		HebrewText: pointer.To("דָּבָר"),
		Gloss:      pointer.To("word"),
	}
}

func kinds(elements []display.Element) []display.Role {
	result := make([]display.Role, 0, len(elements))
	for _, element := range elements {
		result = append(result, element.Kind)
	}
	return result
}

/*
TestArrangeWord_Permutations verifies all six slot orders.
*/
func TestArrangeWord_Permutations(t *testing.T) {
	tests := []struct {
		arrangement int
		want        []display.Role
	}{
		{1, []display.Role{display.RoleGreek, display.RoleHebrew, display.RoleTranslation}},
		{2, []display.Role{display.RoleTranslation, display.RoleGreek, display.RoleHebrew}},
		{3, []display.Role{display.RoleGreek, display.RoleTranslation, display.RoleHebrew}},
		{4, []display.Role{display.RoleHebrew, display.RoleGreek, display.RoleTranslation}},
		{5, []display.Role{display.RoleTranslation, display.RoleHebrew, display.RoleGreek}},
		{6, []display.Role{display.RoleHebrew, display.RoleTranslation, display.RoleGreek}},
	}

	for _, tt := range tests {
		config := testConfig()
		config.Arrangement = tt.arrangement

		elements := display.ArrangeWord(config, dualWord())
		assert.Equal(t, tt.want, kinds(elements), "arrangement %d", tt.arrangement)
	}
}

/*
TestArrangeWord_OutOfRangeArrangement verifies the fallback to the first
permutation.
*/
func TestArrangeWord_OutOfRangeArrangement(t *testing.T) {
	for _, arrangement := range []int{0, -3, 7, 99} {
		config := testConfig()
		config.Arrangement = arrangement

		elements := display.ArrangeWord(config, dualWord())
		assert.Equal(t,
			[]display.Role{display.RoleGreek, display.RoleHebrew, display.RoleTranslation},
			kinds(elements), "arrangement %d", arrangement)
	}
}

/*
TestArrangeWord_ToggledOffLayer verifies a disabled layer contributes nothing.
*/
func TestArrangeWord_ToggledOffLayer(t *testing.T) {
	config := testConfig()
	config.ShowGreek = false

	elements := display.ArrangeWord(config, dualWord())
	assert.Equal(t, []display.Role{display.RoleHebrew, display.RoleTranslation}, kinds(elements))
}

/*
TestArrangeWord_MissingLayerText verifies a role slot vanishes when the word
has no text for it, with no placeholder.
*/
func TestArrangeWord_MissingLayerText(t *testing.T) {
	config := testConfig()
	word := &scripture.Word{
		GreekText: pointer.To("λόγος"),
		Gloss:     pointer.To("word"),
	}

	elements := display.ArrangeWord(config, word)
	assert.Equal(t, []display.Role{display.RoleGreek, display.RoleTranslation}, kinds(elements))
}

/*
TestArrangeWord_GlossPlaceholder verifies the translation slot renders the
muted placeholder for gloss-less words.
*/
func TestArrangeWord_GlossPlaceholder(t *testing.T) {
	config := testConfig()
	word := &scripture.Word{GreekText: pointer.To("καί")}

	elements := display.ArrangeWord(config, word)
	require.Len(t, elements, 2)

	placeholder := elements[1]
	assert.Equal(t, display.RoleTranslation, placeholder.Kind)
	assert.Equal(t, "—", placeholder.Text)
	assert.Equal(t, "text-gray-400", placeholder.StyleClass)
}

/*
TestArrangeWord_TranslationToggledOff verifies the translation slot (and its
placeholder) disappears entirely.
*/
func TestArrangeWord_TranslationToggledOff(t *testing.T) {
	config := testConfig()
	config.ShowTranslation = false

	elements := display.ArrangeWord(config, &scripture.Word{GreekText: pointer.To("καί")})
	assert.Equal(t, []display.Role{display.RoleGreek}, kinds(elements))
}

/*
TestArrangeWord_StylesAndScales verifies per-layer style classes and font
scales propagate onto the elements.
*/
func TestArrangeWord_StylesAndScales(t *testing.T) {
	config := testConfig()
	config.GreekFontScale = 150
	config.HebrewFontScale = 120
	config.TranslationFontScale = 80

	elements := display.ArrangeWord(config, dualWord())
	require.Len(t, elements, 3)

	assert.Equal(t, "text-sky-300", elements[0].StyleClass)
	assert.Equal(t, 150, elements[0].FontScale)

	assert.Equal(t, "text-orange-300", elements[1].StyleClass)
	assert.Equal(t, 120, elements[1].FontScale)

	assert.Equal(t, "text-white", elements[2].StyleClass)
	assert.Equal(t, 80, elements[2].FontScale)
}

/*
TestArrangeWord_EmptyWord verifies a fully empty word still gets the aligned
placeholder when translation is on.
*/
func TestArrangeWord_EmptyWord(t *testing.T) {
	config := testConfig()

	elements := display.ArrangeWord(config, &scripture.Word{})
	require.Len(t, elements, 1)
	assert.Equal(t, "—", elements[0].Text)
}
