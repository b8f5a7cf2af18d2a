// Copyright (c) 2026 Verbum. All rights reserved.

package display

import (
	"context"

	"github.com/verbum/verbum/internal/platform/apperr"
	"github.com/verbum/verbum/internal/platform/validate"
	"github.com/verbum/verbum/pkg/convert"
)

// # Service Layer

// Service resolves, patches, and resets viewer configurations.
type Service struct {
	repo Repository
}

// NewService constructs a new display [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Resolution

/*
GetOrCreate resolves the effective configuration for a viewer.

Description: Resolution order is the viewer's own row, then the shared
default row, then a freshly created row owned by the viewer and seeded
from factory settings. The shared-token-less default is created only when
no viewer token is present at all.

Parameters:
  - context: context.Context
  - viewerToken: string (Empty only when the token middleware is absent)

Returns:
  - *Config: The effective configuration, never nil
  - error: Database failures
*/
func (service *Service) GetOrCreate(context context.Context, viewerToken string) (*Config, error) {
	if viewerToken != "" {
		config, err := service.repo.FindByToken(context, viewerToken)
		if err != nil {
			return nil, err
		}
		if config != nil {
			return config, nil
		}
	}

	config, err := service.repo.FindDefault(context)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	var owner *string
	if viewerToken != "" {
		owner = &viewerToken
	}

	config = DefaultConfig(owner)
	if err := service.repo.Create(context, config); err != nil {
		return nil, err
	}

	return config, nil
}

// # Updates

/*
Update applies a settings patch for a viewer atomically.

Description: The patch is applied to a copy of the viewer's effective
configuration and the copy is validated as a whole. On any rule failure
nothing is persisted and the prior configuration is returned alongside the
validation error. A viewer editing the shared default gets a personal row
on first save; the default row itself is never modified. Unknown patch keys
are ignored.

Parameters:
  - context: context.Context
  - viewerToken: string
  - patch: map[string]string (Field keys to raw string values)

Returns:
  - *Config: The persisted configuration, or the untouched prior one on
    validation failure
  - error: apperr.ValidationError or database failures
*/
func (service *Service) Update(context context.Context, viewerToken string, patch map[string]string) (*Config, error) {
	if viewerToken == "" {
		return nil, apperr.Unprocessable("A viewer token is required to save settings")
	}

	current, err := service.GetOrCreate(context, viewerToken)
	if err != nil {
		return nil, err
	}

	candidate := *current
	applyPatch(&candidate, patch)

	if err := validateConfig(&candidate); err != nil {
		return current, err
	}

	owned := current.ViewerToken != nil && *current.ViewerToken == viewerToken
	if !owned {
		// First save: fork the shared default into a personal row.
		candidate.ID = 0
		candidate.ViewerToken = &viewerToken
		candidate.Name = "My Configuration"
		if name, present := patch[FieldName]; present {
			candidate.Name = name
		}
		if err := service.repo.Create(context, &candidate); err != nil {
			return nil, err
		}
		return &candidate, nil
	}

	if err := service.repo.Update(context, &candidate); err != nil {
		return nil, err
	}

	return &candidate, nil
}

/*
Reset restores a viewer's configuration to factory settings.

Description: A viewer with a personal row gets it overwritten in place; a
viewer still on the shared default simply keeps reading it, nothing is
created.

Parameters:
  - context: context.Context
  - viewerToken: string

Returns:
  - *Config: The configuration after the reset
  - error: Database failures
*/
func (service *Service) Reset(context context.Context, viewerToken string) (*Config, error) {
	if viewerToken == "" {
		return nil, apperr.Unprocessable("A viewer token is required to reset settings")
	}

	current, err := service.repo.FindByToken(context, viewerToken)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return service.GetOrCreate(context, viewerToken)
	}

	restored := DefaultConfig(&viewerToken)
	restored.ID = current.ID
	restored.CreatedAt = current.CreatedAt

	if err := service.repo.Update(context, restored); err != nil {
		return nil, err
	}

	return restored, nil
}

// # Patch Application

// applyPatch coerces raw string values onto a configuration copy. Boolean
// fields accept "true"/"1"; numeric fields that fail to parse become -1 so
// whole-config validation rejects them.
func applyPatch(config *Config, patch map[string]string) {
	for field, raw := range patch {
		switch field {
		case FieldName:
			config.Name = raw

		case FieldShowGreek:
			config.ShowGreek = convert.ToBool(raw)
		case FieldShowHebrew:
			config.ShowHebrew = convert.ToBool(raw)
		case FieldShowTranslation:
			config.ShowTranslation = convert.ToBool(raw)
		case FieldShowStrongs:
			config.ShowStrongs = convert.ToBool(raw)
		case FieldShowGrammar:
			config.ShowGrammar = convert.ToBool(raw)
		case FieldShowPronunciation:
			config.ShowPronunciation = convert.ToBool(raw)
		case FieldShowWordOrder:
			config.ShowWordOrder = convert.ToBool(raw)

		case FieldPrimaryRole:
			config.PrimaryRole = Role(raw)
		case FieldSecondaryRole:
			config.SecondaryRole = Role(raw)
		case FieldArrangement:
			config.Arrangement = convert.ToIntD(raw, -1)

		case FieldGreekFontScale:
			config.GreekFontScale = convert.ToIntD(raw, -1)
		case FieldHebrewFontScale:
			config.HebrewFontScale = convert.ToIntD(raw, -1)
		case FieldTranslationFontScale:
			config.TranslationFontScale = convert.ToIntD(raw, -1)
		case FieldStrongsFontScale:
			config.StrongsFontScale = convert.ToIntD(raw, -1)
		case FieldGrammarFontScale:
			config.GrammarFontScale = convert.ToIntD(raw, -1)
		case FieldPronunciationFontScale:
			config.PronunciationFontScale = convert.ToIntD(raw, -1)

		case FieldCardPadding:
			config.CardPadding = convert.ToIntD(raw, -1)
		case FieldCardSpacing:
			config.CardSpacing = convert.ToIntD(raw, -1)
		case FieldTheme:
			config.Theme = Theme(raw)
		}
	}
}

// validateConfig checks a whole configuration against the value bounds.
func validateConfig(config *Config) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, config.Name).
		MaxLen(FieldName, config.Name, NameMaxLength).
		OneOf(FieldPrimaryRole, string(config.PrimaryRole), Roles()...).
		OneOf(FieldSecondaryRole, string(config.SecondaryRole), Roles()...).
		Custom(FieldSecondaryRole, config.PrimaryRole == config.SecondaryRole,
			"Secondary role must differ from the primary role").
		Range(FieldArrangement, config.Arrangement, ArrangementMin, ArrangementMax).
		Range(FieldGreekFontScale, config.GreekFontScale, FontScaleMin, FontScaleMax).
		Range(FieldHebrewFontScale, config.HebrewFontScale, FontScaleMin, FontScaleMax).
		Range(FieldTranslationFontScale, config.TranslationFontScale, FontScaleMin, FontScaleMax).
		Range(FieldStrongsFontScale, config.StrongsFontScale, FontScaleMin, FontScaleMax).
		Range(FieldGrammarFontScale, config.GrammarFontScale, FontScaleMin, FontScaleMax).
		Range(FieldPronunciationFontScale, config.PronunciationFontScale, FontScaleMin, FontScaleMax).
		Range(FieldCardPadding, config.CardPadding, CardMetricMin, CardMetricMax).
		Range(FieldCardSpacing, config.CardSpacing, CardMetricMin, CardMetricMax).
		OneOf(FieldTheme, string(config.Theme), Themes()...)

	return validator.Err()
}
