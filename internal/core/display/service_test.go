// Copyright (c) 2026 Verbum. All rights reserved.

package display_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum/verbum/internal/core/display"
	"github.com/verbum/verbum/internal/platform/apperr"
)

// fakeConfigRepository stores configurations in memory, keyed like the real
// table: at most one row per viewer token plus one shared default row.
type fakeConfigRepository struct {
	rows   []*display.Config
	nextID int
}

func newFakeConfigRepository() *fakeConfigRepository {
	return &fakeConfigRepository{nextID: 1}
}

func (repo *fakeConfigRepository) FindByToken(_ context.Context, viewerToken string) (*display.Config, error) {
	for _, row := range repo.rows {
		if row.ViewerToken != nil && *row.ViewerToken == viewerToken {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (repo *fakeConfigRepository) FindDefault(context.Context) (*display.Config, error) {
	for _, row := range repo.rows {
		if row.ViewerToken == nil {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (repo *fakeConfigRepository) Create(_ context.Context, config *display.Config) error {
	config.ID = repo.nextID
	repo.nextID++

	stored := *config
	repo.rows = append(repo.rows, &stored)
	return nil
}

func (repo *fakeConfigRepository) Update(_ context.Context, config *display.Config) error {
	for index, row := range repo.rows {
		if row.ID == config.ID {
			stored := *config
			repo.rows[index] = &stored
			return nil
		}
	}
	return apperr.NotFound("Configuration")
}

const token = "viewer-token-1"

/*
TestService_GetOrCreate_BootstrapsOwnedRow verifies the empty-storage path
creates the row for the requesting viewer, seeded from factory settings.
*/
func TestService_GetOrCreate_BootstrapsOwnedRow(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	config, err := service.GetOrCreate(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "My Configuration", config.Name)
	require.NotNil(t, config.ViewerToken)
	assert.Equal(t, token, *config.ViewerToken)
	assert.Equal(t, 1, config.Arrangement)
	require.Len(t, repo.rows, 1)

	// The same viewer reads the same row back, no new creation.
	again, err := service.GetOrCreate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, config.ID, again.ID)
	assert.Len(t, repo.rows, 1)
}

/*
TestService_GetOrCreate_SharedDefaultWithoutToken verifies a tokenless lookup
creates the shared default row, which later viewers read without forking.
*/
func TestService_GetOrCreate_SharedDefaultWithoutToken(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	shared, err := service.GetOrCreate(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Default Configuration", shared.Name)
	assert.Nil(t, shared.ViewerToken)
	require.Len(t, repo.rows, 1)

	// A viewer without a personal row reads the shared default as-is.
	config, err := service.GetOrCreate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, shared.ID, config.ID)
	assert.Len(t, repo.rows, 1)
}

/*
TestService_GetOrCreate_PrefersViewerRow verifies a saved personal row wins
over the shared default.
*/
func TestService_GetOrCreate_PrefersViewerRow(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	_, err := service.Update(context.Background(), token, map[string]string{
		display.FieldTheme: "compact",
	})
	require.NoError(t, err)

	config, err := service.GetOrCreate(context.Background(), token)
	require.NoError(t, err)

	require.NotNil(t, config.ViewerToken)
	assert.Equal(t, token, *config.ViewerToken)
	assert.Equal(t, display.ThemeCompact, config.Theme)
}

/*
TestService_Update_ForksDefaultOnFirstSave verifies the shared default row is
never modified; the first save creates a personal row.
*/
func TestService_Update_ForksDefaultOnFirstSave(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	// Materialize the shared default first.
	_, err := service.GetOrCreate(context.Background(), "")
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), token, map[string]string{
		display.FieldGreekFontScale: "150",
	})
	require.NoError(t, err)

	assert.Equal(t, "My Configuration", updated.Name)
	assert.Equal(t, 150, updated.GreekFontScale)
	require.NotNil(t, updated.ViewerToken)

	// Default row still has factory settings.
	shared, err := repo.FindDefault(context.Background())
	require.NoError(t, err)
	require.NotNil(t, shared)
	assert.Equal(t, "Default Configuration", shared.Name)
	assert.Equal(t, 100, shared.GreekFontScale)
}

/*
TestService_Update_Atomicity verifies a patch with any invalid field persists
nothing and returns the prior configuration.
*/
func TestService_Update_Atomicity(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	// Establish a personal row first.
	_, err := service.Update(context.Background(), token, map[string]string{
		display.FieldTheme: "spacious",
	})
	require.NoError(t, err)

	// Valid theme change bundled with an out-of-range scale.
	result, err := service.Update(context.Background(), token, map[string]string{
		display.FieldTheme:          "compact",
		display.FieldGreekFontScale: "500",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	// The returned config and the stored row are both untouched.
	assert.Equal(t, display.ThemeSpacious, result.Theme)
	assert.Equal(t, 100, result.GreekFontScale)

	stored, err := repo.FindByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, display.ThemeSpacious, stored.Theme)
}

/*
TestService_Update_RoleCollision verifies primary and secondary roles must
differ.
*/
func TestService_Update_RoleCollision(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	_, err := service.Update(context.Background(), token, map[string]string{
		display.FieldPrimaryRole:   "greek",
		display.FieldSecondaryRole: "greek",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_Update_Coercion verifies string patch values coerce onto typed
fields, and unknown keys are ignored.
*/
func TestService_Update_Coercion(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	updated, err := service.Update(context.Background(), token, map[string]string{
		display.FieldShowGrammar:   "false",
		display.FieldShowWordOrder: "1",
		display.FieldCardPadding:   "75",
		display.FieldArrangement:   "4",
		"no_such_field":            "ignored",
	})
	require.NoError(t, err)

	assert.False(t, updated.ShowGrammar)
	assert.True(t, updated.ShowWordOrder)
	assert.Equal(t, 75, updated.CardPadding)
	assert.Equal(t, 4, updated.Arrangement)
}

/*
TestService_Update_RequiresToken verifies settings cannot be saved without a
viewer identity.
*/
func TestService_Update_RequiresToken(t *testing.T) {
	service := display.NewService(newFakeConfigRepository())

	_, err := service.Update(context.Background(), "", map[string]string{
		display.FieldTheme: "compact",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNPROCESSABLE", ae.Code)
}

/*
TestService_Reset_RestoresFactorySettings verifies a personal row is reset in
place.
*/
func TestService_Reset_RestoresFactorySettings(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	saved, err := service.Update(context.Background(), token, map[string]string{
		display.FieldTheme:          "compact",
		display.FieldGreekFontScale: "180",
		display.FieldShowGrammar:    "false",
	})
	require.NoError(t, err)

	restored, err := service.Reset(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, restored.ID)
	assert.Equal(t, display.ThemeDefault, restored.Theme)
	assert.Equal(t, 100, restored.GreekFontScale)
	assert.True(t, restored.ShowGrammar)
	require.NotNil(t, restored.ViewerToken)
	assert.Equal(t, token, *restored.ViewerToken)
}

/*
TestService_Reset_WithoutPersonalRow verifies resetting a viewer who never
saved anything just serves the shared default when one exists.
*/
func TestService_Reset_WithoutPersonalRow(t *testing.T) {
	repo := newFakeConfigRepository()
	service := display.NewService(repo)

	_, err := service.GetOrCreate(context.Background(), "")
	require.NoError(t, err)

	config, err := service.Reset(context.Background(), token)
	require.NoError(t, err)

	assert.Nil(t, config.ViewerToken)
	assert.Equal(t, "Default Configuration", config.Name)
	assert.Len(t, repo.rows, 1)
}
