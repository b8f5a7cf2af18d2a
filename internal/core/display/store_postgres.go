// Copyright (c) 2026 Verbum. All rights reserved.

package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verbum/verbum/internal/platform/apperr"
	"github.com/verbum/verbum/internal/platform/database/schema"
)

// # PostgreSQL Repository

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed settings store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// settingsColumns is the full settings projection in scan order.
func settingsColumns() string {
	table := schema.DisplayConfig
	return fmt.Sprintf(`
		%s, %s, %s,
		%s, %s, %s, %s, %s, %s, %s,
		%s, %s, %s,
		%s, %s, %s, %s, %s, %s,
		%s, %s, %s, %s, %s`,
		table.ID, table.ViewerToken, table.Name,
		table.ShowGreek, table.ShowHebrew, table.ShowTranslation, table.ShowStrongs,
		table.ShowGrammar, table.ShowPronunciation, table.ShowWordOrder,
		table.PrimaryRole, table.SecondaryRole, table.Arrangement,
		table.GreekFontScale, table.HebrewFontScale, table.TranslationFontScale,
		table.StrongsFontScale, table.GrammarFontScale, table.PronunciationFontScale,
		table.CardPadding, table.CardSpacing, table.Theme, table.CreatedAt, table.UpdatedAt,
	)
}

func scanConfig(row pgx.Row) (*Config, error) {
	var config Config
	err := row.Scan(
		&config.ID, &config.ViewerToken, &config.Name,
		&config.ShowGreek, &config.ShowHebrew, &config.ShowTranslation, &config.ShowStrongs,
		&config.ShowGrammar, &config.ShowPronunciation, &config.ShowWordOrder,
		&config.PrimaryRole, &config.SecondaryRole, &config.Arrangement,
		&config.GreekFontScale, &config.HebrewFontScale, &config.TranslationFontScale,
		&config.StrongsFontScale, &config.GrammarFontScale, &config.PronunciationFontScale,
		&config.CardPadding, &config.CardSpacing, &config.Theme, &config.CreatedAt, &config.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// # Lookups

func (repository *postgresRepository) FindByToken(context context.Context, viewerToken string) (*Config, error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		settingsColumns(),
		schema.DisplayConfig.Table,
		schema.DisplayConfig.ViewerToken,
	)

	config, err := scanConfig(repository.pool.QueryRow(context, query, viewerToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to find viewer config: %w", err)
	}

	return config, nil
}

func (repository *postgresRepository) FindDefault(context context.Context) (*Config, error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
	`,
		settingsColumns(),
		schema.DisplayConfig.Table,
		schema.DisplayConfig.ViewerToken,
	)

	config, err := scanConfig(repository.pool.QueryRow(context, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to find default config: %w", err)
	}

	return config, nil
}

// # Writes

func (repository *postgresRepository) Create(context context.Context, config *Config) error {
	table := schema.DisplayConfig

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s,
			%s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s,
			%s, %s, %s, %s, %s, %s,
			%s, %s, %s
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING %s, %s, %s
	`,
		table.Table,
		table.ViewerToken, table.Name,
		table.ShowGreek, table.ShowHebrew, table.ShowTranslation, table.ShowStrongs,
		table.ShowGrammar, table.ShowPronunciation, table.ShowWordOrder,
		table.PrimaryRole, table.SecondaryRole, table.Arrangement,
		table.GreekFontScale, table.HebrewFontScale, table.TranslationFontScale,
		table.StrongsFontScale, table.GrammarFontScale, table.PronunciationFontScale,
		table.CardPadding, table.CardSpacing, table.Theme,
		table.ID, table.CreatedAt, table.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		config.ViewerToken, config.Name,
		config.ShowGreek, config.ShowHebrew, config.ShowTranslation, config.ShowStrongs,
		config.ShowGrammar, config.ShowPronunciation, config.ShowWordOrder,
		config.PrimaryRole, config.SecondaryRole, config.Arrangement,
		config.GreekFontScale, config.HebrewFontScale, config.TranslationFontScale,
		config.StrongsFontScale, config.GrammarFontScale, config.PronunciationFontScale,
		config.CardPadding, config.CardSpacing, config.Theme,
	).Scan(&config.ID, &config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == "23505" {
			return apperr.Conflict("Configuration already exists for this viewer")
		}
		return fmt.Errorf("postgres: failed to create config: %w", err)
	}

	return nil
}

func (repository *postgresRepository) Update(context context.Context, config *Config) error {
	table := schema.DisplayConfig

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1,
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11,
			%s = $12, %s = $13, %s = $14, %s = $15, %s = $16, %s = $17,
			%s = $18, %s = $19, %s = $20,
			%s = NOW()
		WHERE %s = $21
		RETURNING %s
	`,
		table.Table,
		table.Name,
		table.ShowGreek, table.ShowHebrew, table.ShowTranslation, table.ShowStrongs,
		table.ShowGrammar, table.ShowPronunciation, table.ShowWordOrder,
		table.PrimaryRole, table.SecondaryRole, table.Arrangement,
		table.GreekFontScale, table.HebrewFontScale, table.TranslationFontScale,
		table.StrongsFontScale, table.GrammarFontScale, table.PronunciationFontScale,
		table.CardPadding, table.CardSpacing, table.Theme,
		table.UpdatedAt,
		table.ID,
		table.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		config.Name,
		config.ShowGreek, config.ShowHebrew, config.ShowTranslation, config.ShowStrongs,
		config.ShowGrammar, config.ShowPronunciation, config.ShowWordOrder,
		config.PrimaryRole, config.SecondaryRole, config.Arrangement,
		config.GreekFontScale, config.HebrewFontScale, config.TranslationFontScale,
		config.StrongsFontScale, config.GrammarFontScale, config.PronunciationFontScale,
		config.CardPadding, config.CardSpacing, config.Theme,
		config.ID,
	).Scan(&config.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Configuration")
		}
		return fmt.Errorf("postgres: failed to update config: %w", err)
	}

	return nil
}
