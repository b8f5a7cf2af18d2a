// Copyright (c) 2026 Verbum. All rights reserved.

package display

import "context"

// # Settings Data Access

// Repository defines the persistence contract for viewer configurations.
type Repository interface {

	/*
		FindByToken retrieves the configuration saved for a viewer token.

		Parameters:
		  - context: context.Context
		  - viewerToken: string

		Returns:
		  - *Config: The viewer's row, or nil when none was ever saved
		  - error: Database retrieval failures (absence is not an error)
	*/
	FindByToken(context context.Context, viewerToken string) (*Config, error)

	/*
		FindDefault retrieves the shared default row (nil viewer token).

		Returns:
		  - *Config: The default row, or nil when it was never created
		  - error: Database retrieval failures
	*/
	FindDefault(context context.Context) (*Config, error)

	/*
		Create persists a configuration and assigns its id.

		Returns:
		  - error: apperr.Conflict on a duplicate viewer token
	*/
	Create(context context.Context, config *Config) error

	/*
		Update overwrites every settings column of an existing row.

		Returns:
		  - error: apperr.NotFound if the row vanished
	*/
	Update(context context.Context, config *Config) error
}
