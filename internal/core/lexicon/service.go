// Copyright (c) 2026 Verbum. All rights reserved.

package lexicon

import (
	"context"

	"github.com/verbum/verbum/internal/platform/constants"
)

// # Service Layer

// Service orchestrates dictionary lookups.
type Service struct {
	repo Repository
}

// NewService constructs a new lexicon [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
GetEntry retrieves a dictionary entry by its Strong's number.

Parameters:
  - context: context.Context
  - strongNumber: string

Returns:
  - *Entry: Hydrated entry
  - error: apperr.NotFound or storage errors
*/
func (service *Service) GetEntry(context context.Context, strongNumber string) (*Entry, error) {
	return service.repo.GetByNumber(context, strongNumber)
}

/*
GetEntryWithCitations retrieves an entry together with the verses that use it.

Description: Citations are capped at constants.LexiconCitationLimit; the
entry view links out rather than listing every occurrence of a common word.

Parameters:
  - context: context.Context
  - strongNumber: string

Returns:
  - *Entry: Hydrated entry
  - []*Citation: Up to the capped number of citing verses
  - error: apperr.NotFound or storage errors
*/
func (service *Service) GetEntryWithCitations(context context.Context, strongNumber string) (*Entry, []*Citation, error) {
	entry, err := service.repo.GetByNumber(context, strongNumber)
	if err != nil {
		return nil, nil, err
	}

	citations, err := service.repo.Citations(context, strongNumber, constants.LexiconCitationLimit)
	if err != nil {
		return nil, nil, err
	}

	return entry, citations, nil
}
