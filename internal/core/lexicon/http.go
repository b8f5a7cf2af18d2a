// Copyright (c) 2026 Verbum. All rights reserved.

package lexicon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verbum/verbum/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the lexicon domain.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{strongNumber}", handler.getEntry)
	return router
}

// entryResponse is the payload for a single lexicon entry view.
type entryResponse struct {
	*Entry
	DisplayNumber  string      `json:"display_number"`
	FullDefinition string      `json:"full_definition"`
	Citations      []*Citation `json:"citations"`
}

func (handler *Handler) getEntry(writer http.ResponseWriter, request *http.Request) {
	strongNumber := chi.URLParam(request, "strongNumber")

	entry, citations, err := handler.service.GetEntryWithCitations(request.Context(), strongNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entryResponse{
		Entry:          entry,
		DisplayNumber:  entry.DisplayNumber(),
		FullDefinition: entry.FullDefinition(),
		Citations:      citations,
	})
}
