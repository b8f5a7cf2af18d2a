// Copyright (c) 2026 Verbum. All rights reserved.

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verbum/verbum/internal/platform/respond"
)

// # HTTP Transport

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the search surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	resultSet, err := handler.service.Search(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resultSet)
}
