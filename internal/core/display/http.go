// Copyright (c) 2026 Verbum. All rights reserved.

package display

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verbum/verbum/internal/core/scripture"
	"github.com/verbum/verbum/internal/platform/apperr"
	requestutil "github.com/verbum/verbum/internal/platform/request"
	"github.com/verbum/verbum/internal/platform/respond"
	"github.com/verbum/verbum/pkg/convert"
)

// # HTTP Transport

// Handler serves viewer settings and the arranged interlinear view. It pulls
// the corpus through the scripture service so arrangement always works on
// the same words the reader shows.
type Handler struct {
	service   *Service
	scripture *scripture.Service
}

func NewHandler(service *Service, scriptureService *scripture.Service) *Handler {
	return &Handler{service: service, scripture: scriptureService}
}

// SettingsRoutes returns the router for viewer display settings.
func (handler *Handler) SettingsRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getSettings)
	router.Put("/", handler.updateSettings)
	router.Post("/reset", handler.resetSettings)

	return router
}

// InterlinearRoutes returns the router for the arranged verse view.
func (handler *Handler) InterlinearRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{bookID}/{chapterNumber}/{verseNumber}", handler.getInterlinear)
	return router
}

// # Settings Handlers

func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.service.GetOrCreate(request.Context(), requestutil.ViewerToken(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, config)
}

func (handler *Handler) updateSettings(writer http.ResponseWriter, request *http.Request) {
	var patch map[string]string
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	config, err := handler.service.Update(request.Context(), requestutil.ViewerToken(request), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, config)
}

func (handler *Handler) resetSettings(writer http.ResponseWriter, request *http.Request) {
	config, err := handler.service.Reset(request.Context(), requestutil.ViewerToken(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, config)
}

// # Interlinear View

// wordCard is one arranged word of the verse: the permuted text elements
// plus the ancillary lines the viewer's toggles enable.
type wordCard struct {
	WordID        int              `json:"word_id"`
	WordOrder     int              `json:"word_order,omitempty"`
	Elements      []Element        `json:"elements"`
	Strong        string           `json:"strong,omitempty"`
	Grammar       *string          `json:"grammar,omitempty"`
	Pronunciation *string          `json:"pronunciation,omitempty"`
	Script        scripture.Script `json:"script"`
}

// interlinearResponse is the fully arranged verse view.
type interlinearResponse struct {
	Book    *scripture.Book    `json:"book"`
	Chapter *scripture.Chapter `json:"chapter"`
	Verse   *scripture.Verse   `json:"verse"`
	Config  *Config            `json:"config"`
	Cards   []wordCard         `json:"cards"`
}

func (handler *Handler) getInterlinear(writer http.ResponseWriter, request *http.Request) {
	bookID := convert.ToInt(requestutil.Param(request, "bookID"))
	chapterNumber := convert.ToInt(requestutil.Param(request, "chapterNumber"))
	verseNumber := convert.ToInt(requestutil.Param(request, "verseNumber"))
	if bookID <= 0 || chapterNumber <= 0 || verseNumber <= 0 {
		respond.Error(writer, request, apperr.NotFound("Verse"))
		return
	}

	book, err := handler.scripture.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.scripture.GetChapter(request.Context(), bookID, chapterNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	verse, err := handler.scripture.GetVerse(request.Context(), chapter.ID, verseNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	words, err := handler.scripture.ListWords(request.Context(), verse.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	config, err := handler.service.GetOrCreate(request.Context(), requestutil.ViewerToken(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cards := make([]wordCard, 0, len(words))
	for _, word := range words {
		cards = append(cards, newWordCard(config, word))
	}

	respond.OK(writer, interlinearResponse{
		Book:    book,
		Chapter: chapter,
		Verse:   verse,
		Config:  config,
		Cards:   cards,
	})
}

// newWordCard arranges one word and attaches the toggled ancillary lines.
func newWordCard(config *Config, word *scripture.Word) wordCard {
	card := wordCard{
		WordID:   word.ID,
		Elements: ArrangeWord(config, word),
		Script:   word.Script(),
	}

	if config.ShowWordOrder {
		card.WordOrder = word.WordOrder
	}

	if config.ShowStrongs {
		card.Strong = word.DisplayStrong()
	}

	if config.ShowGrammar {
		if word.Script() == scripture.ScriptHebrew {
			card.Grammar = word.HebrewGrammar
		} else {
			card.Grammar = word.GreekGrammar
		}
	}

	if config.ShowPronunciation && word.Lexicon != nil {
		card.Pronunciation = word.Lexicon.Pronunciation
	}

	return card
}
