// Copyright (c) 2026 Verbum. All rights reserved.

package scripture

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verbum/verbum/internal/platform/apperr"
	requestutil "github.com/verbum/verbum/internal/platform/request"
	"github.com/verbum/verbum/internal/platform/respond"
	"github.com/verbum/verbum/pkg/convert"
	"github.com/verbum/verbum/pkg/pagination"
)

// # HTTP Transport

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the corpus reading surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBooks)
	router.Get("/{bookID}", handler.getBook)
	router.Get("/{bookID}/chapters/{chapterNumber}", handler.getChapter)
	router.Get("/{bookID}/chapters/{chapterNumber}/verses/{verseNumber}", handler.getVerse)

	return router
}

// # Views

// wordView augments a word with its derived display fields.
type wordView struct {
	*Word
	Script        Script `json:"script"`
	DisplayStrong string `json:"display_strong,omitempty"`
}

func newWordViews(words []*Word) []wordView {
	views := make([]wordView, 0, len(words))
	for _, word := range words {
		views = append(views, wordView{
			Word:          word,
			Script:        word.Script(),
			DisplayStrong: word.DisplayStrong(),
		})
	}
	return views
}

// bookResponse is the single-book view with its aggregate counts.
type bookResponse struct {
	*Book
	Stats *BookStats `json:"stats"`
}

// chapterResponse is the chapter reading view: the verses page plus sibling
// chapter numbers for pager links.
type chapterResponse struct {
	Book            *Book    `json:"book"`
	Chapter         *Chapter `json:"chapter"`
	Verses          []*Verse `json:"verses"`
	PreviousChapter *Chapter `json:"previous_chapter"`
	NextChapter     *Chapter `json:"next_chapter"`
}

// verseResponse is the interlinear verse view with resolved navigation.
type verseResponse struct {
	Reference string     `json:"reference"`
	Book      *Book      `json:"book"`
	Chapter   *Chapter   `json:"chapter"`
	Verse     *Verse     `json:"verse"`
	Words     []wordView `json:"words"`
	Previous  *Neighbor  `json:"previous"`
	Next      *Neighbor  `json:"next"`
}

// # Handlers

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID := convert.ToInt(requestutil.Param(request, "bookID"))
	if bookID <= 0 {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.BookStats(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookResponse{Book: book, Stats: stats})
}

func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	bookID := convert.ToInt(requestutil.Param(request, "bookID"))
	chapterNumber := convert.ToInt(requestutil.Param(request, "chapterNumber"))
	if bookID <= 0 || chapterNumber <= 0 {
		respond.Error(writer, request, apperr.NotFound("Chapter"))
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), bookID, chapterNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	verses, total, err := handler.service.ListVerses(request.Context(), chapter.ID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	previousChapter, err := handler.service.PreviousChapter(request.Context(), bookID, chapterNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	nextChapter, err := handler.service.NextChapter(request.Context(), bookID, chapterNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, chapterResponse{
		Book:            book,
		Chapter:         chapter,
		Verses:          verses,
		PreviousChapter: previousChapter,
		NextChapter:     nextChapter,
	}, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getVerse(writer http.ResponseWriter, request *http.Request) {
	bookID := convert.ToInt(requestutil.Param(request, "bookID"))
	chapterNumber := convert.ToInt(requestutil.Param(request, "chapterNumber"))
	verseNumber := convert.ToInt(requestutil.Param(request, "verseNumber"))
	if bookID <= 0 || chapterNumber <= 0 || verseNumber <= 0 {
		respond.Error(writer, request, apperr.NotFound("Verse"))
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.GetChapter(request.Context(), bookID, chapterNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	verse, err := handler.service.GetVerse(request.Context(), chapter.ID, verseNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	words, err := handler.service.ListWords(request.Context(), verse.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	previous, err := handler.service.PreviousVerseTarget(request.Context(), chapter, verseNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	next, err := handler.service.NextVerseTarget(request.Context(), chapter, verseNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, verseResponse{
		Reference: FullReference(book, chapter, verseNumber),
		Book:      book,
		Chapter:   chapter,
		Verse:     verse,
		Words:     newWordViews(words),
		Previous:  previous,
		Next:      next,
	})
}
