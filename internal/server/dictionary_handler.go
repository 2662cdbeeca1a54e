// Package server provides the HTTP handlers of the dictionary persistence API.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/artikel/internal/config"
	"github.com/at-ishikawa/artikel/internal/dictionary"
)

type createDictionaryRequest struct {
	Name  string            `json:"name" validate:"required"`
	Words []dictionary.Word `json:"words" validate:"required,min=1,dive"`
}

type createDictionaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type updateDictionaryRequest struct {
	Name     *string           `json:"name"`
	IsPublic *bool             `json:"is_public"`
	Words    []dictionary.Word `json:"words" validate:"omitempty,dive"`
}

type dictionaryResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	IsPublic bool              `json:"is_public"`
	Words    []dictionary.Word `json:"words"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// DictionaryHandler serves create, read and partial update of user dictionaries.
type DictionaryHandler struct {
	repository dictionary.Repository
	validate   *validator.Validate
	translator ut.Translator
}

func NewDictionaryHandler(repository dictionary.Repository) (*DictionaryHandler, error) {
	validate, trans, err := config.NewValidator("json")
	if err != nil {
		return nil, fmt.Errorf("config.NewValidator() > %w", err)
	}

	return &DictionaryHandler{
		repository: repository,
		validate:   validate,
		translator: trans,
	}, nil
}

// Register mounts the handler under /api/dictionaries.
func (h *DictionaryHandler) Register(r chi.Router) {
	r.Route("/api/dictionaries", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
	})
}

func (h *DictionaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request createDictionaryRequest
	if !h.decode(w, r, &request) {
		return
	}

	d := &dictionary.Dictionary{
		Name:  strings.TrimSpace(request.Name),
		Words: request.Words,
	}
	if err := h.repository.Create(r.Context(), d); err != nil {
		h.writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, createDictionaryResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	})
}

func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.repository.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toDictionaryResponse(d))
}

// Update applies a partial update. A words list replaces every stored word.
func (h *DictionaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request updateDictionaryRequest
	if !h.decode(w, r, &request) {
		return
	}

	id := chi.URLParam(r, "id")
	update := dictionary.Update{
		IsPublic: request.IsPublic,
		Words:    request.Words,
	}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		update.Name = &name
	}
	if err := h.repository.Update(r.Context(), id, update); err != nil {
		h.writeError(w, r, err)
		return
	}

	d, err := h.repository.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, toDictionaryResponse(d))
}

func (h *DictionaryHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		writeErrorResponse(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			h.writeError(w, r, err)
			return false
		}
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, e.Translate(h.translator))
		}
		writeErrorResponse(w, r, http.StatusBadRequest, strings.Join(messages, ", "))
		return false
	}
	return true
}

func (h *DictionaryHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		writeErrorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, dictionary.ErrEmptyName), errors.Is(err, dictionary.ErrNoWords):
		writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		slog.Default().Error("dictionary request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeErrorResponse(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: errorDetail{
		StatusCode: status,
		Message:    message,
	}})
}

func toDictionaryResponse(d *dictionary.Dictionary) dictionaryResponse {
	words := d.Words
	if words == nil {
		words = []dictionary.Word{}
	}
	return dictionaryResponse{
		ID:       d.ID,
		Name:     d.Name,
		IsPublic: d.IsPublic,
		Words:    words,
	}
}
