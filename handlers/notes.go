package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"secure-notes/middleware"
	"secure-notes/store"
)

type noteRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"required,max=10000"`
}

type noteUpdateRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content" validate:"omitempty,max=10000"`
}

func noteMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case fe.Field() == "Content" && fe.Tag() == "required":
			return "Content is required"
		case fe.Field() == "Content":
			return "Content too long (max 10,000 characters)"
		case fe.Field() == "Title":
			return "Title too long (max 200 characters)"
		}
	}
	return "Invalid request"
}

// queryInt reads an integer query parameter; anything that does not parse
// falls back to the default.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", store.DefaultPerPage)

	notes, err := h.Notes.List(r.Context(), userID, page, perPage)
	if err != nil {
		h.Log.Error("notes api error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Operation failed")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, noteMessage(err))
		return
	}

	noteID, err := h.Notes.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.Log.Error("notes api error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Operation failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Note created", "note_id": noteID})
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	noteID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(noteID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req noteUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			respondError(w, http.StatusBadRequest, "Content is required")
			return
		}
		req.Content = &content
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, noteMessage(err))
		return
	}

	if err := h.Notes.Update(r.Context(), userID, noteID, req.Title, req.Content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		h.Log.Error("notes api error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Operation failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note updated"})
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	noteID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(noteID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := h.Notes.Delete(r.Context(), userID, noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		h.Log.Error("notes api error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Operation failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
