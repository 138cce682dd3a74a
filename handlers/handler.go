package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"secure-notes/config"
	"secure-notes/models"
	"secure-notes/token"
)

var validate = validator.New()

// UserStore is the credential store as seen by the handlers.
type UserStore interface {
	Register(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, username, password string) (string, error)
}

// NoteStore is the owner-scoped note store as seen by the handlers.
type NoteStore interface {
	Create(ctx context.Context, ownerID, title, content string) (string, error)
	List(ctx context.Context, ownerID string, page, perPage int) ([]models.Note, error)
	Update(ctx context.Context, ownerID, noteID string, title, content *string) error
	Delete(ctx context.Context, ownerID, noteID string) error
}

// Pinger is the health check's view of the database.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler bundles the dependencies every endpoint composes: stores, token
// service, and config, injected once at startup.
type Handler struct {
	Users  UserStore
	Notes  NoteStore
	Tokens *token.Service
	DB     Pinger
	Cfg    *config.Config
	Log    *zap.Logger
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
