package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"secure-notes/middleware"
	"secure-notes/store"
)

type credentials struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// parseCredentials accepts a JSON or form body, the same way the login and
// register pages submit either.
func parseCredentials(r *http.Request) (credentials, error) {
	var req credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(r, &req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	req.Username = strings.TrimSpace(req.Username)
	return req, nil
}

func credentialsMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case fe.Tag() == "required":
			return "Username and password required"
		case fe.Field() == "Username":
			return "Username must be 3-50 characters"
		case fe.Field() == "Password":
			return "Password must be at least 6 characters"
		}
	}
	return "Invalid request"
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseCredentials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, credentialsMessage(err))
		return
	}

	if _, err := h.Users.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.Log.Error("registration error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.Log.Info("new user registered", zap.String("username", req.Username))
	respondJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseCredentials(r)
	if err != nil || req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	userID, err := h.Users.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrAuthFailed) {
			// Unknown user and wrong password produce this same response.
			h.Log.Warn("failed login attempt", zap.String("username", req.Username))
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("login error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	tok, err := h.Tokens.Issue(userID)
	if err != nil {
		h.Log.Error("login error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	h.Log.Info("user logged in", zap.String("username", req.Username))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Index sends a valid session to the dashboard, everyone else to login.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		if _, err := h.Tokens.Validate(cookie.Value); err == nil {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
