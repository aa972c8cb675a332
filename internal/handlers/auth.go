package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydeck/internal/auth"
	"studydeck/internal/contextutil"
	"studydeck/internal/storage"
)

// AuthHandler handles user registration and login.
type AuthHandler struct {
	userRepo storage.UserStore
	issuer   *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userRepo storage.UserStore, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// RegisterRequest represents the registration request payload.
//
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request payload.
//
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful authentication response.
//
// swagger:model AuthResponse
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	if _, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		logger.ErrorContext(ctx, "failed to check existing user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := &storage.UserRecord{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.userRepo.Insert(ctx, user); err != nil {
		logger.ErrorContext(ctx, "failed to insert user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, AuthResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same response as a bad password so emails cannot be enumerated.
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.ErrorContext(ctx, "failed to load user", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	})
}
