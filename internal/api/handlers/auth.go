package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshdj/inkpost/internal/api/middleware"
	"github.com/nileshdj/inkpost/internal/models"
	"github.com/nileshdj/inkpost/internal/repositories"
	"github.com/nileshdj/inkpost/internal/utils"
)

// UserStore is the persistence surface the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string, now models.Timestamp) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Credentials hashes cleartext passwords and verifies them against stored
// hashes.
type Credentials interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, storedHash string) (bool, error)
}

type AuthHandler struct {
	Users UserStore
	Creds Credentials
	Log   zerolog.Logger
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hashed, err := h.Creds.Hash(r.Context(), input.Password)
	if err != nil {
		h.logError(r, err, "failed to hash password")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	user, err := h.Users.Create(r.Context(), input.Username, hashed, models.Now())
	if errors.Is(err, repositories.ErrDuplicateUsername) {
		utils.Error(w, http.StatusConflict, "username already taken")
		return
	}
	if err != nil {
		h.logError(r, err, "failed to create user")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

// POST /api/auth/login
//
// Unknown username and wrong password are indistinguishable on the wire:
// both are a bodyless 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.Users.FindByUsername(r.Context(), input.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logError(r, err, "failed to look up user")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ok, err := h.Creds.Verify(r.Context(), input.Password, user.PasswordHash)
	if err != nil {
		h.logError(r, err, "failed to verify password")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	utils.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) logError(r *http.Request, err error, msg string) {
	h.Log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg(msg)
}
