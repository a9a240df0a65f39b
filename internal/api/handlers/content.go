package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nileshdj/inkpost/internal/api/middleware"
	"github.com/nileshdj/inkpost/internal/models"
	"github.com/nileshdj/inkpost/internal/repositories"
	"github.com/nileshdj/inkpost/internal/utils"
)

// ContentStore is the persistence surface the content handlers need.
type ContentStore interface {
	Create(ctx context.Context, title, body string, authorID int32, now models.Timestamp) (*models.Content, error)
	Find(ctx context.Context, id int32) (*models.Content, error)
	Update(ctx context.Context, id int32, title, body *string, now models.Timestamp) (*models.Content, error)
	Delete(ctx context.Context, id int32) (int64, error)
}

type ContentHandler struct {
	Contents ContentStore
	Log      zerolog.Logger
}

// contentInput uses pointers so a missing field can be told apart from an
// explicit empty string.
type contentInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

// POST /api/content/{user_id}
//
// The author id comes from the URL path, not from an authenticated
// identity. Kept for wire compatibility.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "user_id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var input contentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Title == nil || input.Body == nil {
		utils.Error(w, http.StatusBadRequest, "title and body are required")
		return
	}

	content, err := h.Contents.Create(r.Context(), *input.Title, *input.Body, authorID, models.Now())
	if err != nil {
		h.logError(r, err, "failed to create content")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, content)
}

// GET /api/content/{id}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid content id")
		return
	}

	content, err := h.Contents.Find(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.logError(r, err, "failed to fetch content")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, content)
}

// PUT /api/content/{id}
//
// Partial update: an absent or null field keeps the stored value, a present
// value (including "") overwrites. updated_at advances on every match.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid content id")
		return
	}

	var input contentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := h.Contents.Update(r.Context(), id, input.Title, input.Body, models.Now())
	if errors.Is(err, repositories.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.logError(r, err, "failed to update content")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, content)
}

// DELETE /api/content/{id}
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid content id")
		return
	}

	removed, err := h.Contents.Delete(r.Context(), id)
	if err != nil {
		h.logError(r, err, "failed to delete content")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if removed == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) logError(r *http.Request, err error, msg string) {
	h.Log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg(msg)
}
