package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nileshdj/inkpost/internal/api"
	"github.com/nileshdj/inkpost/internal/api/handlers"
	"github.com/nileshdj/inkpost/internal/auth"
	"github.com/nileshdj/inkpost/internal/models"
	"github.com/nileshdj/inkpost/internal/repositories"
)

type fakeUserStore struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int32
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byName: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, username, passwordHash string, now models.Timestamp) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, exists := f.byName[username]; exists {
		return nil, repositories.ErrDuplicateUsername
	}
	f.nextID++
	user := &models.User{ID: f.nextID, Username: username, PasswordHash: passwordHash, CreatedAt: now}
	f.byName[username] = user
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.byName[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

type fakeContentStore struct {
	mu     sync.Mutex
	rows   map[int32]*models.Content
	nextID int32
	err    error
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{rows: map[int32]*models.Content{}}
}

func (f *fakeContentStore) Create(_ context.Context, title, body string, authorID int32, now models.Timestamp) (*models.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	content := &models.Content{
		ID:        f.nextID,
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.rows[content.ID] = content
	clone := *content
	return &clone, nil
}

func (f *fakeContentStore) Find(_ context.Context, id int32) (*models.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	content, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *content
	return &clone, nil
}

func (f *fakeContentStore) Update(_ context.Context, id int32, title, body *string, now models.Timestamp) (*models.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	content, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if title != nil {
		content.Title = *title
	}
	if body != nil {
		content.Body = *body
	}
	content.UpdatedAt = now
	clone := *content
	return &clone, nil
}

func (f *fakeContentStore) Delete(_ context.Context, id int32) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

// newTestRouter wires the real router and handlers over in-memory stores and
// a min-cost credential service.
func newTestRouter(t *testing.T) (http.Handler, *fakeUserStore, *fakeContentStore) {
	t.Helper()

	users := newFakeUserStore()
	contents := newFakeContentStore()
	router := api.SetupRouter(api.Handlers{
		Auth: &handlers.AuthHandler{
			Users: users,
			Creds: auth.NewPasswordService(bcrypt.MinCost),
			Log:   zerolog.Nop(),
		},
		Content: &handlers.ContentHandler{
			Contents: contents,
			Log:      zerolog.Nop(),
		},
	}, cors.Options{}, zerolog.Nop())
	return router, users, contents
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
