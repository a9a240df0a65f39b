package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nileshdj/inkpost/internal/models"
)

type ContentStore struct {
	db *gorm.DB
}

func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Create(ctx context.Context, title, body string, authorID int32, now models.Timestamp) (*models.Content, error) {
	content := models.Content{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *ContentStore) Find(ctx context.Context, id int32) (*models.Content, error) {
	var content models.Content
	err := s.db.WithContext(ctx).First(&content, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Update applies a partial update as a single UPDATE statement: only
// supplied (non-nil) fields are assigned, so omitted fields keep their
// stored values without a read-modify-write. updated_at is always
// refreshed. Returns ErrNotFound when no row matched.
func (s *ContentStore) Update(ctx context.Context, id int32, title, body *string, now models.Timestamp) (*models.Content, error) {
	assign := map[string]any{"updated_at": now}
	if title != nil {
		assign["title"] = *title
	}
	if body != nil {
		assign["body"] = *body
	}

	var content models.Content
	res := s.db.WithContext(ctx).
		Model(&content).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(assign)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &content, nil
}

// Delete removes a row by id and reports how many rows matched (0 or 1).
func (s *ContentStore) Delete(ctx context.Context, id int32) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Content{}, id)
	return res.RowsAffected, res.Error
}
