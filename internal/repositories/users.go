package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nileshdj/inkpost/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user with a caller-supplied creation time and returns the
// full row. A taken username yields ErrDuplicateUsername.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string, now models.Timestamp) (*models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
