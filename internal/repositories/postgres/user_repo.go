package postgres

import (
	"context"
	"errors"

	"gemchat-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetOrCreate(ctx context.Context, username, email string) (*models.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// GetOrCreate resolves the exact (username, email) pair to an existing user
// or inserts a new one. Lookup and insert run in one transaction so
// concurrent first logins with the same pair do not create duplicates.
func (r *userRepo) GetOrCreate(ctx context.Context, username, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("username = ? AND email = ?", username, email).Take(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user = models.User{Username: username, Email: email}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
