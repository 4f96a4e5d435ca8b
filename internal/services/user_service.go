package services

import (
	"context"
	"strings"

	"gemchat-backend/internal/models"
	pgrepo "gemchat-backend/internal/repositories/postgres"
	"gemchat-backend/internal/utils"
)

type UserService interface {
	Resolve(ctx context.Context, username, email string) (*models.User, error)
}

type userService struct {
	users pgrepo.UserRepository
}

func NewUserService(users pgrepo.UserRepository) UserService {
	return &userService{users: users}
}

// Resolve maps a trusted (username, email) pair to a stable user identity
// with get-or-create semantics. Only caller-side trimming is applied; no
// casing normalization.
func (s *userService) Resolve(ctx context.Context, username, email string) (*models.User, error) {
	const op = "UserService.Resolve"

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "username and email are required", nil)
	}

	user, err := s.users.GetOrCreate(ctx, username, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve user", err)
	}
	return user, nil
}
