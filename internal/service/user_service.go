package service

import (
	"context"
	"errors"
	"fmt"

	"interviewhub/internal/domain"
	"interviewhub/internal/dto"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserService resolves caller identity from the credential's user id.
type UserService interface {
	WhoAmI(ctx context.Context, userID string) (*dto.WhoAmIResponse, error)
}

type userServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// WhoAmI returns the identity of the user behind the credential.
func (s *userServiceImpl) WhoAmI(ctx context.Context, userID string) (*dto.WhoAmIResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id from repository: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.WhoAmIResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}, nil
}
