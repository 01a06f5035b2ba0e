package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/cache"
	apperrors "github.com/Nagnie/InternAssignment-DevSamurai/internal/errors"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// AccountService exposes operations on the authenticated user's own record.
type AccountService interface {
	GetSelf(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string) (*model.User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type accountService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewAccountService builds an AccountService with repository and cache.
func NewAccountService(users repository.UserRepository, cache *cache.Client) AccountService {
	return &accountService{users: users, cache: cache}
}

func (s *accountService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetSelf returns the user's record, read through the cache.
func (s *accountService) GetSelf(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateProfile changes name and email. A second user already holding the
// email is a conflict; the unique constraint backs the pre-check against races.
func (s *accountService) UpdateProfile(ctx context.Context, userID uint, name, email string) (*model.User, error) {
	if name == "" || email == "" {
		return nil, apperrors.NewValidation("name and email are required")
	}
	if len(name) < 2 || len(name) > 50 {
		return nil, apperrors.NewValidation("name must be between 2 and 50 characters")
	}

	taken, err := s.users.EmailTakenByOther(ctx, email, userID)
	if err != nil {
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Name = name
	user.Email = email
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return user, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
func (s *accountService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.NewValidation("current password and new password are required")
	}
	if len(newPassword) < MinPasswordLength {
		return apperrors.NewValidation("new password must be at least 6 characters")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}
