package service

import (
	"context"
	"fmt"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

// DefaultPageLimit is used when the client does not supply a limit.
const DefaultPageLimit = 5

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// UserPage is one page of users plus its pagination envelope.
type UserPage struct {
	Users      []model.User `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

// UserListService provides paginated, searchable user listings.
type UserListService interface {
	List(ctx context.Context, page, limit int, search string) (*UserPage, error)
}

type userListService struct {
	users repository.UserRepository
}

// NewUserListService builds a UserListService backed by the user repository.
func NewUserListService(users repository.UserRepository) UserListService {
	return &userListService{users: users}
}

// List returns the requested page ordered by id ascending. A non-empty search
// matches name or email as a case-insensitive substring. A page past the end
// yields an empty slice, not an error.
func (s *userListService) List(ctx context.Context, page, limit int, search string) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	offset := (page - 1) * limit

	users, total, err := s.users.List(ctx, offset, limit, search)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &UserPage{
		Users: users,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}
