package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Nagnie/InternAssignment-DevSamurai/internal/errors"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/middleware"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/service"
)

// ProfileHandler handles profile and password updates for the current user.
type ProfileHandler struct {
	accountService service.AccountService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(accountService service.AccountService) *ProfileHandler {
	return &ProfileHandler{accountService: accountService}
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UpdateProfile godoc
// @Summary Update the current user's name and email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, apperrors.ErrUnauthenticated)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, err)
	}

	user, err := h.accountService.UpdateProfile(c.Request().Context(), current.ID, req.Name, req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated successfully",
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/change-password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	current, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, apperrors.ErrUnauthenticated)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeValidationError(c, err)
	}

	if err := h.accountService.ChangePassword(c.Request().Context(), current.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password changed successfully",
	})
}
