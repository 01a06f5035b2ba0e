package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/auth"
	apperrors "github.com/Nagnie/InternAssignment-DevSamurai/internal/errors"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

const currentUserKey = "currentUser"

// CurrentUser runs after the JWT middleware: it reads the verified claims,
// loads the user by id, and attaches it to the request context. A token whose
// user no longer exists is rejected the same way as an invalid token.
func CurrentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized(c)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized(c)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user attached by CurrentUser.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: apperrors.ErrUnauthenticated.Error()})
}
