package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/auth"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
)

const testSecret = "test-secret"

// stubUserRepo serves FindByID from a fixed map; the middleware uses nothing else.
type stubUserRepo struct {
	users map[uint]*model.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) EmailTakenByOther(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error { return nil }
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return nil
}
func (s *stubUserRepo) List(ctx context.Context, offset, limit int, search string) ([]model.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) CountAll(ctx context.Context) (int64, error) { return 0, nil }
func (s *stubUserRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}
func (s *stubUserRepo) CountCreatedSince(ctx context.Context, start time.Time) (int64, error) {
	return 0, nil
}

// newProtectedEcho wires the JWT gate exactly like the router does.
func newProtectedEcho(repo *stubUserRepo) *echo.Echo {
	e := echo.New()
	jwtConfig := echojwt.Config{
		SigningKey: []byte(testSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or missing token"})
		},
	}
	e.GET("/protected", func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, user)
	}, echojwt.WithConfig(jwtConfig), CurrentUser(repo))
	return e
}

func expiredToken(t *testing.T, userID uint) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func TestCurrentUser(t *testing.T) {
	repo := &stubUserRepo{users: map[uint]*model.User{
		7: {ID: 7, Name: "Test User", Email: "test@example.com"},
	}}
	e := newProtectedEcho(repo)

	validToken, err := auth.NewJWTService(testSecret).GenerateToken(7, "test@example.com")
	assert.NoError(t, err)
	orphanToken, err := auth.NewJWTService(testSecret).GenerateToken(99, "gone@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredToken(t, 7), wantStatus: http.StatusUnauthorized},
		{name: "valid token but user deleted", authHeader: "Bearer " + orphanToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "test@example.com")
				assert.NotContains(t, rec.Body.String(), "passwordHash")
			}
		})
	}
}
