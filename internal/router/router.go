package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/auth"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/config"
	apperrors "github.com/Nagnie/InternAssignment-DevSamurai/internal/errors"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/handler"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/middleware"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	corsConfig := echomw.DefaultCORSConfig
	if cfg.CORSOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	}
	e.Use(echomw.CORSWithConfig(corsConfig))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "user dashboard backend is running"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public auth routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// Protected routes: echo-jwt verifies signature and expiry, CurrentUser
	// loads the user behind the claims. Any failure answers 401 uniformly.
	requireAuth := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: apperrors.ErrUnauthenticated.Error(),
				})
			},
		}),
		middleware.CurrentUser(userRepo),
	}

	e.GET("/auth/me", authHandler.Me, requireAuth...)

	api := e.Group("/api", requireAuth...)
	api.GET("/dashboard/stats", dashboardHandler.Stats)
	api.GET("/dashboard/users", dashboardHandler.ListUsers)
	api.PUT("/users/profile", profileHandler.UpdateProfile)
	api.PUT("/users/change-password", profileHandler.ChangePassword)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator. Field names in error messages
// come from the json tags so they match what the client sent.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
