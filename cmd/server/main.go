package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/auth"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/cache"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/config"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/db"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/handler"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/router"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/service"
)

// @title User Dashboard API
// @version 1.0
// @description REST backend for the user registration dashboard: JWT auth, profile management, registration statistics, and a paginated user listing.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop the users table if RESET_DB is set (local development only)
	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping users table")
		if err := gormDB.Migrator().DropTable(&model.User{}); err != nil {
			log.Warn().Err(err).Msg("drop table failed (may not exist)")
		}
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	accountService := service.NewAccountService(userRepo, cacheClient)
	statsService := service.NewStatsService(userRepo)
	listService := service.NewUserListService(userRepo)

	authHandler := handler.NewAuthHandler(authService, accountService)
	dashboardHandler := handler.NewDashboardHandler(statsService, listService)
	profileHandler := handler.NewProfileHandler(accountService)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, userRepo, authHandler, dashboardHandler, profileHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
