package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/config"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/db"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/model"
	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

// Seeds demo users with registration timestamps spread over the last six
// months so that the dashboard stats and charts have data to show.

const seedPassword = "password123"

var firstNames = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Ivy", "Jack", "Karen", "Liam", "Mia", "Noah", "Olivia", "Peter",
}

var lastNames = []string{
	"Anderson", "Brown", "Clark", "Davis", "Evans", "Garcia", "Hill",
	"Johnson", "King", "Lewis", "Miller", "Nguyen", "Parker", "Smith",
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	count := flag.Int("count", 40, "number of demo users to create")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	created, skipped := 0, 0
	now := time.Now()
	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("%s %s", firstNames[i%len(firstNames)], lastNames[(i/len(firstNames))%len(lastNames)])
		email := fmt.Sprintf("demo%02d@example.com", i+1)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("email", email).Msg("lookup failed")
		}

		user := &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    registeredAt(now, i),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("create failed")
		}
		created++
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
}

// registeredAt spreads timestamps over the last ~6 months, with every third
// user landing inside the last week so the daily chart is not empty.
func registeredAt(now time.Time, i int) time.Time {
	if i%3 == 0 {
		return now.Add(-time.Duration(rand.Intn(7*24)) * time.Hour)
	}
	return now.Add(-time.Duration(rand.Intn(180*24)) * time.Hour)
}
