package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nagnie/InternAssignment-DevSamurai/internal/repository"
)

const (
	dailyBuckets   = 7
	monthlyBuckets = 6
)

// DailyCount is one calendar-day histogram bucket.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// MonthlyCount is one calendar-month histogram bucket.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// ChartData bundles the two registration histograms, oldest bucket first.
type ChartData struct {
	Daily   []DailyCount   `json:"daily"`
	Monthly []MonthlyCount `json:"monthly"`
}

// Stats aggregates user registration counts for the dashboard.
type Stats struct {
	TotalUsers     int64     `json:"totalUsers"`
	UsersToday     int64     `json:"usersToday"`
	UsersThisWeek  int64     `json:"usersThisWeek"`
	UsersThisMonth int64     `json:"usersThisMonth"`
	ChartData      ChartData `json:"chartData"`
}

// StatsService computes registration statistics over the users table.
// "now" is an explicit parameter so window boundaries are deterministic in
// tests. Every call recomputes from the store; nothing is cached.
type StatsService interface {
	Stats(ctx context.Context, now time.Time) (*Stats, error)
}

type statsService struct {
	users repository.UserRepository
}

// NewStatsService builds a StatsService backed by the user repository.
func NewStatsService(users repository.UserRepository) StatsService {
	return &statsService{users: users}
}

// Stats computes all counters relative to now. All ranges are half-open
// [start, end) over createdAt, in now's location. Weeks start on Sunday.
func (s *statsService) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	today := midnight(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	usersToday, err := s.users.CountCreatedBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("count users today: %w", err)
	}
	usersThisWeek, err := s.users.CountCreatedSince(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("count users this week: %w", err)
	}
	usersThisMonth, err := s.users.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("count users this month: %w", err)
	}

	daily := make([]DailyCount, 0, dailyBuckets)
	for i := dailyBuckets - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		count, err := s.users.CountCreatedBetween(ctx, day, next)
		if err != nil {
			return nil, fmt.Errorf("count users on %s: %w", day.Format("2006-01-02"), err)
		}
		daily = append(daily, DailyCount{Date: day.Format("2006-01-02"), Count: count})
	}

	monthly := make([]MonthlyCount, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		start := monthStart.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		count, err := s.users.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("count users in %s: %w", start.Format("2006-01"), err)
		}
		monthly = append(monthly, MonthlyCount{Month: start.Format("2006-01"), Count: count})
	}

	return &Stats{
		TotalUsers:     total,
		UsersToday:     usersToday,
		UsersThisWeek:  usersThisWeek,
		UsersThisMonth: usersThisMonth,
		ChartData:      ChartData{Daily: daily, Monthly: monthly},
	}, nil
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
