package service

import (
	"context"
	"log/slog"
	"time"

	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreakService maintains consecutive-day activity streaks.
type StreakService interface {
	// RecordActivity advances the user's daily streak for an activity
	// happening now. Calling it again on the same day is a no-op.
	RecordActivity(ctx context.Context, userID uuid.UUID) (model.StreakState, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (model.StreakState, error)
}

type streakService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	loc      *time.Location
	now      func() time.Time
}

func NewStreakService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) StreakService {
	loc, err := time.LoadLocation(cfg.App.StreakTimezone)
	if err != nil {
		slog.Warn("Invalid streak timezone, falling back to UTC",
			slog.String("timezone", cfg.App.StreakTimezone),
			slog.Any("error", err),
		)
		loc = time.UTC
	}
	return &streakService{
		db:       db,
		userRepo: userRepo,
		loc:      loc,
		now:      time.Now,
	}
}

// NextStreak computes the streak transition for an activity at now.
// Consecutive calendar days extend the streak, a repeat on the same day
// leaves it untouched, and any gap resets it to one.
func NextStreak(state model.StreakState, now time.Time, loc *time.Location) model.StreakState {
	today := dateOnly(now, loc)

	if state.LastActiveDate == nil {
		return model.StreakState{LastActiveDate: &today, StreakCount: 1}
	}

	last := dateOnly(*state.LastActiveDate, loc)
	switch {
	case last.Equal(today):
		return state
	case last.AddDate(0, 0, 1).Equal(today):
		return model.StreakState{LastActiveDate: &today, StreakCount: state.StreakCount + 1}
	default:
		return model.StreakState{LastActiveDate: &today, StreakCount: 1}
	}
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func sameStreak(a, b model.StreakState, loc *time.Location) bool {
	if a.StreakCount != b.StreakCount {
		return false
	}
	if a.LastActiveDate == nil || b.LastActiveDate == nil {
		return a.LastActiveDate == b.LastActiveDate
	}
	return dateOnly(*a.LastActiveDate, loc).Equal(dateOnly(*b.LastActiveDate, loc))
}

func (s *streakService) RecordActivity(ctx context.Context, userID uuid.UUID) (model.StreakState, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	var next model.StreakState
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		current := user.StreakState()
		next = NextStreak(current, s.now(), s.loc)
		if sameStreak(current, next, s.loc) {
			// Same day, nothing to persist.
			return nil
		}
		return s.userRepo.UpdateStreak(ctx, tx, userID, next)
	})
	if err != nil {
		return model.StreakState{}, err
	}

	logger.Debug("Streak recorded", "streak_count", next.StreakCount)
	return next, nil
}

func (s *streakService) GetStreak(ctx context.Context, userID uuid.UUID) (model.StreakState, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return model.StreakState{}, err
	}
	return user.StreakState(), nil
}
