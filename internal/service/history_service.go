package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
	"opic_practice_portal/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryService builds the grouped practice timeline.
type HistoryService interface {
	// BuildTimeline returns the user's activity grouped for display:
	// test responses within the session gap collapse into one test
	// session, practice responses stand alone, and everything is
	// bucketed by calendar day, newest first.
	BuildTimeline(ctx context.Context, userID uuid.UUID) ([]model.TimelineDay, error)
}

type historyService struct {
	db           *gorm.DB
	responseRepo repository.ResponseRepository
	sessionGap   time.Duration
	loc          *time.Location
}

func NewHistoryService(db *gorm.DB, responseRepo repository.ResponseRepository, cfg *config.Config) HistoryService {
	loc, err := time.LoadLocation(cfg.App.StreakTimezone)
	if err != nil {
		slog.Warn("Invalid timezone for history, falling back to UTC",
			slog.String("timezone", cfg.App.StreakTimezone),
			slog.Any("error", err),
		)
		loc = time.UTC
	}
	return &historyService{
		db:           db,
		responseRepo: responseRepo,
		sessionGap:   time.Duration(cfg.App.SessionGapMinutes) * time.Minute,
		loc:          loc,
	}
}

func (s *historyService) BuildTimeline(ctx context.Context, userID uuid.UUID) ([]model.TimelineDay, error) {
	logger := logging.GetLogger(ctx).With("user_id", userID)

	responses, err := s.responseRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load responses for timeline", "error", err)
		return nil, model.ErrInternalServer
	}

	entries := groupEntries(responses, s.sessionGap)

	// Bucket by calendar day.
	buckets := make(map[string][]model.TimelineEntry)
	for _, e := range entries {
		date := e.EntryTime().In(s.loc).Format("2006-01-02")
		buckets[date] = append(buckets[date], e)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	days := make([]model.TimelineDay, 0, len(dates))
	for _, date := range dates {
		dayEntries := buckets[date]
		sort.Slice(dayEntries, func(i, j int) bool {
			return dayEntries[i].EntryTime().After(dayEntries[j].EntryTime())
		})
		days = append(days, model.TimelineDay{Date: date, Entries: dayEntries})
	}

	logger.Debug("Timeline built", "days", len(days), "entries", len(entries))
	return days, nil
}

// groupEntries walks responses oldest first, collapsing runs of test
// responses whose inter-response gap stays under sessionGap into single
// test sessions. A session is keyed by its earliest response time.
func groupEntries(responses []*model.Response, sessionGap time.Duration) []model.TimelineEntry {
	entries := make([]model.TimelineEntry, 0, len(responses))

	var session *model.TestSessionEntry
	flush := func() {
		if session != nil {
			entries = append(entries, *session)
			session = nil
		}
	}

	for _, r := range responses {
		if r.Mode != model.ModeTest {
			entries = append(entries, model.PracticeEntry{Response: r})
			continue
		}
		if session != nil {
			last := session.Responses[len(session.Responses)-1]
			if r.CreatedAt.Sub(last.CreatedAt) < sessionGap {
				session.Responses = append(session.Responses, r)
				continue
			}
			flush()
		}
		session = &model.TestSessionEntry{
			Responses: []*model.Response{r},
			StartTime: r.CreatedAt,
		}
	}
	flush()

	return entries
}
