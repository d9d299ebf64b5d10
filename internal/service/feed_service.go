package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

const defaultActivityLimit = 50

// FeedService exposes friends' public habit progress. Every read is gated on
// an accepted friendship; private habits never leave this layer.
type FeedService interface {
	GetFriendProgress(ctx context.Context, userID, friendID uuid.UUID) (*domain.FriendProgress, error)
	GetFriendActivity(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityItem, error)
	GetFriendStreaks(ctx context.Context, userID uuid.UUID) ([]domain.FriendStreaks, error)
}

type feedService struct {
	friendshipRepo repository.FriendshipRepository
	habitRepo      repository.HabitRepository
	logRepo        repository.HabitLogRepository
	friendSvc      FriendService
	streaks        *StreakCalculator
}

func NewFeedService(
	friendshipRepo repository.FriendshipRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
	friendSvc FriendService,
	streaks *StreakCalculator,
) FeedService {
	return &feedService{
		friendshipRepo: friendshipRepo,
		habitRepo:      habitRepo,
		logRepo:        logRepo,
		friendSvc:      friendSvc,
		streaks:        streaks,
	}
}

func (s *feedService) GetFriendProgress(ctx context.Context, userID, friendID uuid.UUID) (*domain.FriendProgress, error) {
	friends, err := s.friendSvc.AreFriends(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	today := dateutil.Today()
	todayDow := dateutil.DayOfWeek(time.Now())

	habits, err := s.habitRepo.ListPublicActiveByUser(ctx, friendID)
	if err != nil {
		return nil, err
	}

	all := make([]domain.FriendHabitStatus, 0, len(habits))
	todays := make([]domain.FriendHabitStatus, 0, len(habits))

	for _, habit := range habits {
		log, err := s.logRepo.GetByHabitAndDate(ctx, habit.ID, today)
		if err != nil {
			return nil, err
		}

		streak, err := s.streaks.Calculate(ctx, &habit)
		if err != nil {
			return nil, err
		}

		status := domain.FriendHabitStatus{
			ID:               habit.ID,
			Name:             habit.Name,
			Icon:             habit.Icon,
			Color:            habit.Color,
			IsScheduledToday: habit.IsScheduledOn(todayDow),
			CompletedToday:   log != nil && log.Completed,
			Streak:           streak,
		}

		all = append(all, status)
		if status.IsScheduledToday {
			todays = append(todays, status)
		}
	}

	return &domain.FriendProgress{
		FriendID:        friendID,
		TodaysHabits:    todays,
		AllPublicHabits: all,
	}, nil
}

func (s *feedService) GetFriendActivity(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	friendIDs, err := s.friendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []domain.ActivityItem{}, nil
	}

	today := dateutil.Today()
	weekAgo := dateutil.DateString(time.Now().AddDate(0, 0, -7))

	activities := []domain.ActivityItem{}
	for _, friendID := range friendIDs {
		habits, err := s.habitRepo.ListPublicActiveByUser(ctx, friendID)
		if err != nil {
			return nil, err
		}

		for _, habit := range habits {
			logs, err := s.logRepo.ListCompletedByHabitInRange(ctx, habit.ID, weekAgo, today)
			if err != nil {
				return nil, err
			}

			for _, log := range logs {
				timestamp := log.CreatedAt
				if log.CompletedAt != nil {
					timestamp = *log.CompletedAt
				}

				activities = append(activities, domain.ActivityItem{
					UserID:     friendID,
					HabitName:  habit.Name,
					HabitIcon:  habit.Icon,
					HabitColor: habit.Color,
					Date:       log.Date,
					Timestamp:  timestamp,
				})
			}
		}
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *feedService) GetFriendStreaks(ctx context.Context, userID uuid.UUID) ([]domain.FriendStreaks, error) {
	friendIDs, err := s.friendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]domain.FriendStreaks, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		habits, err := s.habitRepo.ListPublicActiveByUser(ctx, friendID)
		if err != nil {
			return nil, err
		}

		entry := domain.FriendStreaks{FriendID: friendID, HabitCount: len(habits)}
		for _, habit := range habits {
			streak, err := s.streaks.Calculate(ctx, &habit)
			if err != nil {
				return nil, err
			}
			if streak > entry.MaxStreak {
				entry.MaxStreak = streak
			}
			entry.TotalStreak += streak
		}

		leaderboard = append(leaderboard, entry)
	}

	sort.Slice(leaderboard, func(i, j int) bool {
		return leaderboard[i].MaxStreak > leaderboard[j].MaxStreak
	})
	return leaderboard, nil
}

func (s *feedService) friendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	friendships, err := s.friendshipRepo.ListAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			ids = append(ids, f.AddresseeID)
		} else {
			ids = append(ids, f.RequesterID)
		}
	}
	return ids, nil
}
