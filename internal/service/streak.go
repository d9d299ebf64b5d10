package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

// maxStreakWindowDays bounds the backward walk so pathological data cannot
// send it arbitrarily far into the past.
const maxStreakWindowDays = 365

const streakCacheTTL = 10 * time.Minute

// StreakCalculator counts consecutive completed scheduled days, walking
// backward from today. Unscheduled days are skipped without breaking the
// chain; the first scheduled day without a completed log stops the count.
// Results are cached per habit in Redis and invalidated on every write that
// can change them.
type StreakCalculator struct {
	logRepo repository.HabitLogRepository
	redis   *redis.Client
}

func NewStreakCalculator(logRepo repository.HabitLogRepository, redisClient *redis.Client) *StreakCalculator {
	return &StreakCalculator{
		logRepo: logRepo,
		redis:   redisClient,
	}
}

func streakCacheKey(habitID uuid.UUID) string {
	return "habit:streak:" + habitID.String()
}

func (s *StreakCalculator) Calculate(ctx context.Context, habit *domain.Habit) (int, error) {
	if len(habit.ScheduleDays) == 0 {
		return 0, nil
	}

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, streakCacheKey(habit.ID)).Result(); err == nil {
			if streak, err := strconv.Atoi(cached); err == nil {
				return streak, nil
			}
		}
	}

	streak, err := s.walk(ctx, habit, time.Now())
	if err != nil {
		return 0, err
	}

	if s.redis != nil {
		_ = s.redis.Set(ctx, streakCacheKey(habit.ID), strconv.Itoa(streak), streakCacheTTL).Err()
	}

	return streak, nil
}

func (s *StreakCalculator) walk(ctx context.Context, habit *domain.Habit, now time.Time) (int, error) {
	date := dateutil.DateString(now)

	// An unscheduled today never breaks a habit; counting starts yesterday.
	if !habit.IsScheduledOn(dateutil.DayOfWeek(now)) {
		var err error
		date, err = dateutil.AddDays(date, -1)
		if err != nil {
			return 0, err
		}
	}

	streak := 0
	for i := 0; i < maxStreakWindowDays; i++ {
		dow, err := dateutil.DayOfWeekString(date)
		if err != nil {
			return 0, err
		}

		if !habit.IsScheduledOn(dow) {
			date, err = dateutil.AddDays(date, -1)
			if err != nil {
				return 0, err
			}
			continue
		}

		log, err := s.logRepo.GetByHabitAndDate(ctx, habit.ID, date)
		if err != nil {
			return 0, err
		}
		if log == nil || !log.Completed {
			break
		}

		streak++
		date, err = dateutil.AddDays(date, -1)
		if err != nil {
			return 0, err
		}
	}

	return streak, nil
}

// Invalidate drops the cached streak after a toggle or schedule change.
func (s *StreakCalculator) Invalidate(ctx context.Context, habitID uuid.UUID) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, streakCacheKey(habitID)).Err()
	}
}
