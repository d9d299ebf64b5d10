package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/mocks"
	"habitloop/internal/service"
)

func allDays() pq.Int64Array {
	return pq.Int64Array{0, 1, 2, 3, 4, 5, 6}
}

func daysBack(t *testing.T, n int) string {
	t.Helper()
	date := dateutil.Today()
	var err error
	for i := 0; i < n; i++ {
		date, err = dateutil.AddDays(date, -1)
		assert.NoError(t, err)
	}
	return date
}

func completedLog(habitID uuid.UUID, date string) *domain.HabitLog {
	now := time.Now()
	return &domain.HabitLog{
		ID:          uuid.New(),
		HabitID:     habitID,
		Date:        date,
		Completed:   true,
		CompletedAt: &now,
	}
}

func TestStreakCalculator_Calculate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Schedule Is Zero", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: pq.Int64Array{}}

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 0, streak)
		mockLogRepo.AssertNotCalled(t, "GetByHabitAndDate")
	})

	t.Run("Counts Consecutive Completed Days", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: allDays()}

		for i := 0; i < 3; i++ {
			date := daysBack(t, i)
			mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, date).Return(completedLog(habit.ID, date), nil).Once()
		}
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, daysBack(t, 3)).Return(nil, nil).Once()

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 3, streak)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("Missed Scheduled Day Breaks The Chain", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: allDays()}

		today := dateutil.Today()
		yesterday := daysBack(t, 1)
		uncompleted := &domain.HabitLog{ID: uuid.New(), HabitID: habit.ID, Date: yesterday, Completed: false}

		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, today).Return(completedLog(habit.ID, today), nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, yesterday).Return(uncompleted, nil).Once()

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 1, streak)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("Unscheduled Today Starts From Yesterday", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		// Every day but today's weekday is scheduled, so the walk begins
		// yesterday and today cannot break the chain.
		todayDow := dateutil.DayOfWeek(time.Now())
		schedule := pq.Int64Array{}
		for d := 0; d < 7; d++ {
			if d != todayDow {
				schedule = append(schedule, int64(d))
			}
		}
		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: schedule}

		yesterday := daysBack(t, 1)
		dayBefore := daysBack(t, 2)
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, yesterday).Return(completedLog(habit.ID, yesterday), nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, dayBefore).Return(completedLog(habit.ID, dayBefore), nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, daysBack(t, 3)).Return(nil, nil).Once()

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 2, streak)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("Unscheduled Day Mid Walk Is Skipped Without Breaking", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		// Yesterday's weekday is the rest day. The walk counts today, skips
		// straight over yesterday without a lookup, and keeps counting.
		restDow := dateutil.DayOfWeek(time.Now().AddDate(0, 0, -1))
		schedule := pq.Int64Array{}
		for d := 0; d < 7; d++ {
			if d != restDow {
				schedule = append(schedule, int64(d))
			}
		}
		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: schedule}

		today := dateutil.Today()
		yesterday := daysBack(t, 1)
		dayBefore := daysBack(t, 2)
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, today).Return(completedLog(habit.ID, today), nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, dayBefore).Return(completedLog(habit.ID, dayBefore), nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, daysBack(t, 3)).Return(nil, nil).Once()

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 2, streak)
		mockLogRepo.AssertNotCalled(t, "GetByHabitAndDate", ctx, habit.ID, yesterday)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("Scheduled Today Without A Log Is Zero", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		// A scheduled today with no log ends the walk immediately. Only an
		// unscheduled today defers counting to yesterday.
		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: allDays()}

		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, dateutil.Today()).Return(nil, nil).Once()

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 0, streak)
		mockLogRepo.AssertExpectations(t)
	})

	t.Run("Walk Is Bounded", func(t *testing.T) {
		mockLogRepo := new(mocks.HabitLogRepository)
		calc := service.NewStreakCalculator(mockLogRepo, nil)

		habit := &domain.Habit{ID: uuid.New(), ScheduleDays: allDays()}

		// Every day ever is completed; the walk must still terminate.
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, mock.Anything).Return(completedLog(habit.ID, ""), nil)

		streak, err := calc.Calculate(ctx, habit)

		assert.NoError(t, err)
		assert.Equal(t, 365, streak)
	})
}
