package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/mocks"
	"habitloop/internal/service"
)

func TestFeedService_GetFriendProgress(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Requires Friendship", func(t *testing.T) {
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewFeedService(
			new(mocks.FriendshipRepository),
			new(mocks.HabitRepository),
			new(mocks.HabitLogRepository),
			mockFriendSvc,
			service.NewStreakCalculator(new(mocks.HabitLogRepository), nil),
		)

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(false, nil).Once()

		progress, err := svc.GetFriendProgress(ctx, alice, bob)

		assert.ErrorIs(t, err, service.ErrNotFriends)
		assert.Nil(t, progress)
	})

	t.Run("Reports Public Habits With Status", func(t *testing.T) {
		mockHabitRepo := new(mocks.HabitRepository)
		mockLogRepo := new(mocks.HabitLogRepository)
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewFeedService(
			new(mocks.FriendshipRepository),
			mockHabitRepo,
			mockLogRepo,
			mockFriendSvc,
			service.NewStreakCalculator(mockLogRepo, nil),
		)

		today := dateutil.Today()
		habit := domain.Habit{ID: uuid.New(), UserID: bob, Name: "Run", ScheduleDays: allDays(), IsPublic: true}

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(true, nil).Once()
		mockHabitRepo.On("ListPublicActiveByUser", ctx, bob).Return([]domain.Habit{habit}, nil).Once()
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, today).Return(completedLog(habit.ID, today), nil)
		mockLogRepo.On("GetByHabitAndDate", ctx, habit.ID, daysBack(t, 1)).Return(nil, nil)

		progress, err := svc.GetFriendProgress(ctx, alice, bob)

		assert.NoError(t, err)
		assert.Equal(t, bob, progress.FriendID)
		assert.Len(t, progress.AllPublicHabits, 1)
		assert.Len(t, progress.TodaysHabits, 1)

		status := progress.TodaysHabits[0]
		assert.True(t, status.IsScheduledToday)
		assert.True(t, status.CompletedToday)
		assert.Equal(t, 1, status.Streak)
	})
}

func TestFeedService_GetFriendActivity(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	mockFriendshipRepo := new(mocks.FriendshipRepository)
	mockHabitRepo := new(mocks.HabitRepository)
	mockLogRepo := new(mocks.HabitLogRepository)
	svc := service.NewFeedService(
		mockFriendshipRepo,
		mockHabitRepo,
		mockLogRepo,
		new(mocks.FriendService),
		service.NewStreakCalculator(mockLogRepo, nil),
	)

	habit := domain.Habit{ID: uuid.New(), UserID: bob, Name: "Run", ScheduleDays: allDays(), IsPublic: true}

	earlier := time.Now().Add(-48 * time.Hour)
	later := time.Now().Add(-2 * time.Hour)
	logs := []domain.HabitLog{
		{ID: uuid.New(), HabitID: habit.ID, UserID: bob, Date: daysBack(t, 2), Completed: true, CompletedAt: &earlier},
		{ID: uuid.New(), HabitID: habit.ID, UserID: bob, Date: dateutil.Today(), Completed: true, CompletedAt: &later},
	}

	mockFriendshipRepo.On("ListAcceptedByUser", ctx, alice).Return([]domain.Friendship{
		{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipAccepted},
	}, nil).Once()
	mockHabitRepo.On("ListPublicActiveByUser", ctx, bob).Return([]domain.Habit{habit}, nil).Once()
	mockLogRepo.On("ListCompletedByHabitInRange", ctx, habit.ID, mock.Anything, mock.Anything).Return(logs, nil).Once()

	activity, err := svc.GetFriendActivity(ctx, alice, 0)

	assert.NoError(t, err)
	assert.Len(t, activity, 2)
	// Newest first.
	assert.Equal(t, dateutil.Today(), activity[0].Date)
	assert.Equal(t, bob, activity[0].UserID)
	assert.Equal(t, "Run", activity[0].HabitName)
	assert.True(t, activity[0].Timestamp.After(activity[1].Timestamp))
}

func TestFeedService_GetFriendStreaks(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	mockFriendshipRepo := new(mocks.FriendshipRepository)
	mockHabitRepo := new(mocks.HabitRepository)
	mockLogRepo := new(mocks.HabitLogRepository)
	svc := service.NewFeedService(
		mockFriendshipRepo,
		mockHabitRepo,
		mockLogRepo,
		new(mocks.FriendService),
		service.NewStreakCalculator(mockLogRepo, nil),
	)

	bobHabit := domain.Habit{ID: uuid.New(), UserID: bob, ScheduleDays: allDays(), IsPublic: true}
	today := dateutil.Today()

	mockFriendshipRepo.On("ListAcceptedByUser", ctx, alice).Return([]domain.Friendship{
		{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipAccepted},
		{ID: uuid.New(), RequesterID: carol, AddresseeID: alice, Status: domain.FriendshipAccepted},
	}, nil).Once()

	// Bob has a one day streak, Carol has no public habits.
	mockHabitRepo.On("ListPublicActiveByUser", ctx, bob).Return([]domain.Habit{bobHabit}, nil).Once()
	mockHabitRepo.On("ListPublicActiveByUser", ctx, carol).Return([]domain.Habit{}, nil).Once()
	mockLogRepo.On("GetByHabitAndDate", ctx, bobHabit.ID, today).Return(completedLog(bobHabit.ID, today), nil)
	mockLogRepo.On("GetByHabitAndDate", ctx, bobHabit.ID, daysBack(t, 1)).Return(nil, nil)

	streaks, err := svc.GetFriendStreaks(ctx, alice)

	assert.NoError(t, err)
	assert.Len(t, streaks, 2)
	assert.Equal(t, bob, streaks[0].FriendID)
	assert.Equal(t, 1, streaks[0].MaxStreak)
	assert.Equal(t, 1, streaks[0].TotalStreak)
	assert.Equal(t, 1, streaks[0].HabitCount)
	assert.Equal(t, carol, streaks[1].FriendID)
	assert.Equal(t, 0, streaks[1].MaxStreak)
}
