package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
	"habitloop/internal/mocks"
	"habitloop/internal/service"
)

func TestNotificationService_SendNudge(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Not Friends", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewNotificationService(mockNotifRepo, new(mocks.HabitRepository), mockFriendSvc)

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(false, nil).Once()

		notif, err := svc.SendNudge(ctx, alice, domain.SendSignalInput{ToUserID: bob})

		assert.ErrorIs(t, err, service.ErrNotFriends)
		assert.Nil(t, notif)
		mockNotifRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Under The Daily Cap", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewNotificationService(mockNotifRepo, new(mocks.HabitRepository), mockFriendSvc)

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(true, nil).Once()
		mockNotifRepo.On("CountNudgesBetween", ctx, alice, bob, mock.Anything, mock.Anything).Return(int64(2), nil).Once()
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == bob && *n.FromUserID == alice && n.Type == domain.NotifNudge && !n.IsRead
		})).Return(nil).Once()

		notif, err := svc.SendNudge(ctx, alice, domain.SendSignalInput{ToUserID: bob})

		assert.NoError(t, err)
		assert.Equal(t, domain.NotifNudge, notif.Type)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Fourth Nudge Of The Day Is Rejected", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewNotificationService(mockNotifRepo, new(mocks.HabitRepository), mockFriendSvc)

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(true, nil).Once()
		mockNotifRepo.On("CountNudgesBetween", ctx, alice, bob, mock.Anything, mock.Anything).Return(int64(3), nil).Once()

		notif, err := svc.SendNudge(ctx, alice, domain.SendSignalInput{ToUserID: bob})

		assert.ErrorIs(t, err, service.ErrNudgeLimitReached)
		assert.Nil(t, notif)
		mockNotifRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Private Habit Reference Is Hidden", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockHabitRepo := new(mocks.HabitRepository)
		mockFriendSvc := new(mocks.FriendService)
		svc := service.NewNotificationService(mockNotifRepo, mockHabitRepo, mockFriendSvc)

		habitID := uuid.New()
		private := &domain.Habit{ID: habitID, UserID: bob, IsPublic: false}

		mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(true, nil).Once()
		mockHabitRepo.On("GetByID", ctx, habitID).Return(private, nil).Once()

		notif, err := svc.SendNudge(ctx, alice, domain.SendSignalInput{ToUserID: bob, HabitID: &habitID})

		assert.ErrorIs(t, err, service.ErrHabitNotFound)
		assert.Nil(t, notif)
		mockNotifRepo.AssertNotCalled(t, "CountNudgesBetween")
	})
}

func TestNotificationService_SendCelebration(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	mockNotifRepo := new(mocks.NotificationRepository)
	mockHabitRepo := new(mocks.HabitRepository)
	mockFriendSvc := new(mocks.FriendService)
	svc := service.NewNotificationService(mockNotifRepo, mockHabitRepo, mockFriendSvc)

	habitID := uuid.New()
	public := &domain.Habit{ID: habitID, UserID: bob, IsPublic: true}

	mockFriendSvc.On("AreFriends", ctx, alice, bob).Return(true, nil).Once()
	mockHabitRepo.On("GetByID", ctx, habitID).Return(public, nil).Once()
	mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == bob && n.Type == domain.NotifCelebration && *n.HabitID == habitID
	})).Return(nil).Once()

	notif, err := svc.SendCelebration(ctx, alice, domain.SendSignalInput{ToUserID: bob, HabitID: &habitID})

	// Celebrations carry no daily cap.
	assert.NoError(t, err)
	assert.Equal(t, domain.NotifCelebration, notif.Type)
	mockNotifRepo.AssertNotCalled(t, "CountNudgesBetween")
	mockNotifRepo.AssertExpectations(t)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	notifID := uuid.New()

	t.Run("Owner", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockNotifRepo, new(mocks.HabitRepository), new(mocks.FriendService))

		notif := &domain.Notification{ID: notifID, UserID: alice, Type: domain.NotifNudge}
		mockNotifRepo.On("GetByID", ctx, notifID).Return(notif, nil).Once()
		mockNotifRepo.On("MarkAsRead", ctx, notifID).Return(nil).Once()

		assert.NoError(t, svc.MarkRead(ctx, alice, notifID))
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := service.NewNotificationService(mockNotifRepo, new(mocks.HabitRepository), new(mocks.FriendService))

		notif := &domain.Notification{ID: notifID, UserID: alice, Type: domain.NotifNudge}
		mockNotifRepo.On("GetByID", ctx, notifID).Return(notif, nil).Once()

		err := svc.MarkRead(ctx, bob, notifID)

		assert.ErrorIs(t, err, service.ErrNotificationNotFound)
		mockNotifRepo.AssertNotCalled(t, "MarkAsRead")
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	habitID := uuid.New()

	mockNotifRepo := new(mocks.NotificationRepository)
	mockHabitRepo := new(mocks.HabitRepository)
	svc := service.NewNotificationService(mockNotifRepo, mockHabitRepo, new(mocks.FriendService))

	habit := &domain.Habit{ID: habitID, UserID: alice, Name: "Run"}
	notifications := []domain.Notification{
		{ID: uuid.New(), UserID: alice, Type: domain.NotifStreakMilestone, HabitID: &habitID},
		{ID: uuid.New(), UserID: alice, Type: domain.NotifFriendRequest},
	}

	mockNotifRepo.On("ListByUser", ctx, alice, 50).Return(notifications, nil).Once()
	mockHabitRepo.On("GetByID", ctx, habitID).Return(habit, nil).Once()

	views, err := svc.List(ctx, alice, 0)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.NotNil(t, views[0].Habit)
	assert.Equal(t, "Run", views[0].Habit.Name)
	assert.Nil(t, views[1].Habit)
}
