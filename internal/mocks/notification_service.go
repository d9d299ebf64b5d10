package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationView, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.NotificationView), args.Error(1)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *NotificationService) SendNudge(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) SendCelebration(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) CreateFriendEvent(ctx context.Context, toUserID, fromUserID uuid.UUID, notifType domain.NotificationType) error {
	args := m.Called(ctx, toUserID, fromUserID, notifType)
	return args.Error(0)
}

func (m *NotificationService) CreateStreakMilestone(ctx context.Context, userID, habitID uuid.UUID, streak int) error {
	args := m.Called(ctx, userID, habitID, streak)
	return args.Error(0)
}
