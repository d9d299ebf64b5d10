package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
	"habitloop/internal/service"
)

type FriendService struct {
	mock.Mock
}

func (m *FriendService) SendRequest(ctx context.Context, userID, addresseeID uuid.UUID) (*domain.Friendship, error) {
	args := m.Called(ctx, userID, addresseeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *FriendService) AcceptRequest(ctx context.Context, userID, friendshipID uuid.UUID) error {
	args := m.Called(ctx, userID, friendshipID)
	return args.Error(0)
}

func (m *FriendService) RejectRequest(ctx context.Context, userID, friendshipID uuid.UUID) error {
	args := m.Called(ctx, userID, friendshipID)
	return args.Error(0)
}

func (m *FriendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

func (m *FriendService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]domain.PendingRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PendingRequest), args.Error(1)
}

func (m *FriendService) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *FriendService) SetNotificationService(notifSvc service.NotificationService) {
	m.Called(notifSvc)
}
