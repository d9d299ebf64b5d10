package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
)

type FriendshipRepository struct {
	mock.Mock
}

func (m *FriendshipRepository) Create(ctx context.Context, friendship *domain.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *FriendshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *FriendshipRepository) GetByPair(ctx context.Context, requesterID, addresseeID uuid.UUID) (*domain.Friendship, error) {
	args := m.Called(ctx, requesterID, addresseeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *FriendshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *FriendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FriendshipRepository) ListAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Friendship), args.Error(1)
}

func (m *FriendshipRepository) ListPendingByAddressee(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error) {
	args := m.Called(ctx, addresseeID)
	return args.Get(0).([]domain.Friendship), args.Error(1)
}
