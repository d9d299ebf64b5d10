package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
)

type HabitRepository struct {
	mock.Mock
}

func (m *HabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *HabitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *HabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *HabitRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Habit, error) {
	args := m.Called(ctx, userID, includeArchived)
	return args.Get(0).([]domain.Habit), args.Error(1)
}

func (m *HabitRepository) ListPublicActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Habit), args.Error(1)
}

func (m *HabitRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}
