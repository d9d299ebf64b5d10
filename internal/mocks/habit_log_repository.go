package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
)

type HabitLogRepository struct {
	mock.Mock
}

func (m *HabitLogRepository) Create(ctx context.Context, log *domain.HabitLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *HabitLogRepository) Update(ctx context.Context, log *domain.HabitLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *HabitLogRepository) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date string) (*domain.HabitLog, error) {
	args := m.Called(ctx, habitID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HabitLog), args.Error(1)
}

func (m *HabitLogRepository) ListByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	args := m.Called(ctx, habitID, startDate, endDate)
	return args.Get(0).([]domain.HabitLog), args.Error(1)
}

func (m *HabitLogRepository) ListByUserInRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	return args.Get(0).([]domain.HabitLog), args.Error(1)
}

func (m *HabitLogRepository) ListCompletedByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	args := m.Called(ctx, habitID, startDate, endDate)
	return args.Get(0).([]domain.HabitLog), args.Error(1)
}
