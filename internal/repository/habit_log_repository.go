package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"habitloop/internal/domain"
)

type HabitLogRepository interface {
	Create(ctx context.Context, log *domain.HabitLog) error
	Update(ctx context.Context, log *domain.HabitLog) error
	GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date string) (*domain.HabitLog, error)
	ListByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error)
	ListByUserInRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error)
	ListCompletedByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error)
}

type habitLogRepository struct {
	db *sqlx.DB
}

func NewHabitLogRepository(db *sqlx.DB) HabitLogRepository {
	return &habitLogRepository{db: db}
}

func (r *habitLogRepository) Create(ctx context.Context, log *domain.HabitLog) error {
	query := `
		INSERT INTO habit_logs (log_id, habit_id, user_id, date, completed, completed_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		log.ID, log.HabitID, log.UserID, log.Date, log.Completed, log.CompletedAt, log.Note,
	).Scan(&log.CreatedAt)
}

func (r *habitLogRepository) Update(ctx context.Context, log *domain.HabitLog) error {
	query := `
		UPDATE habit_logs
		SET completed = $2, completed_at = $3, note = $4
		WHERE log_id = $1`

	_, err := r.db.ExecContext(ctx, query, log.ID, log.Completed, log.CompletedAt, log.Note)
	return err
}

func (r *habitLogRepository) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date string) (*domain.HabitLog, error) {
	var log domain.HabitLog
	query := `SELECT * FROM habit_logs WHERE habit_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, &log, query, habitID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *habitLogRepository) ListByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	var logs []domain.HabitLog
	query := `SELECT * FROM habit_logs WHERE habit_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`

	err := r.db.SelectContext(ctx, &logs, query, habitID, startDate, endDate)
	return logs, err
}

func (r *habitLogRepository) ListByUserInRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	var logs []domain.HabitLog
	query := `SELECT * FROM habit_logs WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`

	err := r.db.SelectContext(ctx, &logs, query, userID, startDate, endDate)
	return logs, err
}

func (r *habitLogRepository) ListCompletedByHabitInRange(ctx context.Context, habitID uuid.UUID, startDate, endDate string) ([]domain.HabitLog, error) {
	var logs []domain.HabitLog
	query := `SELECT * FROM habit_logs WHERE habit_id = $1 AND date >= $2 AND date <= $3 AND completed = TRUE ORDER BY date`

	err := r.db.SelectContext(ctx, &logs, query, habitID, startDate, endDate)
	return logs, err
}
