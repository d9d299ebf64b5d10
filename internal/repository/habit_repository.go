package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"habitloop/internal/domain"
)

type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
	ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Habit, error)
	ListPublicActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	query := `
		INSERT INTO habits (habit_id, user_id, name, description, icon, color, schedule_days, reminder_time, is_archived, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Description, habit.Icon,
		habit.Color, habit.ScheduleDays, habit.ReminderTime, habit.IsArchived, habit.IsPublic,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)
}

func (r *habitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	var habit domain.Habit
	query := `SELECT * FROM habits WHERE habit_id = $1`

	err := r.db.GetContext(ctx, &habit, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	query := `
		UPDATE habits
		SET name = $2, description = $3, icon = $4, color = $5, schedule_days = $6,
			reminder_time = $7, is_public = $8, updated_at = NOW()
		WHERE habit_id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		habit.ID, habit.Name, habit.Description, habit.Icon, habit.Color,
		habit.ScheduleDays, habit.ReminderTime, habit.IsPublic,
	).Scan(&habit.UpdatedAt)
}

func (r *habitRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Habit, error) {
	var habits []domain.Habit

	if includeArchived {
		query := `SELECT * FROM habits WHERE user_id = $1 ORDER BY created_at`
		err := r.db.SelectContext(ctx, &habits, query, userID)
		return habits, err
	}

	query := `SELECT * FROM habits WHERE user_id = $1 AND is_archived = FALSE ORDER BY created_at`
	err := r.db.SelectContext(ctx, &habits, query, userID)
	return habits, err
}

func (r *habitRepository) ListPublicActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	query := `SELECT * FROM habits WHERE user_id = $1 AND is_archived = FALSE AND is_public = TRUE ORDER BY created_at`

	err := r.db.SelectContext(ctx, &habits, query, userID)
	return habits, err
}

func (r *habitRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	query := `UPDATE habits SET is_archived = $2, updated_at = NOW() WHERE habit_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, archived)
	return err
}
