package domain

import (
	"time"

	"github.com/google/uuid"
)

// HabitLog records one calendar day of one habit. At most one log exists per
// (habit, date) pair; the habit service checks before inserting.
type HabitLog struct {
	ID          uuid.UUID  `json:"id" db:"log_id"`
	HabitID     uuid.UUID  `json:"habit_id" db:"habit_id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Date        string     `json:"date" db:"date"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Note        *string    `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

type ToggleCompletionInput struct {
	HabitID uuid.UUID `json:"habit_id" validate:"required"`
	Date    *string   `json:"date,omitempty"`
	Note    *string   `json:"note,omitempty"`
}
