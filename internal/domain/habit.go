package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Habit belongs to exactly one user. scheduleDays holds weekday numbers
// (0-6, Sunday=0); order and duplicates carry no meaning.
type Habit struct {
	ID           uuid.UUID     `json:"id" db:"habit_id"`
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`
	Name         string        `json:"name" db:"name"`
	Description  *string       `json:"description,omitempty" db:"description"`
	Icon         *string       `json:"icon,omitempty" db:"icon"`
	Color        *string       `json:"color,omitempty" db:"color"`
	ScheduleDays pq.Int64Array `json:"schedule_days" db:"schedule_days"`
	ReminderTime *string       `json:"reminder_time,omitempty" db:"reminder_time"`
	IsArchived   bool          `json:"is_archived" db:"is_archived"`
	IsPublic     bool          `json:"is_public" db:"is_public"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

func (h *Habit) IsScheduledOn(weekday int) bool {
	for _, d := range h.ScheduleDays {
		if int(d) == weekday {
			return true
		}
	}
	return false
}

type CreateHabitInput struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	Color        *string `json:"color,omitempty"`
	ScheduleDays []int   `json:"schedule_days" validate:"required"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
}

type UpdateHabitInput struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	Color        *string `json:"color,omitempty"`
	ScheduleDays []int   `json:"schedule_days,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
}

// HabitWithStatus annotates a habit with its state for today.
type HabitWithStatus struct {
	Habit
	CompletedToday bool `json:"completed_today"`
	Streak         int  `json:"streak"`
}

// HabitSummary is the trimmed shape embedded in notifications.
type HabitSummary struct {
	ID    uuid.UUID `json:"id" db:"habit_id"`
	Name  string    `json:"name" db:"name"`
	Icon  *string   `json:"icon,omitempty" db:"icon"`
	Color *string   `json:"color,omitempty" db:"color"`
}

// WeekCompletions covers the Monday-start week containing today. Completions
// is set when a single habit was requested, CompletionsByHabit otherwise.
type WeekCompletions struct {
	Dates              []string                      `json:"dates"`
	Completions        map[string]bool               `json:"completions,omitempty"`
	CompletionsByHabit map[uuid.UUID]map[string]bool `json:"completions_by_habit,omitempty"`
}
