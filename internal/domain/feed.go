package domain

import (
	"time"

	"github.com/google/uuid"
)

// FriendHabitStatus is one public habit of a friend with today's state.
type FriendHabitStatus struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Icon             *string   `json:"icon,omitempty"`
	Color            *string   `json:"color,omitempty"`
	IsScheduledToday bool      `json:"is_scheduled_today"`
	CompletedToday   bool      `json:"completed_today"`
	Streak           int       `json:"streak"`
}

type FriendProgress struct {
	FriendID        uuid.UUID           `json:"friend_id"`
	TodaysHabits    []FriendHabitStatus `json:"todays_habits"`
	AllPublicHabits []FriendHabitStatus `json:"all_public_habits"`
}

// ActivityItem is one completed log of a friend's public habit within the
// trailing week, flattened for the activity feed.
type ActivityItem struct {
	UserID     uuid.UUID `json:"user_id"`
	HabitName  string    `json:"habit_name"`
	HabitIcon  *string   `json:"habit_icon,omitempty"`
	HabitColor *string   `json:"habit_color,omitempty"`
	Date       string    `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
}

type FriendStreaks struct {
	FriendID    uuid.UUID `json:"friend_id"`
	MaxStreak   int       `json:"max_streak"`
	TotalStreak int       `json:"total_streak"`
	HabitCount  int       `json:"habit_count"`
}
