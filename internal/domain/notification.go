package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifFriendRequest   NotificationType = "friend_request"
	NotifFriendAccepted  NotificationType = "friend_accepted"
	NotifNudge           NotificationType = "nudge"
	NotifCelebration     NotificationType = "celebration"
	NotifStreakMilestone NotificationType = "streak_milestone"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifFriendRequest, NotifFriendAccepted, NotifNudge, NotifCelebration, NotifStreakMilestone:
		return true
	}
	return false
}

type Notification struct {
	ID         uuid.UUID        `json:"id" db:"notification_id"`
	UserID     uuid.UUID        `json:"user_id" db:"user_id"`
	FromUserID *uuid.UUID       `json:"from_user_id,omitempty" db:"from_user_id"`
	Type       NotificationType `json:"type" db:"type"`
	HabitID    *uuid.UUID       `json:"habit_id,omitempty" db:"habit_id"`
	Message    *string          `json:"message,omitempty" db:"message"`
	IsRead     bool             `json:"is_read" db:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// NotificationView embeds the referenced habit's summary for list rendering.
type NotificationView struct {
	Notification
	Habit *HabitSummary `json:"habit,omitempty"`
}

type SendSignalInput struct {
	ToUserID uuid.UUID  `json:"to_user_id" validate:"required"`
	HabitID  *uuid.UUID `json:"habit_id,omitempty"`
	Message  *string    `json:"message,omitempty" validate:"omitempty,max=280"`
}
