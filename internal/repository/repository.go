package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Habit        HabitRepository
	HabitLog     HabitLogRepository
	Friendship   FriendshipRepository
	Notification NotificationRepository
	Session      SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Habit:        NewHabitRepository(db),
		HabitLog:     NewHabitLogRepository(db),
		Friendship:   NewFriendshipRepository(db),
		Notification: NewNotificationRepository(db),
		Session:      NewSessionRepository(db),
	}
}
