package handler

import "habitloop/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Habit        *HabitHandler
	Friend       *FriendHandler
	Feed         *FeedHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Habit:        NewHabitHandler(services.Habit),
		Friend:       NewFriendHandler(services.Friend),
		Feed:         NewFeedHandler(services.Feed),
		Notification: NewNotificationHandler(services.Notification),
	}
}
