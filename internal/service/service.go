package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"habitloop/internal/config"
	"habitloop/internal/repository"
)

type Services struct {
	Auth         AuthService
	User         UserService
	Habit        HabitService
	Friend       FriendService
	Notification NotificationService
	Feed         FeedService
	Email        EmailService
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	authService := NewAuthService(repos.User, repos.Session, emailService, cfg)
	userService := NewUserService(repos.User, minioClient, cfg)

	streaks := NewStreakCalculator(repos.HabitLog, redisClient)

	friendService := NewFriendService(repos.Friendship, repos.User)
	notificationService := NewNotificationService(repos.Notification, repos.Habit, friendService)
	friendService.SetNotificationService(notificationService)

	habitService := NewHabitService(repos.Habit, repos.HabitLog, streaks)
	habitService.SetNotificationService(notificationService)

	feedService := NewFeedService(repos.Friendship, repos.Habit, repos.HabitLog, friendService, streaks)

	return &Services{
		Auth:         authService,
		User:         userService,
		Habit:        habitService,
		Friend:       friendService,
		Notification: notificationService,
		Feed:         feedService,
		Email:        emailService,
	}
}
