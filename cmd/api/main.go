package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"habitloop/internal/config"
	"habitloop/internal/handler"
	"habitloop/internal/middleware"
	"habitloop/internal/repository"
	"habitloop/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (avatar upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Get("/verify-email", h.Auth.VerifyEmail)
	auth.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetMe)
	users.Put("/me", h.User.UpdateProfile)
	users.Put("/me/username", h.User.SetUsername)
	users.Post("/me/avatar", h.User.UploadAvatar)
	users.Get("/username-available", h.User.CheckUsername)
	users.Get("/search", h.User.SearchUsers)
	users.Get("/profiles", h.User.GetProfiles)

	habits := protected.Group("/habits")
	habits.Post("/", h.Habit.Create)
	habits.Get("/", h.Habit.List)
	habits.Get("/today", h.Habit.Today)
	habits.Get("/week", h.Habit.Week)
	habits.Get("/:id", h.Habit.GetByID)
	habits.Put("/:id", h.Habit.Update)
	habits.Post("/:id/archive", h.Habit.Archive)
	habits.Post("/:id/unarchive", h.Habit.Unarchive)
	habits.Post("/:id/toggle", h.Habit.ToggleCompletion)
	habits.Get("/:id/streak", h.Habit.Streak)
	habits.Get("/:id/completions", h.Habit.Completions)

	friends := protected.Group("/friends")
	friends.Post("/requests", h.Friend.SendRequest)
	friends.Get("/requests", h.Friend.ListPendingRequests)
	friends.Post("/requests/:id/accept", h.Friend.AcceptRequest)
	friends.Post("/requests/:id/reject", h.Friend.RejectRequest)
	friends.Get("/", h.Friend.ListFriends)
	friends.Delete("/:id", h.Friend.RemoveFriend)

	feed := protected.Group("/feed")
	feed.Get("/activity", h.Feed.Activity)
	feed.Get("/streaks", h.Feed.Streaks)
	feed.Get("/friends/:id", h.Feed.FriendProgress)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllRead)
	notifications.Delete("/:id", h.Notification.Delete)
	notifications.Post("/nudge", h.Notification.SendNudge)
	notifications.Post("/celebrate", h.Notification.SendCelebration)
}
