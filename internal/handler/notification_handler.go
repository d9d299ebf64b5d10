package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"habitloop/internal/domain"
	"habitloop/internal/middleware"
	"habitloop/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	limit := c.QueryInt("limit", 0)

	notifications, err := h.notificationService.List(c.Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifications,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	count, err := h.notificationService.GetUnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(c.Context(), userID, notificationID); err != nil {
		if err == service.ErrNotificationNotFound {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.notificationService.MarkAllRead(c.Context(), userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notificationService.Delete(c.Context(), userID, notificationID); err != nil {
		if err == service.ErrNotificationNotFound {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification deleted",
	})
}

func (h *NotificationHandler) SendNudge(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.SendSignalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ToUserID == uuid.Nil {
		return middleware.BadRequest("to_user_id is required")
	}

	notification, err := h.notificationService.SendNudge(c.Context(), userID, input)
	if err != nil {
		switch err {
		case service.ErrNotFriends:
			return middleware.Forbidden("You can only nudge friends")
		case service.ErrHabitNotFound:
			return middleware.NotFound("Habit not found")
		case service.ErrNudgeLimitReached:
			return middleware.TooManyRequests(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(notification)
}

func (h *NotificationHandler) SendCelebration(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.SendSignalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ToUserID == uuid.Nil {
		return middleware.BadRequest("to_user_id is required")
	}

	notification, err := h.notificationService.SendCelebration(c.Context(), userID, input)
	if err != nil {
		switch err {
		case service.ErrNotFriends:
			return middleware.Forbidden("You can only celebrate friends")
		case service.ErrHabitNotFound:
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(notification)
}
