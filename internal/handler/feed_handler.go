package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"habitloop/internal/middleware"
	"habitloop/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) FriendProgress(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friendID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	progress, err := h.feedService.GetFriendProgress(c.Context(), userID, friendID)
	if err != nil {
		if err == service.ErrNotFriends {
			return middleware.Forbidden("You can only view friends' progress")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}

func (h *FeedHandler) Activity(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	limit := c.QueryInt("limit", 0)

	activity, err := h.feedService.GetFriendActivity(c.Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"activity": activity,
	})
}

func (h *FeedHandler) Streaks(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	streaks, err := h.feedService.GetFriendStreaks(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"streaks": streaks,
	})
}
