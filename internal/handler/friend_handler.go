package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"habitloop/internal/middleware"
	"habitloop/internal/service"
)

type FriendHandler struct {
	friendService service.FriendService
}

func NewFriendHandler(friendService service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input struct {
		UserID uuid.UUID `json:"user_id" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.UserID == uuid.Nil {
		return middleware.BadRequest("user_id is required")
	}

	friendship, err := h.friendService.SendRequest(c.Context(), userID, input.UserID)
	if err != nil {
		switch err {
		case service.ErrSelfFriendRequest:
			return middleware.BadRequest("Cannot send a friend request to yourself")
		case service.ErrRequestAlreadySent:
			return middleware.Conflict("Friend request already sent")
		case service.ErrAlreadyFriends:
			return middleware.Conflict("Already friends")
		case service.ErrUserNotFound:
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

func (h *FriendHandler) AcceptRequest(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friendshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	if err := h.friendService.AcceptRequest(c.Context(), userID, friendshipID); err != nil {
		switch err {
		case service.ErrRequestNotFound:
			return middleware.NotFound("Friend request not found")
		case service.ErrNotRequestAddressee:
			return middleware.Forbidden("Only the recipient can accept a request")
		case service.ErrRequestNotPending:
			return middleware.Conflict("Request already processed")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Friend request accepted",
	})
}

func (h *FriendHandler) RejectRequest(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friendshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	if err := h.friendService.RejectRequest(c.Context(), userID, friendshipID); err != nil {
		switch err {
		case service.ErrRequestNotFound:
			return middleware.NotFound("Friend request not found")
		case service.ErrNotRequestAddressee:
			return middleware.Forbidden("Only the recipient can reject a request")
		case service.ErrRequestNotPending:
			return middleware.Conflict("Request already processed")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Friend request rejected",
	})
}

func (h *FriendHandler) RemoveFriend(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friendID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if err := h.friendService.RemoveFriend(c.Context(), userID, friendID); err != nil {
		if err == service.ErrFriendshipNotFound {
			return middleware.NotFound("Friendship not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Friend removed",
	})
}

func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friends, err := h.friendService.ListFriends(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"friends": friends,
	})
}

func (h *FriendHandler) ListPendingRequests(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	requests, err := h.friendService.ListPendingRequests(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"requests": requests,
	})
}
