package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"habitloop/internal/domain"
	"habitloop/internal/middleware"
	"habitloop/internal/service"
)

const maxAvatarSize = 5 * 1024 * 1024

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Not authenticated")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if err == service.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) SetUsername(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input struct {
		Username string `json:"username" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.userService.SetUsername(c.Context(), userID, input.Username)
	if err != nil {
		switch err {
		case service.ErrInvalidUsername:
			return middleware.BadRequest(err.Error())
		case service.ErrUsernameTaken:
			return middleware.Conflict("Username already taken")
		case service.ErrUserNotFound:
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) CheckUsername(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return middleware.BadRequest("Username is required")
	}

	available, err := h.userService.CheckUsernameAvailable(c.Context(), username)
	if err != nil {
		if err == service.ErrInvalidUsername {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"available": available,
	})
}

func (h *UserHandler) GetProfiles(c *fiber.Ctx) error {
	raw := c.Query("ids")
	if raw == "" {
		return middleware.BadRequest("ids is required")
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return middleware.BadRequest("Invalid user ID: " + part)
		}
		ids = append(ids, id)
	}

	profiles, err := h.userService.GetProfilesByIDs(c.Context(), ids)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profiles": profiles,
	})
}

func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	profiles, err := h.userService.SearchUsers(c.Context(), userID, c.Query("q"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": profiles,
	})
}

func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > maxAvatarSize {
		return middleware.BadRequest("File size must be less than 5MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	user, err := h.userService.UploadAvatar(c.Context(), userID, file.Filename, file.Size, mimeType, fileReader)
	if err != nil {
		if err == service.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		if errors.Is(err, service.ErrStorageUnavailable) {
			return middleware.BadGateway("Avatar storage is temporarily unavailable, please retry")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
