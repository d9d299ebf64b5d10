package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"habitloop/internal/domain"
	"habitloop/internal/middleware"
	"habitloop/internal/service"
)

type HabitHandler struct {
	habitService service.HabitService
}

func NewHabitHandler(habitService service.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

func (h *HabitHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateHabitInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("Name is required")
	}

	habit, err := h.habitService.Create(c.Context(), userID, input)
	if err != nil {
		if err == service.ErrInvalidScheduleDay {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (h *HabitHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	includeArchived := c.QueryBool("include_archived", false)

	habits, err := h.habitService.List(c.Context(), userID, includeArchived)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"habits": habits,
	})
}

func (h *HabitHandler) GetByID(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	habit, err := h.habitService.GetByID(c.Context(), userID, habitID)
	if err != nil {
		if err == service.ErrHabitNotFound {
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(habit)
}

func (h *HabitHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	var input domain.UpdateHabitInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	habit, err := h.habitService.Update(c.Context(), userID, habitID, input)
	if err != nil {
		switch err {
		case service.ErrHabitNotFound:
			return middleware.NotFound("Habit not found")
		case service.ErrInvalidScheduleDay:
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(habit)
}

func (h *HabitHandler) Archive(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	if err := h.habitService.Archive(c.Context(), userID, habitID); err != nil {
		if err == service.ErrHabitNotFound {
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Habit archived",
	})
}

func (h *HabitHandler) Unarchive(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	if err := h.habitService.Unarchive(c.Context(), userID, habitID); err != nil {
		if err == service.ErrHabitNotFound {
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Habit restored",
	})
}

func (h *HabitHandler) ToggleCompletion(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	var input domain.ToggleCompletionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.HabitID = habitID

	log, err := h.habitService.ToggleCompletion(c.Context(), userID, input)
	if err != nil {
		switch err {
		case service.ErrHabitNotFound:
			return middleware.NotFound("Habit not found")
		case service.ErrInvalidDate:
			return middleware.BadRequest("Invalid date, expected YYYY-MM-DD")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(log)
}

func (h *HabitHandler) Today(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habits, err := h.habitService.GetTodaysHabits(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"habits": habits,
	})
}

func (h *HabitHandler) Streak(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	streak, err := h.habitService.GetStreak(c.Context(), userID, habitID)
	if err != nil {
		if err == service.ErrHabitNotFound {
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"streak": streak,
	})
}

func (h *HabitHandler) Completions(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid habit ID")
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return middleware.BadRequest("start_date and end_date are required")
	}

	completions, err := h.habitService.GetCompletionsForRange(c.Context(), userID, habitID, startDate, endDate)
	if err != nil {
		switch err {
		case service.ErrHabitNotFound:
			return middleware.NotFound("Habit not found")
		case service.ErrInvalidDate:
			return middleware.BadRequest("Invalid date, expected YYYY-MM-DD")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"completions": completions,
	})
}

func (h *HabitHandler) Week(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var habitID *uuid.UUID
	if idStr := c.Query("habit_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return middleware.BadRequest("Invalid habit ID")
		}
		habitID = &id
	}

	week, err := h.habitService.GetWeekCompletions(c.Context(), userID, habitID)
	if err != nil {
		if err == service.ErrHabitNotFound {
			return middleware.NotFound("Habit not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(week)
}
