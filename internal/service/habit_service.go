package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

var (
	// ErrHabitNotFound covers both missing habits and habits owned by someone
	// else, so callers cannot probe for other users' private habits.
	ErrHabitNotFound      = errors.New("habit not found")
	ErrInvalidScheduleDay = errors.New("schedule days must be between 0 and 6")
	ErrInvalidDate        = errors.New("invalid date")
)

// streakMilestones are the streak lengths that trigger a milestone notification.
var streakMilestones = map[int]bool{7: true, 14: true, 30: true, 60: true, 100: true, 365: true}

type HabitService interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateHabitInput) (*domain.Habit, error)
	GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Habit, error)
	Update(ctx context.Context, userID, habitID uuid.UUID, input domain.UpdateHabitInput) (*domain.Habit, error)
	Archive(ctx context.Context, userID, habitID uuid.UUID) error
	Unarchive(ctx context.Context, userID, habitID uuid.UUID) error
	ToggleCompletion(ctx context.Context, userID uuid.UUID, input domain.ToggleCompletionInput) (*domain.HabitLog, error)
	GetTodaysHabits(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithStatus, error)
	GetStreak(ctx context.Context, userID, habitID uuid.UUID) (int, error)
	GetCompletionsForRange(ctx context.Context, userID, habitID uuid.UUID, startDate, endDate string) (map[string]bool, error)
	GetWeekCompletions(ctx context.Context, userID uuid.UUID, habitID *uuid.UUID) (*domain.WeekCompletions, error)
	SetNotificationService(notifSvc NotificationService)
}

type habitService struct {
	habitRepo repository.HabitRepository
	logRepo   repository.HabitLogRepository
	streaks   *StreakCalculator
	notifSvc  NotificationService
}

func NewHabitService(habitRepo repository.HabitRepository, logRepo repository.HabitLogRepository, streaks *StreakCalculator) HabitService {
	return &habitService{
		habitRepo: habitRepo,
		logRepo:   logRepo,
		streaks:   streaks,
	}
}

func (s *habitService) SetNotificationService(notifSvc NotificationService) {
	s.notifSvc = notifSvc
}

func validateScheduleDays(days []int) error {
	for _, day := range days {
		if day < 0 || day > 6 {
			return ErrInvalidScheduleDay
		}
	}
	return nil
}

// getOwned loads a habit and hides it when the caller does not own it.
func (s *habitService) getOwned(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil || habit.UserID != userID {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

func (s *habitService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateHabitInput) (*domain.Habit, error) {
	if err := validateScheduleDays(input.ScheduleDays); err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	scheduleDays := make(pq.Int64Array, len(input.ScheduleDays))
	for i, day := range input.ScheduleDays {
		scheduleDays[i] = int64(day)
	}

	habit := &domain.Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		Icon:         input.Icon,
		Color:        input.Color,
		ScheduleDays: scheduleDays,
		ReminderTime: input.ReminderTime,
		IsArchived:   false,
		IsPublic:     isPublic,
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *habitService) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	return s.getOwned(ctx, userID, habitID)
}

func (s *habitService) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Habit, error) {
	return s.habitRepo.ListByUser(ctx, userID, includeArchived)
}

func (s *habitService) Update(ctx context.Context, userID, habitID uuid.UUID, input domain.UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.getOwned(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Description != nil {
		habit.Description = input.Description
	}
	if input.Icon != nil {
		habit.Icon = input.Icon
	}
	if input.Color != nil {
		habit.Color = input.Color
	}
	if input.ScheduleDays != nil {
		if err := validateScheduleDays(input.ScheduleDays); err != nil {
			return nil, err
		}
		scheduleDays := make(pq.Int64Array, len(input.ScheduleDays))
		for i, day := range input.ScheduleDays {
			scheduleDays[i] = int64(day)
		}
		habit.ScheduleDays = scheduleDays
	}
	if input.ReminderTime != nil {
		habit.ReminderTime = input.ReminderTime
	}
	if input.IsPublic != nil {
		habit.IsPublic = *input.IsPublic
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.streaks.Invalidate(ctx, habit.ID)

	return habit, nil
}

func (s *habitService) Archive(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, habitID); err != nil {
		return err
	}
	if err := s.habitRepo.SetArchived(ctx, habitID, true); err != nil {
		return err
	}
	s.streaks.Invalidate(ctx, habitID)
	return nil
}

func (s *habitService) Unarchive(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, habitID); err != nil {
		return err
	}
	if err := s.habitRepo.SetArchived(ctx, habitID, false); err != nil {
		return err
	}
	s.streaks.Invalidate(ctx, habitID)
	return nil
}

// ToggleCompletion upserts the (habit, date) log: absent logs are created
// completed, existing logs flip, and completedAt moves in lockstep with the
// completed flag. Toggling twice restores the original state.
func (s *habitService) ToggleCompletion(ctx context.Context, userID uuid.UUID, input domain.ToggleCompletionInput) (*domain.HabitLog, error) {
	habit, err := s.getOwned(ctx, userID, input.HabitID)
	if err != nil {
		return nil, err
	}

	date := dateutil.Today()
	if input.Date != nil {
		if _, err := dateutil.ParseDate(*input.Date); err != nil {
			return nil, ErrInvalidDate
		}
		date = *input.Date
	}

	log, err := s.logRepo.GetByHabitAndDate(ctx, habit.ID, date)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.Completed = !log.Completed
		if log.Completed {
			now := time.Now()
			log.CompletedAt = &now
		} else {
			log.CompletedAt = nil
		}
		if input.Note != nil {
			log.Note = input.Note
		}

		if err := s.logRepo.Update(ctx, log); err != nil {
			return nil, err
		}
	} else {
		now := time.Now()
		log = &domain.HabitLog{
			ID:          uuid.New(),
			HabitID:     habit.ID,
			UserID:      userID,
			Date:        date,
			Completed:   true,
			CompletedAt: &now,
			Note:        input.Note,
		}

		if err := s.logRepo.Create(ctx, log); err != nil {
			return nil, err
		}
	}

	s.streaks.Invalidate(ctx, habit.ID)

	if log.Completed {
		s.notifyMilestone(ctx, habit)
	}

	return log, nil
}

func (s *habitService) notifyMilestone(ctx context.Context, habit *domain.Habit) {
	if s.notifSvc == nil {
		return
	}

	streak, err := s.streaks.Calculate(ctx, habit)
	if err != nil || !streakMilestones[streak] {
		return
	}

	go func() {
		_ = s.notifSvc.CreateStreakMilestone(context.Background(), habit.UserID, habit.ID, streak)
	}()
}

func (s *habitService) GetTodaysHabits(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithStatus, error) {
	today := dateutil.Today()
	todayDow := dateutil.DayOfWeek(time.Now())

	habits, err := s.habitRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	result := make([]domain.HabitWithStatus, 0, len(habits))
	for _, habit := range habits {
		if !habit.IsScheduledOn(todayDow) {
			continue
		}

		log, err := s.logRepo.GetByHabitAndDate(ctx, habit.ID, today)
		if err != nil {
			return nil, err
		}

		streak, err := s.streaks.Calculate(ctx, &habit)
		if err != nil {
			return nil, err
		}

		result = append(result, domain.HabitWithStatus{
			Habit:          habit,
			CompletedToday: log != nil && log.Completed,
			Streak:         streak,
		})
	}

	return result, nil
}

func (s *habitService) GetStreak(ctx context.Context, userID, habitID uuid.UUID) (int, error) {
	habit, err := s.getOwned(ctx, userID, habitID)
	if err != nil {
		return 0, err
	}
	return s.streaks.Calculate(ctx, habit)
}

func (s *habitService) GetCompletionsForRange(ctx context.Context, userID, habitID uuid.UUID, startDate, endDate string) (map[string]bool, error) {
	habit, err := s.getOwned(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if _, err := dateutil.ParseDate(startDate); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := dateutil.ParseDate(endDate); err != nil {
		return nil, ErrInvalidDate
	}

	logs, err := s.logRepo.ListByHabitInRange(ctx, habit.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	completions := make(map[string]bool, len(logs))
	for _, log := range logs {
		completions[log.Date] = log.Completed
	}
	return completions, nil
}

func (s *habitService) GetWeekCompletions(ctx context.Context, userID uuid.UUID, habitID *uuid.UUID) (*domain.WeekCompletions, error) {
	dates := dateutil.WeekDates(time.Now())

	if habitID != nil {
		habit, err := s.getOwned(ctx, userID, *habitID)
		if err != nil {
			return nil, err
		}

		logs, err := s.logRepo.ListByHabitInRange(ctx, habit.ID, dates[0], dates[6])
		if err != nil {
			return nil, err
		}

		completions := make(map[string]bool, len(dates))
		for _, date := range dates {
			completions[date] = false
		}
		for _, log := range logs {
			completions[log.Date] = log.Completed
		}

		return &domain.WeekCompletions{Dates: dates, Completions: completions}, nil
	}

	logs, err := s.logRepo.ListByUserInRange(ctx, userID, dates[0], dates[6])
	if err != nil {
		return nil, err
	}

	byHabit := make(map[uuid.UUID]map[string]bool)
	for _, log := range logs {
		if byHabit[log.HabitID] == nil {
			byHabit[log.HabitID] = make(map[string]bool)
		}
		byHabit[log.HabitID][log.Date] = log.Completed
	}

	return &domain.WeekCompletions{Dates: dates, CompletionsByHabit: byHabit}, nil
}
