package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"habitloop/internal/dateutil"
	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

// maxNudgesPerDay caps nudges per sender-recipient pair per UTC calendar day.
// The check reads committed notifications, so two near-simultaneous nudges can
// both pass it; the cap is a nuisance limit, not a security boundary.
const maxNudgesPerDay = 3

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotFriends           = errors.New("not friends")
	ErrNudgeLimitReached    = fmt.Errorf("you can only send %d nudges per day to each friend", maxNudgesPerDay)
)

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationView, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
	SendNudge(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error)
	SendCelebration(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error)
	CreateFriendEvent(ctx context.Context, toUserID, fromUserID uuid.UUID, notifType domain.NotificationType) error
	CreateStreakMilestone(ctx context.Context, userID, habitID uuid.UUID, streak int) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	habitRepo repository.HabitRepository
	friendSvc FriendService
}

func NewNotificationService(notifRepo repository.NotificationRepository, habitRepo repository.HabitRepository, friendSvc FriendService) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		habitRepo: habitRepo,
		friendSvc: friendSvc,
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.NotificationView, error) {
	if limit <= 0 {
		limit = 50
	}

	notifications, err := s.notifRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]domain.NotificationView, 0, len(notifications))
	for _, notif := range notifications {
		view := domain.NotificationView{Notification: notif}

		if notif.HabitID != nil {
			habit, err := s.habitRepo.GetByID(ctx, *notif.HabitID)
			if err != nil {
				return nil, err
			}
			if habit != nil {
				view.Habit = &domain.HabitSummary{
					ID:    habit.ID,
					Name:  habit.Name,
					Icon:  habit.Icon,
					Color: habit.Color,
				}
			}
		}

		views = append(views, view)
	}
	return views, nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// getOwned hides notifications addressed to other users.
func (s *notificationService) getOwned(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error) {
	notif, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notif == nil || notif.UserID != userID {
		return nil, ErrNotificationNotFound
	}
	return notif, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, notificationID); err != nil {
		return err
	}
	return s.notifRepo.MarkAsRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, notificationID); err != nil {
		return err
	}
	return s.notifRepo.Delete(ctx, notificationID)
}

func (s *notificationService) SendNudge(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error) {
	if err := s.checkSignal(ctx, userID, input); err != nil {
		return nil, err
	}

	dayStart, err := dateutil.ParseDate(dateutil.Today())
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	count, err := s.notifRepo.CountNudgesBetween(ctx, userID, input.ToUserID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if count >= maxNudgesPerDay {
		return nil, ErrNudgeLimitReached
	}

	return s.createSignal(ctx, userID, input, domain.NotifNudge)
}

func (s *notificationService) SendCelebration(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) (*domain.Notification, error) {
	if err := s.checkSignal(ctx, userID, input); err != nil {
		return nil, err
	}
	return s.createSignal(ctx, userID, input, domain.NotifCelebration)
}

// checkSignal enforces the friendship gate and, when a habit is referenced,
// that it is the recipient's own public habit.
func (s *notificationService) checkSignal(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput) error {
	friends, err := s.friendSvc.AreFriends(ctx, userID, input.ToUserID)
	if err != nil {
		return err
	}
	if !friends {
		return ErrNotFriends
	}

	if input.HabitID != nil {
		habit, err := s.habitRepo.GetByID(ctx, *input.HabitID)
		if err != nil {
			return err
		}
		if habit == nil || habit.UserID != input.ToUserID || !habit.IsPublic {
			return ErrHabitNotFound
		}
	}

	return nil
}

func (s *notificationService) createSignal(ctx context.Context, userID uuid.UUID, input domain.SendSignalInput, notifType domain.NotificationType) (*domain.Notification, error) {
	notif := &domain.Notification{
		ID:         uuid.New(),
		UserID:     input.ToUserID,
		FromUserID: &userID,
		Type:       notifType,
		HabitID:    input.HabitID,
		Message:    input.Message,
		IsRead:     false,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

func (s *notificationService) CreateFriendEvent(ctx context.Context, toUserID, fromUserID uuid.UUID, notifType domain.NotificationType) error {
	notif := &domain.Notification{
		ID:         uuid.New(),
		UserID:     toUserID,
		FromUserID: &fromUserID,
		Type:       notifType,
		IsRead:     false,
	}
	return s.notifRepo.Create(ctx, notif)
}

func (s *notificationService) CreateStreakMilestone(ctx context.Context, userID, habitID uuid.UUID, streak int) error {
	message := fmt.Sprintf("You've reached a %d day streak!", streak)
	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifStreakMilestone,
		HabitID: &habitID,
		Message: &message,
		IsRead:  false,
	}
	return s.notifRepo.Create(ctx, notif)
}
