package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

var (
	ErrSelfFriendRequest   = errors.New("cannot send friend request to yourself")
	ErrRequestAlreadySent  = errors.New("friend request already sent")
	ErrAlreadyFriends      = errors.New("already friends")
	ErrRequestNotFound     = errors.New("friend request not found")
	ErrRequestNotPending   = errors.New("request already processed")
	ErrNotRequestAddressee = errors.New("only the addressee can act on a request")
	ErrFriendshipNotFound  = errors.New("friendship not found")
)

type FriendService interface {
	SendRequest(ctx context.Context, userID, addresseeID uuid.UUID) (*domain.Friendship, error)
	AcceptRequest(ctx context.Context, userID, friendshipID uuid.UUID) error
	RejectRequest(ctx context.Context, userID, friendshipID uuid.UUID) error
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
	ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.UserProfile, error)
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]domain.PendingRequest, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	SetNotificationService(notifSvc NotificationService)
}

type friendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	notifSvc       NotificationService
}

func NewFriendService(friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository) FriendService {
	return &friendService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

func (s *friendService) SetNotificationService(notifSvc NotificationService) {
	s.notifSvc = notifSvc
}

// SendRequest creates a pending request, resurrects a rejected one, or, when
// the addressee already has a pending request the other way, treats the double
// request as mutual consent and accepts that record.
func (s *friendService) SendRequest(ctx context.Context, userID, addresseeID uuid.UUID) (*domain.Friendship, error) {
	if userID == addresseeID {
		return nil, ErrSelfFriendRequest
	}

	outgoing, err := s.friendshipRepo.GetByPair(ctx, userID, addresseeID)
	if err != nil {
		return nil, err
	}

	if outgoing != nil {
		switch outgoing.Status {
		case domain.FriendshipPending:
			return nil, ErrRequestAlreadySent
		case domain.FriendshipAccepted:
			return nil, ErrAlreadyFriends
		case domain.FriendshipRejected:
			if err := s.friendshipRepo.UpdateStatus(ctx, outgoing.ID, domain.FriendshipPending); err != nil {
				return nil, err
			}
			outgoing.Status = domain.FriendshipPending
			s.notify(ctx, addresseeID, userID, domain.NotifFriendRequest)
			return outgoing, nil
		}
	}

	incoming, err := s.friendshipRepo.GetByPair(ctx, addresseeID, userID)
	if err != nil {
		return nil, err
	}

	if incoming != nil {
		switch incoming.Status {
		case domain.FriendshipPending:
			if err := s.friendshipRepo.UpdateStatus(ctx, incoming.ID, domain.FriendshipAccepted); err != nil {
				return nil, err
			}
			incoming.Status = domain.FriendshipAccepted
			s.notify(ctx, addresseeID, userID, domain.NotifFriendAccepted)
			return incoming, nil
		case domain.FriendshipAccepted:
			return nil, ErrAlreadyFriends
		}
	}

	friendship := &domain.Friendship{
		ID:          uuid.New(),
		RequesterID: userID,
		AddresseeID: addresseeID,
		Status:      domain.FriendshipPending,
	}

	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	s.notify(ctx, addresseeID, userID, domain.NotifFriendRequest)

	return friendship, nil
}

func (s *friendService) AcceptRequest(ctx context.Context, userID, friendshipID uuid.UUID) error {
	friendship, err := s.friendshipRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return err
	}
	if friendship == nil {
		return ErrRequestNotFound
	}
	if friendship.AddresseeID != userID {
		return ErrNotRequestAddressee
	}
	if friendship.Status != domain.FriendshipPending {
		return ErrRequestNotPending
	}

	if err := s.friendshipRepo.UpdateStatus(ctx, friendshipID, domain.FriendshipAccepted); err != nil {
		return err
	}

	s.notify(ctx, friendship.RequesterID, userID, domain.NotifFriendAccepted)

	return nil
}

func (s *friendService) RejectRequest(ctx context.Context, userID, friendshipID uuid.UUID) error {
	friendship, err := s.friendshipRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return err
	}
	if friendship == nil {
		return ErrRequestNotFound
	}
	if friendship.AddresseeID != userID {
		return ErrNotRequestAddressee
	}
	if friendship.Status != domain.FriendshipPending {
		return ErrRequestNotPending
	}

	return s.friendshipRepo.UpdateStatus(ctx, friendshipID, domain.FriendshipRejected)
}

func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	outgoing, err := s.friendshipRepo.GetByPair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if outgoing != nil {
		return s.friendshipRepo.Delete(ctx, outgoing.ID)
	}

	incoming, err := s.friendshipRepo.GetByPair(ctx, friendID, userID)
	if err != nil {
		return err
	}
	if incoming != nil {
		return s.friendshipRepo.Delete(ctx, incoming.ID)
	}

	return ErrFriendshipNotFound
}

func (s *friendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.UserProfile, error) {
	friendIDs, err := s.listFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetByIDs(ctx, friendIDs)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}
	return profiles, nil
}

func (s *friendService) listFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	friendships, err := s.friendshipRepo.ListAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			ids = append(ids, f.AddresseeID)
		} else {
			ids = append(ids, f.RequesterID)
		}
	}
	return ids, nil
}

func (s *friendService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]domain.PendingRequest, error) {
	pending, err := s.friendshipRepo.ListPendingByAddressee(ctx, userID)
	if err != nil {
		return nil, err
	}

	requesterIDs := make([]uuid.UUID, 0, len(pending))
	for _, f := range pending {
		requesterIDs = append(requesterIDs, f.RequesterID)
	}

	users, err := s.userRepo.GetByIDs(ctx, requesterIDs)
	if err != nil {
		return nil, err
	}

	profiles := make(map[uuid.UUID]domain.UserProfile, len(users))
	for _, user := range users {
		profiles[user.ID] = user.Profile()
	}

	requests := make([]domain.PendingRequest, 0, len(pending))
	for _, f := range pending {
		request := domain.PendingRequest{
			FriendshipID: f.ID,
			RequesterID:  f.RequesterID,
			CreatedAt:    f.CreatedAt,
		}
		if profile, ok := profiles[f.RequesterID]; ok {
			request.Requester = &profile
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// AreFriends checks both orderings; no canonical direction is imposed on the pair.
func (s *friendService) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	outgoing, err := s.friendshipRepo.GetByPair(ctx, a, b)
	if err != nil {
		return false, err
	}
	if outgoing != nil && outgoing.Status == domain.FriendshipAccepted {
		return true, nil
	}

	incoming, err := s.friendshipRepo.GetByPair(ctx, b, a)
	if err != nil {
		return false, err
	}
	return incoming != nil && incoming.Status == domain.FriendshipAccepted, nil
}

func (s *friendService) notify(ctx context.Context, toUserID, fromUserID uuid.UUID, notifType domain.NotificationType) {
	if s.notifSvc == nil {
		return
	}
	_ = s.notifSvc.CreateFriendEvent(ctx, toUserID, fromUserID, notifType)
}
