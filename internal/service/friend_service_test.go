package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/domain"
	"habitloop/internal/mocks"
	"habitloop/internal/service"
)

func TestFriendService_SendRequest(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Self Request", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		friendship, err := svc.SendRequest(ctx, alice, alice)

		assert.ErrorIs(t, err, service.ErrSelfFriendRequest)
		assert.Nil(t, friendship)
	})

	t.Run("New Request", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		mockRepo.On("GetByPair", ctx, alice, bob).Return(nil, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Friendship) bool {
			return f.RequesterID == alice && f.AddresseeID == bob && f.Status == domain.FriendshipPending
		})).Return(nil).Once()

		friendship, err := svc.SendRequest(ctx, alice, bob)

		assert.NoError(t, err)
		assert.Equal(t, domain.FriendshipPending, friendship.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Already Sent", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		pending := &domain.Friendship{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipPending}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(pending, nil).Once()

		friendship, err := svc.SendRequest(ctx, alice, bob)

		assert.ErrorIs(t, err, service.ErrRequestAlreadySent)
		assert.Nil(t, friendship)
	})

	t.Run("Already Friends", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		accepted := &domain.Friendship{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipAccepted}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(accepted, nil).Once()

		friendship, err := svc.SendRequest(ctx, alice, bob)

		assert.ErrorIs(t, err, service.ErrAlreadyFriends)
		assert.Nil(t, friendship)
	})

	t.Run("Rejected Request Is Resurrected", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		rejected := &domain.Friendship{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipRejected}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(rejected, nil).Once()
		mockRepo.On("UpdateStatus", ctx, rejected.ID, domain.FriendshipPending).Return(nil).Once()

		friendship, err := svc.SendRequest(ctx, alice, bob)

		assert.NoError(t, err)
		assert.Equal(t, domain.FriendshipPending, friendship.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Mutual Requests Auto Accept", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		incoming := &domain.Friendship{ID: uuid.New(), RequesterID: bob, AddresseeID: alice, Status: domain.FriendshipPending}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(nil, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(incoming, nil).Once()
		mockRepo.On("UpdateStatus", ctx, incoming.ID, domain.FriendshipAccepted).Return(nil).Once()

		friendship, err := svc.SendRequest(ctx, alice, bob)

		assert.NoError(t, err)
		assert.Equal(t, domain.FriendshipAccepted, friendship.Status)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestFriendService_AcceptRequest(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	requestID := uuid.New()

	t.Run("Only Addressee Can Accept", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		pending := &domain.Friendship{ID: requestID, RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipPending}
		mockRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()

		err := svc.AcceptRequest(ctx, alice, requestID)

		assert.ErrorIs(t, err, service.ErrNotRequestAddressee)
		mockRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Already Processed", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		accepted := &domain.Friendship{ID: requestID, RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipAccepted}
		mockRepo.On("GetByID", ctx, requestID).Return(accepted, nil).Once()

		err := svc.AcceptRequest(ctx, bob, requestID)

		assert.ErrorIs(t, err, service.ErrRequestNotPending)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		pending := &domain.Friendship{ID: requestID, RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipPending}
		mockRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()
		mockRepo.On("UpdateStatus", ctx, requestID, domain.FriendshipAccepted).Return(nil).Once()

		err := svc.AcceptRequest(ctx, bob, requestID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestFriendService_AreFriends(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Symmetric Regardless Of Direction", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		accepted := &domain.Friendship{ID: uuid.New(), RequesterID: bob, AddresseeID: alice, Status: domain.FriendshipAccepted}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(nil, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(accepted, nil).Once()

		friends, err := svc.AreFriends(ctx, alice, bob)

		assert.NoError(t, err)
		assert.True(t, friends)
	})

	t.Run("Pending Is Not Friendship", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		pending := &domain.Friendship{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipPending}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(pending, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(nil, nil).Once()

		friends, err := svc.AreFriends(ctx, alice, bob)

		assert.NoError(t, err)
		assert.False(t, friends)
	})
}

func TestFriendService_RemoveFriend(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Removes Reverse Direction Record", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		accepted := &domain.Friendship{ID: uuid.New(), RequesterID: bob, AddresseeID: alice, Status: domain.FriendshipAccepted}
		mockRepo.On("GetByPair", ctx, alice, bob).Return(nil, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(accepted, nil).Once()
		mockRepo.On("Delete", ctx, accepted.ID).Return(nil).Once()

		err := svc.RemoveFriend(ctx, alice, bob)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No Record", func(t *testing.T) {
		mockRepo := new(mocks.FriendshipRepository)
		svc := service.NewFriendService(mockRepo, new(mocks.UserRepository))

		mockRepo.On("GetByPair", ctx, alice, bob).Return(nil, nil).Once()
		mockRepo.On("GetByPair", ctx, bob, alice).Return(nil, nil).Once()

		err := svc.RemoveFriend(ctx, alice, bob)

		assert.ErrorIs(t, err, service.ErrFriendshipNotFound)
	})
}

func TestFriendService_ListFriends(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	mockRepo := new(mocks.FriendshipRepository)
	mockUserRepo := new(mocks.UserRepository)
	svc := service.NewFriendService(mockRepo, mockUserRepo)

	friendships := []domain.Friendship{
		{ID: uuid.New(), RequesterID: alice, AddresseeID: bob, Status: domain.FriendshipAccepted},
		{ID: uuid.New(), RequesterID: carol, AddresseeID: alice, Status: domain.FriendshipAccepted},
	}

	mockRepo.On("ListAcceptedByUser", ctx, alice).Return(friendships, nil).Once()
	mockUserRepo.On("GetByIDs", ctx, []uuid.UUID{bob, carol}).Return([]domain.User{
		{ID: bob, DisplayName: "Bob"},
		{ID: carol, DisplayName: "Carol"},
	}, nil).Once()

	friends, err := svc.ListFriends(ctx, alice)

	assert.NoError(t, err)
	assert.Len(t, friends, 2)
	assert.Equal(t, "Bob", friends[0].DisplayName)
	assert.Equal(t, "Carol", friends[1].DisplayName)
}
