package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"habitloop/internal/config"
	"habitloop/internal/domain"
	"habitloop/internal/mocks"
	"habitloop/internal/service"
)

func TestUserService_SetUsername(t *testing.T) {
	ctx := context.Background()
	aliceID := uuid.New()

	t.Run("Lowercases And Saves", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		alice := &domain.User{ID: aliceID, DisplayName: "Alice"}
		mockUserRepo.On("GetByID", ctx, aliceID).Return(alice, nil).Once()
		mockUserRepo.On("GetByUsername", ctx, "alice_01").Return(nil, nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username != nil && *u.Username == "alice_01"
		})).Return(nil).Once()

		user, err := svc.SetUsername(ctx, aliceID, "  Alice_01 ")

		assert.NoError(t, err)
		assert.Equal(t, "alice_01", *user.Username)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		for _, bad := range []string{"ab", "way_too_long_username_here", "spaces here", "dash-ed"} {
			user, err := svc.SetUsername(ctx, aliceID, bad)
			assert.ErrorIs(t, err, service.ErrInvalidUsername, bad)
			assert.Nil(t, user)
		}
		mockUserRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Taken", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		alice := &domain.User{ID: aliceID}
		other := &domain.User{ID: uuid.New()}
		mockUserRepo.On("GetByID", ctx, aliceID).Return(alice, nil).Once()
		mockUserRepo.On("GetByUsername", ctx, "taken").Return(other, nil).Once()

		user, err := svc.SetUsername(ctx, aliceID, "taken")

		assert.ErrorIs(t, err, service.ErrUsernameTaken)
		assert.Nil(t, user)
		mockUserRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Reclaiming Own Username Is Fine", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		name := "alice"
		alice := &domain.User{ID: aliceID, Username: &name}
		mockUserRepo.On("GetByID", ctx, aliceID).Return(alice, nil).Once()
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(alice, nil).Once()
		mockUserRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		user, err := svc.SetUsername(ctx, aliceID, "alice")

		assert.NoError(t, err)
		assert.Equal(t, "alice", *user.Username)
	})
}

func TestUserService_SearchUsers(t *testing.T) {
	ctx := context.Background()
	aliceID := uuid.New()

	t.Run("Short Query Returns Empty", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		profiles, err := svc.SearchUsers(ctx, aliceID, "a")

		assert.NoError(t, err)
		assert.Empty(t, profiles)
		mockUserRepo.AssertNotCalled(t, "SearchByUsername")
	})

	t.Run("Matches By Prefix", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

		bobName := "bobby"
		mockUserRepo.On("SearchByUsername", ctx, "bob", aliceID, 20).Return([]domain.User{
			{ID: uuid.New(), Username: &bobName, DisplayName: "Bob"},
		}, nil).Once()

		profiles, err := svc.SearchUsers(ctx, aliceID, " Bob ")

		assert.NoError(t, err)
		assert.Len(t, profiles, 1)
		assert.Equal(t, "Bob", profiles[0].DisplayName)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	aliceID := uuid.New()

	mockUserRepo := new(mocks.UserRepository)
	svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

	alice := &domain.User{ID: aliceID, DisplayName: "Alice"}
	newName := "Alice B"
	bio := "Morning runner"

	mockUserRepo.On("GetByID", ctx, aliceID).Return(alice, nil).Once()
	mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.DisplayName == "Alice B" && u.Bio != nil && *u.Bio == "Morning runner"
	})).Return(nil).Once()

	user, err := svc.UpdateProfile(ctx, aliceID, domain.UpdateProfileInput{DisplayName: &newName, Bio: &bio})

	assert.NoError(t, err)
	assert.Equal(t, "Alice B", user.DisplayName)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_CheckUsernameAvailable(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(mocks.UserRepository)
	svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

	mockUserRepo.On("GetByUsername", ctx, "free_name").Return(nil, nil).Once()

	available, err := svc.CheckUsernameAvailable(ctx, "free_name")

	assert.NoError(t, err)
	assert.True(t, available)
}

func TestUserService_GetProfilesByIDs(t *testing.T) {
	ctx := context.Background()
	bobID := uuid.New()
	carolID := uuid.New()

	mockUserRepo := new(mocks.UserRepository)
	svc := service.NewUserService(mockUserRepo, nil, &config.Config{})

	bobName := "bob"
	bob := domain.User{ID: bobID, Username: &bobName, DisplayName: "Bob"}
	carol := domain.User{ID: carolID, DisplayName: "Carol"}
	mockUserRepo.On("GetByIDs", ctx, []uuid.UUID{bobID, carolID}).Return([]domain.User{bob, carol}, nil).Once()

	profiles, err := svc.GetProfilesByIDs(ctx, []uuid.UUID{bobID, carolID})

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "bob", *profiles[bobID].Username)
	assert.Equal(t, "Carol", profiles[carolID].DisplayName)
	mockUserRepo.AssertExpectations(t)
}
