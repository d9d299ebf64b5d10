package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"habitloop/internal/config"
	"habitloop/internal/domain"
	"habitloop/internal/repository"
)

var (
	ErrInvalidUsername    = errors.New("username must be 3-20 characters, lowercase letters, digits, and underscores only")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrStorageUnavailable = errors.New("avatar storage unavailable")
)

const searchResultLimit = 20

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error)
	SetUsername(ctx context.Context, userID uuid.UUID, username string) (*domain.User, error)
	CheckUsernameAvailable(ctx context.Context, username string) (bool, error)
	SearchUsers(ctx context.Context, callerID uuid.UUID, query string) ([]domain.UserProfile, error)
	GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserProfile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error)
}

type userService struct {
	userRepo    repository.UserRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewUserService(userRepo repository.UserRepository, minioClient *minio.Client, cfg *config.Config) UserService {
	return &userService{
		userRepo:    userRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetUsername(ctx context.Context, userID uuid.UUID, username string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !domain.IsValidUsername(username) {
		return nil, ErrInvalidUsername
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, ErrUsernameTaken
	}

	user.Username = &username
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CheckUsernameAvailable(ctx context.Context, username string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !domain.IsValidUsername(username) {
		return false, ErrInvalidUsername
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

func (s *userService) SearchUsers(ctx context.Context, callerID uuid.UUID, query string) ([]domain.UserProfile, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return []domain.UserProfile{}, nil
	}

	users, err := s.userRepo.SearchByUsername(ctx, query, callerID, searchResultLimit)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

func (s *userService) GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.UserProfile, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	profiles := make(map[uuid.UUID]domain.UserProfile, len(users))
	for i := range users {
		profiles[users[i].ID] = users[i].Profile()
	}
	return profiles, nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	storagePath := fmt.Sprintf("avatars/%s/%s", userID.String(), uuid.New().String())

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	avatarURL := s.publicURL(storagePath)
	user.AvatarURL = &avatarURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}
	return user, nil
}

func (s *userService) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
