package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"habitloop/internal/domain"
)

type FriendshipRepository interface {
	Create(ctx context.Context, friendship *domain.Friendship) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error)
	// GetByPair looks up the directed record (requester -> addressee). Callers
	// needing the symmetric view query both orderings.
	GetByPair(ctx context.Context, requesterID, addresseeID uuid.UUID) (*domain.Friendship, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error)
	ListPendingByAddressee(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error)
}

type friendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *domain.Friendship) error {
	query := `
		INSERT INTO friendships (friendship_id, requester_id, addressee_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		friendship.ID, friendship.RequesterID, friendship.AddresseeID, friendship.Status,
	).Scan(&friendship.CreatedAt, &friendship.UpdatedAt)
}

func (r *friendshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error) {
	var friendship domain.Friendship
	query := `SELECT * FROM friendships WHERE friendship_id = $1`

	err := r.db.GetContext(ctx, &friendship, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) GetByPair(ctx context.Context, requesterID, addresseeID uuid.UUID) (*domain.Friendship, error) {
	var friendship domain.Friendship
	query := `SELECT * FROM friendships WHERE requester_id = $1 AND addressee_id = $2`

	err := r.db.GetContext(ctx, &friendship, query, requesterID, addresseeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error {
	query := `UPDATE friendships SET status = $2, updated_at = NOW() WHERE friendship_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *friendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM friendships WHERE friendship_id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *friendshipRepository) ListAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	var friendships []domain.Friendship
	query := `
		SELECT * FROM friendships
		WHERE (requester_id = $1 OR addressee_id = $1) AND status = 'accepted'
		ORDER BY created_at`

	err := r.db.SelectContext(ctx, &friendships, query, userID)
	return friendships, err
}

func (r *friendshipRepository) ListPendingByAddressee(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error) {
	var friendships []domain.Friendship
	query := `
		SELECT * FROM friendships
		WHERE addressee_id = $1 AND status = 'pending'
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &friendships, query, addresseeID)
	return friendships, err
}
