package domain

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipRejected FriendshipStatus = "rejected"
)

func (s FriendshipStatus) IsValid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted, FriendshipRejected:
		return true
	}
	return false
}

// Friendship is stored directed (who asked whom) but reads treat an accepted
// record as symmetric, so lookups always check both orderings of the pair.
type Friendship struct {
	ID          uuid.UUID        `json:"id" db:"friendship_id"`
	RequesterID uuid.UUID        `json:"requester_id" db:"requester_id"`
	AddresseeID uuid.UUID        `json:"addressee_id" db:"addressee_id"`
	Status      FriendshipStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// PendingRequest is an incoming request awaiting the addressee's decision.
type PendingRequest struct {
	FriendshipID uuid.UUID    `json:"friendship_id"`
	RequesterID  uuid.UUID    `json:"requester_id"`
	Requester    *UserProfile `json:"requester,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
