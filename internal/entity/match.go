package entity

import "time"

type MatchStatus string

const (
	MatchPending     MatchStatus = "PENDING"
	MatchAccepted    MatchStatus = "ACCEPTED"
	MatchNegotiating MatchStatus = "NEGOTIATING"
	MatchCompleted   MatchStatus = "COMPLETED"
	MatchCancelled   MatchStatus = "CANCELLED"
	MatchExpired     MatchStatus = "EXPIRED"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchAccepted, MatchNegotiating, MatchCompleted, MatchCancelled, MatchExpired:
		return true
	}
	return false
}

// Terminal reports whether the status ends the match lifecycle.
func (s MatchStatus) Terminal() bool {
	return s == MatchCompleted || s == MatchCancelled || s == MatchExpired
}

// matchTransitions is the full transition table; terminal states allow none.
var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchPending:     {MatchAccepted, MatchCancelled},
	MatchAccepted:    {MatchNegotiating, MatchCancelled},
	MatchNegotiating: {MatchCompleted, MatchCancelled},
}

// CanTransition reports whether from→to is a legal status transition.
func (s MatchStatus) CanTransition(to MatchStatus) bool {
	for _, allowed := range matchTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Match is a mutual-like pairing between two users. Participants and their
// garments are stored in canonical ascending user-id order, so the same pair
// always produces the same row regardless of which side swiped last. At most
// one non-cancelled match exists per pair (partial unique index).
type Match struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	User1ID    uint        `gorm:"not null;index:idx_matches_users,priority:1" json:"user1_id"`
	User2ID    uint        `gorm:"not null;index:idx_matches_users,priority:2" json:"user2_id"`
	Garment1ID uint        `gorm:"not null" json:"garment1_id"`
	Garment2ID *uint       `json:"garment2_id,omitempty"`
	Status     MatchStatus `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// HasParticipant reports whether userID is one of the two matched users.
func (m *Match) HasParticipant(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// Counterpart returns the other participant's id.
func (m *Match) Counterpart(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// OrderParticipants canonicalizes a matched pair: the user with the lower id
// becomes user1 and keeps their garment in slot 1. The result is independent
// of argument order, which is what the storage-level uniqueness on
// (user1_id, user2_id) is defined against.
func OrderParticipants(userA, userB, garmentA, garmentB uint) (user1, user2, garment1, garment2 uint) {
	if userA < userB {
		return userA, userB, garmentA, garmentB
	}
	return userB, userA, garmentB, garmentA
}

// MatchStats summarizes a user's match history.
type MatchStats struct {
	TotalMatches   int64 `json:"total_matches"`
	CompletedSwaps int64 `json:"completed_swaps"`
	PendingMatches int64 `json:"pending_matches"`
}
