package exchange

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusActive || s == StatusCompleted
}

// Exchange links one offer listing with one request listing. The teacher is
// the offer's owner, the student the request's owner. It is created pending;
// the active and completed states are reserved for future flows.
type Exchange struct {
	ID             uuid.UUID
	OfferSkillID   uuid.UUID
	RequestSkillID uuid.UUID
	TeacherID      uuid.UUID
	StudentID      uuid.UUID
	Status         Status
	CreatedAt      time.Time
}

// Participant reports whether the given user is a party to the exchange.
func (e Exchange) Participant(userID uuid.UUID) bool {
	return e.TeacherID == userID || e.StudentID == userID
}

// Message is append-only chat between exchange participants.
type Message struct {
	ID         uuid.UUID
	ExchangeID uuid.UUID
	SenderID   uuid.UUID
	Content    string
	CreatedAt  time.Time
}
