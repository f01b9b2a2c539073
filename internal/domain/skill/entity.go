package skill

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes a listing that teaches from a listing that wants to learn.
type Kind string

const (
	KindOffer   Kind = "offer"
	KindRequest Kind = "request"
)

func (k Kind) Valid() bool {
	return k == KindOffer || k == KindRequest
}

// Complement returns the kind a listing pairs with: offers match requests
// and requests match offers.
func (k Kind) Complement() Kind {
	if k == KindOffer {
		return KindRequest
	}
	return KindOffer
}

type Status string

const (
	StatusActive    Status = "active"
	StatusMatched   Status = "matched"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusMatched || s == StatusCompleted
}

// Skill is a single barter listing. It is created active and flips to
// matched when paired into an exchange. StatusCompleted is reserved for a
// completion flow that does not exist yet; nothing transitions into it.
type Skill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        Kind
	Category    string
	Name        string
	Description string
	Status      Status
	CreatedAt   time.Time
}
