package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public face of a user. At most one exists per user.
type Profile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Bio            string
	Location       *string
	Availability   []string
	PortfolioLinks []string
	CreatedAt      time.Time
}
