package usecase

import (
	"context"
	"errors"
	"strings"

	"skillbarter/internal/domain/user"
	"skillbarter/internal/repository"

	"github.com/google/uuid"
)

type CreateProfileInput struct {
	Name           string
	Bio            string
	Location       *string
	Availability   []string
	PortfolioLinks []string
}

type ProfileUsecase interface {
	// Get returns the caller's profile. An unauthenticated caller or a caller
	// without a profile gets (zero, false, nil) rather than an error.
	Get(ctx context.Context, callerID uuid.UUID) (user.Profile, bool, error)
	Create(ctx context.Context, callerID uuid.UUID, in CreateProfileInput) (uuid.UUID, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Get(ctx context.Context, callerID uuid.UUID) (user.Profile, bool, error) {
	if callerID == uuid.Nil {
		return user.Profile{}, false, nil
	}

	p, err := u.profiles.FindByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, false, nil
		}
		return user.Profile{}, false, ErrInternal
	}
	return p, true, nil
}

func (u *Profile) Create(ctx context.Context, callerID uuid.UUID, in CreateProfileInput) (uuid.UUID, error) {
	if callerID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return uuid.Nil, ErrInvalidInput
	}

	p := user.Profile{
		ID:             uuid.New(),
		UserID:         callerID,
		Name:           in.Name,
		Bio:            in.Bio,
		Location:       in.Location,
		Availability:   in.Availability,
		PortfolioLinks: in.PortfolioLinks,
	}
	if p.Availability == nil {
		p.Availability = []string{}
	}
	if p.PortfolioLinks == nil {
		p.PortfolioLinks = []string{}
	}

	if err := u.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return uuid.Nil, ErrProfileExists
		}
		return uuid.Nil, ErrInternal
	}
	return p.ID, nil
}
