package usecase

import (
	"context"
	"strings"

	"skillbarter/internal/domain/skill"
	"skillbarter/internal/repository"

	"github.com/google/uuid"
)

type CreateSkillInput struct {
	Kind        skill.Kind
	Category    string
	Name        string
	Description string
}

type SkillUsecase interface {
	// List returns the caller's own listings; an unauthenticated caller gets
	// an empty slice, not an error.
	List(ctx context.Context, callerID uuid.UUID) ([]skill.Skill, error)
	Create(ctx context.Context, callerID uuid.UUID, in CreateSkillInput) (uuid.UUID, error)
}

type SkillService struct {
	skills repository.SkillRepository
	cache  MatchCache
}

func NewSkillUsecase(skills repository.SkillRepository, cache MatchCache) *SkillService {
	return &SkillService{skills: skills, cache: cache}
}

func (u *SkillService) List(ctx context.Context, callerID uuid.UUID) ([]skill.Skill, error) {
	if callerID == uuid.Nil {
		return []skill.Skill{}, nil
	}

	items, err := u.skills.FindByUserID(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SkillService) Create(ctx context.Context, callerID uuid.UUID, in CreateSkillInput) (uuid.UUID, error) {
	if callerID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	if !in.Kind.Valid() {
		return uuid.Nil, ErrInvalidInput
	}
	if strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Name) == "" {
		return uuid.Nil, ErrInvalidInput
	}

	s := skill.Skill{
		ID:          uuid.New(),
		UserID:      callerID,
		Kind:        in.Kind,
		Category:    in.Category,
		Name:        in.Name,
		Description: in.Description,
		// Status is forced regardless of anything the client sent.
		Status: skill.StatusActive,
	}

	if err := u.skills.Create(ctx, s); err != nil {
		return uuid.Nil, ErrInternal
	}

	invalidateMatchCache(ctx, u.cache, s.Category, s.Kind)
	return s.ID, nil
}
