package usecase

import (
	"context"
	"errors"
	"time"

	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/domain/skill"
	"skillbarter/internal/domain/user"
	"skillbarter/internal/metrics"
	"skillbarter/internal/repository"

	"github.com/google/uuid"
)

// MatchItem pairs a candidate listing with its owner's profile. Profile is
// nil when the owner never created one; the candidate is still returned.
type MatchItem struct {
	Skill   skill.Skill   `json:"skill"`
	Profile *user.Profile `json:"profile"`
}

type MatchUsecase interface {
	// FindMatches returns active listings of the complementary kind in the
	// same category, excluding the caller's own, in store order. No ranking.
	FindMatches(ctx context.Context, callerID uuid.UUID, skillID uuid.UUID) ([]MatchItem, error)
	// InitiateExchange links an offer and a request into a pending exchange
	// and flips both listings to matched.
	InitiateExchange(ctx context.Context, callerID uuid.UUID, offerSkillID, requestSkillID uuid.UUID) (uuid.UUID, error)
	ListExchanges(ctx context.Context, callerID uuid.UUID) ([]exchange.Exchange, error)
}

type Match struct {
	skills    repository.SkillRepository
	profiles  repository.ProfileRepository
	exchanges repository.ExchangeRepository

	cache    MatchCache
	cacheTTL time.Duration
	notifier Notifier
}

func NewMatchUsecase(
	skills repository.SkillRepository,
	profiles repository.ProfileRepository,
	exchanges repository.ExchangeRepository,
	cache MatchCache,
	cacheTTL time.Duration,
	notifier Notifier,
) *Match {
	return &Match{
		skills:    skills,
		profiles:  profiles,
		exchanges: exchanges,
		cache:     cache,
		cacheTTL:  cacheTTL,
		notifier:  notifier,
	}
}

func (u *Match) FindMatches(ctx context.Context, callerID uuid.UUID, skillID uuid.UUID) ([]MatchItem, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	src, err := u.skills.FindByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, ErrInternal
	}

	wantKind := src.Kind.Complement()

	candidates, err := u.candidates(ctx, src.Category, wantKind)
	if err != nil {
		return nil, ErrInternal
	}

	// Ownership is per caller, so it is filtered after the shared cache.
	out := make([]MatchItem, 0, len(candidates))
	for _, c := range candidates {
		if c.Skill.UserID == callerID {
			continue
		}
		out = append(out, c)
	}

	metrics.MatchesFound.Add(float64(len(out)))
	return out, nil
}

// candidates returns every active listing of the given category and kind,
// joined with owner profiles, serving from cache when possible.
func (u *Match) candidates(ctx context.Context, category string, kind skill.Kind) ([]MatchItem, error) {
	key := matchCacheKey(category, kind)

	if u.cache != nil {
		var cached []MatchItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	skills, err := u.skills.FindActiveByCategoryAndKind(ctx, category, kind)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		ownerIDs = append(ownerIDs, s.UserID)
	}
	profiles, err := u.profiles.FindByUserIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]MatchItem, 0, len(skills))
	for _, s := range skills {
		item := MatchItem{Skill: s}
		if p, ok := profiles[s.UserID]; ok {
			item.Profile = &p
		}
		items = append(items, item)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items, u.cacheTTL)
	}
	return items, nil
}

func (u *Match) InitiateExchange(ctx context.Context, callerID uuid.UUID, offerSkillID, requestSkillID uuid.UUID) (uuid.UUID, error) {
	if callerID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}

	offer, err := u.skills.FindByID(ctx, offerSkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return uuid.Nil, ErrSkillNotFound
		}
		return uuid.Nil, ErrInternal
	}
	request, err := u.skills.FindByID(ctx, requestSkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return uuid.Nil, ErrSkillNotFound
		}
		return uuid.Nil, ErrInternal
	}

	if offer.Kind != skill.KindOffer || request.Kind != skill.KindRequest {
		return uuid.Nil, ErrInvalidInput
	}
	if callerID != offer.UserID && callerID != request.UserID {
		return uuid.Nil, ErrForbidden
	}

	e := exchange.Exchange{
		ID:             uuid.New(),
		OfferSkillID:   offer.ID,
		RequestSkillID: request.ID,
		TeacherID:      offer.UserID,
		StudentID:      request.UserID,
		Status:         exchange.StatusPending,
	}

	if err := u.exchanges.Initiate(ctx, e); err != nil {
		if errors.Is(err, repository.ErrSkillUnavailable) {
			return uuid.Nil, ErrSkillUnavailable
		}
		return uuid.Nil, ErrInternal
	}

	invalidateMatchCache(ctx, u.cache, offer.Category, offer.Kind)
	invalidateMatchCache(ctx, u.cache, request.Category, request.Kind)

	metrics.ExchangesInitiated.Inc()
	if u.notifier != nil {
		u.notifier.ExchangeInitiated(e)
	}
	return e.ID, nil
}

func (u *Match) ListExchanges(ctx context.Context, callerID uuid.UUID) ([]exchange.Exchange, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	items, err := u.exchanges.FindByParticipant(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
