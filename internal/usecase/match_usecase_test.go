package usecase

import (
	"context"
	"errors"
	"testing"

	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/domain/skill"
	"skillbarter/internal/domain/user"

	"github.com/google/uuid"
)

func newMatchUsecase(d *memData, cache MatchCache, notifier Notifier) *Match {
	return NewMatchUsecase(
		&fakeSkillRepo{d: d},
		&fakeProfileRepo{d: d},
		&fakeExchangeRepo{d: d},
		cache, 0, notifier,
	)
}

func TestFindMatches_Unauthenticated(t *testing.T) {
	uc := newMatchUsecase(&memData{}, nil, nil)
	_, err := uc.FindMatches(context.Background(), uuid.Nil, uuid.New())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestFindMatches_SkillNotFound(t *testing.T) {
	uc := newMatchUsecase(&memData{}, nil, nil)
	_, err := uc.FindMatches(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestFindMatches_FiltersAndJoinsProfiles(t *testing.T) {
	userA := uuid.New()
	userA2 := uuid.New()
	userB := uuid.New()
	userC := uuid.New()
	userD := uuid.New()

	offerA := newSkill(userA, skill.KindOffer, "Music", "Guitar lessons", skill.StatusActive)
	offerA2 := newSkill(userA2, skill.KindOffer, "Music", "Piano lessons", skill.StatusActive)
	offerOtherCategory := newSkill(userC, skill.KindOffer, "Cooking", "Pasta", skill.StatusActive)
	offerMatched := newSkill(userC, skill.KindOffer, "Music", "Drums", skill.StatusMatched)
	requestSameKind := newSkill(userD, skill.KindRequest, "Music", "Want drums", skill.StatusActive)
	offerOwnedByCaller := newSkill(userB, skill.KindOffer, "Music", "Singing", skill.StatusActive)
	requestB := newSkill(userB, skill.KindRequest, "Music", "Want guitar lessons", skill.StatusActive)

	d := &memData{
		skills: []skill.Skill{
			offerA, offerA2, offerOtherCategory, offerMatched,
			requestSameKind, offerOwnedByCaller, requestB,
		},
		profiles: []user.Profile{
			{ID: uuid.New(), UserID: userA, Name: "Alice"},
		},
	}

	uc := newMatchUsecase(d, nil, nil)
	items, err := uc.FindMatches(context.Background(), userB, requestB.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(items))
	}
	for _, item := range items {
		if item.Skill.Kind != skill.KindOffer {
			t.Fatalf("unexpected kind %q", item.Skill.Kind)
		}
		if item.Skill.Category != "Music" {
			t.Fatalf("unexpected category %q", item.Skill.Category)
		}
		if item.Skill.Status != skill.StatusActive {
			t.Fatalf("unexpected status %q", item.Skill.Status)
		}
		if item.Skill.UserID == userB {
			t.Fatalf("caller's own skill returned")
		}
		if item.Skill.ID == requestB.ID {
			t.Fatalf("queried skill returned as its own match")
		}
	}

	if items[0].Skill.ID != offerA.ID {
		t.Fatalf("expected offerA first, got %v", items[0].Skill.Name)
	}
	if items[0].Profile == nil || items[0].Profile.Name != "Alice" {
		t.Fatalf("expected Alice's profile joined")
	}
	if items[1].Profile != nil {
		t.Fatalf("expected empty profile for owner without one")
	}
}

func TestFindMatches_ServesFromCache(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	requestB := newSkill(userB, skill.KindRequest, "Music", "Want lessons", skill.StatusActive)
	offerA := newSkill(userA, skill.KindOffer, "Music", "Lessons", skill.StatusActive)

	d := &memData{skills: []skill.Skill{requestB, offerA}}
	cache := newFakeCache()
	uc := newMatchUsecase(d, cache, nil)

	first, err := uc.FindMatches(context.Background(), userB, requestB.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 || cache.sets != 1 {
		t.Fatalf("expected 1 match and 1 cache set, got %d/%d", len(first), cache.sets)
	}

	// A listing created behind the cache's back stays invisible until the
	// entry expires or is invalidated.
	d.skills = append(d.skills, newSkill(uuid.New(), skill.KindOffer, "Music", "More lessons", skill.StatusActive))

	second, err := uc.FindMatches(context.Background(), userB, requestB.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 || cache.hits != 1 {
		t.Fatalf("expected cached result, got %d matches, %d hits", len(second), cache.hits)
	}
}

func TestInitiateExchange_Success(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	offer := newSkill(userA, skill.KindOffer, "Music", "Guitar lessons", skill.StatusActive)
	request := newSkill(userB, skill.KindRequest, "Music", "Want guitar lessons", skill.StatusActive)

	d := &memData{skills: []skill.Skill{offer, request}}
	notifier := &fakeNotifier{}
	cache := newFakeCache()
	uc := newMatchUsecase(d, cache, notifier)

	id, err := uc.InitiateExchange(context.Background(), userB, offer.ID, request.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected exchange id")
	}

	if len(d.exchanges) != 1 {
		t.Fatalf("expected exactly one exchange, got %d", len(d.exchanges))
	}
	e := d.exchanges[0]
	if e.Status != exchange.StatusPending {
		t.Fatalf("expected pending exchange, got %q", e.Status)
	}
	if e.TeacherID != userA || e.StudentID != userB {
		t.Fatalf("teacher/student derivation wrong: %v/%v", e.TeacherID, e.StudentID)
	}
	for _, s := range d.skills {
		if s.Status != skill.StatusMatched {
			t.Fatalf("skill %q not matched", s.Name)
		}
	}

	if len(notifier.exchanges) != 1 || notifier.exchanges[0].ID != id {
		t.Fatalf("expected exchange notification")
	}
	if len(cache.deletes) != 2 {
		t.Fatalf("expected both candidate lists invalidated, got %v", cache.deletes)
	}
}

func TestInitiateExchange_Unauthenticated(t *testing.T) {
	uc := newMatchUsecase(&memData{}, nil, nil)
	_, err := uc.InitiateExchange(context.Background(), uuid.Nil, uuid.New(), uuid.New())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestInitiateExchange_SkillNotFound(t *testing.T) {
	userB := uuid.New()
	request := newSkill(userB, skill.KindRequest, "Music", "Want lessons", skill.StatusActive)
	d := &memData{skills: []skill.Skill{request}}

	uc := newMatchUsecase(d, nil, nil)
	_, err := uc.InitiateExchange(context.Background(), userB, uuid.New(), request.ID)
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestInitiateExchange_KindMismatch(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	offer := newSkill(userA, skill.KindOffer, "Music", "Lessons", skill.StatusActive)
	request := newSkill(userB, skill.KindRequest, "Music", "Want lessons", skill.StatusActive)
	d := &memData{skills: []skill.Skill{offer, request}}

	uc := newMatchUsecase(d, nil, nil)
	// Arguments swapped: the offer slot gets a request and vice versa.
	_, err := uc.InitiateExchange(context.Background(), userB, request.ID, offer.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(d.exchanges) != 0 {
		t.Fatalf("no exchange should exist")
	}
}

func TestInitiateExchange_CallerNotParty(t *testing.T) {
	offer := newSkill(uuid.New(), skill.KindOffer, "Music", "Lessons", skill.StatusActive)
	request := newSkill(uuid.New(), skill.KindRequest, "Music", "Want lessons", skill.StatusActive)
	d := &memData{skills: []skill.Skill{offer, request}}

	uc := newMatchUsecase(d, nil, nil)
	_, err := uc.InitiateExchange(context.Background(), uuid.New(), offer.ID, request.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInitiateExchange_SecondAttemptLosesRace(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	offer := newSkill(userA, skill.KindOffer, "Music", "Lessons", skill.StatusActive)
	request := newSkill(userB, skill.KindRequest, "Music", "Want lessons", skill.StatusActive)
	d := &memData{skills: []skill.Skill{offer, request}}

	uc := newMatchUsecase(d, nil, nil)
	if _, err := uc.InitiateExchange(context.Background(), userB, offer.ID, request.ID); err != nil {
		t.Fatalf("first initiate failed: %v", err)
	}

	_, err := uc.InitiateExchange(context.Background(), userA, offer.ID, request.ID)
	if !errors.Is(err, ErrSkillUnavailable) {
		t.Fatalf("expected ErrSkillUnavailable, got %v", err)
	}
	if len(d.exchanges) != 1 {
		t.Fatalf("expected exactly one exchange after replay, got %d", len(d.exchanges))
	}
}

func TestListExchanges(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	e := exchange.Exchange{
		ID:        uuid.New(),
		TeacherID: userA,
		StudentID: userB,
		Status:    exchange.StatusPending,
	}
	d := &memData{exchanges: []exchange.Exchange{e}}
	uc := newMatchUsecase(d, nil, nil)

	for _, caller := range []uuid.UUID{userA, userB} {
		items, err := uc.ListExchanges(context.Background(), caller)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 1 || items[0].ID != e.ID {
			t.Fatalf("participant should see the exchange")
		}
	}

	items, err := uc.ListExchanges(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("outsider should see nothing")
	}

	if _, err := uc.ListExchanges(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
