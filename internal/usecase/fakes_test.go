package usecase

import (
	"context"
	"encoding/json"
	"time"

	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/domain/skill"
	"skillbarter/internal/domain/user"
	"skillbarter/internal/repository"

	"github.com/google/uuid"
)

// memData is the in-memory record store the fake repositories share, so the
// exchange fake can apply the same conditional skill patch the real one does.
type memData struct {
	profiles  []user.Profile
	skills    []skill.Skill
	exchanges []exchange.Exchange
	messages  []exchange.Message
}

type fakeProfileRepo struct{ d *memData }

func (r *fakeProfileRepo) Create(_ context.Context, p user.Profile) error {
	for _, existing := range r.d.profiles {
		if existing.UserID == p.UserID {
			return repository.ErrProfileExists
		}
	}
	r.d.profiles = append(r.d.profiles, p)
	return nil
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	for _, p := range r.d.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return user.Profile{}, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserIDs(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error) {
	out := map[uuid.UUID]user.Profile{}
	for _, p := range r.d.profiles {
		for _, id := range userIDs {
			if p.UserID == id {
				out[p.UserID] = p
			}
		}
	}
	return out, nil
}

type fakeSkillRepo struct{ d *memData }

func (r *fakeSkillRepo) Create(_ context.Context, s skill.Skill) error {
	r.d.skills = append(r.d.skills, s)
	return nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	for _, s := range r.d.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (r *fakeSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	out := []skill.Skill{}
	for _, s := range r.d.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) FindActiveByCategoryAndKind(_ context.Context, category string, kind skill.Kind) ([]skill.Skill, error) {
	out := []skill.Skill{}
	for _, s := range r.d.skills {
		if s.Category == category && s.Kind == kind && s.Status == skill.StatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeExchangeRepo struct{ d *memData }

func (r *fakeExchangeRepo) Initiate(_ context.Context, e exchange.Exchange) error {
	for _, skillID := range []uuid.UUID{e.OfferSkillID, e.RequestSkillID} {
		s, ok := r.find(skillID)
		if !ok || s.Status != skill.StatusActive {
			return repository.ErrSkillUnavailable
		}
	}
	for i := range r.d.skills {
		if r.d.skills[i].ID == e.OfferSkillID || r.d.skills[i].ID == e.RequestSkillID {
			r.d.skills[i].Status = skill.StatusMatched
		}
	}
	r.d.exchanges = append(r.d.exchanges, e)
	return nil
}

func (r *fakeExchangeRepo) find(skillID uuid.UUID) (skill.Skill, bool) {
	for _, s := range r.d.skills {
		if s.ID == skillID {
			return s, true
		}
	}
	return skill.Skill{}, false
}

func (r *fakeExchangeRepo) FindByID(_ context.Context, id uuid.UUID) (exchange.Exchange, error) {
	for _, e := range r.d.exchanges {
		if e.ID == id {
			return e, nil
		}
	}
	return exchange.Exchange{}, repository.ErrExchangeNotFound
}

func (r *fakeExchangeRepo) FindByParticipant(_ context.Context, userID uuid.UUID) ([]exchange.Exchange, error) {
	out := []exchange.Exchange{}
	for _, e := range r.d.exchanges {
		if e.Participant(userID) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMessageRepo struct{ d *memData }

func (r *fakeMessageRepo) Create(_ context.Context, m exchange.Message) error {
	r.d.messages = append(r.d.messages, m)
	return nil
}

func (r *fakeMessageRepo) FindByExchangeID(_ context.Context, exchangeID uuid.UUID) ([]exchange.Message, error) {
	out := []exchange.Message{}
	for _, m := range r.d.messages {
		if m.ExchangeID == exchangeID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCache struct {
	entries map[string][]byte
	sets    int
	hits    int
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	c.hits++
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes = append(c.deletes, key)
	return nil
}

type fakeNotifier struct {
	exchanges []exchange.Exchange
	messages  []exchange.Message
}

func (n *fakeNotifier) ExchangeInitiated(e exchange.Exchange) {
	n.exchanges = append(n.exchanges, e)
}

func (n *fakeNotifier) MessageSent(_ exchange.Exchange, m exchange.Message) {
	n.messages = append(n.messages, m)
}

func newSkill(owner uuid.UUID, kind skill.Kind, category string, name string, status skill.Status) skill.Skill {
	return skill.Skill{
		ID:       uuid.New(),
		UserID:   owner,
		Kind:     kind,
		Category: category,
		Name:     name,
		Status:   status,
	}
}
