package dto

import (
	"time"

	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/domain/skill"
	"skillbarter/internal/domain/user"
	"skillbarter/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	Location       *string   `json:"location"`
	Availability   []string  `json:"availability"`
	PortfolioLinks []string  `json:"portfolio_links"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		Bio:            p.Bio,
		Location:       p.Location,
		Availability:   p.Availability,
		PortfolioLinks: p.PortfolioLinks,
		CreatedAt:      p.CreatedAt,
	}
}

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Kind:        string(s.Kind),
		Category:    s.Category,
		Name:        s.Name,
		Description: s.Description,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

type MatchResponse struct {
	Skill   SkillResponse    `json:"skill"`
	Profile *ProfileResponse `json:"profile"`
}

func NewMatchResponse(m usecase.MatchItem) MatchResponse {
	out := MatchResponse{Skill: NewSkillResponse(m.Skill)}
	if m.Profile != nil {
		p := NewProfileResponse(*m.Profile)
		out.Profile = &p
	}
	return out
}

type ExchangeResponse struct {
	ID             uuid.UUID `json:"id"`
	OfferSkillID   uuid.UUID `json:"offer_skill_id"`
	RequestSkillID uuid.UUID `json:"request_skill_id"`
	TeacherID      uuid.UUID `json:"teacher_id"`
	StudentID      uuid.UUID `json:"student_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewExchangeResponse(e exchange.Exchange) ExchangeResponse {
	return ExchangeResponse{
		ID:             e.ID,
		OfferSkillID:   e.OfferSkillID,
		RequestSkillID: e.RequestSkillID,
		TeacherID:      e.TeacherID,
		StudentID:      e.StudentID,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
	}
}

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	ExchangeID uuid.UUID `json:"exchange_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMessageResponse(m exchange.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		ExchangeID: m.ExchangeID,
		SenderID:   m.SenderID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}
