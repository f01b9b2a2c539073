package ws

import (
	"encoding/json"
	"time"

	"skillbarter/internal/domain/exchange"

	"github.com/google/uuid"
)

// Notifier implements usecase.Notifier on top of the hub: each write event
// is pushed to the two exchange participants.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

type exchangeInitiatedEvent struct {
	Type       string    `json:"type"`
	ExchangeID uuid.UUID `json:"exchange_id"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	StudentID  uuid.UUID `json:"student_id"`
	Timestamp  string    `json:"timestamp"`
}

type messageSentEvent struct {
	Type       string    `json:"type"`
	ExchangeID uuid.UUID `json:"exchange_id"`
	MessageID  uuid.UUID `json:"message_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	Timestamp  string    `json:"timestamp"`
}

func (n *Notifier) ExchangeInitiated(e exchange.Exchange) {
	if n == nil || n.hub == nil {
		return
	}

	n.push([]uuid.UUID{e.TeacherID, e.StudentID}, exchangeInitiatedEvent{
		Type:       "exchange_initiated",
		ExchangeID: e.ID,
		TeacherID:  e.TeacherID,
		StudentID:  e.StudentID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) MessageSent(e exchange.Exchange, m exchange.Message) {
	if n == nil || n.hub == nil {
		return
	}

	n.push([]uuid.UUID{e.TeacherID, e.StudentID}, messageSentEvent{
		Type:       "message_sent",
		ExchangeID: e.ID,
		MessageID:  m.ID,
		SenderID:   m.SenderID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) push(userIDs []uuid.UUID, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		return
	}
	n.hub.Push(userIDs, b)
}
