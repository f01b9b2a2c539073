package usecase

import (
	"context"
	"errors"

	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/metrics"
	"skillbarter/internal/repository"

	"github.com/google/uuid"
)

type MessageUsecase interface {
	List(ctx context.Context, callerID uuid.UUID, exchangeID uuid.UUID) ([]exchange.Message, error)
	Send(ctx context.Context, callerID uuid.UUID, exchangeID uuid.UUID, content string) (uuid.UUID, error)
}

type Message struct {
	exchanges repository.ExchangeRepository
	messages  repository.MessageRepository
	notifier  Notifier
}

func NewMessageUsecase(exchanges repository.ExchangeRepository, messages repository.MessageRepository, notifier Notifier) *Message {
	return &Message{exchanges: exchanges, messages: messages, notifier: notifier}
}

func (u *Message) List(ctx context.Context, callerID uuid.UUID, exchangeID uuid.UUID) ([]exchange.Message, error) {
	if _, err := u.memberOf(ctx, callerID, exchangeID); err != nil {
		return nil, err
	}

	items, err := u.messages.FindByExchangeID(ctx, exchangeID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Message) Send(ctx context.Context, callerID uuid.UUID, exchangeID uuid.UUID, content string) (uuid.UUID, error) {
	ex, err := u.memberOf(ctx, callerID, exchangeID)
	if err != nil {
		return uuid.Nil, err
	}

	// Content is deliberately unconstrained: no length cap, no filtering.
	m := exchange.Message{
		ID:         uuid.New(),
		ExchangeID: exchangeID,
		SenderID:   callerID,
		Content:    content,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return uuid.Nil, ErrInternal
	}

	metrics.MessagesSent.Inc()
	if u.notifier != nil {
		u.notifier.MessageSent(ex, m)
	}
	return m.ID, nil
}

// memberOf loads the exchange and gates on participation: only the teacher
// and the student may read or append its messages.
func (u *Message) memberOf(ctx context.Context, callerID uuid.UUID, exchangeID uuid.UUID) (exchange.Exchange, error) {
	if callerID == uuid.Nil {
		return exchange.Exchange{}, ErrUnauthenticated
	}

	ex, err := u.exchanges.FindByID(ctx, exchangeID)
	if err != nil {
		if errors.Is(err, repository.ErrExchangeNotFound) {
			return exchange.Exchange{}, ErrExchangeNotFound
		}
		return exchange.Exchange{}, ErrInternal
	}

	if !ex.Participant(callerID) {
		return exchange.Exchange{}, ErrForbidden
	}
	return ex, nil
}
