package usecase

import (
	"context"
	"errors"
	"testing"

	"skillbarter/internal/domain/exchange"

	"github.com/google/uuid"
)

func newMessageUsecase(d *memData, notifier Notifier) *Message {
	return NewMessageUsecase(&fakeExchangeRepo{d: d}, &fakeMessageRepo{d: d}, notifier)
}

func seededExchange(d *memData) (exchange.Exchange, uuid.UUID, uuid.UUID) {
	teacher := uuid.New()
	student := uuid.New()
	e := exchange.Exchange{
		ID:        uuid.New(),
		TeacherID: teacher,
		StudentID: student,
		Status:    exchange.StatusPending,
	}
	d.exchanges = append(d.exchanges, e)
	return e, teacher, student
}

func TestMessage_SendThenList(t *testing.T) {
	d := &memData{}
	e, teacher, student := seededExchange(d)
	notifier := &fakeNotifier{}
	uc := newMessageUsecase(d, notifier)

	id, err := uc.Send(context.Background(), student, e.ID, "hi, when can we start?")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	for _, caller := range []uuid.UUID{teacher, student} {
		items, err := uc.List(context.Background(), caller, e.ID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 message, got %d", len(items))
		}
		if items[0].ID != id || items[0].SenderID != student || items[0].Content != "hi, when can we start?" {
			t.Fatalf("message roundtrip mismatch: %+v", items[0])
		}
	}

	if len(notifier.messages) != 1 || notifier.messages[0].ID != id {
		t.Fatalf("expected message notification")
	}
}

func TestMessage_PreservesCreationOrder(t *testing.T) {
	d := &memData{}
	e, teacher, student := seededExchange(d)
	uc := newMessageUsecase(d, nil)

	contents := []string{"first", "second", "third"}
	for i, content := range contents {
		sender := teacher
		if i%2 == 1 {
			sender = student
		}
		if _, err := uc.Send(context.Background(), sender, e.ID, content); err != nil {
			t.Fatalf("send %d failed: %v", i, err)
		}
	}

	items, err := uc.List(context.Background(), teacher, e.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != len(contents) {
		t.Fatalf("expected %d messages, got %d", len(contents), len(items))
	}
	for i, m := range items {
		if m.Content != contents[i] {
			t.Fatalf("order broken at %d: %q", i, m.Content)
		}
	}
}

func TestMessage_NonParticipantForbidden(t *testing.T) {
	d := &memData{}
	e, _, _ := seededExchange(d)
	uc := newMessageUsecase(d, nil)
	outsider := uuid.New()

	if _, err := uc.List(context.Background(), outsider, e.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on list, got %v", err)
	}
	if _, err := uc.Send(context.Background(), outsider, e.ID, "let me in"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on send, got %v", err)
	}
	if len(d.messages) != 0 {
		t.Fatalf("forbidden send must not persist")
	}
}

func TestMessage_ExchangeNotFound(t *testing.T) {
	uc := newMessageUsecase(&memData{}, nil)
	if _, err := uc.List(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrExchangeNotFound) {
		t.Fatalf("expected ErrExchangeNotFound, got %v", err)
	}
}

func TestMessage_Unauthenticated(t *testing.T) {
	d := &memData{}
	e, _, _ := seededExchange(d)
	uc := newMessageUsecase(d, nil)

	if _, err := uc.Send(context.Background(), uuid.Nil, e.ID, "anon"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
