package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestProfile_GetUnauthenticated(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})

	_, found, err := uc.Get(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("anonymous caller must not resolve a profile")
	}
}

func TestProfile_GetMissing(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})

	_, found, err := uc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected no profile for a fresh user")
	}
}

func TestProfile_CreateThenGet(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})
	caller := uuid.New()
	location := "Jakarta"

	id, err := uc.Create(context.Background(), caller, CreateProfileInput{
		Name:           "Alice",
		Bio:            "teaches woodworking",
		Location:       &location,
		Availability:   []string{"weekends"},
		PortfolioLinks: []string{"https://example.com/alice"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, found, err := uc.Get(context.Background(), caller)
	if err != nil || !found {
		t.Fatalf("expected profile after create, found=%v err=%v", found, err)
	}
	if p.ID != id || p.UserID != caller || p.Name != "Alice" {
		t.Fatalf("profile roundtrip mismatch: %+v", p)
	}
	if p.Location == nil || *p.Location != "Jakarta" {
		t.Fatalf("location not preserved: %+v", p.Location)
	}
}

func TestProfile_CreateDefaultsEmptySlices(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})
	caller := uuid.New()

	if _, err := uc.Create(context.Background(), caller, CreateProfileInput{Name: "Bob"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, _, err := uc.Get(context.Background(), caller)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Availability == nil || p.PortfolioLinks == nil {
		t.Fatalf("nil slices should be normalized to empty: %+v", p)
	}
}

func TestProfile_CreateUnauthenticated(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})

	if _, err := uc.Create(context.Background(), uuid.Nil, CreateProfileInput{Name: "ghost"}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestProfile_CreateBlankName(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})

	if _, err := uc.Create(context.Background(), uuid.New(), CreateProfileInput{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfile_CreateDuplicate(t *testing.T) {
	uc := NewProfileUsecase(&fakeProfileRepo{d: &memData{}})
	caller := uuid.New()

	if _, err := uc.Create(context.Background(), caller, CreateProfileInput{Name: "first"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := uc.Create(context.Background(), caller, CreateProfileInput{Name: "second"}); !errors.Is(err, ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}
}
