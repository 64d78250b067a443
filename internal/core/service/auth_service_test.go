package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

func TestAuthService_Signup_Success(t *testing.T) {
	store := newStubStore()
	svc := NewAuthService(store, nil, zerolog.Nop())

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "alice@example.com",
		Password: "pass123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected role to default to client, got %s", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}

	// The stored record is retrievable by email with the same id.
	found, err := store.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %s, got %s", user.ID, found.ID)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	store := newStubStore()
	svc := NewAuthService(store, nil, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "bob@example.com", Password: "p", Name: "Bob"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "bob@example.com", Password: "p2", Name: "Bob 2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(store.users))
	}
}

func TestAuthService_Signup_BadRole(t *testing.T) {
	svc := NewAuthService(newStubStore(), nil, zerolog.Nop())

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Email: "x@example.com", Password: "p", Name: "X", Role: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Signup_InvalidatesStatsCache(t *testing.T) {
	store := newStubStore()
	cache := &stubStatsCache{entry: &ports.StatsResult{TotalClients: 1}}
	svc := NewAuthService(store, cache, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "c@example.com", Password: "p", Name: "C"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected 1 invalidation, got %d", cache.invalidates)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubStore()
	svc := NewAuthService(store, nil, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "carol@example.com", Password: "s3cret", Name: "Carol", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Name != "Carol" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := newStubStore()
	svc := NewAuthService(store, nil, zerolog.Nop())

	_, _ = svc.Signup(context.Background(), ports.SignupInput{Email: "dave@example.com", Password: "goodpass", Name: "Dave"})
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubStore(), nil, zerolog.Nop())

	// A missing account surfaces as invalid credentials, not as not-found.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubStore(), nil, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
