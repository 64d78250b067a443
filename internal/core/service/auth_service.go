package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog"

	"github.com/freelancehub/client-portal/internal/api/metrics"
	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

// AuthService implements login and signup against the shared store.
//
// Passwords are stored and compared as opaque strings with no hashing,
// matching the original product. Flagged as a known weakness in DESIGN.md.
type AuthService struct {
	store  ports.Store
	cache  StatsCache
	logger zerolog.Logger
}

func NewAuthService(store ports.Store, cache StatsCache, logger zerolog.Logger) *AuthService {
	return &AuthService{store: store, cache: cache, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// A missing account and a wrong password are indistinguishable
			// to the caller.
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return user, nil
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Existence pre-check before insert. The store still signals
	// ErrUserExists on a lost race (unique index in Mongo).
	if _, err := s.store.GetUserByEmail(ctx, input.Email); err == nil {
		metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, ports.NewUser{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	if s.cache != nil {
		// A new client changes the totalClients count.
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
		}
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user signed up")
	return user, nil
}
