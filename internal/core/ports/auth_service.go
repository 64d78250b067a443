package ports

import (
	"context"

	"github.com/freelancehub/client-portal/internal/core/domain"
)

// SignupInput is the DTO passed from the transport layer to AuthService.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string // optional; defaults to client
}

// AuthService handles login and signup.
//
// No session or token is issued: the identity returned by Login is cached
// by the browser and trusted at face value on follow-up calls. This is a
// known weakness of the original design, preserved deliberately.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
}
