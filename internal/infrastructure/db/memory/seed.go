package memory

import (
	"context"
	"fmt"

	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

// Seed loads the demo fixtures the original product created on startup: an
// admin account, a demo client, and one project in progress. Intended for
// local development only (gated by SEED_DEMO).
func (s *Store) Seed(ctx context.Context) error {
	if _, err := s.CreateUser(ctx, ports.NewUser{
		Email:    "admin@freelancehub.com",
		Password: "admin123",
		Name:     "Admin User",
		Role:     domain.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	client, err := s.CreateUser(ctx, ports.NewUser{
		Email:    "client@example.com",
		Password: "client123",
		Name:     "Demo Client",
		Role:     domain.RoleClient,
	})
	if err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	if _, err := s.CreateProject(ctx, ports.NewProject{
		Name:                 "Website Redesign",
		Description:          "Complete redesign of company website with modern UI/UX",
		Status:               domain.StatusInProgress,
		CompletionPercentage: 75,
		Notes:                "Please review the latest mockups and provide feedback on the color scheme.",
		ClientID:             client.ID,
	}); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	return nil
}
