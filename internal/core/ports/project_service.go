package ports

import (
	"context"

	"github.com/freelancehub/client-portal/internal/core/domain"
)

// ProjectService is the client-facing surface: a client sees only its own
// projects and may mutate only the drive link.
type ProjectService interface {
	// ListByClient returns the client's projects newest-first. The clientID
	// comes from the URL and is trusted without re-verification.
	ListByClient(ctx context.Context, clientID string) ([]domain.Project, error)
	// SubmitDriveLink sets the delivery link on a project. The lockout on
	// completed projects is enforced in the presentation layer only; the
	// server accepts the write regardless of status.
	SubmitDriveLink(ctx context.Context, projectID, link string) (*domain.Project, error)
}
