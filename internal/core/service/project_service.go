package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelancehub/client-portal/internal/api/metrics"
	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

// ProjectService implements the client-facing use-cases. The clientID is
// whatever the browser sent in the URL; no re-verification happens here.
type ProjectService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewProjectService(store ports.Store, logger zerolog.Logger) *ProjectService {
	return &ProjectService{store: store, logger: logger}
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	projects, err := s.store.GetProjectsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client projects: %w", err)
	}
	return projects, nil
}

// SubmitDriveLink writes the delivery link through a single partial update.
// Completed projects are not rejected here: the lockout after completion
// lives in the presentation layer only, matching the original product.
func (s *ProjectService) SubmitDriveLink(ctx context.Context, projectID, link string) (*domain.Project, error) {
	project, err := s.store.UpdateProject(ctx, projectID, ports.ProjectPatch{DriveLink: &link})
	if err != nil {
		return nil, err
	}

	metrics.DriveLinksSubmittedTotal.Inc()
	s.logger.Info().Str("project_id", projectID).Msg("drive link submitted")
	return project, nil
}
