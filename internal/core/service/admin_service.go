package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelancehub/client-portal/internal/api/metrics"
	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

// ErrInvalidProject is returned when a create/update payload fails the
// business rules that are not expressible as schema tags.
var ErrInvalidProject = errors.New("invalid project data")

// StatsCache abstracts the Redis-backed cache for the admin dashboard
// counts. Get returns (nil, nil) on a miss. A nil StatsCache is valid and
// behaves as a permanent miss.
type StatsCache interface {
	Get(ctx context.Context) (*ports.StatsResult, error)
	Set(ctx context.Context, stats *ports.StatsResult) error
	Invalidate(ctx context.Context) error
}

// AdminService implements the management use-cases.
type AdminService struct {
	store  ports.Store
	cache  StatsCache
	logger zerolog.Logger
}

func NewAdminService(store ports.Store, cache StatsCache, logger zerolog.Logger) *AdminService {
	return &AdminService{store: store, cache: cache, logger: logger}
}

func (s *AdminService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if input.Name == "" || input.Description == "" || input.ClientID == "" {
		return nil, ErrInvalidProject
	}
	status := domain.ProjectStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusInProgress
	}
	if !status.Valid() {
		return nil, ErrInvalidProject
	}
	if input.CompletionPercentage < 0 || input.CompletionPercentage > 100 {
		return nil, ErrInvalidProject
	}

	project, err := s.store.CreateProject(ctx, ports.NewProject{
		Name:                 input.Name,
		Description:          input.Description,
		Status:               status,
		CompletionPercentage: input.CompletionPercentage,
		Notes:                input.Notes,
		ClientID:             input.ClientID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create project")
		return nil, err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(string(project.Status)).Inc()
	s.invalidateStats(ctx)
	s.logger.Info().Str("project_id", project.ID).Str("client_id", project.ClientID).Msg("project created")
	return project, nil
}

func (s *AdminService) UpdateProject(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	patch := ports.ProjectPatch{
		Name:        input.Name,
		Description: input.Description,
		Notes:       input.Notes,
		ClientID:    input.ClientID,
	}
	if input.Name != nil && *input.Name == "" {
		return nil, ErrInvalidProject
	}
	if input.Description != nil && *input.Description == "" {
		return nil, ErrInvalidProject
	}
	if input.Status != nil {
		status := domain.ProjectStatus(*input.Status)
		if !status.Valid() {
			return nil, ErrInvalidProject
		}
		patch.Status = &status
	}
	if input.CompletionPercentage != nil {
		if *input.CompletionPercentage < 0 || *input.CompletionPercentage > 100 {
			return nil, ErrInvalidProject
		}
		patch.CompletionPercentage = input.CompletionPercentage
	}

	project, err := s.store.UpdateProject(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Str("project_id", id).Msg("project updated")
	return project, nil
}

func (s *AdminService) DeleteProject(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	metrics.ProjectsDeletedTotal.Inc()
	s.invalidateStats(ctx)
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *AdminService) ListProjectsWithClients(ctx context.Context) ([]domain.ProjectWithClient, error) {
	projects, err := s.store.GetAllProjectsWithClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *AdminService) ListClients(ctx context.Context) ([]domain.User, error) {
	clients, err := s.store.GetAllClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *AdminService) GetClientWithProjects(ctx context.Context, clientID string) (*domain.ClientWithProjects, error) {
	return s.store.GetClientWithProjects(ctx, clientID)
}

// Stats computes the dashboard counts, serving from the cache when a fresh
// entry exists. Cache failures are non-fatal: the counts are recomputed
// from the store and the error is logged at warn.
func (s *AdminService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, recomputing")
		} else if cached != nil {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
	}

	clients, err := s.store.GetAllClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	projects, err := s.store.GetAllProjectsWithClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := &ports.StatsResult{TotalClients: len(clients)}
	for _, p := range projects {
		switch p.Status {
		case domain.StatusInProgress:
			stats.ActiveProjects++
		case domain.StatusWaitingFeedback:
			stats.PendingFeedback++
		case domain.StatusComplete:
			stats.Completed++
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *AdminService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}
