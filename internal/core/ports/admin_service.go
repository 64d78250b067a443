package ports

import (
	"context"

	"github.com/freelancehub/client-portal/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	Name                 string
	Description          string
	Status               string // optional; defaults to in-progress
	CompletionPercentage int
	Notes                string
	ClientID             string
}

// UpdateProjectInput is a partial update; nil fields are untouched.
type UpdateProjectInput struct {
	Name                 *string
	Description          *string
	Status               *string
	CompletionPercentage *int
	Notes                *string
	ClientID             *string
}

// StatsResult holds the aggregate counts shown on the admin dashboard.
type StatsResult struct {
	TotalClients    int `json:"totalClients"`
	ActiveProjects  int `json:"activeProjects"`
	PendingFeedback int `json:"pendingFeedback"`
	Completed       int `json:"completed"`
}

// AdminService defines the management surface: full project CRUD, client
// listings, and aggregate statistics.
type AdminService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjectsWithClients(ctx context.Context) ([]domain.ProjectWithClient, error)
	ListClients(ctx context.Context) ([]domain.User, error)
	GetClientWithProjects(ctx context.Context, clientID string) (*domain.ClientWithProjects, error)
	Stats(ctx context.Context) (*StatsResult, error)
}
