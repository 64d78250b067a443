package ports

import (
	"context"

	"github.com/freelancehub/client-portal/internal/core/domain"
)

// NewUser carries the fields required to create a user.
type NewUser struct {
	Email    string
	Password string
	Name     string
	Role     string // defaults to client when empty
}

// NewProject carries the fields required to create a project. Zero values
// for Status and CompletionPercentage are filled with defaults by the store.
type NewProject struct {
	Name                 string
	Description          string
	Status               domain.ProjectStatus
	CompletionPercentage int
	Notes                string
	DriveLink            string
	ClientID             string
}

// ProjectPatch is a partial update: nil fields are left untouched, non-nil
// fields are merged into the stored record.
type ProjectPatch struct {
	Name                 *string
	Description          *string
	Status               *domain.ProjectStatus
	CompletionPercentage *int
	Notes                *string
	DriveLink            *string
	ClientID             *string
}

// Store is the persistence contract shared by the in-memory and MongoDB
// backends. Both implementations must be observably identical for every
// operation, including ordering and default-filling. Absence is signalled
// with domain sentinel errors, never panics.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// CreateUser assigns ID and CreatedAt and returns the stored record.
	// Returns domain.ErrUserExists when the email is already taken.
	CreateUser(ctx context.Context, u NewUser) (*domain.User, error)

	// Projects
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	// GetProjectsByClientID returns the client's projects newest-first by
	// creation time.
	GetProjectsByClientID(ctx context.Context, clientID string) ([]domain.Project, error)
	// GetAllProjectsWithClients joins every project with its client's public
	// identity, newest-first. A project with a dangling client reference is
	// paired with domain.PlaceholderClient rather than omitted.
	GetAllProjectsWithClients(ctx context.Context) ([]domain.ProjectWithClient, error)
	CreateProject(ctx context.Context, p NewProject) (*domain.Project, error)
	// UpdateProject merges patch into the record and refreshes UpdatedAt.
	// Returns domain.ErrProjectNotFound when id is absent; the store is left
	// unchanged in that case.
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	// DeleteProject removes the record. Returns domain.ErrProjectNotFound
	// when nothing was removed.
	DeleteProject(ctx context.Context, id string) error

	// Composites
	// GetAllClients returns users with the client role, alphabetical by name.
	GetAllClients(ctx context.Context) ([]domain.User, error)
	// GetClientWithProjects returns domain.ErrUserNotFound when the id is
	// absent or does not belong to a client.
	GetClientWithProjects(ctx context.Context, clientID string) (*domain.ClientWithProjects, error)
	GetAllClientsWithProjects(ctx context.Context) ([]domain.ClientWithProjects, error)
}
