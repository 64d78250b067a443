// Package memory provides the zero-dependency Store backend: process-wide
// maps guarded by a RWMutex, with monotonically increasing decimal ids.
// Nothing survives a restart. Behavior matches the MongoDB backend for
// every contract operation, including ordering and default-filling.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

type Store struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	projects      map[string]domain.Project
	nextUserID    int
	nextProjectID int
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]domain.User),
		projects:      make(map[string]domain.Project),
		nextUserID:    1,
		nextProjectID: 1,
	}
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, n ports.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == n.Email {
			return nil, domain.ErrUserExists
		}
	}

	role := n.Role
	if role == "" {
		role = domain.RoleClient
	}

	u := domain.User{
		ID:        strconv.Itoa(s.nextUserID),
		Email:     n.Email,
		Password:  n.Password,
		Name:      n.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *Store) GetProject(_ context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (s *Store) GetProjectsByClientID(_ context.Context, clientID string) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.projectsByClientLocked(clientID), nil
}

func (s *Store) GetAllProjectsWithClients(_ context.Context) ([]domain.ProjectWithClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ProjectWithClient, 0, len(s.projects))
	for _, p := range s.projects {
		// The join resolves against client-role users only; anything else
		// degrades to the placeholder.
		client := domain.PlaceholderClient
		if u, ok := s.users[p.ClientID]; ok && u.Role == domain.RoleClient {
			client = u.Public()
		}
		out = append(out, domain.ProjectWithClient{Project: p, Client: client})
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) CreateProject(_ context.Context, n ports.NewProject) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := n.Status
	if status == "" {
		status = domain.StatusInProgress
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:                   strconv.Itoa(s.nextProjectID),
		Name:                 n.Name,
		Description:          n.Description,
		Status:               status,
		CompletionPercentage: n.CompletionPercentage,
		Notes:                n.Notes,
		DriveLink:            n.DriveLink,
		ClientID:             n.ClientID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	s.nextProjectID++
	s.projects[p.ID] = p
	return &p, nil
}

func (s *Store) UpdateProject(_ context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CompletionPercentage != nil {
		p.CompletionPercentage = *patch.CompletionPercentage
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.DriveLink != nil {
		p.DriveLink = *patch.DriveLink
	}
	if patch.ClientID != nil {
		p.ClientID = *patch.ClientID
	}
	p.UpdatedAt = time.Now().UTC()

	s.projects[id] = p
	return &p, nil
}

func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *Store) GetAllClients(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.clientsLocked(), nil
}

func (s *Store) GetClientWithProjects(_ context.Context, clientID string) (*domain.ClientWithProjects, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[clientID]
	if !ok || u.Role != domain.RoleClient {
		return nil, domain.ErrUserNotFound
	}

	return &domain.ClientWithProjects{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Projects: s.projectsByClientLocked(clientID),
	}, nil
}

func (s *Store) GetAllClientsWithProjects(_ context.Context) ([]domain.ClientWithProjects, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := s.clientsLocked()
	out := make([]domain.ClientWithProjects, 0, len(clients))
	for _, c := range clients {
		out = append(out, domain.ClientWithProjects{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			Projects: s.projectsByClientLocked(c.ID),
		})
	}
	return out, nil
}

// projectsByClientLocked returns the client's projects newest-first.
// Callers must hold at least the read lock.
func (s *Store) projectsByClientLocked(clientID string) []domain.Project {
	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// clientsLocked returns client-role users alphabetically by name.
func (s *Store) clientsLocked() []domain.User {
	out := make([]domain.User, 0)
	for _, u := range s.users {
		if u.Role == domain.RoleClient {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortNewestFirst(projects []domain.ProjectWithClient) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID > projects[j].ID
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
