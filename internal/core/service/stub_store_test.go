package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

// stubStore is a hand-rolled ports.Store for service tests: maps with
// clone-on-read semantics plus an injectable failure.
type stubStore struct {
	users    map[string]domain.User
	projects map[string]domain.Project
	nextID   int
	failWith error // if set, every operation returns this error
}

func newStubStore() *stubStore {
	return &stubStore{
		users:    make(map[string]domain.User),
		projects: make(map[string]domain.Project),
		nextID:   1,
	}
}

func (s *stubStore) nextIDString() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *stubStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) CreateUser(_ context.Context, n ports.NewUser) (*domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
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
		ID:        s.nextIDString(),
		Email:     n.Email,
		Password:  n.Password,
		Name:      n.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *stubStore) GetProject(_ context.Context, id string) (*domain.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &p, nil
}

func (s *stubStore) GetProjectsByClientID(_ context.Context, clientID string) ([]domain.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubStore) GetAllProjectsWithClients(_ context.Context) ([]domain.ProjectWithClient, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]domain.ProjectWithClient, 0, len(s.projects))
	for _, p := range s.projects {
		client := domain.PlaceholderClient
		if u, ok := s.users[p.ClientID]; ok && u.Role == domain.RoleClient {
			client = u.Public()
		}
		out = append(out, domain.ProjectWithClient{Project: p, Client: client})
	}
	return out, nil
}

func (s *stubStore) CreateProject(_ context.Context, n ports.NewProject) (*domain.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	status := n.Status
	if status == "" {
		status = domain.StatusInProgress
	}
	now := time.Now().UTC()
	p := domain.Project{
		ID:                   s.nextIDString(),
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
	s.projects[p.ID] = p
	return &p, nil
}

func (s *stubStore) UpdateProject(_ context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
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

func (s *stubStore) DeleteProject(_ context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *stubStore) GetAllClients(_ context.Context) ([]domain.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]domain.User, 0)
	for _, u := range s.users {
		if u.Role == domain.RoleClient {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubStore) GetClientWithProjects(ctx context.Context, clientID string) (*domain.ClientWithProjects, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	u, ok := s.users[clientID]
	if !ok || u.Role != domain.RoleClient {
		return nil, domain.ErrUserNotFound
	}
	projects, _ := s.GetProjectsByClientID(ctx, clientID)
	return &domain.ClientWithProjects{ID: u.ID, Name: u.Name, Email: u.Email, Projects: projects}, nil
}

func (s *stubStore) GetAllClientsWithProjects(ctx context.Context) ([]domain.ClientWithProjects, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	clients, _ := s.GetAllClients(ctx)
	out := make([]domain.ClientWithProjects, 0, len(clients))
	for _, c := range clients {
		projects, _ := s.GetProjectsByClientID(ctx, c.ID)
		out = append(out, domain.ClientWithProjects{ID: c.ID, Name: c.Name, Email: c.Email, Projects: projects})
	}
	return out, nil
}

// stubStatsCache records cache traffic for assertions.
type stubStatsCache struct {
	entry       *ports.StatsResult
	sets        int
	invalidates int
	failWith    error
}

func (c *stubStatsCache) Get(context.Context) (*ports.StatsResult, error) {
	if c.failWith != nil {
		return nil, c.failWith
	}
	return c.entry, nil
}

func (c *stubStatsCache) Set(_ context.Context, stats *ports.StatsResult) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.sets++
	c.entry = stats
	return nil
}

func (c *stubStatsCache) Invalidate(context.Context) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.invalidates++
	c.entry = nil
	return nil
}
