package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/client-portal/internal/core/domain"
	"github.com/freelancehub/client-portal/internal/core/ports"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
)

// Store implements ports.Store on MongoDB. Ids are server-assigned
// ObjectIDs exposed as hex strings; the contract behavior (ordering,
// defaults, placeholder join) is identical to the in-memory backend.
type Store struct {
	users    *mongo.Collection
	projects *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection(usersCollection),
		projects: db.Collection(projectsCollection),
	}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Password:  d.Password,
		Name:      d.Name,
		Role:      d.Role,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type projectDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Name                 string             `bson:"name"`
	Description          string             `bson:"description"`
	Status               string             `bson:"status"`
	CompletionPercentage int                `bson:"completion_percentage"`
	Notes                string             `bson:"notes,omitempty"`
	DriveLink            string             `bson:"drive_link,omitempty"`
	ClientID             string             `bson:"client_id"`
	CreatedAt            time.Time          `bson:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:                   d.ID.Hex(),
		Name:                 d.Name,
		Description:          d.Description,
		Status:               domain.ProjectStatus(d.Status),
		CompletionPercentage: d.CompletionPercentage,
		Notes:                d.Notes,
		DriveLink:            d.DriveLink,
		ClientID:             d.ClientID,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
}

// EnsureIndexes creates the unique email index plus the query indexes the
// list operations rely on. Called once at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}

	_, err = s.projects.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure project indexes: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var d userDoc
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := d.toDomain()
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d userDoc
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	u := d.toDomain()
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, n ports.NewUser) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	role := n.Role
	if role == "" {
		role = domain.RoleClient
	}

	d := userDoc{
		Email:     n.Email,
		Password:  n.Password,
		Name:      n.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	res, err := s.users.InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	d.ID = res.InsertedID.(primitive.ObjectID)
	u := d.toDomain()
	return &u, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var d projectDoc
	if err := s.projects.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

func (s *Store) GetProjectsByClientID(ctx context.Context, clientID string) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.projects.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects by client: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Project, 0)
	for cur.Next(ctx) {
		var d projectDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func (s *Store) GetAllProjectsWithClients(ctx context.Context) ([]domain.ProjectWithClient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.projects.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)

	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	clients, err := s.GetAllClients(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.PublicProfile, len(clients))
	for i := range clients {
		byID[clients[i].ID] = clients[i].Public()
	}

	out := make([]domain.ProjectWithClient, 0, len(docs))
	for _, d := range docs {
		client, ok := byID[d.ClientID]
		if !ok {
			client = domain.PlaceholderClient
		}
		out = append(out, domain.ProjectWithClient{Project: d.toDomain(), Client: client})
	}
	return out, nil
}

func (s *Store) CreateProject(ctx context.Context, n ports.NewProject) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	status := n.Status
	if status == "" {
		status = domain.StatusInProgress
	}

	now := time.Now().UTC()
	d := projectDoc{
		Name:                 n.Name,
		Description:          n.Description,
		Status:               string(status),
		CompletionPercentage: n.CompletionPercentage,
		Notes:                n.Notes,
		DriveLink:            n.DriveLink,
		ClientID:             n.ClientID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	res, err := s.projects.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	d.ID = res.InsertedID.(primitive.ObjectID)
	p := d.toDomain()
	return &p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.CompletionPercentage != nil {
		set["completion_percentage"] = *patch.CompletionPercentage
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.DriveLink != nil {
		set["drive_link"] = *patch.DriveLink
	}
	if patch.ClientID != nil {
		set["client_id"] = *patch.ClientID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d projectDoc
	err = s.projects.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := s.projects.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *Store) GetAllClients(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.users.Find(ctx, bson.M{"role": domain.RoleClient}, opts)
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	out := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Store) GetClientWithProjects(ctx context.Context, clientID string) (*domain.ClientWithProjects, error) {
	u, err := s.GetUser(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if u.Role != domain.RoleClient {
		return nil, domain.ErrUserNotFound
	}

	projects, err := s.GetProjectsByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &domain.ClientWithProjects{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Projects: projects,
	}, nil
}

func (s *Store) GetAllClientsWithProjects(ctx context.Context) ([]domain.ClientWithProjects, error) {
	clients, err := s.GetAllClients(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ClientWithProjects, 0, len(clients))
	for _, c := range clients {
		projects, err := s.GetProjectsByClientID(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ClientWithProjects{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			Projects: projects,
		})
	}
	return out, nil
}
