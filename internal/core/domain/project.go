package domain

import (
	"errors"
	"time"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusInProgress      ProjectStatus = "in-progress"
	StatusWaitingFeedback ProjectStatus = "waiting-feedback"
	StatusComplete        ProjectStatus = "complete"
)

var ErrProjectNotFound = errors.New("project not found")

// Valid reports whether s is one of the closed status set. Values outside
// the set are rejected at the system boundary rather than coerced.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusWaitingFeedback, StatusComplete:
		return true
	}
	return false
}

// Project is the core aggregate. Status transitions are unconstrained: an
// admin may set any status at any time, and CompletionPercentage is an
// independent field with no coupling to Status in either direction. The
// decoupling mirrors the observed behavior of the original product and is
// preserved, not an invariant to add.
type Project struct {
	ID                   string        `json:"id" bson:"_id,omitempty"`
	Name                 string        `json:"name" bson:"name"`
	Description          string        `json:"description" bson:"description"`
	Status               ProjectStatus `json:"status" bson:"status"`
	CompletionPercentage int           `json:"completionPercentage" bson:"completion_percentage"`
	Notes                string        `json:"notes,omitempty" bson:"notes,omitempty"`
	DriveLink            string        `json:"driveLink,omitempty" bson:"drive_link,omitempty"`
	ClientID             string        `json:"clientId" bson:"client_id"`
	CreatedAt            time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt            time.Time     `json:"updatedAt" bson:"updated_at"`
}

// ProjectWithClient joins a project with its owning client's public
// identity. Used only by admin listings.
type ProjectWithClient struct {
	Project `bson:",inline"`
	Client  PublicProfile `json:"client" bson:"client"`
}

// PlaceholderClient is attached to a project whose client_id does not
// resolve to an existing user. The join degrades silently instead of
// omitting the project or surfacing an error (named fallback behavior).
var PlaceholderClient = PublicProfile{ID: "0", Name: "Unknown", Email: "unknown@example.com"}

// ClientWithProjects is the composite of a client's identity and every
// project owned by that client.
type ClientWithProjects struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Projects []Project `json:"projects"`
}
