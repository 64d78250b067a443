package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=client admin"`
}

// userResponse is the sanitized identity returned by auth endpoints. The
// browser caches it locally and replays the id on follow-up calls.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type authResponse struct {
	User userResponse `json:"user"`
}

// --- Projects ---

type driveLinkRequest struct {
	DriveLink string `json:"driveLink"`
}

type createProjectRequest struct {
	Name                 string `json:"name"                 validate:"required"`
	Description          string `json:"description"          validate:"required"`
	Status               string `json:"status"               validate:"omitempty,oneof=in-progress waiting-feedback complete"`
	CompletionPercentage int    `json:"completionPercentage" validate:"gte=0,lte=100"`
	Notes                string `json:"notes"`
	ClientID             string `json:"clientId"             validate:"required"`
}

// updateProjectRequest carries a partial update: absent fields stay nil and
// are left untouched by the store.
type updateProjectRequest struct {
	Name                 *string `json:"name"                 validate:"omitempty,min=1"`
	Description          *string `json:"description"          validate:"omitempty,min=1"`
	Status               *string `json:"status"               validate:"omitempty,oneof=in-progress waiting-feedback complete"`
	CompletionPercentage *int    `json:"completionPercentage" validate:"omitempty,gte=0,lte=100"`
	Notes                *string `json:"notes"`
	ClientID             *string `json:"clientId"`
}
