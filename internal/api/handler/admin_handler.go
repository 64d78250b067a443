package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/client-portal/internal/core/ports"
)

// AdminHandler serves the management endpoints. Like the client surface,
// these routes carry no authentication; the role split exists only in the
// URL layout (preserved design boundary, see DESIGN.md).
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListProjects handles GET /api/admin/projects.
//
// @Summary      List all projects joined with their clients
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.ProjectWithClient
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/projects [get]
func (h *AdminHandler) ListProjects(c echo.Context) error {
	projects, err := h.service.ListProjectsWithClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListClients handles GET /api/admin/clients.
//
// @Summary      List all client accounts
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/clients [get]
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /api/admin/clients/:id.
//
// @Summary      Get a client with its projects
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.ClientWithProjects
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/clients/{id} [get]
func (h *AdminHandler) GetClient(c echo.Context) error {
	client, err := h.service.GetClientWithProjects(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// CreateProject handles POST /api/admin/projects.
//
// @Summary      Create a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/projects [post]
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Name:                 req.Name,
		Description:          req.Description,
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		Notes:                req.Notes,
		ClientID:             req.ClientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PATCH /api/admin/projects/:id. Absent body fields
// are left untouched.
//
// @Summary      Partially update a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/projects/{id} [patch]
func (h *AdminHandler) UpdateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:                 req.Name,
		Description:          req.Description,
		Status:               req.Status,
		CompletionPercentage: req.CompletionPercentage,
		Notes:                req.Notes,
		ClientID:             req.ClientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/admin/projects/:id. Deletion is
// immediate and irreversible; a repeat delete on the same id yields 404.
//
// @Summary      Delete a project
// @Tags         admin
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Aggregate dashboard counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.StatsResult
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
