package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/client-portal/internal/core/ports"
)

// ProjectHandler serves the client-facing project endpoints. The clientId
// path parameter is taken at face value: the design issues no session, so
// there is nothing server-side to verify it against. Known weakness,
// preserved from the original product.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListMine handles GET /api/projects/my/:clientId.
//
// @Summary      List the calling client's projects
// @Tags         projects
// @Produce      json
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.Project
// @Failure      500       {object}  errorResponse
// @Router       /api/projects/my/{clientId} [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	projects, err := h.service.ListByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// SubmitDriveLink handles PATCH /api/projects/:id/drive-link.
//
// The lockout on completed projects is enforced in the presentation layer
// only; this endpoint accepts the write regardless of project status.
//
// @Summary      Submit a delivery link
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Project id"
// @Param        body  body      driveLinkRequest  true  "Delivery link"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/drive-link [patch]
func (h *ProjectHandler) SubmitDriveLink(c echo.Context) error {
	var req driveLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	project, err := h.service.SubmitDriveLink(c.Request().Context(), c.Param("id"), req.DriveLink)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
