package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

type ProjectsHandler struct {
	projects *services.ProjectService
}

func NewProjectsHandler(projects *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// CreateProject turns one of the client's unused generated images into an
// open project.
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.projects.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProjects is the artisan browse view over open (or filtered) projects.
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	_, role, ok := principal(c)
	if !ok {
		return
	}

	page, limit := pageFromQuery(c)
	resp, err := h.projects.ListProjects(c.Request.Context(), role, filtersFromQuery(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) ListMyProjects(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}

	page, limit := pageFromQuery(c)
	resp, err := h.projects.ListMyProjects(c.Request.Context(), userID, filtersFromQuery(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) GetProject(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	resp, err := h.projects.GetProjectDetails(c.Request.Context(), projectID, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) UpdateStatus(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	var req models.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.projects.UpdateProjectStatus(c.Request.Context(), projectID, models.ProjectStatus(req.Status), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) AcceptProposal(c *gin.Context) {
	userID, role, ok := principal(c)
	if !ok || !requireRole(c, role, models.RoleClient) {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}
	proposalID, ok := parseUUIDParam(c, "proposal_id")
	if !ok {
		return
	}

	resp, err := h.projects.AcceptProposal(c.Request.Context(), projectID, proposalID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func filtersFromQuery(c *gin.Context) models.ProjectFilters {
	return models.ProjectFilters{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		MaterialID: c.Query("material_id"),
	}
}

// pageFromQuery reads the 1-indexed page and page size; the service clamps
// out-of-range values.
func pageFromQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
