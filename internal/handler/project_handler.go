package handler

import (
	"log"
	"net/http"
	"strconv"

	"portfolio/site/internal/content"
	"portfolio/site/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ProjectResponse is the public JSON form of a project.
type ProjectResponse struct {
	ID          int64   `json:"id" example:"1"`
	Title       *string `json:"title" example:"Brand refresh"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Tags        *string `json:"tags,omitempty" example:"Branding, Web"`
	URL         *string `json:"url,omitempty" example:"https://example.com"`
}

func newProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Tags:        p.Tags,
		URL:         p.URL,
	}
}

func newProjectResponses(projects []models.Project) []ProjectResponse {
	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, newProjectResponse(p))
	}
	return response
}

// PaginatedProjectResponse defines the structure for a paginated list of projects.
type PaginatedProjectResponse struct {
	Data []ProjectResponse      `json:"data"`
	Meta content.PaginationMeta `json:"meta"`
}

// endregion

// GetProjects godoc
// @Summary      List projects
// @Description  Returns every project ordered by id. With page or limit set, returns a PaginatedProjectResponse read directly from storage instead.
// @Tags         projects
// @Produce      json
// @Param        page  query     int  false  "Page number"
// @Param        limit query     int  false  "Items per page (max 100)"
// @Success      200   {array}   ProjectResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /projects [get]
func (h *Handler) GetProjects(c *gin.Context) {
	if c.Query("page") != "" || c.Query("limit") != "" {
		h.getProjectsPage(c)
		return
	}

	state := h.query.Fetch(c.Request.Context())
	if state.Status != content.StatusSuccess {
		if state.Err != nil {
			log.Printf("api: list projects failed: %v", state.Err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, newProjectResponses(state.Projects))
}

func (h *Handler) getProjectsPage(c *gin.Context) {
	// Out-of-range values are clamped by content.Paginate.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	result, err := h.pages.ListProjectsPage(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("api: list projects page failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, PaginatedProjectResponse{
		Data: newProjectResponses(result.Data),
		Meta: result.Meta,
	})
}

// GetProjectByID godoc
// @Summary      Get a single project by ID
// @Description  Looks a project up in the current snapshot of the collection.
// @Tags         projects
// @Produce      json
// @Param        id  path      int  true  "Project ID"
// @Success      200 {object}  ProjectResponse
// @Failure      400 {object}  ErrorResponse "Invalid ID"
// @Failure      404 {object}  ErrorResponse "Project not found"
// @Failure      500 {object}  ErrorResponse
// @Router       /projects/{id} [get]
func (h *Handler) GetProjectByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	state := h.query.Fetch(c.Request.Context())
	if state.Status != content.StatusSuccess {
		if state.Err != nil {
			log.Printf("api: get project %d failed: %v", id, state.Err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	for _, p := range state.Projects {
		if p.ID == id {
			c.JSON(http.StatusOK, newProjectResponse(p))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
}
