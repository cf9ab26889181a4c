package handler

import (
	"context"

	"portfolio/site/internal/content"
	"portfolio/site/internal/hub"
	"portfolio/site/internal/models"
	"portfolio/site/internal/view"
)

// PageReader reads one page of projects straight from storage.
type PageReader interface {
	ListProjectsPage(ctx context.Context, page, limit int) (*content.PaginatedResponse[models.Project], error)
}

// Handler serves the page, the JSON API and the content webhook.
type Handler struct {
	query *content.Query
	pages PageReader
	hub   *hub.Hub
	site  view.Site
}

// New creates a Handler. A nil hub gets a fresh one.
func New(query *content.Query, pages PageReader, h *hub.Hub, site view.Site) *Handler {
	if h == nil {
		h = hub.NewHub()
	}
	return &Handler{query: query, pages: pages, hub: h, site: site}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}
