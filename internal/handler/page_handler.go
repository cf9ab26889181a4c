package handler

import (
	"net/http"

	"portfolio/site/internal/content"
	"portfolio/site/internal/view"

	"github.com/gin-gonic/gin"
)

// Index serves the page. With a fresh cached result the projects are
// rendered straight away; otherwise the loading indicator is served and
// the browser pulls /content.
func (h *Handler) Index(c *gin.Context) {
	page := view.Build(h.query.Peek(), h.site)
	c.HTML(http.StatusOK, view.PageTemplate, page)
}

// Content fetches the projects and renders them. htmx requests get the
// markup that replaces the loading indicator, everything else the full page.
// A failed fetch is handed to the error boundary unchanged.
func (h *Handler) Content(c *gin.Context) {
	state := h.query.Fetch(c.Request.Context())
	switch state.Status {
	case content.StatusFailure:
		_ = c.Error(state.Err)
		c.Abort()
		return
	case content.StatusPending:
		// The client went away before the fetch completed.
		c.Abort()
		return
	}

	page := view.Build(state, h.site)
	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, view.ContentTemplate, page)
		return
	}
	c.HTML(http.StatusOK, view.PageTemplate, page)
}

func isHTMXRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
