package handler

import (
	"log"
	"net/http"
	"time"

	"portfolio/site/internal/hub"

	"github.com/gin-gonic/gin"
)

// InvalidateContent godoc
// @Summary      Invalidate cached projects
// @Description  Called by the content backend after projects change. Drops the cached collection and tells open pages to re-render.
// @Tags         hooks
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse "Webhook is not configured"
// @Router       /hooks/content [post]
func (h *Handler) InvalidateContent(c *gin.Context) {
	h.query.Invalidate()

	notified := h.hub.Broadcast(hub.TopicContent, hub.Event{
		Type:    hub.EventContentInvalidated,
		Payload: gin.H{"invalidated_at": time.Now().UTC()},
	})
	log.Printf("webhook: content invalidated, notified %d open pages", notified)

	c.Status(http.StatusNoContent)
}
