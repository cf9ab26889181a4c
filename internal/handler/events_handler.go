package handler

import (
	"io"

	"portfolio/site/internal/hub"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 8

// StreamEvents godoc
// @Summary      Stream content events
// @Description  Server-sent events. Emits "ready" once subscribed, then "content.invalidated" whenever the project collection changes.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	client := hub.NewClient(eventBuffer)
	h.hub.Subscribe(hub.TopicContent, client)
	defer h.hub.Unsubscribe(hub.TopicContent, client)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("ready", hub.TopicContent)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event.Payload)
			return true
		}
	})
}
