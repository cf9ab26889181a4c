package middleware

import (
	"log"
	"net/http"
	"strings"

	"portfolio/site/internal/view"

	"github.com/gin-gonic/gin"
)

// ErrorBoundary renders errors that handlers pushed with c.Error and did not
// answer themselves. It is the last line of handling for the page routes:
// JSON for /api paths, the error page everywhere else.
func ErrorBoundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		log.Printf("request %s %s failed [%s]: %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), c.Errors.Last().Err)
		renderError(c)
	}
}

// Recovery turns panics into the same 500 response as ErrorBoundary.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic serving %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), recovered)
		renderError(c)
	})
}

func renderError(c *gin.Context) {
	status := http.StatusInternalServerError
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.HTML(status, view.ErrorTemplate, view.ErrorPage{
		Status:    status,
		Title:     http.StatusText(status),
		Message:   "Something went wrong while loading this page.",
		RequestID: GetRequestID(c),
	})
	c.Abort()
}
