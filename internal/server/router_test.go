package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/site/internal/content"
	"portfolio/site/internal/handler"
	"portfolio/site/internal/hub"
	"portfolio/site/internal/models"
	"portfolio/site/internal/view"
	"portfolio/site/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type staticSource struct{}

func (staticSource) ListProjects(context.Context) ([]models.Project, error) {
	title := "A"
	return []models.Project{{ID: 1, Title: &title}}, nil
}

type noPages struct{}

func (noPages) ListProjectsPage(context.Context, int, int) (*content.PaginatedResponse[models.Project], error) {
	resp := content.NewPaginatedResponse[models.Project](nil, 0, 1, 10)
	return &resp, nil
}

func newTestRouter(secret string) (*gin.Engine, *hub.Hub) {
	gin.SetMode(gin.TestMode)
	events := hub.NewHub()
	query := content.NewQuery(staticSource{}, time.Minute)
	h := handler.New(query, noPages{}, events, view.DefaultSite())
	return NewRouter(h, secret), events
}

func serve(r http.Handler, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	r, _ := newTestRouter("secret")

	cases := []struct {
		method   string
		path     string
		want     int
		contains string
	}{
		{method: http.MethodGet, path: "/ping", want: http.StatusOK, contains: "pong"},
		{method: http.MethodGet, path: "/", want: http.StatusOK, contains: "Loading..."},
		{method: http.MethodGet, path: "/content", want: http.StatusOK, contains: `class="card"`},
		{method: http.MethodGet, path: "/static/site.css", want: http.StatusOK, contains: ".card"},
		{method: http.MethodGet, path: "/api/v1/projects", want: http.StatusOK, contains: `"id":1`},
		{method: http.MethodGet, path: "/api/v1/projects/1", want: http.StatusOK, contains: `"title":"A"`},
		{method: http.MethodGet, path: "/swagger/doc.json", want: http.StatusOK, contains: "Portfolio API"},
		{method: http.MethodPost, path: "/api/v1/hooks/content", want: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/missing", want: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(r, tc.method, tc.path, "")
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			if tc.contains != "" && !strings.Contains(rec.Body.String(), tc.contains) {
				t.Fatalf("body does not contain %q: %s", tc.contains, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Fatal("missing X-Request-ID")
			}
		})
	}
}

func TestWebhookRoute(t *testing.T) {
	token, err := jwt.GenerateToken("secret", jwt.WebhookSubject, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	r, _ := newTestRouter("secret")
	if rec := serve(r, http.MethodPost, "/api/v1/hooks/content", "Bearer "+token); rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	disabled, _ := newTestRouter("")
	if rec := serve(disabled, http.MethodPost, "/api/v1/hooks/content", "Bearer "+token); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 when no secret is configured", rec.Code)
	}
}

func TestEventStream(t *testing.T) {
	r, events := newTestRouter("secret")
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events", nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("GET /api/v1/events error = %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	lines := bufio.NewScanner(resp.Body)
	waitFor := func(prefix string) {
		t.Helper()
		for lines.Scan() {
			if strings.HasPrefix(lines.Text(), prefix) {
				return
			}
		}
		t.Fatalf("stream ended before %q: %v", prefix, lines.Err())
	}

	waitFor("event:ready")
	if got := events.Subscribers(hub.TopicContent); got != 1 {
		t.Fatalf("Subscribers() = %d, want 1", got)
	}
	events.Broadcast(hub.TopicContent, hub.Event{Type: hub.EventContentInvalidated, Payload: "now"})
	waitFor("event:" + hub.EventContentInvalidated)
}
