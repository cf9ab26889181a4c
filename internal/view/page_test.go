package view

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"portfolio/site/internal/content"
	"portfolio/site/internal/models"
)

func str(s string) *string { return &s }

func successState(projects ...models.Project) content.State {
	return content.Succeeded(projects, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func render(t *testing.T, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, name, data); err != nil {
		t.Fatalf("Render(%q) error = %v", name, err)
	}
	return buf.String()
}

func TestBuildPendingShowsOnlyLoading(t *testing.T) {
	page := Build(content.Pending(), DefaultSite())
	if !page.Loading {
		t.Fatal("Loading = false, want true")
	}
	if len(page.Cards) != 0 {
		t.Fatalf("len(Cards) = %d, want 0", len(page.Cards))
	}

	html := render(t, PageTemplate, page)
	if !strings.Contains(html, "Loading...") {
		t.Fatal("pending page is missing the loading indicator")
	}
	if strings.Contains(html, `class="card"`) {
		t.Fatal("pending page rendered a card")
	}
	if strings.Contains(html, `class="hero"`) || strings.Contains(html, `class="nav"`) {
		t.Fatal("pending page rendered page chrome")
	}
}

func TestBuildFailureCarriesError(t *testing.T) {
	err := errors.New("boom")
	page := Build(content.Failed(err), DefaultSite())
	if !errors.Is(page.Err, err) {
		t.Fatalf("Err = %v, want %v", page.Err, err)
	}
	if page.Loading || len(page.Cards) != 0 {
		t.Fatalf("failure page = %+v, want no loading and no cards", page)
	}
}

func TestBuildSuccessExample(t *testing.T) {
	state := successState(
		models.Project{ID: 1, Title: str("A"), URL: str("https://x")},
		models.Project{ID: 2, Title: str("B"), ImageURL: str("https://img")},
	)
	page := Build(state, DefaultSite())

	if len(page.Cards) != 2 {
		t.Fatalf("len(Cards) = %d, want 2", len(page.Cards))
	}
	a, b := page.Cards[0], page.Cards[1]
	if a.Title != "A" || b.Title != "B" {
		t.Fatalf("titles = %q, %q, want A, B", a.Title, b.Title)
	}
	if !a.HasLink() || a.HasImage() {
		t.Fatalf("card A = %+v, want link and no image", a)
	}
	if a.LinkTarget != "_blank" {
		t.Fatalf("card A LinkTarget = %q, want _blank", a.LinkTarget)
	}
	if b.HasLink() || !b.HasImage() {
		t.Fatalf("card B = %+v, want image and no link", b)
	}

	html := render(t, PageTemplate, page)
	if strings.Count(html, `class="card"`) != 2 {
		t.Fatalf("rendered %d cards, want 2", strings.Count(html, `class="card"`))
	}
	if strings.Index(html, `data-project-id="1"`) > strings.Index(html, `data-project-id="2"`) {
		t.Fatal("card order does not match row order")
	}
	if strings.Count(html, "<img") != 1 || strings.Count(html, `class="card-link"`) != 1 {
		t.Fatal("expected exactly one image and one outbound link")
	}
	if !strings.Contains(html, `href="https://x" target="_blank" rel="noopener noreferrer"`) {
		t.Fatal("outbound link must open a new browsing context")
	}
	if strings.Contains(html, "Loading...") {
		t.Fatal("success page still shows the loading indicator")
	}
}

func TestBuildEmptySuccessRendersNoCards(t *testing.T) {
	page := Build(successState(), DefaultSite())
	if page.Loading {
		t.Fatal("empty success should not be loading")
	}
	html := render(t, PageTemplate, page)
	if strings.Contains(html, `class="card"`) {
		t.Fatal("empty list rendered a card")
	}
	if !strings.Contains(html, DefaultSite().HeroText) {
		t.Fatal("hero text missing")
	}
}

func TestCardOptionalFields(t *testing.T) {
	cases := []struct {
		name      string
		project   models.Project
		wantImage bool
		wantLink  bool
		wantTags  bool
	}{
		{name: "all_absent", project: models.Project{ID: 1}},
		{name: "empty_strings", project: models.Project{ID: 2, ImageURL: str(""), URL: str(""), Tags: str("")}},
		{name: "image_only", project: models.Project{ID: 3, ImageURL: str("https://img")}, wantImage: true},
		{name: "link_only", project: models.Project{ID: 4, URL: str("https://x")}, wantLink: true},
		{name: "tags_only", project: models.Project{ID: 5, Tags: str("Go, HTMX")}, wantTags: true},
		{
			name:      "everything",
			project:   models.Project{ID: 6, ImageURL: str("https://img"), URL: str("https://x"), Tags: str("t")},
			wantImage: true, wantLink: true, wantTags: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := NewCard(tc.project, 0)
			if card.HasImage() != tc.wantImage || card.HasLink() != tc.wantLink || card.HasTags() != tc.wantTags {
				t.Fatalf("card = %+v, want image=%v link=%v tags=%v", card, tc.wantImage, tc.wantLink, tc.wantTags)
			}

			html := render(t, "card", card)
			if got := strings.Contains(html, "<img"); got != tc.wantImage {
				t.Fatalf("image rendered = %v, want %v", got, tc.wantImage)
			}
			if got := strings.Contains(html, `class="card-link"`); got != tc.wantLink {
				t.Fatalf("link rendered = %v, want %v", got, tc.wantLink)
			}
			if got := strings.Contains(html, `class="card-tags"`); got != tc.wantTags {
				t.Fatalf("tags rendered = %v, want %v", got, tc.wantTags)
			}
		})
	}
}

func TestCardTagsRenderedVerbatim(t *testing.T) {
	card := NewCard(models.Project{ID: 1, Tags: str("Design, Go & HTMX")}, 0)
	html := render(t, "card", card)
	if !strings.Contains(html, "Design, Go &amp; HTMX") {
		t.Fatalf("tags not rendered verbatim: %s", html)
	}
}

func TestCardDescriptionNotTruncated(t *testing.T) {
	long := strings.Repeat("long description ", 50)
	card := NewCard(models.Project{ID: 1, Description: str(long)}, 0)
	if card.Description != long {
		t.Fatal("description was modified")
	}
	if !strings.Contains(render(t, "card", card), strings.TrimSpace(long)) {
		t.Fatal("rendered description was truncated")
	}
}

func TestCardUnsafeURLIsNeutralized(t *testing.T) {
	card := NewCard(models.Project{ID: 1, URL: str("javascript:alert(1)")}, 0)
	html := render(t, "card", card)
	if strings.Contains(html, "javascript:") {
		t.Fatalf("unsafe URL rendered: %s", html)
	}
}

func TestCardsStaggerDelay(t *testing.T) {
	cards := Cards([]models.Project{{ID: 1}, {ID: 2}, {ID: 3}})
	for i, card := range cards {
		if card.DelayMs != i*80 {
			t.Fatalf("cards[%d].DelayMs = %d, want %d", i, card.DelayMs, i*80)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	state := successState(
		models.Project{ID: 3, Title: str("C")},
		models.Project{ID: 7, Title: str("D"), URL: str("https://d")},
	)
	first := Build(state, DefaultSite())
	second := Build(state, DefaultSite())
	if !reflect.DeepEqual(first.Cards, second.Cards) {
		t.Fatalf("Build is not idempotent: %+v vs %+v", first.Cards, second.Cards)
	}
	if render(t, PageTemplate, first) != render(t, PageTemplate, second) {
		t.Fatal("rendering the same state twice produced different output")
	}
}

func TestContentTemplateRendersChrome(t *testing.T) {
	site := DefaultSite()
	html := render(t, ContentTemplate, Build(successState(), site))

	for _, menu := range site.Menus {
		if !strings.Contains(html, menu.Label) {
			t.Fatalf("menu %q missing", menu.Label)
		}
		for _, item := range menu.Items {
			if !strings.Contains(html, item) {
				t.Fatalf("menu item %q missing", item)
			}
		}
	}
	if !strings.Contains(html, site.CTALabel) {
		t.Fatal("call-to-action missing")
	}
	if strings.Contains(html, "<html") {
		t.Fatal("content fragment must not contain the document shell")
	}
	nav, hero, grid, footer := strings.Index(html, `class="nav"`), strings.Index(html, `class="hero"`),
		strings.Index(html, `class="grid"`), strings.Index(html, `class="footer"`)
	if !(nav < hero && hero < grid && grid < footer) {
		t.Fatalf("sections out of order: nav=%d hero=%d grid=%d footer=%d", nav, hero, grid, footer)
	}
}

func TestErrorTemplate(t *testing.T) {
	html := render(t, ErrorTemplate, ErrorPage{Status: 500, Title: "Internal Server Error", Message: "Something went wrong.", RequestID: "abc"})
	if !strings.Contains(html, "500 Internal Server Error") || !strings.Contains(html, "Request ID: abc") {
		t.Fatalf("unexpected error page: %s", html)
	}
}

func TestStaticServesAssets(t *testing.T) {
	for _, name := range []string{"/site.css", "/site.js"} {
		f, err := Static().Open(name)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", name, err)
		}
		_ = f.Close()
	}
}
