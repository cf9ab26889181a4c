// Package view turns the state of the project query into the page model
// rendered by the HTML templates.
package view

import (
	"portfolio/site/internal/content"
	"portfolio/site/internal/models"
)

const (
	// LinkTarget opens project links in a new browsing context.
	LinkTarget = "_blank"
	// LinkRel keeps the opened page from reaching back into this one.
	LinkRel = "noopener noreferrer"

	staggerMs = 80
)

// Card is the rendered form of one project.
type Card struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Tags        string
	URL         string
	LinkTarget  string
	LinkRel     string
	DelayMs     int
}

// HasImage reports whether the card shows an image.
func (c Card) HasImage() bool { return c.ImageURL != "" }

// HasTags reports whether the card shows a tags line.
func (c Card) HasTags() bool { return c.Tags != "" }

// HasLink reports whether the card shows an outbound link.
func (c Card) HasLink() bool { return c.URL != "" }

// Page is everything the templates need to render one response.
type Page struct {
	Loading bool
	Site    Site
	Cards   []Card
	Err     error
}

// Build maps a query state to a page. It is a pure function: the same state
// always yields the same cards in the same order.
func Build(state content.State, site Site) Page {
	switch state.Status {
	case content.StatusSuccess:
		return Page{Site: site, Cards: Cards(state.Projects)}
	case content.StatusFailure:
		return Page{Err: state.Err}
	default:
		return Page{Loading: true}
	}
}

// Cards maps projects one-to-one, preserving order.
func Cards(projects []models.Project) []Card {
	cards := make([]Card, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, NewCard(p, i))
	}
	return cards
}

// NewCard builds the card for the project at position index.
func NewCard(p models.Project, index int) Card {
	card := Card{
		ID:          p.ID,
		Title:       models.Text(p.Title),
		Description: models.Text(p.Description),
		ImageURL:    models.Text(p.ImageURL),
		Tags:        models.Text(p.Tags),
		URL:         models.Text(p.URL),
		DelayMs:     index * staggerMs,
	}
	if card.URL != "" {
		card.LinkTarget = LinkTarget
		card.LinkRel = LinkRel
	}
	return card
}
