package render

import (
	"sync/atomic"
	"time"

	"mvoss.dev/internal/catalog"
)

// Link is one labeled external link on a card.
type Link struct {
	Label string
	URL   string
}

// Card is the visual element built from one project record. Text fields are
// carried as given; escaping happens at template-execution time.
type Card struct {
	ProjectID    string
	Category     string
	Title        string
	Description  string
	Technologies []string
	Icon         string
	Links        []Link

	delay    time.Duration
	revealed atomic.Bool
}

// BuildCard maps a project record to a card. It reads only the passed
// record and allocates a fresh element; the reveal delay is assigned when
// the pipeline appends the card to its target.
func BuildCard(p catalog.Project) *Card {
	card := &Card{
		ProjectID:    p.ID,
		Category:     p.Category,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: append([]string(nil), p.Technologies...),
		Icon:         p.Icon,
	}
	if p.DemoURL != "" {
		card.Links = append(card.Links, Link{Label: "Live Demo", URL: p.DemoURL})
	}
	if p.DocsURL != "" {
		card.Links = append(card.Links, Link{Label: "Documentation", URL: p.DocsURL})
	}
	if p.GitHubURL != "" {
		card.Links = append(card.Links, Link{Label: "GitHub", URL: p.GitHubURL})
	}
	return card
}

// Reveal marks the card's entrance animation as triggered.
func (c *Card) Reveal() {
	c.revealed.Store(true)
}

// Revealed reports whether the reveal has fired.
func (c *Card) Revealed() bool {
	return c.revealed.Load()
}

// RevealDelay is the card's offset within its render call.
func (c *Card) RevealDelay() time.Duration {
	return c.delay
}

// RevealDelayMillis is RevealDelay for templates (animation-delay values).
func (c *Card) RevealDelayMillis() int64 {
	return c.delay.Milliseconds()
}
