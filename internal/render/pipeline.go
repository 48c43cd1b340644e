// Package render turns catalog selections into displayed project cards.
//
// A Pipeline owns the page's card container for the life of the process.
// Each Render call replaces the container's contents with the cards for the
// requested category and schedules their staggered entrance reveals.
package render

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mvoss.dev/internal/catalog"
)

// DefaultStagger is the reveal offset between consecutive cards.
const DefaultStagger = 100 * time.Millisecond

// Target is the container whose children the pipeline fully owns. Prior
// contents are replaceable on every render.
type Target struct {
	mu    sync.Mutex
	cards []*Card
}

// NewTarget returns an empty container.
func NewTarget() *Target {
	return &Target{}
}

// Cards returns a snapshot of the current children, oldest first.
func (t *Target) Cards() []*Card {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// Len reports the number of children.
func (t *Target) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cards)
}

func (t *Target) replace(cards []*Card) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cards = cards
}

// Pipeline selects catalog records for a category and populates the target
// with one card per record. It is the target's single writer.
type Pipeline struct {
	catalog *catalog.Catalog
	target  *Target
	stagger time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	pending []*time.Timer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStagger overrides the per-card reveal offset.
func WithStagger(d time.Duration) Option {
	return func(p *Pipeline) { p.stagger = d }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// NewPipeline binds a pipeline to its catalog and target.
func NewPipeline(c *catalog.Catalog, t *Target, opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog: c,
		target:  t,
		stagger: DefaultStagger,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render replaces the target's contents with the cards for category, in
// catalog order, and schedules each card's reveal at index*stagger.
// Reveal timers still outstanding from the previous call are stopped first,
// so a stale timer can never touch a detached card. An unknown category
// just empties the target. The rendered cards are returned for templating.
func (p *Pipeline) Render(category string) []*Card {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, timer := range p.pending {
		timer.Stop()
	}
	p.pending = p.pending[:0]

	selected := p.catalog.Select(category)
	cards := make([]*Card, 0, len(selected))
	for i, project := range selected {
		card := BuildCard(project)
		card.delay = time.Duration(i) * p.stagger
		cards = append(cards, card)
	}
	p.target.replace(cards)

	for _, card := range cards {
		p.pending = append(p.pending, time.AfterFunc(card.delay, card.Reveal))
	}

	p.log.Debug("rendered cards",
		zap.String("category", category),
		zap.Int("count", len(cards)))

	out := make([]*Card, len(cards))
	copy(out, cards)
	return out
}

// Cards returns a snapshot of the target's current contents.
func (p *Pipeline) Cards() []*Card {
	return p.target.Cards()
}

// Close stops any outstanding reveal timers.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, timer := range p.pending {
		timer.Stop()
	}
	p.pending = nil
}
