// Package catalog holds the static habit catalog and selection logic.
// The catalog is immutable after process start, so it is safe to share.
package catalog

import (
	"math/rand"
	"sync"

	"github.com/Marjona6/sproutish/internal/domain"
)

// Catalog answers lookups and random draws against the static habit set.
type Catalog struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New constructs a Catalog drawing from the supplied random source. Tests
// pass a seeded source for deterministic draws.
func New(rng *rand.Rand) *Catalog {
	return &Catalog{rng: rng}
}

// ByCategory returns every definition in the given category, in catalog
// order. An unknown category yields an empty slice, not an error.
func (c *Catalog) ByCategory(category domain.Category) []domain.Habit {
	out := make([]domain.Habit, 0, 3)
	for _, h := range habits {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

// ByID looks up a definition by its stable id.
func (c *Catalog) ByID(id string) (domain.Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Habit{}, false
}

// All returns the full catalog in order.
func (c *Catalog) All() []domain.Habit {
	out := make([]domain.Habit, len(habits))
	copy(out, habits)
	return out
}

// Random draws uniformly from the catalog filtered to the given categories,
// excluding any habit the user has blocked. An empty filter result is
// domain.ErrNoMatchingHabit rather than an out-of-bounds draw.
func (c *Catalog) Random(categories []domain.Category, blocked map[string]struct{}) (domain.Habit, error) {
	wanted := make(map[domain.Category]struct{}, len(categories))
	for _, cat := range categories {
		wanted[cat] = struct{}{}
	}

	filtered := make([]domain.Habit, 0, len(habits))
	for _, h := range habits {
		if _, ok := wanted[h.Category]; !ok {
			continue
		}
		if _, ok := blocked[h.ID]; ok {
			continue
		}
		filtered = append(filtered, h)
	}

	if len(filtered) == 0 {
		return domain.Habit{}, domain.ErrNoMatchingHabit
	}

	c.mu.Lock()
	idx := c.rng.Intn(len(filtered))
	c.mu.Unlock()
	return filtered[idx], nil
}
