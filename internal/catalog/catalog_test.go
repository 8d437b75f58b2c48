package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Marjona6/sproutish/internal/domain"
)

func newTestCatalog(seed int64) *Catalog {
	return New(rand.New(rand.NewSource(seed)))
}

func TestCatalogShape(t *testing.T) {
	c := newTestCatalog(1)

	require.Len(t, c.All(), 18)
	for _, category := range domain.Categories() {
		habits := c.ByCategory(category)
		require.Lenf(t, habits, 3, "category %s", category)
		for _, h := range habits {
			require.Equal(t, category, h.Category)
			require.NotEmpty(t, h.ID)
			require.NotEmpty(t, h.Title)
			require.NotEmpty(t, h.Tips)
			require.NotEmpty(t, h.Benefits)
		}
	}
}

func TestByID(t *testing.T) {
	c := newTestCatalog(1)

	habit, ok := c.ByID("health-001")
	require.True(t, ok)
	require.Equal(t, domain.CategoryHealth, habit.Category)

	_, ok = c.ByID("health-999")
	require.False(t, ok)
}

func TestByCategoryUnknown(t *testing.T) {
	c := newTestCatalog(1)
	require.Empty(t, c.ByCategory("astrology"))
}

func TestRandomStaysInCategories(t *testing.T) {
	c := newTestCatalog(7)
	categories := []domain.Category{domain.CategoryHealth, domain.CategoryLearning}

	for i := 0; i < 50; i++ {
		habit, err := c.Random(categories, nil)
		require.NoError(t, err)
		require.Contains(t, categories, habit.Category)
	}
}

func TestRandomExcludesBlocked(t *testing.T) {
	c := newTestCatalog(7)
	blocked := map[string]struct{}{
		"health-001": {},
		"health-002": {},
	}

	for i := 0; i < 50; i++ {
		habit, err := c.Random([]domain.Category{domain.CategoryHealth}, blocked)
		require.NoError(t, err)
		require.Equal(t, "health-003", habit.ID)
	}
}

func TestRandomExhaustedFilter(t *testing.T) {
	c := newTestCatalog(7)
	blocked := map[string]struct{}{
		"health-001": {},
		"health-002": {},
		"health-003": {},
	}

	_, err := c.Random([]domain.Category{domain.CategoryHealth}, blocked)
	require.ErrorIs(t, err, domain.ErrNoMatchingHabit)
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	a := newTestCatalog(42)
	b := newTestCatalog(42)
	categories := domain.Categories()

	for i := 0; i < 20; i++ {
		first, err := a.Random(categories, nil)
		require.NoError(t, err)
		second, err := b.Random(categories, nil)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
	}
}
