package community

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

func newSource(seed int64) *MockSource {
	return NewMockSource(rand.New(rand.NewSource(seed)))
}

func TestFetchFeed_NoDuplicateTitlesWithinLimit(t *testing.T) {
	posts, err := newSource(1).FetchFeed(context.Background(), 15)
	require.NoError(t, err)
	require.Len(t, posts, 15)

	seen := map[string]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.Content.Title], "duplicate title %q", p.Content.Title)
		seen[p.Content.Title] = true
	}
}

func TestFetchFeed_PostShape(t *testing.T) {
	posts, err := newSource(2).FetchFeed(context.Background(), 5)
	require.NoError(t, err)

	for _, p := range posts {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.AuthorName)
		assert.NotEmpty(t, p.OriginalInput)
		assert.NotEmpty(t, p.Content.Title)
		assert.NotEmpty(t, p.Content.Explanation)
		assert.NotEqual(t, models.Category(""), p.Category)
		assert.GreaterOrEqual(t, p.Likes, 1)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestFetchFeed_LimitClampedToCatalog(t *testing.T) {
	posts, err := newSource(3).FetchFeed(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, posts, 18)

	posts, err = newSource(3).FetchFeed(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, posts, 18)
}

func TestFetchFeed_DistinctIDsAcrossCalls(t *testing.T) {
	src := newSource(4)
	ctx := context.Background()

	a, err := src.FetchFeed(ctx, 3)
	require.NoError(t, err)
	b, err := src.FetchFeed(ctx, 3)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, p := range append(a, b...) {
		assert.False(t, ids[p.ID])
		ids[p.ID] = true
	}
}

func TestPopular_BoostsLikes(t *testing.T) {
	posts, err := newSource(5).Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.Greater(t, p.Likes, 100)
	}
}

func TestTrending(t *testing.T) {
	obs, err := newSource(6).Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Morning Rain", "Subway Noise", "Empty Chair", "Birds Chirping", "Rust"}, obs)
}
