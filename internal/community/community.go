// Package community provides the read-only community feed. There is no
// backend: the shipped Source is a deterministic-given-a-seed generator over
// a fixed template catalog, standing in for a future feed service. Nothing
// here is ever persisted.
package community

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dailyepiphany/epiphany/internal/client/models"
)

//go:embed feed.yaml
var feedYAML []byte

// Comment is a reply on a community post.
type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Post is one shared epiphany in the feed.
type Post struct {
	ID            string                 `json:"id"`
	AuthorName    string                 `json:"authorName"`
	OriginalInput string                 `json:"originalInput"`
	Category      models.Category        `json:"category"`
	Content       models.EpiphanyContent `json:"content"`
	CreatedAt     time.Time              `json:"createdAt"`
	Likes         int                    `json:"likes"`
	Comments      []Comment              `json:"comments"`
}

// Source serves the community surfaces. FetchFeed returns at most limit
// posts with no duplicate titles.
type Source interface {
	FetchFeed(ctx context.Context, limit int) ([]Post, error)
	Popular(ctx context.Context) ([]Post, error)
	Trending(ctx context.Context) ([]string, error)
}

type template struct {
	Input       string `yaml:"input"`
	Title       string `yaml:"title"`
	Concept     string `yaml:"concept"`
	Explanation string `yaml:"explanation"`
	Category    string `yaml:"category"`
}

type feedCatalog struct {
	Names     []string   `yaml:"names"`
	Trending  []string   `yaml:"trending"`
	Templates []template `yaml:"templates"`
}

var loaded = mustLoadFeed()

func mustLoadFeed() feedCatalog {
	var c feedCatalog
	if err := yaml.Unmarshal(feedYAML, &c); err != nil {
		panic(fmt.Sprintf("community: bad embedded feed catalog: %v", err))
	}
	if len(c.Templates) == 0 || len(c.Names) == 0 {
		panic("community: embedded feed catalog is empty")
	}
	return c
}

// MockSource generates feed content from the embedded catalog. Randomness
// comes from the injected source only, so tests can pin it.
type MockSource struct {
	rng *rand.Rand
	now func() time.Time
}

// NewMockSource creates a generator over the given randomness source.
func NewMockSource(rng *rand.Rand) *MockSource {
	return &MockSource{rng: rng, now: time.Now}
}

// FetchFeed returns up to limit posts: the templates shuffled, each rendered
// once with a random author, age and like count.
func (s *MockSource) FetchFeed(_ context.Context, limit int) ([]Post, error) {
	if limit <= 0 || limit > len(loaded.Templates) {
		limit = len(loaded.Templates)
	}

	order := s.rng.Perm(len(loaded.Templates))
	now := s.now()

	posts := make([]Post, 0, limit)
	for _, idx := range order[:limit] {
		tpl := loaded.Templates[idx]
		post := Post{
			ID:            "post-" + uuid.NewString(),
			AuthorName:    loaded.Names[s.rng.Intn(len(loaded.Names))],
			OriginalInput: tpl.Input,
			Category:      models.ParseCategory(tpl.Category),
			Content: models.EpiphanyContent{
				Title:       tpl.Title,
				Concept:     tpl.Concept,
				Explanation: tpl.Explanation,
				Fact:        "Did you know?",
			},
			CreatedAt: now.Add(-time.Duration(s.rng.Int63n(int64(72 * time.Hour)))),
			Likes:     s.rng.Intn(50) + 1,
		}
		if s.rng.Intn(2) == 0 {
			post.Comments = []Comment{{
				ID:         "cmt-" + uuid.NewString(),
				AuthorName: loaded.Names[s.rng.Intn(len(loaded.Names))],
				Text:       "This changed how I see the world!",
				CreatedAt:  now.Add(-time.Duration(s.rng.Int63n(int64(3 * time.Hour)))),
			}}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// Popular returns this week's top posts: a small feed slice with boosted
// like counts.
func (s *MockSource) Popular(ctx context.Context) ([]Post, error) {
	posts, err := s.FetchFeed(ctx, 3)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Likes += 100
	}
	return posts, nil
}

// Trending returns the fixed trending-observations list.
func (s *MockSource) Trending(context.Context) ([]string, error) {
	return append([]string(nil), loaded.Trending...), nil
}
