package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeClient struct {
	name     string
	articles []Article
	err      error
}

func (f *fakeClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	return f.articles, f.err
}

func (f *fakeClient) Name() string {
	return f.name
}

func TestCollectMergesNewestFirst(t *testing.T) {
	base := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

	a := &fakeClient{name: "A", articles: []Article{
		{Headline: "old", URL: "https://example.com/old", PublishedAt: base.Add(-2 * time.Hour)},
		{Headline: "shared", URL: "https://example.com/shared", PublishedAt: base.Add(-time.Hour)},
	}}
	b := &fakeClient{name: "B", articles: []Article{
		{Headline: "newest", URL: "https://example.com/newest", PublishedAt: base},
		{Headline: "shared again", URL: "https://example.com/shared", PublishedAt: base.Add(-time.Hour)},
	}}
	broken := &fakeClient{name: "broken", err: errors.New("quota exceeded")}

	got := Collect(context.Background(), []NewsClient{a, broken, b}, 10)

	assert.Equal(t, 3, len(got))
	assert.Equal(t, "newest", got[0].Headline)
	assert.Equal(t, "shared", got[1].Headline)
	assert.Equal(t, "old", got[2].Headline)
}

func TestCollectCapsAtLimit(t *testing.T) {
	base := time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)
	var articles []Article
	for i := 0; i < 8; i++ {
		articles = append(articles, Article{
			Headline:    "story",
			ExternalID:  string(rune('a' + i)),
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	got := Collect(context.Background(), []NewsClient{&fakeClient{name: "A", articles: articles}}, 5)

	assert.Equal(t, 5, len(got))
	assert.Equal(t, "h", got[0].ExternalID)
}

func TestCollectNoClients(t *testing.T) {
	got := Collect(context.Background(), nil, 5)
	assert.Equal(t, 0, len(got))
}
