package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Tech Feed</title>
<link>https://example.com</link>
<description>tech news</description>
<item>
  <title>First item</title>
  <link>https://example.com/first</link>
  <description>First description</description>
  <enclosure url="https://example.com/first.jpg" type="image/jpeg" length="1000"/>
</item>
<item>
  <title>Second item</title>
  <link>https://example.com/second</link>
  <description>Second description</description>
</item>
<item>
  <title>Third item</title>
  <link>https://example.com/third</link>
  <description>Third description</description>
</item>
</channel>
</rss>`

func TestRSSProvider_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	p := NewRSSProvider(map[string][]string{"technology": {server.URL}}, 5*time.Second)
	articles, err := p.Fetch(context.Background(), "europe", "technology", 2)
	require.NoError(t, err)

	require.Len(t, articles, 2, "count limits the result")
	assert.Equal(t, "First item", articles[0].Title)
	assert.Equal(t, "https://example.com/first", articles[0].Link)
	assert.Equal(t, "https://example.com/first.jpg", articles[0].ImageURL, "enclosure used as image")
	assert.Equal(t, "Second item", articles[1].Title)
}

func TestRSSProvider_NoFeedsForCategory(t *testing.T) {
	p := NewRSSProvider(map[string][]string{"technology": {"https://example.com/feed"}}, time.Second)
	articles, err := p.Fetch(context.Background(), "europe", "weather", 5)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestRSSProvider_BrokenFeedFallsThrough(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer good.Close()

	p := NewRSSProvider(map[string][]string{"news": {broken.URL, good.URL}}, 5*time.Second)
	articles, err := p.Fetch(context.Background(), "global", "news", 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "First item", articles[0].Title)
}
