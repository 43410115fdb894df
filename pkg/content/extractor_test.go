package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article</title></head>
<body>
<nav>Home | About | Contact</nav>
<article>
<h1>Test Article Headline</h1>
<p>This is the first paragraph of the article body with enough substance to pass
extraction. It describes an event in considerable detail and keeps going for a
while so the extractor has something to work with.</p>
<p>The second paragraph continues the story with further detail, quotes from
officials, and some background context that rounds out the piece nicely.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Newsgrid/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	e := NewExtractor(5*time.Second, "Newsgrid/1.0", 100)
	text, err := e.Extract(context.Background(), server.URL+"/article")
	require.NoError(t, err)

	assert.Contains(t, text, "first paragraph of the article body")
	assert.NotContains(t, text, "Copyright 2025")
}

func TestExtractor_TooShort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><article><p>Tiny.</p></article></body></html>`))
	}))
	defer server.Close()

	e := NewExtractor(5*time.Second, "Newsgrid/1.0", 500)
	_, err := e.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "too short") || strings.Contains(err.Error(), "no content"),
		"short pages are treated as failed extraction, got: %v", err)
}

func TestExtractor_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := NewExtractor(5*time.Second, "Newsgrid/1.0", 100)
	_, err := e.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 404")
}

func TestExtractor_InvalidURL(t *testing.T) {
	e := NewExtractor(time.Second, "Newsgrid/1.0", 100)

	_, err := e.Extract(context.Background(), "not-a-url")
	require.Error(t, err)

	_, err = e.Extract(context.Background(), "://bad")
	require.Error(t, err)
}
