package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePage(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
}

func TestExtract_ContainerMatchStripsChrome(t *testing.T) {
	srv := servePage(t, `<html><head><title>Fallback Title</title></head><body>
<h1>Launching Widgets</h1>
<div class="blog-post-content">
  <script>track();</script>
  <nav>breadcrumbs</nav>
  <p>Widgets are   now generally available.</p>
  <p>Pricing starts at zero.</p>
  <footer>share buttons</footer>
</div>
</body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, "Launching Widgets", result.Title)

	assert.Contains(t, result.Content, "Widgets are now generally available.")
	assert.Contains(t, result.Content, "Pricing starts at zero.")
	assert.NotContains(t, result.Content, "track()")
	assert.NotContains(t, result.Content, "share buttons")
	assert.NotContains(t, result.Content, "  ", "runs of spaces must be collapsed")

	assert.Equal(t, len(result.Content), result.ContentLength)
	assert.Equal(t, len(strings.Fields(result.Content)), result.WordCount)
}

func TestExtract_ParagraphFallback(t *testing.T) {
	srv := servePage(t, `<html><head><title>Plain Page</title></head><body>
<p>First paragraph.</p>
<p>   </p>
<p>Second paragraph.</p>
<p>Third paragraph.</p>
</body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "Plain Page", result.Title, "no h1, so the document title wins")
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.", result.Content)
	assert.Equal(t, 6, result.WordCount)
}

func TestExtract_ContainerPriorityOrder(t *testing.T) {
	// div.entry-content outranks main even though main appears first in
	// the document.
	srv := servePage(t, `<html><body>
<main><p>wrapper text</p>
<div class="entry-content"><p>the real article</p></div>
</main>
</body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "the real article", result.Content)
}

func TestExtract_HTTPErrorIsAllOrNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html><h1>Not the article</h1></html>`))
	}))
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	assert.False(t, result.Success)
	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, "HTTP error 404 when downloading article", result.Error)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Content)
	assert.Zero(t, result.WordCount)
}

func TestExtract_NetworkError(t *testing.T) {
	srv := servePage(t, "")
	srv.Close() // refuse connections

	result := New(http.DefaultClient).Extract(context.Background(), srv.URL)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "error downloading article")
}

func TestExtract_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><p>ok</p></body></html>`))
	}))
	defer srv.Close()

	New(srv.Client()).Extract(context.Background(), srv.URL)

	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotUA, "Chrome")
}

func TestExtract_DescriptionChain(t *testing.T) {
	srv := servePage(t, `<html><head>
<meta property="og:description" content="social summary">
</head><body><p>body</p></body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "social summary", result.Description, "og:description fills in when meta description is absent")
}

func TestExtract_AuthorMetaBeatsVisibleByline(t *testing.T) {
	srv := servePage(t, `<html><head>
<meta name="author" content="J. Builder">
</head><body>
<div class="byline">Posted by Someone Else</div>
<p>body</p>
</body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "J. Builder", result.Author)
}

func TestExtract_AuthorFallsBackToByline(t *testing.T) {
	srv := servePage(t, `<html><body>
<div class="byline">Dana Writer</div>
<p>body</p>
</body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Equal(t, "Dana Writer", result.Author)
}

func TestExtract_PublishedDateChain(t *testing.T) {
	t.Run("time datetime attribute wins", func(t *testing.T) {
		srv := servePage(t, `<html><body>
<time datetime="2025-06-01T10:00:00Z">June 1st</time>
<div class="date">wrong date</div>
<p>body</p>
</body></html>`)
		defer srv.Close()

		result := New(srv.Client()).Extract(context.Background(), srv.URL)
		require.True(t, result.Success)
		assert.Equal(t, "2025-06-01T10:00:00Z", result.PublishedDate)
	})

	t.Run("meta published_time as fallback", func(t *testing.T) {
		srv := servePage(t, `<html><head>
<meta property="article:published_time" content="2025-06-02T08:00:00Z">
</head><body><p>body</p></body></html>`)
		defer srv.Close()

		result := New(srv.Client()).Extract(context.Background(), srv.URL)
		require.True(t, result.Success)
		assert.Equal(t, "2025-06-02T08:00:00Z", result.PublishedDate)
	})

	t.Run("visible date element last", func(t *testing.T) {
		srv := servePage(t, `<html><body>
<span class="date">June 3, 2025</span>
<p>body</p>
</body></html>`)
		defer srv.Close()

		result := New(srv.Client()).Extract(context.Background(), srv.URL)
		require.True(t, result.Success)
		assert.Equal(t, "June 3, 2025", result.PublishedDate)
	})
}

func TestExtract_MissingFieldsStayEmpty(t *testing.T) {
	srv := servePage(t, `<html><body><p>just text</p></body></html>`)
	defer srv.Close()

	result := New(srv.Client()).Extract(context.Background(), srv.URL)

	require.True(t, result.Success)
	assert.Empty(t, result.Description)
	assert.Empty(t, result.Author)
	assert.Empty(t, result.PublishedDate)
	assert.Equal(t, "just text", result.Content)
}
