package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleFixture(overrides map[string]any) Article {
	a := Article{
		"id":             "arn:aws:news:1",
		"title":          "Test article",
		"type":           "News",
		"main_category":  "Compute",
		"published_date": "2025-06-01T10:00:00Z",
		"url":            "https://aws.amazon.com/blogs/aws/test-article/",
		"slug":           "test-article",
	}
	for k, v := range overrides {
		a[k] = v
	}
	return a
}

func TestFilterByType_BothPassesThroughUnchanged(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"type": "News"}),
		articleFixture(map[string]any{"type": "Blog"}),
		articleFixture(map[string]any{"type": ""}),
	}

	got := FilterByType(articles, "Both")
	require.Len(t, got, 3)
	for i := range articles {
		assert.Equal(t, articles[i].ID(), got[i].ID())
	}

	// case-insensitive
	got = FilterByType(articles, "both")
	assert.Len(t, got, 3)
}

func TestFilterByType_CaseInsensitiveMatch(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "1", "type": "News"}),
		articleFixture(map[string]any{"id": "2", "type": "blog"}),
		articleFixture(map[string]any{"id": "3", "type": ""}),
	}

	got := FilterByType(articles, "BLOG")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID())
}

func TestFilterByType_MissingTypeNeverMatches(t *testing.T) {
	noType := Article{"id": "1", "title": "untyped"}
	got := FilterByType([]Article{noType}, "News")
	assert.Empty(t, got)
}

func TestFilterByCategory(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "1", "main_category": "Big Data"}),
		articleFixture(map[string]any{"id": "2", "main_category": "Security"}),
	}

	got := FilterByCategory(articles, "big data")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID())
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "before", "published_date": "2025-06-09T23:59:00Z"}),
		articleFixture(map[string]any{"id": "start", "published_date": "2025-06-10T00:30:00Z"}),
		articleFixture(map[string]any{"id": "end", "published_date": "2025-06-12T22:00:00Z"}),
		articleFixture(map[string]any{"id": "after", "published_date": "2025-06-13T01:00:00Z"}),
	}

	got := filterByDateRangeAt(now, articles, "2025-06-10", "2025-06-12", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].ID())
	assert.Equal(t, "end", got[1].ID())
}

func TestFilterByDateRange_SameFromAndToMatchesExactDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "match", "published_date": "2025-06-11T08:00:00Z"}),
		articleFixture(map[string]any{"id": "other", "published_date": "2025-06-12T08:00:00Z"}),
		articleFixture(map[string]any{"id": "bad", "published_date": "not-a-date"}),
	}

	got := filterByDateRangeAt(now, articles, "2025-06-11", "2025-06-11", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].ID())
}

func TestFilterByDateRange_UnparseableDatesExcluded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "1", "published_date": "garbage"}),
		articleFixture(map[string]any{"id": "2", "published_date": ""}),
		Article{"id": "3"},
	}

	got := filterByDateRangeAt(now, articles, "", "", 365)
	assert.Empty(t, got)
}

func TestFilterByDateRange_DaysBackOverwritesFromDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "recent", "published_date": "2025-06-14T00:00:00Z"}),
		articleFixture(map[string]any{"id": "old", "published_date": "2025-05-01T00:00:00Z"}),
	}

	// days_back derives from = 2025-06-08, shadowing the explicit 2025-01-01
	got := filterByDateRangeAt(now, articles, "2025-01-01", "", 7)
	require.Len(t, got, 1)
	assert.Equal(t, "recent", got[0].ID())
}

func TestFilterByDateRange_LenientDateFormats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "iso-offset", "published_date": "2025-06-11T08:00:00+02:00"}),
		articleFixture(map[string]any{"id": "date-only", "published_date": "2025-06-11"}),
		articleFixture(map[string]any{"id": "us-style", "published_date": "June 11, 2025"}),
	}

	got := filterByDateRangeAt(now, articles, "2025-06-11", "2025-06-11", 0)
	assert.Len(t, got, 3)
}

func TestFilterToday_IncludesTodayAndFuture(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	articles := []Article{
		articleFixture(map[string]any{"id": "today", "published_date": "2025-06-15T06:00:00Z"}),
		articleFixture(map[string]any{"id": "yesterday", "published_date": "2025-06-14T23:00:00Z"}),
		articleFixture(map[string]any{"id": "future", "published_date": "2025-06-20T00:00:00Z"}),
	}

	got := filterTodayAt(now, articles)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].ID())
	assert.Equal(t, "future", got[1].ID())
}

func TestSearch_CaseInsensitiveAcrossFields(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "title-hit", "title": "AWS Lambda Update", "url": "", "slug": ""}),
		articleFixture(map[string]any{"id": "url-hit", "title": "x", "url": "https://aws.amazon.com/lambda-news/", "slug": ""}),
		articleFixture(map[string]any{"id": "slug-hit", "title": "x", "url": "", "slug": "new-lambda-runtimes"}),
		articleFixture(map[string]any{"id": "miss", "title": "S3 Express", "url": "https://aws.amazon.com/s3/", "slug": "s3-express"}),
	}

	got := Search(articles, "lambda")
	require.Len(t, got, 3)
	assert.Equal(t, "title-hit", got[0].ID())
	assert.Equal(t, "url-hit", got[1].ID())
	assert.Equal(t, "slug-hit", got[2].ID())
}

func TestAvailableCategories_DistinctSortedAscending(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"main_category": "Security"}),
		articleFixture(map[string]any{"main_category": "Big Data"}),
		articleFixture(map[string]any{"main_category": "Security"}),
		articleFixture(map[string]any{"main_category": ""}),
	}

	got := AvailableCategories(articles)
	assert.Equal(t, []string{"Big Data", "Security"}, got)
}

func TestFilterPopular_RequiresBooleanTrue(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "flagged", "popular": true}),
		articleFixture(map[string]any{"id": "stringy", "popular": "yes"}),
		articleFixture(map[string]any{"id": "off", "popular": false}),
		articleFixture(map[string]any{"id": "absent"}),
	}

	got := FilterPopular(articles)
	require.Len(t, got, 1)
	assert.Equal(t, "flagged", got[0].ID())
}

func TestSortByDateDesc_LexicographicOnRawString(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "a", "published_date": "2025-06-01T10:00:00Z"}),
		articleFixture(map[string]any{"id": "b", "published_date": "2025-06-03T10:00:00Z"}),
		articleFixture(map[string]any{"id": "c", "published_date": "2025-06-02T10:00:00Z"}),
	}

	got := SortByDateDesc(articles)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID())
	assert.Equal(t, "c", got[1].ID())
	assert.Equal(t, "a", got[2].ID())

	// input order untouched
	assert.Equal(t, "a", articles[0].ID())
}

func TestSortByDateDesc_MixedFormatsSortTextually(t *testing.T) {
	// A non-ISO date sorts by its raw text, not chronologically. The
	// ordering below looks wrong on a calendar and is the documented
	// behavior for inconsistently formatted feeds.
	articles := []Article{
		articleFixture(map[string]any{"id": "iso", "published_date": "2025-06-03T10:00:00Z"}),
		articleFixture(map[string]any{"id": "prose", "published_date": "June 4, 2025"}),
	}

	got := SortByDateDesc(articles)
	assert.Equal(t, "prose", got[0].ID())
	assert.Equal(t, "iso", got[1].ID())
}

func TestLimit(t *testing.T) {
	articles := []Article{
		articleFixture(map[string]any{"id": "1"}),
		articleFixture(map[string]any{"id": "2"}),
		articleFixture(map[string]any{"id": "3"}),
	}

	assert.Len(t, Limit(articles, 2), 2)
	assert.Len(t, Limit(articles, 0), 3)
	assert.Len(t, Limit(articles, -1), 3)
	assert.Len(t, Limit(articles, 10), 3)
}
