package mcp

import (
	"fmt"
	"strings"
)

const awsnewsScheme = "awsnews://"

// getAllResources returns the list of static resource metadata.
func getAllResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         "awsnews://docs/tool-reference",
			Name:        "AWS News Tool Reference",
			Description: "List of MCP tools and when to use them",
			MimeType:    "text/plain",
		},
		{
			URI:         "awsnews://docs/feed",
			Name:        "Feed Overview",
			Description: "Where articles come from and how caching works",
			MimeType:    "text/plain",
		},
	}
}

// readResource returns content for a known URI.
func readResource(uri string) ([]ResourceContent, error) {
	if !strings.HasPrefix(uri, awsnewsScheme) {
		return nil, resourceNotFoundError(uri)
	}
	path := strings.Trim(strings.TrimPrefix(uri, awsnewsScheme), "/")
	switch path {
	case "docs/tool-reference":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticToolReference}}, nil
	case "docs/feed":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticFeedOverview}}, nil
	default:
		return nil, resourceNotFoundError(uri)
	}
}

func resourceNotFoundError(uri string) error {
	return &ResourceNotFoundError{URI: uri}
}

// ResourceNotFoundError is returned for unknown resource URIs.
type ResourceNotFoundError struct {
	URI string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URI)
}

const staticToolReference = `get_todays_posts: Articles published today (post_type, limit). ` +
	`get_posts_by_date: Articles in a date range; from_date/to_date OR days_back, never both. ` +
	`get_posts_by_category: Articles in one category (category, post_type, days_back, limit). ` +
	`search_posts: Text search over title, URL, and slug (query, post_type, days_back, limit). ` +
	`get_categories: All category names in the feed. ` +
	`get_latest_posts: Most recent articles, newest first (post_type, limit, days_back). ` +
	`get_popular_posts: Feed-flagged popular articles, newest first (post_type, days_back, limit). ` +
	`get_article_content: Full text of one aws.amazon.com article (url).`

const staticFeedOverview = `Articles come from the AWS News feed (api.aws-news.com). ` +
	`The full index is fetched on demand and cached in memory for five minutes; every tool ` +
	`filters the same cached snapshot, so repeated queries within that window cost no extra ` +
	`upstream calls. Full article content is fetched live per URL and is never cached.`
