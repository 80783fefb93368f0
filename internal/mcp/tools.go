package mcp

// Default values applied when a tool argument is omitted. They mirror
// the per-tool defaults documented in the schemas below.
const (
	defaultPostType = "Both"

	defaultTodaysLimit   = 20
	defaultByDateLimit   = 50
	defaultCategoryLimit = 30
	defaultSearchLimit   = 25
	defaultLatestLimit   = 20
	defaultPopularLimit  = 15

	defaultByDateDaysBack   = 7
	defaultCategoryDaysBack = 30
	defaultSearchDaysBack   = 90
	defaultLatestDaysBack   = 7
	defaultPopularDaysBack  = 30
)

// postTypeProperty is the shared schema for the post_type argument.
func postTypeProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Post type - \"News\", \"Blog\", or \"Both\" (default)",
		"enum":        []string{"News", "Blog", "Both"},
	}
}

func limitProperty(defaultValue int) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Maximum number of articles",
		"default":     defaultValue,
	}
}

func daysBackProperty(defaultValue int) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": "Number of days back from today",
		"default":     defaultValue,
	}
}

// getAllTools returns all available MCP tools.
func getAllTools() []Tool {
	return []Tool{
		{
			Name:        "get_todays_posts",
			Description: "Gets AWS Blog and News articles published today.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"post_type": postTypeProperty(),
					"limit":     limitProperty(defaultTodaysLimit),
				},
			},
		},
		{
			Name:        "get_posts_by_date",
			Description: "Gets articles from a specific date range. Use from_date/to_date for an explicit range, or days_back as an alternative - never both.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"from_date": map[string]any{
						"type":        "string",
						"description": "From date in YYYY-MM-DD format (optional)",
					},
					"to_date": map[string]any{
						"type":        "string",
						"description": "To date in YYYY-MM-DD format (optional)",
					},
					"days_back": daysBackProperty(defaultByDateDaysBack),
					"post_type": postTypeProperty(),
					"limit":     limitProperty(defaultByDateLimit),
				},
			},
		},
		{
			Name:        "get_posts_by_category",
			Description: "Gets articles from a specific category (e.g. \"Big Data\", \"Machine Learning\", \"Industries\").",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Category name",
					},
					"post_type": postTypeProperty(),
					"days_back": daysBackProperty(defaultCategoryDaysBack),
					"limit":     limitProperty(defaultCategoryLimit),
				},
				"required": []string{"category"},
			},
		},
		{
			Name:        "search_posts",
			Description: "Searches articles by text query in title, URL, and slug.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query",
					},
					"post_type": postTypeProperty(),
					"days_back": daysBackProperty(defaultSearchDaysBack),
					"limit":     limitProperty(defaultSearchLimit),
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        "get_categories",
			Description: "Gets a list of all available article categories.",
			InputSchema: map[string]any{
				"type": "object",
			},
		},
		{
			Name:        "get_latest_posts",
			Description: "Gets the latest articles, newest first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"post_type": postTypeProperty(),
					"limit":     limitProperty(defaultLatestLimit),
					"days_back": daysBackProperty(defaultLatestDaysBack),
				},
			},
		},
		{
			Name:        "get_popular_posts",
			Description: "Gets popular articles (marked as popular by the feed), newest first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"post_type": postTypeProperty(),
					"days_back": daysBackProperty(defaultPopularDaysBack),
					"limit":     limitProperty(defaultPopularLimit),
				},
			},
		},
		{
			Name:        "get_article_content",
			Description: "Downloads full article content from a given URL, including title, author, and meta information. Supports aws.amazon.com articles only.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url": map[string]any{
						"type":        "string",
						"description": "Article URL (can be obtained from other tools)",
					},
				},
				"required": []string{"url"},
			},
		},
	}
}
