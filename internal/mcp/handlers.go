package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonesrussell/mcp-aws-news/internal/logger"
	"github.com/jonesrussell/mcp-aws-news/internal/news"
)

// Tool handlers. Each one validates arguments, composes the pure
// filters over the fetched index, and returns the formatted response.
// Domain failures (fetch errors, conflicting or empty arguments) are
// structured success:false results, not JSON-RPC errors.

func (s *Server) handleGetTodaysPosts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		PostType string `json:"post_type"`
		Limit    int    `json:"limit"`
	}{PostType: defaultPostType, Limit: defaultTodaysLimit}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error getting today's posts", err)
	}

	filtered := news.FilterToday(articles)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"date":      "today",
		"post_type": args.PostType,
		"limit":     args.Limit,
	}))
}

func (s *Server) handleGetPostsByDate(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		FromDate string `json:"from_date"`
		ToDate   string `json:"to_date"`
		DaysBack int    `json:"days_back"`
		PostType string `json:"post_type"`
		Limit    int    `json:"limit"`
	}{PostType: defaultPostType, Limit: defaultByDateLimit}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	// days_back and an explicit range are mutually exclusive; the
	// filter itself honors whatever it is handed, so reject here.
	if args.DaysBack > 0 && (args.FromDate != "" || args.ToDate != "") {
		return s.resultResponse(id, news.NewErrorResponse("Cannot combine days_back with from_date/to_date"))
	}

	if args.DaysBack <= 0 && args.FromDate == "" {
		args.DaysBack = defaultByDateDaysBack
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error getting articles by date", err)
	}

	filtered := news.FilterByDateRange(articles, args.FromDate, args.ToDate, args.DaysBack)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"from_date": args.FromDate,
		"to_date":   args.ToDate,
		"days_back": args.DaysBack,
		"post_type": args.PostType,
		"limit":     args.Limit,
	}))
}

func (s *Server) handleGetPostsByCategory(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		Category string `json:"category"`
		PostType string `json:"post_type"`
		DaysBack int    `json:"days_back"`
		Limit    int    `json:"limit"`
	}{PostType: defaultPostType, DaysBack: defaultCategoryDaysBack, Limit: defaultCategoryLimit}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.Category == "" {
		return s.errorResponse(id, InvalidParams, "category is required")
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error getting articles by category", err)
	}

	filtered := news.FilterByDateRange(articles, "", "", args.DaysBack)
	filtered = news.FilterByCategory(filtered, args.Category)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"category":  args.Category,
		"post_type": args.PostType,
		"days_back": args.DaysBack,
		"limit":     args.Limit,
	}))
}

func (s *Server) handleSearchPosts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		Query    string `json:"query"`
		PostType string `json:"post_type"`
		DaysBack int    `json:"days_back"`
		Limit    int    `json:"limit"`
	}{PostType: defaultPostType, DaysBack: defaultSearchDaysBack, Limit: defaultSearchLimit}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if strings.TrimSpace(args.Query) == "" {
		return s.resultResponse(id, news.NewErrorResponse("Search query cannot be empty"))
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error searching articles", err)
	}

	filtered := news.FilterByDateRange(articles, "", "", args.DaysBack)
	filtered = news.Search(filtered, args.Query)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"query":     args.Query,
		"post_type": args.PostType,
		"days_back": args.DaysBack,
		"limit":     args.Limit,
	}))
}

func (s *Server) handleGetCategories(ctx context.Context, id any, _ json.RawMessage) *Response {
	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		s.log.Warn("feed fetch failed", logger.Error(err))
		return s.resultResponse(id, map[string]any{
			"success":    false,
			"error":      fmt.Sprintf("Error getting categories: %v", err),
			"categories": []string{},
		})
	}

	categories := news.AvailableCategories(articles)

	return s.resultResponse(id, map[string]any{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
		"message":          fmt.Sprintf("Found %d categories", len(categories)),
	})
}

func (s *Server) handleGetLatestPosts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		PostType string `json:"post_type"`
		Limit    int    `json:"limit"`
		DaysBack int    `json:"days_back"`
	}{PostType: defaultPostType, Limit: defaultLatestLimit, DaysBack: defaultLatestDaysBack}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error getting latest articles", err)
	}

	filtered := news.FilterByDateRange(articles, "", "", args.DaysBack)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.SortByDateDesc(filtered)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"post_type": args.PostType,
		"days_back": args.DaysBack,
		"limit":     args.Limit,
		"sort":      "newest_first",
	}))
}

func (s *Server) handleGetPopularPosts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	args := struct {
		PostType string `json:"post_type"`
		DaysBack int    `json:"days_back"`
		Limit    int    `json:"limit"`
	}{PostType: defaultPostType, DaysBack: defaultPopularDaysBack, Limit: defaultPopularLimit}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	articles, err := s.fetcher.FetchArticles(ctx, 0)
	if err != nil {
		return s.fetchFailure(id, "Error getting popular articles", err)
	}

	filtered := news.FilterByDateRange(articles, "", "", args.DaysBack)
	filtered = news.FilterByType(filtered, args.PostType)
	filtered = news.FilterPopular(filtered)
	filtered = news.SortByDateDesc(filtered)
	filtered = news.Limit(filtered, args.Limit)

	return s.resultResponse(id, news.FormatResponse(filtered, map[string]any{
		"post_type":    args.PostType,
		"days_back":    args.DaysBack,
		"limit":        args.Limit,
		"popular_only": true,
	}))
}

func (s *Server) handleGetArticleContent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		URL string `json:"url"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if strings.TrimSpace(args.URL) == "" {
		return s.resultResponse(id, map[string]any{
			"success": false,
			"error":   "Article URL cannot be empty",
			"url":     args.URL,
		})
	}

	if !strings.Contains(strings.ToLower(args.URL), "aws.amazon.com") {
		return s.resultResponse(id, map[string]any{
			"success": false,
			"error":   "This tool supports only AWS articles (aws.amazon.com)",
			"url":     args.URL,
		})
	}

	content := s.extractor.Extract(ctx, args.URL)
	if !content.Success {
		s.log.Warn("content extraction failed",
			logger.String("url", args.URL),
			logger.String("reason", content.Error))
	}

	return s.resultResponse(id, content)
}

// fetchFailure logs a feed fetch error and wraps it in the structured
// article failure shape.
func (s *Server) fetchFailure(id any, context string, err error) *Response {
	s.log.Warn("feed fetch failed", logger.Error(err))
	return s.resultResponse(id, news.NewErrorResponse(fmt.Sprintf("%s: %v", context, err)))
}
