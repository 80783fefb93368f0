package news

import "github.com/araddon/dateparse"

// displayDateFormat is the canonical display format for published dates.
const displayDateFormat = "2006-01-02 15:04:05"

// FormattedArticle is the fixed external shape of one article.
type FormattedArticle struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Type                string `json:"type"`
	Category            string `json:"category"`
	PublishedDate       string `json:"published_date"`
	URL                 string `json:"url"`
	Slug                string `json:"slug"`
	IsPopular           bool   `json:"is_popular"`
	IsRegionalExpansion bool   `json:"is_regional_expansion"`
}

// Response is the structured output shape returned to external callers.
type Response struct {
	Success        bool               `json:"success"`
	Articles       []FormattedArticle `json:"articles"`
	TotalCount     int                `json:"total_count"`
	FiltersApplied map[string]any     `json:"filters_applied"`
}

// ErrorResponse is the structured failure shape for article operations.
type ErrorResponse struct {
	Success    bool               `json:"success"`
	Error      string             `json:"error"`
	Articles   []FormattedArticle `json:"articles"`
	TotalCount int                `json:"total_count"`
}

// NewErrorResponse builds a failure response with an empty article list.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Success:  false,
		Error:    message,
		Articles: []FormattedArticle{},
	}
}

// FormatResponse normalizes an article list into the external output
// shape. Published dates are reformatted for display; a date that fails
// to parse degrades to the raw string rather than erroring. This
// function never fails.
func FormatResponse(articles []Article, filtersApplied map[string]any) Response {
	formatted := make([]FormattedArticle, 0, len(articles))
	for _, article := range articles {
		formatted = append(formatted, FormattedArticle{
			ID:                  article.ID(),
			Title:               article.Title(),
			Type:                article.Type(),
			Category:            article.MainCategory(),
			PublishedDate:       displayDate(article.PublishedDate()),
			URL:                 article.URL(),
			Slug:                article.Slug(),
			IsPopular:           article.Popular(),
			IsRegionalExpansion: article.RegionalExpansion(),
		})
	}

	if filtersApplied == nil {
		filtersApplied = map[string]any{}
	}

	return Response{
		Success:        true,
		Articles:       formatted,
		TotalCount:     len(formatted),
		FiltersApplied: filtersApplied,
	}
}

func displayDate(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return parsed.Format(displayDateFormat)
}
