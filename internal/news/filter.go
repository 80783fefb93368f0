package news

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// The filters below are pure projections: each returns a new slice and
// never mutates its input. Callers compose them in sequence, typically
// date range -> category/type -> search -> limit.

// FilterByType keeps articles whose type matches case-insensitively.
// "Both" passes the input through unchanged. Articles with a missing
// type never match a specific type filter.
func FilterByType(articles []Article, articleType string) []Article {
	if strings.EqualFold(articleType, "Both") {
		return articles
	}

	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		if article.Type() != "" && strings.EqualFold(article.Type(), articleType) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// FilterByCategory keeps articles whose main_category matches
// case-insensitively.
func FilterByCategory(articles []Article, category string) []Article {
	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		if strings.EqualFold(article.MainCategory(), category) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// FilterByDateRange keeps articles whose published_date falls inside the
// inclusive [fromDate, toDate] calendar range. Bounds are "YYYY-MM-DD"
// strings; either may be empty for an open end. A positive daysBack
// derives fromDate as today minus that many days, overwriting any
// explicit fromDate — rejecting the conflicting combination is the
// caller's job, not this filter's.
//
// Article dates are parsed leniently; an article whose date is missing
// or unparseable is excluded silently.
func FilterByDateRange(articles []Article, fromDate, toDate string, daysBack int) []Article {
	return filterByDateRangeAt(time.Now(), articles, fromDate, toDate, daysBack)
}

func filterByDateRangeAt(now time.Time, articles []Article, fromDate, toDate string, daysBack int) []Article {
	if daysBack > 0 {
		fromDate = now.AddDate(0, 0, -daysBack).Format("2006-01-02")
	}

	var fromDay, toDay time.Time
	if fromDate != "" {
		parsed, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return []Article{}
		}
		fromDay = parsed
	}
	if toDate != "" {
		parsed, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return []Article{}
		}
		toDay = parsed
	}

	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		dateStr := article.PublishedDate()
		if dateStr == "" {
			continue
		}

		parsed, err := dateparse.ParseAny(dateStr)
		if err != nil {
			continue
		}
		day := calendarDate(parsed)

		if !fromDay.IsZero() && day.Before(fromDay) {
			continue
		}
		if !toDay.IsZero() && day.After(toDay) {
			continue
		}
		filtered = append(filtered, article)
	}
	return filtered
}

// FilterToday keeps articles published today or later. No upper bound is
// set, so future-dated feed entries pass too.
func FilterToday(articles []Article) []Article {
	return filterTodayAt(time.Now(), articles)
}

func filterTodayAt(now time.Time, articles []Article) []Article {
	return filterByDateRangeAt(now, articles, now.Format("2006-01-02"), "", 0)
}

// Search keeps articles whose title, URL, or slug contains the query,
// case-insensitively. Blank queries must be rejected by the caller
// before reaching this point.
func Search(articles []Article, query string) []Article {
	q := strings.ToLower(query)

	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		if strings.Contains(strings.ToLower(article.Title()), q) ||
			strings.Contains(strings.ToLower(article.URL()), q) ||
			strings.Contains(strings.ToLower(article.Slug()), q) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// AvailableCategories returns the distinct non-empty main_category
// values in ascending lexicographic order.
func AvailableCategories(articles []Article) []string {
	seen := make(map[string]struct{})
	for _, article := range articles {
		if category := article.MainCategory(); category != "" {
			seen[category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// FilterPopular keeps articles whose popular flag is the boolean true.
func FilterPopular(articles []Article) []Article {
	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		if article.Popular() {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// SortByDateDesc returns the articles ordered by their raw
// published_date string, descending. The comparison is lexicographic on
// purpose: it is chronologically correct only while every date shares
// one ISO-8601 representation, which is what the upstream feed emits.
func SortByDateDesc(articles []Article) []Article {
	sorted := make([]Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedDate() > sorted[j].PublishedDate()
	})
	return sorted
}

// Limit truncates the list to at most n articles. Non-positive n leaves
// the list unchanged.
func Limit(articles []Article, n int) []Article {
	if n > 0 && n < len(articles) {
		return articles[:n]
	}
	return articles
}

// calendarDate drops the time-of-day and zone so range comparisons use
// calendar dates only.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
