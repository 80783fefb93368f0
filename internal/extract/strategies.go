package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are the structural article-container patterns tried
// in priority order before falling back to bare paragraphs.
var contentSelectors = []string{
	"div.blog-post-content",
	"div.entry-content",
	"article.post-content",
	"div.content",
	"main",
	".blog-post-body",
	".post-body",
}

// strategy attempts to pull one field out of a document, returning ""
// when the pattern it looks for is absent.
type strategy func(doc *goquery.Document) string

// firstNonEmpty evaluates strategies in order and returns the first
// non-empty result.
func firstNonEmpty(doc *goquery.Document, strategies []strategy) string {
	for _, s := range strategies {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

// metaContent reads the content attribute of the first matching meta tag.
func metaContent(selector string) strategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
	}
}

// elementValue reads the first matching element, taking the content
// attribute when the element is itself a meta tag and its text otherwise.
func elementValue(selector string) strategy {
	return func(doc *goquery.Document) string {
		el := doc.Find(selector).First()
		if el.Length() == 0 {
			return ""
		}
		if goquery.NodeName(el) == "meta" {
			return strings.TrimSpace(el.AttrOr("content", ""))
		}
		return strings.TrimSpace(el.Text())
	}
}

// attrValue reads an attribute of the first matching element.
func attrValue(selector, attr string) strategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(selector).First().AttrOr(attr, ""))
	}
}

var descriptionStrategies = []strategy{
	metaContent(`meta[name="description"]`),
	metaContent(`meta[property="og:description"]`),
}

var authorStrategies = []strategy{
	elementValue(`meta[name="author"]`),
	elementValue(".author"),
	elementValue(".byline"),
	elementValue(".post-author"),
}

var publishedDateStrategies = []strategy{
	attrValue("time[datetime]", "datetime"),
	elementValue(`meta[property="article:published_time"]`),
	elementValue(".publish-date"),
	elementValue(".date"),
}
