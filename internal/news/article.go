// Package news fetches the AWS News article feed, caches the latest
// snapshot, and provides pure filtering and response formatting over it.
package news

// Article is one entry of the upstream feed. The feed is semi-structured
// JSON, so articles are kept as raw mappings with typed accessors that
// default missing or mistyped fields.
type Article map[string]any

func (a Article) stringField(key string) string {
	v, _ := a[key].(string)
	return v
}

// ID returns the article identifier, or "" if absent.
func (a Article) ID() string { return a.stringField("id") }

// Title returns the article title, or "" if absent.
func (a Article) Title() string { return a.stringField("title") }

// Type returns the article type ("News" or "Blog"), or "" if absent.
func (a Article) Type() string { return a.stringField("type") }

// MainCategory returns the taxonomy label, or "" if absent.
func (a Article) MainCategory() string { return a.stringField("main_category") }

// PublishedDate returns the raw published_date string, or "" if absent.
func (a Article) PublishedDate() string { return a.stringField("published_date") }

// URL returns the article URL, or "" if absent.
func (a Article) URL() string { return a.stringField("url") }

// Slug returns the article slug, or "" if absent.
func (a Article) Slug() string { return a.stringField("slug") }

// Popular reports whether the popular flag is the boolean true.
// Any other value, including truthy strings, counts as not popular.
func (a Article) Popular() bool {
	v, ok := a["popular"].(bool)
	return ok && v
}

// RegionalExpansion reports whether the is_regional_expansion flag is
// the boolean true.
func (a Article) RegionalExpansion() bool {
	v, ok := a["is_regional_expansion"].(bool)
	return ok && v
}
