package record

import (
	"net/url"
	"strings"
)

// scholarTemplate is the fallback search link built from the article
// title. The exact template is load-bearing: saved progress files and
// bookmarks reference these URLs.
const scholarTemplate = "https://scholar.google.com/scholar?q="

// Links holds the resolved external URLs for a record.
type Links struct {
	LinkURL string
	DOIURL  string
}

// ResolveLinks computes the access and DOI links for a record. A stored
// value is used verbatim when it looks like an absolute http(s) URL;
// anything else (empty, malformed, a bare DOI string) falls back to a
// Google Scholar query on the title. Total function: an empty title
// still yields a syntactically valid fallback URL.
func ResolveLinks(titulo, linkAcesso, doi string) Links {
	fallback := ScholarURL(titulo)
	return Links{
		LinkURL: pickURL(linkAcesso, fallback),
		DOIURL:  pickURL(doi, fallback),
	}
}

// ScholarURL builds the Google Scholar search link for a title.
func ScholarURL(titulo string) string {
	return scholarTemplate + url.QueryEscape(strings.TrimSpace(titulo))
}

func pickURL(raw, fallback string) string {
	v := strings.TrimSpace(raw)
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return v
	}
	return fallback
}
