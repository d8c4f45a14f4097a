package scraper

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase upper-cases the first letter of every word and lower-cases
// the rest. A Caser holds state, so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// slugWords turns "in-rainbows" into "In Rainbows".
func slugWords(slug string) string {
	return titleCase(strings.Join(strings.Fields(strings.ReplaceAll(slug, "-", " ")), " "))
}

// lastSegment returns the final non-empty path segment of href.
func lastSegment(href string) string {
	p := href
	if u, err := url.Parse(href); err == nil {
		p = u.Path
	}
	p = strings.Trim(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// resolve makes href absolute against base. When base is unusable href is
// returned as is.
func resolve(base, href string) string {
	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
