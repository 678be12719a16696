// Package normalize rewrites relative image references in documentation
// text into absolute URLs pinned to a repository revision.
//
// The transformation is total and idempotent: arbitrary input text never
// produces an error, and rewritten paths begin with an absolute transport
// prefix so a second pass leaves them alone.
package normalize

import (
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/readmepin/internal/util/sets"
)

// DefaultExtensions returns the image file extensions eligible for
// rewriting. Matching is case-insensitive.
func DefaultExtensions() sets.Set[string] {
	return sets.New(".png", ".jpg", ".jpeg", ".gif", ".svg")
}

var (
	// Markdown image syntax: ![alt](path). Alt text excludes ']', path excludes ')'.
	markdownImage = regexp.MustCompile(`(!\[[^\]]*\]\()([^)]+)(\))`)

	// HTML img tags with a double-quoted src attribute. Case-insensitive
	// on tag and attribute names; other attributes are preserved verbatim.
	htmlImage = regexp.MustCompile(`(?i)(<img\s+[^>]*src=")([^"]+)("[^>]*>)`)
)

// ImageURLs rewrites relative image paths in content by prepending
// baseURL. Paths that already carry an http:// or https:// prefix, or
// whose extension is not in allowed, are left untouched. A leading run
// of '.' and '/' characters is stripped before the base URL is applied.
//
// The Markdown pass runs fully before the HTML pass; a reference
// rewritten by the first pass no longer has a relative shape and is
// skipped by the second.
func ImageURLs(content, baseURL string, allowed sets.Set[string]) string {
	content = rewriteMatches(markdownImage, content, baseURL, allowed)
	content = rewriteMatches(htmlImage, content, baseURL, allowed)
	return content
}

func rewriteMatches(re *regexp.Regexp, content, baseURL string, allowed sets.Set[string]) string {
	return re.ReplaceAllStringFunc(content, func(match string) string {
		sub := re.FindStringSubmatch(match)
		prefix, path, suffix := sub[1], sub[2], sub[3]

		if isAbsoluteURL(path) {
			return match
		}
		if !allowed.Has(extensionOf(path)) {
			return match
		}

		return prefix + baseURL + strings.TrimLeft(path, "./") + suffix
	})
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// extensionOf returns the lowercased file extension including the dot.
func extensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
