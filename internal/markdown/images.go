// Package markdown extracts image references from Markdown documents
// for analysis. It does not attempt to re-render Markdown; the rewrite
// pass itself is byte-oriented and lives in internal/normalize.
package markdown

import (
	"regexp"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type ImageKind string

const (
	ImageKindMarkdown ImageKind = "markdown"
	ImageKindHTML     ImageKind = "html"
)

// Image is a located image reference within a document.
type Image struct {
	Kind        ImageKind
	Destination string
}

var htmlImageSrc = regexp.MustCompile(`(?i)<img\s+[^>]*src="([^"]+)"[^>]*>`)

// ExtractImages parses a Markdown body and returns all image references:
// CommonMark image nodes from the AST plus a best-effort scan for raw
// HTML img tags, which Goldmark keeps as opaque HTML nodes.
func ExtractImages(body []byte) ([]Image, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	images := make([]Image, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if node, ok := n.(*gmast.Image); ok {
			images = append(images, Image{Kind: ImageKindMarkdown, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	for _, m := range htmlImageSrc.FindAllSubmatch(body, -1) {
		images = append(images, Image{Kind: ImageKindHTML, Destination: string(m[1])})
	}

	return images, nil
}
