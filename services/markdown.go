package services

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// The goldmark instance and sanitizer policy never change after creation and
// are safe for concurrent use
var (
	markdownOnce     sync.Once
	markdownRenderer goldmark.Markdown
	articlePolicy    *bluemonday.Policy
)

func markdown() (goldmark.Markdown, *bluemonday.Policy) {
	markdownOnce.Do(func() {
		markdownRenderer = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)
		articlePolicy = bluemonday.UGCPolicy()
		articlePolicy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	})
	return markdownRenderer, articlePolicy
}

// RenderArticle converts a markdown article body to sanitized HTML
func RenderArticle(source string) (string, error) {
	md, policy := markdown()

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
