// Package markdown renders and sanitizes user-supplied rich text.
// Restaurant and menu item descriptions pass through here before they are
// served on the public menu page.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	policy := bluemonday.UGCPolicy()

	return &Service{
		md:     md,
		policy: policy,
	}
}

// Render converts markdown to sanitized HTML.
func (s *Service) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

// SanitizePlain strips all HTML from plain text fields.
func (s *Service) SanitizePlain(source string) string {
	return bluemonday.StrictPolicy().Sanitize(source)
}
