package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts the model's raw Markdown answer into HTML for display.
type Renderer interface {
	Render(raw string) (string, error)
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// New returns a GitHub-flavored Markdown renderer: fenced code blocks and
// tables are the constructs model answers actually use.
func New() Renderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (r *goldmarkRenderer) Render(raw string) (string, error) {
	var buf strings.Builder
	if err := r.md.Convert([]byte(raw), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
