package topics

import "github.com/arthur-debert/pkgenv/pkg/style"

// Renderer formats topic content for display. ext is the source file
// extension, e.g. ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour and leaves other
// formats untouched.
type MarkdownRenderer struct {
	Markdown *style.MarkdownRenderer
}

// NewMarkdownRenderer creates a renderer with auto style detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Markdown: style.NewMarkdownRenderer()}
}

// Render converts markdown topics for terminal output
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" || r.Markdown == nil {
		return content
	}
	return r.Markdown.Render(content)
}
