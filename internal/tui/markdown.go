package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/hdlbench/hdlbench/internal/config"
)

// One shared glamour renderer serves the whole session; it is rebuilt
// lazily after a theme or wrap-width change.
var (
	markdownMu       sync.Mutex
	markdownRenderer *glamour.TermRenderer
	markdownErr      error
	markdownStyle    = config.ThemeAuto
	markdownWordWrap = 80
)

// renderMarkdown returns glamour-rendered terminal output, falling back to
// the raw text when the renderer cannot be built.
func renderMarkdown(content string) string {
	renderer := ensureMarkdownRenderer()
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func ensureMarkdownRenderer() *glamour.TermRenderer {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if markdownRenderer != nil && markdownErr == nil {
		return markdownRenderer
	}
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(markdownWordWrap),
	}
	switch markdownStyle {
	case config.ThemeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case config.ThemeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	markdownRenderer, markdownErr = glamour.NewTermRenderer(options...)
	if markdownErr != nil {
		return nil
	}
	return markdownRenderer
}

func setMarkdownWordWrap(width int) {
	markdownMu.Lock()
	if width < 0 {
		width = 0
	}
	if markdownWordWrap != width {
		markdownWordWrap = width
		markdownRenderer = nil
		markdownErr = nil
	}
	markdownMu.Unlock()
}

func setMarkdownTheme(theme config.Theme) {
	markdownMu.Lock()
	if theme == "" {
		theme = config.ThemeAuto
	}
	if markdownStyle != theme {
		markdownStyle = theme
		markdownRenderer = nil
		markdownErr = nil
	}
	markdownMu.Unlock()
}
