package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The style follows the terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// KeysMarkdown documents the key bindings of the interactive screen.
func KeysMarkdown() string {
	var b strings.Builder
	b.WriteString("# Cascade keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, k := range Bindings {
		b.WriteString("| `" + k.Keys + "` | " + k.Help + " |\n")
	}
	b.WriteString("\nRevealing an empty cell opens its whole empty region.\n")
	return b.String()
}

// RenderKeys renders KeysMarkdown for the terminal.
func RenderKeys() (string, error) {
	render, err := NewRenderer()
	if err != nil {
		return "", err
	}
	return render(KeysMarkdown())
}
