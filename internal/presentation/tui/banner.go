package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the cascade banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ___ __ _ ___  ___ __ _  __| | ___ ", "#38bdf8"},
		{"  / __/ _` / __|/ __/ _` |/ _` |/ _ \\", "#60a5fa"},
		{" | (_| (_| \\__ \\ (_| (_| | (_| |  __/", "#818cf8"},
		{"  \\___\\__,_|___/\\___\\__,_|\\__,_|\\___|", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
