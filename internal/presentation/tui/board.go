package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/runner"
)

// adjacentColors are the classic per-count digit colours, indexed by count.
var adjacentColors = [9]string{
	"", "#3b82f6", "#22c55e", "#ef4444", "#1e3a8a", "#9f1239", "#0d9488", "#e5e7eb", "#9ca3af",
}

// RenderBoard renders snap as text in the colours profile supports.
// termenv.Ascii yields the same output as runner.PlainBoard.
func RenderBoard(snap domain.Snapshot, profile termenv.Profile) string {
	var b strings.Builder
	for y, row := range snap.Cells {
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(styleCell(c, profile))
		}
		if y < len(snap.Cells)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	b.WriteString(statusLine(snap, profile))
	return b.String()
}

// BoardRenderer binds profile for use as a runner.BoardRenderer.
func BoardRenderer(profile termenv.Profile) runner.BoardRenderer {
	return func(snap domain.Snapshot) string {
		return RenderBoard(snap, profile)
	}
}

func styleCell(c domain.Cell, p termenv.Profile) string {
	s := termenv.String(string(runner.Glyph(c)))
	switch {
	case !c.Revealed && c.Marked:
		s = s.Foreground(p.Color("#f59e0b")).Bold()
	case !c.Revealed:
		s = s.Foreground(p.Color("#6b7280"))
	case c.Hazard:
		s = s.Foreground(p.Color("#dc2626")).Bold()
	case c.Adjacent > 0:
		s = s.Foreground(p.Color(adjacentColors[c.Adjacent]))
	}
	if p == termenv.Ascii {
		return string(runner.Glyph(c))
	}
	return s.String()
}

func statusLine(snap domain.Snapshot, p termenv.Profile) string {
	phase := termenv.String(snap.Phase.String())
	switch snap.Phase {
	case domain.Won:
		phase = phase.Foreground(p.Color("#22c55e")).Bold()
	case domain.Lost:
		phase = phase.Foreground(p.Color("#dc2626")).Bold()
	}
	text := phase.String()
	if p == termenv.Ascii {
		text = snap.Phase.String()
	}
	return fmt.Sprintf("%s  revealed %d/%d  marks %d/%d", text, snap.Revealed, snap.TotalSafe, snap.Marked, snap.Hazards)
}
