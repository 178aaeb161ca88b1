package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
)

// BoardRenderer turns a snapshot into printable text.
// This allows for coloured terminal rendering without coupling this package.
type BoardRenderer func(domain.Snapshot) string

// TextSink prints every snapshot through a BoardRenderer.
type TextSink struct {
	Writer   io.Writer
	Renderer BoardRenderer
}

// NewTextSink creates a sink that writes rendered boards to w.
// A nil writer selects Stdout; a nil renderer selects PlainBoard.
func NewTextSink(w io.Writer, renderer BoardRenderer) *TextSink {
	if w == nil {
		w = os.Stdout
	}
	if renderer == nil {
		renderer = PlainBoard
	}
	return &TextSink{Writer: w, Renderer: renderer}
}

// Draw implements Sink.
func (s *TextSink) Draw(snapshot domain.Snapshot) error {
	_, err := fmt.Fprintln(s.Writer, strings.TrimRight(s.Renderer(snapshot), "\n"))
	return err
}

// Notify implements Notifier.
func (s *TextSink) Notify(message string) {
	fmt.Fprintf(s.Writer, "! %s\n", message)
}

// PlainBoard renders a snapshot without colour: '#' hidden, 'F' marked,
// '*' revealed hazard, '.' empty and digits for adjacency counts.
func PlainBoard(snap domain.Snapshot) string {
	var b strings.Builder
	for y, row := range snap.Cells {
		for x, c := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(Glyph(c))
		}
		if y < len(snap.Cells)-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "\n%s  revealed %d/%d  marks %d/%d", snap.Phase, snap.Revealed, snap.TotalSafe, snap.Marked, snap.Hazards)
	return b.String()
}

// Glyph returns the character used for c on text boards.
func Glyph(c domain.Cell) rune {
	switch {
	case !c.Revealed && c.Marked:
		return 'F'
	case !c.Revealed:
		return '#'
	case c.Hazard:
		return '*'
	case c.Adjacent == 0:
		return '.'
	default:
		return rune('0' + c.Adjacent)
	}
}
