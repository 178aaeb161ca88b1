package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/runner"
)

var (
	_ runner.Source   = (*Screen)(nil)
	_ runner.Sink     = (*Screen)(nil)
	_ runner.Notifier = (*Screen)(nil)
)

const (
	gridTop  = 2
	gridLeft = 1
)

var (
	styleDefault = tcell.StyleDefault
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMarked  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleHazard  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWon     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLost    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	digitColors = [9]tcell.Color{
		tcell.ColorDefault, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorRed, tcell.ColorNavy,
		tcell.ColorMaroon, tcell.ColorTeal, tcell.ColorSilver, tcell.ColorGray,
	}
)

// Screen is the interactive terminal front end. It is both the Sink that draws
// the board and the Source that turns key presses into actions.
type Screen struct {
	screen tcell.Screen
	last   domain.Snapshot
	notice string
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// OpenScreen creates, initialises and wraps the terminal screen.
// Call Close when the session ends.
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Draw implements runner.Sink.
func (s *Screen) Draw(snap domain.Snapshot) error {
	s.last = snap
	s.render()
	return nil
}

// Notify implements runner.Notifier. The message stays until the next key.
func (s *Screen) Notify(message string) {
	s.notice = message
	s.render()
}

// Next implements runner.Source. It blocks until a bound key is pressed or
// ctx is done; resizes redraw the last snapshot.
func (s *Screen) Next(ctx context.Context) (domain.Action, error) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return domain.Action{}, fmt.Errorf("screen closed")
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return domain.Action{}, err
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.render()
		case *tcell.EventKey:
			s.notice = ""
			if a, ok := KeyAction(ev, s.last.Cursor); ok {
				return a, nil
			}
		}
	}
}

func (s *Screen) render() {
	snap := s.last
	s.screen.Clear()

	title := fmt.Sprintf("cascade  %s %dx%d", snap.Board.Difficulty.Label(), snap.Width, snap.Height)
	s.text(0, 0, title, styleTitle)
	counts := fmt.Sprintf("marks %d/%d  revealed %d/%d", snap.Marked, snap.Hazards, snap.Revealed, snap.TotalSafe)
	s.text(len(title)+4, 0, counts, styleDefault)

	for y, row := range snap.Cells {
		for x, c := range row {
			style := cellStyle(c)
			if snap.Phase == domain.Playing && x == snap.Cursor.X && y == snap.Cursor.Y {
				style = style.Reverse(true)
			}
			s.screen.SetContent(gridLeft+2*x, gridTop+y, runner.Glyph(c), nil, style)
		}
	}

	status := gridTop + snap.Height + 1
	switch {
	case s.notice != "":
		s.text(0, status, s.notice, styleNotice)
	case snap.Phase == domain.Won:
		s.text(0, status, "Cleared!  n: new game  q: quit", styleWon)
	case snap.Phase == domain.Lost:
		s.text(0, status, "Boom.  n: new game  q: quit", styleLost)
	default:
		s.text(0, status, "space reveal  f mark  hjkl move  1-3 difficulty  n new  q quit", styleHidden)
	}
	s.screen.Show()
}

func (s *Screen) text(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func cellStyle(c domain.Cell) tcell.Style {
	switch {
	case !c.Revealed && c.Marked:
		return styleMarked
	case !c.Revealed:
		return styleHidden
	case c.Hazard:
		return styleHazard
	case c.Adjacent > 0:
		return styleDefault.Foreground(digitColors[c.Adjacent])
	}
	return styleDefault
}
