package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/cascade/pkg/domain"
)

func TestKeyAction(t *testing.T) {
	cursor := domain.Point{X: 3, Y: 4}
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want domain.Action
	}{
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), domain.CursorUp()},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), domain.CursorDown()},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), domain.CursorLeft()},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), domain.CursorRight()},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), domain.Reveal(3, 4)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), domain.Reveal(3, 4)},
		{"f", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), domain.ToggleMark(3, 4)},
		{"2", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), domain.SetDifficulty(domain.Intermediate)},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), domain.NewGame()},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), domain.Quit()},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), domain.Quit()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyAction(tt.ev, cursor)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := KeyAction(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), cursor)
	assert.False(t, ok)
	_, ok = KeyAction(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), cursor)
	assert.False(t, ok)
}
