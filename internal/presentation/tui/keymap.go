package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/aretw0/cascade/pkg/domain"
)

// Binding is one line of the key help.
type Binding struct {
	Keys string
	Help string
}

// Bindings lists the keys KeyAction understands.
var Bindings = []Binding{
	{"h j k l / arrows", "move the cursor"},
	{"space / enter", "reveal the cell under the cursor"},
	{"f", "mark or unmark the cell under the cursor"},
	{"1 2 3", "new beginner, intermediate or expert game"},
	{"n", "new game on the same board"},
	{"q / esc", "quit"},
}

// KeyAction maps a key press to an action. Reveal and mark target cursor.
// It reports false for keys without a binding.
func KeyAction(ev *tcell.EventKey, cursor domain.Point) (domain.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.CursorUp(), true
	case tcell.KeyDown:
		return domain.CursorDown(), true
	case tcell.KeyLeft:
		return domain.CursorLeft(), true
	case tcell.KeyRight:
		return domain.CursorRight(), true
	case tcell.KeyEnter:
		return domain.Reveal(cursor.X, cursor.Y), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.Quit(), true
	case tcell.KeyRune:
	default:
		return domain.Action{}, false
	}

	switch ev.Rune() {
	case 'k':
		return domain.CursorUp(), true
	case 'j':
		return domain.CursorDown(), true
	case 'h':
		return domain.CursorLeft(), true
	case 'l':
		return domain.CursorRight(), true
	case ' ':
		return domain.Reveal(cursor.X, cursor.Y), true
	case 'f':
		return domain.ToggleMark(cursor.X, cursor.Y), true
	case '1':
		return domain.SetDifficulty(domain.Beginner), true
	case '2':
		return domain.SetDifficulty(domain.Intermediate), true
	case '3':
		return domain.SetDifficulty(domain.Expert), true
	case 'n':
		return domain.NewGame(), true
	case 'q':
		return domain.Quit(), true
	}
	return domain.Action{}, false
}
