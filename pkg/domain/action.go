package domain

import "fmt"

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionReveal
	ActionToggleMark
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionSetDifficulty
	ActionNewGame
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionReveal:        "reveal",
	ActionToggleMark:    "toggle_mark",
	ActionCursorUp:      "cursor_up",
	ActionCursorDown:    "cursor_down",
	ActionCursorLeft:    "cursor_left",
	ActionCursorRight:   "cursor_right",
	ActionSetDifficulty: "set_difficulty",
	ActionNewGame:       "new_game",
	ActionQuit:          "quit",
}

// String returns a stable snake_case label, used for logs and metric labels.
func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// Action is one requested transition. It is a plain comparable value;
// only the fields relevant to Kind are meaningful.
type Action struct {
	Kind       ActionKind
	X, Y       int
	Difficulty Difficulty
}

func Reveal(x, y int) Action     { return Action{Kind: ActionReveal, X: x, Y: y} }
func ToggleMark(x, y int) Action { return Action{Kind: ActionToggleMark, X: x, Y: y} }
func CursorUp() Action           { return Action{Kind: ActionCursorUp} }
func CursorDown() Action         { return Action{Kind: ActionCursorDown} }
func CursorLeft() Action         { return Action{Kind: ActionCursorLeft} }
func CursorRight() Action        { return Action{Kind: ActionCursorRight} }
func NewGame() Action            { return Action{Kind: ActionNewGame} }
func Quit() Action               { return Action{Kind: ActionQuit} }

// SetDifficulty requests a fresh grid of the given standard difficulty.
func SetDifficulty(d Difficulty) Action {
	return Action{Kind: ActionSetDifficulty, Difficulty: d}
}

// IsQuit reports whether the action ends the session.
func (a Action) IsQuit() bool {
	return a.Kind == ActionQuit
}

// Target returns the coordinate of a Reveal or ToggleMark.
func (a Action) Target() (Point, bool) {
	switch a.Kind {
	case ActionReveal, ActionToggleMark:
		return Point{X: a.X, Y: a.Y}, true
	}
	return Point{}, false
}

func (a Action) String() string {
	switch a.Kind {
	case ActionReveal, ActionToggleMark:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.X, a.Y)
	case ActionSetDifficulty:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Difficulty)
	}
	return a.Kind.String()
}
