package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
)

// ErrScript is matched by every *ScriptError.
var ErrScript = errors.New("invalid script")

// ScriptError locates a line ParseScript could not understand.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() []error {
	return []error{ErrScript, e.Err}
}

// ParseScript reads one action per line:
//
//	reveal X Y     mark X Y
//	up | down | left | right
//	difficulty beginner|intermediate|expert
//	new            quit
//
// Blank lines and lines starting with '#' are ignored. Commands are case
// insensitive.
func ParseScript(r io.Reader) ([]domain.Action, error) {
	var actions []domain.Action
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		a, err := parseLine(strings.Fields(text))
		if err != nil {
			return nil, &ScriptError{Line: line, Text: text, Err: err}
		}
		actions = append(actions, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return actions, nil
}

func parseLine(fields []string) (domain.Action, error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "reveal", "r", "mark", "m", "flag":
		x, y, err := parsePoint(args)
		if err != nil {
			return domain.Action{}, err
		}
		if cmd == "reveal" || cmd == "r" {
			return domain.Reveal(x, y), nil
		}
		return domain.ToggleMark(x, y), nil
	case "difficulty", "d":
		if len(args) != 1 {
			return domain.Action{}, fmt.Errorf("%s takes one difficulty", cmd)
		}
		d, err := domain.ParseDifficulty(args[0])
		if err != nil {
			return domain.Action{}, err
		}
		if d == domain.Custom {
			return domain.Action{}, fmt.Errorf("%w: custom boards come from configuration", domain.ErrUnknownDifficulty)
		}
		return domain.SetDifficulty(d), nil
	}

	if len(args) != 0 {
		return domain.Action{}, fmt.Errorf("%s takes no arguments", cmd)
	}
	switch cmd {
	case "up", "k":
		return domain.CursorUp(), nil
	case "down", "j":
		return domain.CursorDown(), nil
	case "left", "h":
		return domain.CursorLeft(), nil
	case "right", "l":
		return domain.CursorRight(), nil
	case "new", "n":
		return domain.NewGame(), nil
	case "quit", "q":
		return domain.Quit(), nil
	}
	return domain.Action{}, fmt.Errorf("unknown command %q", cmd)
}

func parsePoint(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected X Y, got %d arguments", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad X: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad Y: %w", err)
	}
	return x, y, nil
}
