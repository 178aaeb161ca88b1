package domain

import (
	"fmt"
	"strings"
)

// ParseLayout builds a state from rows of text: '*' is a hazard, '.' is safe.
// Blank lines and surrounding whitespace are ignored.
//
//	ParseLayout(
//		"*..",
//		"...",
//	)
func ParseLayout(rows ...string) (*State, error) {
	var (
		hazards []Point
		width   = -1
		height  int
	)
	for _, raw := range rows {
		row := strings.TrimSpace(raw)
		if row == "" {
			continue
		}
		if width >= 0 && len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidLayout, height, len(row), width)
		}
		width = len(row)
		for x, ch := range row {
			switch ch {
			case '*':
				hazards = append(hazards, Point{X: x, Y: height})
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidLayout, ch, Point{X: x, Y: height})
			}
		}
		height++
	}
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}
	return NewStateWithHazards(width, height, hazards)
}

// ParseLayoutText splits text into lines and calls ParseLayout.
func ParseLayoutText(text string) (*State, error) {
	return ParseLayout(strings.Split(text, "\n")...)
}
