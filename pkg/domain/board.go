package domain

import (
	"fmt"
	"strings"
)

// Difficulty selects a standard board.
type Difficulty uint8

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	// Custom marks a board built from explicit dimensions.
	Custom
)

var difficultyNames = map[Difficulty]string{
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Expert:       "expert",
	Custom:       "custom",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", uint8(d))
}

// Label is the capitalised name shown in status lines.
func (d Difficulty) Label() string {
	name := d.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Board returns the dimensions of a standard difficulty.
// Custom has no fixed board and yields the zero Board.
func (d Difficulty) Board() Board {
	switch d {
	case Beginner:
		return Board{Difficulty: Beginner, Width: 9, Height: 9, Hazards: 10}
	case Intermediate:
		return Board{Difficulty: Intermediate, Width: 16, Height: 16, Hazards: 40}
	case Expert:
		return Board{Difficulty: Expert, Width: 30, Height: 16, Hazards: 99}
	}
	return Board{Difficulty: d}
}

// ParseDifficulty resolves a case-insensitive difficulty name.
func ParseDifficulty(name string) (Difficulty, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for d, n := range difficultyNames {
		if n == clean {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// Board holds the parameters a grid is generated from.
type Board struct {
	Difficulty Difficulty `json:"difficulty"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Hazards    int        `json:"hazards"`
}

// CustomBoard describes a board that is not one of the standard difficulties.
func CustomBoard(width, height, hazards int) Board {
	return Board{Difficulty: Custom, Width: width, Height: height, Hazards: hazards}
}

// MaxSide bounds each board dimension.
const MaxSide = 1024

// Validate reports whether the board can be generated.
// A board needs at least one cell and at least one safe cell, and no side
// longer than MaxSide.
func (b Board) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidBoard, b.Width, b.Height)
	}
	if b.Width > MaxSide || b.Height > MaxSide {
		return fmt.Errorf("%w: %dx%d exceeds the %d cell side limit", ErrInvalidBoard, b.Width, b.Height, MaxSide)
	}
	if b.Hazards < 0 || b.Hazards >= b.Width*b.Height {
		return fmt.Errorf("%w: %d hazards do not fit a %dx%d grid", ErrInvalidBoard, b.Hazards, b.Width, b.Height)
	}
	return nil
}
