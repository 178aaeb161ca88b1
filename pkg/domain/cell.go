package domain

import "fmt"

// Cell is one square of the grid.
// Adjacent is fixed at creation; Revealed and Marked are written by the reducer only.
type Cell struct {
	Hazard   bool  `json:"hazard"`
	Revealed bool  `json:"revealed"`
	Marked   bool  `json:"marked"`
	Adjacent uint8 `json:"adjacent"`
}

// Phase is the game lifecycle. Won and Lost are terminal until a reset.
type Phase uint8

const (
	Playing Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{Playing, Won, Lost} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Point is a grid coordinate. X grows right, Y grows down.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
