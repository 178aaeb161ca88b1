package domain

import (
	"fmt"
	"math/rand"
)

// State is the full game state owned by the store.
type State struct {
	Board Board

	// Cells is indexed [y][x].
	Cells [][]Cell

	Width  int
	Height int

	// Hazards is the number of hazard cells on the grid.
	Hazards int
	// Marked is the number of currently marked cells.
	Marked int
	// Revealed is the number of revealed safe cells.
	Revealed int
	// TotalSafe is Width*Height - Hazards.
	TotalSafe int

	Phase  Phase
	Cursor Point
}

// NewState generates a grid for board with hazards placed by rng.
func NewState(board Board, rng *rand.Rand) (*State, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidBoard)
	}

	positions := make([]Point, 0, board.Width*board.Height)
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			positions = append(positions, Point{X: x, Y: y})
		}
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	return newState(board, positions[:board.Hazards])
}

// NewStateWithHazards builds a grid with hazards at exactly the given points.
// Duplicate points count once.
func NewStateWithHazards(width, height int, hazards []Point) (*State, error) {
	unique := make(map[Point]struct{}, len(hazards))
	placed := make([]Point, 0, len(hazards))
	for _, p := range hazards {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("%w: hazard %s outside %dx%d grid", ErrInvalidBoard, p, width, height)
		}
		if _, dup := unique[p]; dup {
			continue
		}
		unique[p] = struct{}{}
		placed = append(placed, p)
	}

	board := CustomBoard(width, height, len(placed))
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return newState(board, placed)
}

func newState(board Board, hazards []Point) (*State, error) {
	cells := make([][]Cell, board.Height)
	for y := range cells {
		cells[y] = make([]Cell, board.Width)
	}
	for _, p := range hazards {
		cells[p.Y][p.X].Hazard = true
	}

	s := &State{
		Board:     board,
		Cells:     cells,
		Width:     board.Width,
		Height:    board.Height,
		Hazards:   len(hazards),
		TotalSafe: board.Width*board.Height - len(hazards),
		Phase:     Playing,
		Cursor:    Point{X: board.Width / 2, Y: board.Height / 2},
	}

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if cells[y][x].Hazard {
				continue
			}
			var count uint8
			for _, n := range Neighbors(x, y, s.Width, s.Height) {
				if cells[n.Y][n.X].Hazard {
					count++
				}
			}
			cells[y][x].Adjacent = count
		}
	}
	return s, nil
}

// InBounds reports whether (x, y) lies on the grid.
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Cell returns the cell at (x, y) and whether it exists.
func (s *State) Cell(x, y int) (Cell, bool) {
	if !s.InBounds(x, y) {
		return Cell{}, false
	}
	return s.Cells[y][x], true
}

// Neighbors returns the up-to-8 coordinates around (x, y) that lie inside a
// width x height grid, row by row from the top-left. There is no wraparound.
func Neighbors(x, y, width, height int) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < width && ny >= 0 && ny < height {
				out = append(out, Point{X: nx, Y: ny})
			}
		}
	}
	return out
}
