package domain

// Snapshot is a detached, read-only copy of a State for renderers and adapters.
type Snapshot struct {
	Board     Board    `json:"board"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Hazards   int      `json:"hazards"`
	Marked    int      `json:"marked"`
	Revealed  int      `json:"revealed"`
	TotalSafe int      `json:"total_safe"`
	Phase     Phase    `json:"phase"`
	Cursor    Point    `json:"cursor"`
	Cells     [][]Cell `json:"cells"`
}

// Snapshot copies the state so later mutations do not leak into the copy.
func (s *State) Snapshot() Snapshot {
	cells := make([][]Cell, len(s.Cells))
	for y, row := range s.Cells {
		cells[y] = append([]Cell(nil), row...)
	}
	return Snapshot{
		Board:     s.Board,
		Width:     s.Width,
		Height:    s.Height,
		Hazards:   s.Hazards,
		Marked:    s.Marked,
		Revealed:  s.Revealed,
		TotalSafe: s.TotalSafe,
		Phase:     s.Phase,
		Cursor:    s.Cursor,
		Cells:     cells,
	}
}

// Cell returns the cell at (x, y) and whether it exists.
func (s Snapshot) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{}, false
	}
	return s.Cells[y][x], true
}

// RemainingMarks is the hazard count minus placed marks; it may go negative.
func (s Snapshot) RemainingMarks() int {
	return s.Hazards - s.Marked
}

// Masked returns a copy that hides what the player cannot see yet: while the
// game is Playing, unrevealed cells carry neither Hazard nor Adjacent. Boards
// of a finished game are returned unmasked.
func (s Snapshot) Masked() Snapshot {
	if s.Phase != Playing {
		return s
	}
	cells := make([][]Cell, len(s.Cells))
	for y, row := range s.Cells {
		cells[y] = make([]Cell, len(row))
		for x, c := range row {
			if !c.Revealed {
				c.Hazard = false
				c.Adjacent = 0
			}
			cells[y][x] = c
		}
	}
	s.Cells = cells
	return s
}
