package domain_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"corner", 0, 0, 3},
		{"edge", 4, 0, 5},
		{"center", 4, 4, 8},
		{"far corner", 8, 8, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Neighbors(tt.x, tt.y, 9, 9)
			assert.Len(t, got, tt.want)
			for _, p := range got {
				assert.False(t, p.X == tt.x && p.Y == tt.y, "origin must not be its own neighbour")
				assert.True(t, p.X >= 0 && p.X < 9 && p.Y >= 0 && p.Y < 9)
			}
		})
	}

	assert.Equal(t, []domain.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, domain.Neighbors(0, 0, 9, 9))
	assert.Empty(t, domain.Neighbors(0, 0, 1, 1))
}

func TestNewState_StandardBoards(t *testing.T) {
	for _, d := range []domain.Difficulty{domain.Beginner, domain.Intermediate, domain.Expert} {
		t.Run(d.String(), func(t *testing.T) {
			board := d.Board()
			s, err := domain.NewState(board, rand.New(rand.NewSource(7)))
			require.NoError(t, err)

			assert.Equal(t, board.Width, s.Width)
			assert.Equal(t, board.Height, s.Height)
			assert.Equal(t, board.Hazards, s.Hazards)
			assert.Equal(t, board.Width*board.Height-board.Hazards, s.TotalSafe)
			assert.Equal(t, domain.Playing, s.Phase)
			assert.Equal(t, domain.Point{X: board.Width / 2, Y: board.Height / 2}, s.Cursor)

			hazards := 0
			for y := 0; y < s.Height; y++ {
				for x := 0; x < s.Width; x++ {
					c := s.Cells[y][x]
					assert.False(t, c.Revealed || c.Marked)
					if c.Hazard {
						hazards++
						continue
					}
					var want uint8
					for _, n := range domain.Neighbors(x, y, s.Width, s.Height) {
						if s.Cells[n.Y][n.X].Hazard {
							want++
						}
					}
					assert.Equal(t, want, c.Adjacent, "adjacency at (%d,%d)", x, y)
				}
			}
			assert.Equal(t, board.Hazards, hazards)
		})
	}
}

func TestNewState_SeedIsDeterministic(t *testing.T) {
	a, err := domain.NewState(domain.Expert.Board(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := domain.NewState(domain.Expert.Board(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Cells, b.Cells)
}

func TestNewState_RejectsInvalidBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, b := range []domain.Board{
		domain.CustomBoard(0, 9, 1),
		domain.CustomBoard(9, 0, 1),
		domain.CustomBoard(3, 3, 9),
		domain.CustomBoard(3, 3, -1),
	} {
		_, err := domain.NewState(b, rng)
		assert.ErrorIs(t, err, domain.ErrInvalidBoard, "board %+v", b)
	}

	_, err := domain.NewState(domain.Beginner.Board(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidBoard)
}

func TestNewStateWithHazards(t *testing.T) {
	s, err := domain.NewStateWithHazards(3, 3, []domain.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 2}})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Hazards)
	assert.Equal(t, 7, s.TotalSafe)
	assert.Equal(t, domain.Custom, s.Board.Difficulty)
	assert.Equal(t, uint8(2), s.Cells[1][1].Adjacent)
	assert.Equal(t, uint8(0), s.Cells[0][2].Adjacent)

	_, err = domain.NewStateWithHazards(3, 3, []domain.Point{{X: 3, Y: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidBoard)
}

func TestState_Cell(t *testing.T) {
	s, err := domain.ParseLayout("*.", "..")
	require.NoError(t, err)

	c, ok := s.Cell(0, 0)
	assert.True(t, ok)
	assert.True(t, c.Hazard)

	_, ok = s.Cell(2, 0)
	assert.False(t, ok)
	_, ok = s.Cell(-1, 0)
	assert.False(t, ok)
}

func TestSnapshot_IsDetached(t *testing.T) {
	s, err := domain.ParseLayout("..", "..")
	require.NoError(t, err)

	snap := s.Snapshot()
	s.Cells[0][0].Revealed = true
	s.Revealed = 1

	assert.False(t, snap.Cells[0][0].Revealed)
	assert.Equal(t, 0, snap.Revealed)
	assert.Equal(t, 0, snap.RemainingMarks())
}

func TestSnapshot_Masked(t *testing.T) {
	s, err := domain.ParseLayout("*..", "...")
	require.NoError(t, err)
	s.Cells[1][2].Revealed = true
	s.Revealed = 1

	snap := s.Snapshot()
	masked := snap.Masked()

	assert.False(t, masked.Cells[0][0].Hazard)
	assert.Zero(t, masked.Cells[0][1].Adjacent)
	assert.True(t, masked.Cells[1][2].Revealed)
	assert.True(t, snap.Cells[0][0].Hazard, "the source snapshot is untouched")
	assert.Equal(t, uint8(1), snap.Cells[0][1].Adjacent)

	s.Phase = domain.Lost
	assert.True(t, s.Snapshot().Masked().Cells[0][0].Hazard, "finished games are shown in full")
}
