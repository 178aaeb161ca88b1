package sweeper

import "github.com/aretw0/cascade/pkg/domain"

// FloodFill computes the reveals that open the region around origin.
//
// It walks breadth-first from origin through zero-adjacency cells and returns
// one Reveal per cell that is not yet revealed, marked or hazardous, in
// discovery order. Non-zero cells are revealed but not expanded, so the result
// is the connected zero region plus its safe border. origin itself is never
// part of the result.
func FloodFill(state *domain.State, origin domain.Point) []domain.Action {
	if !state.InBounds(origin.X, origin.Y) {
		return nil
	}

	visited := map[domain.Point]struct{}{origin: {}}
	queue := []domain.Point{origin}
	var reveals []domain.Action

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range domain.Neighbors(current.X, current.Y, state.Width, state.Height) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}

			cell := state.Cells[n.Y][n.X]
			if cell.Revealed || cell.Marked || cell.Hazard {
				continue
			}
			reveals = append(reveals, domain.Reveal(n.X, n.Y))
			if cell.Adjacent == 0 {
				queue = append(queue, n)
			}
		}
	}
	return reveals
}
