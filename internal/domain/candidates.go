package domain

// CandidateMoves returns the empty cells within Chebyshev distance radius of
// any stone, or every empty cell when the board has no stones. Moves come
// out in row-major order so callers that break ties on the first move get
// reproducible results.
func (b *Board) CandidateMoves(radius int) []Move {
	if radius < 0 {
		radius = 0
	}
	n := b.size

	if !b.HasStones() {
		moves := make([]Move, 0, n*n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
		return moves
	}

	near := make([]bool, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.cells[row*n+col] == Empty {
				continue
			}
			for r := max(0, row-radius); r <= min(n-1, row+radius); r++ {
				for c := max(0, col-radius); c <= min(n-1, col+radius); c++ {
					near[r*n+c] = true
				}
			}
		}
	}

	moves := []Move{}
	for i, ok := range near {
		if ok && b.cells[i] == Empty {
			moves = append(moves, Move{Row: i / n, Col: i % n})
		}
	}
	return moves
}

// HasCandidateMoves is CandidateMoves(radius) != empty without allocating
func (b *Board) HasCandidateMoves(radius int) bool {
	if !b.HasStones() {
		return len(b.cells) > 0
	}
	if radius < 0 {
		radius = 0
	}
	n := b.size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.cells[row*n+col] == Empty {
				continue
			}
			for r := max(0, row-radius); r <= min(n-1, row+radius); r++ {
				for c := max(0, col-radius); c <= min(n-1, col+radius); c++ {
					if b.cells[r*n+c] == Empty {
						return true
					}
				}
			}
		}
	}
	return false
}
