package bot

import (
	"math"

	"github.com/iamasit07/gomoku/internal/domain"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Minimax scores board for player by exhaustive search to depth plies.
// maximizing is true when player is to move.
func (e *Engine) Minimax(board *domain.Board, depth int, maximizing bool, player domain.PlayerID) float64 {
	score, terminal := e.evaluator.evaluate(board, player)
	if depth <= 0 || terminal {
		return score
	}

	moves := board.CandidateMoves(e.radius)
	if len(moves) == 0 {
		return score
	}

	if maximizing {
		best := negInf
		for _, move := range moves {
			v, ok := withMove(board, move, player, func() float64 {
				return e.Minimax(board, depth-1, false, player)
			})
			if ok {
				best = max(best, v)
			}
		}
		return best
	}

	best := posInf
	opponent := player.Opponent()
	for _, move := range moves {
		v, ok := withMove(board, move, opponent, func() float64 {
			return e.Minimax(board, depth-1, true, player)
		})
		if ok {
			best = min(best, v)
		}
	}
	return best
}
