package bot

import (
	"github.com/iamasit07/gomoku/internal/domain"
)

// AlphaBeta returns the same value as Minimax but skips siblings once
// beta <= alpha.
func (e *Engine) AlphaBeta(board *domain.Board, depth int, alpha, beta float64, maximizing bool, player domain.PlayerID) float64 {
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
				return e.AlphaBeta(board, depth-1, alpha, beta, false, player)
			})
			if !ok {
				continue
			}
			best = max(best, v)
			alpha = max(alpha, best)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return best
	}

	best := posInf
	opponent := player.Opponent()
	for _, move := range moves {
		v, ok := withMove(board, move, opponent, func() float64 {
			return e.AlphaBeta(board, depth-1, alpha, beta, true, player)
		})
		if !ok {
			continue
		}
		best = min(best, v)
		beta = min(beta, best)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return best
}
