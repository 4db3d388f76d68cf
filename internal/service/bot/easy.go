package bot

import (
	"math/rand"

	"github.com/iamasit07/gomoku/internal/domain"
)

// RandomMove picks a uniformly random candidate. It opens AI vs AI games.
func RandomMove(board *domain.Board, radius int, rng *rand.Rand) (domain.Move, bool) {
	moves := board.CandidateMoves(radius)
	if len(moves) == 0 {
		return domain.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
