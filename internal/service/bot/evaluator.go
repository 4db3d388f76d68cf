package bot

import (
	"fmt"

	"github.com/iamasit07/gomoku/internal/domain"
)

const (
	SCORE_WIN  = 1000000
	SCORE_LOSS = -1000000

	// weight applied to the opponent's pattern score
	OPPONENT_FACTOR = 1.5
	WINDOW_LENGTH   = 5
)

// DefaultWeights maps a window, read as X (own stone) and . (empty), to its
// weight. Windows holding an opponent stone or running off the board, and
// patterns missing from the table, score 0.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"XXXXX": 100000,
		".XXXX": 5000,
		"XXXX.": 5000,
		".XXX.": 1000,
		"XXX.X": 2000,
		"XX.XX": 2000,
		".XX.X": 200,
		".X.XX": 200,
		".XX..": 50,
		"..XX.": 50,
	}
}

// Evaluator scores positions by sliding a fixed-length window over every
// cell in the four directions. Patterns are compiled into a table indexed
// by a bitmask of own stones so scoring does not allocate.
type Evaluator struct {
	window         int
	opponentFactor float64
	table          []float64
}

func NewEvaluator(weights map[string]float64, window int, opponentFactor float64) (*Evaluator, error) {
	if window < 1 || window > 16 {
		return nil, fmt.Errorf("window length %d out of range", window)
	}

	table := make([]float64, 1<<window)
	for pattern, weight := range weights {
		if len(pattern) != window {
			return nil, fmt.Errorf("pattern %q does not match window length %d", pattern, window)
		}
		mask := 0
		for i := 0; i < window; i++ {
			switch pattern[i] {
			case 'X':
				mask |= 1 << i
			case '.':
			default:
				// blocked windows never score, so the pattern is unreachable
				mask = -1
			}
			if mask < 0 {
				break
			}
		}
		if mask < 0 {
			continue
		}
		table[mask] = weight
	}

	return &Evaluator{
		window:         window,
		opponentFactor: opponentFactor,
		table:          table,
	}, nil
}

// Evaluate scores board from player's point of view
func (e *Evaluator) Evaluate(board *domain.Board, player domain.PlayerID) float64 {
	score, _ := e.evaluate(board, player)
	return score
}

// evaluate also reports whether either side has already won
func (e *Evaluator) evaluate(board *domain.Board, player domain.PlayerID) (float64, bool) {
	opponent := player.Opponent()

	// immediate win/loss
	if board.HasWin(player) {
		return SCORE_WIN, true
	}
	if board.HasWin(opponent) {
		return SCORE_LOSS, true
	}

	return e.PatternScore(board, player) - e.opponentFactor*e.PatternScore(board, opponent), false
}

// PatternScore sums the weight of every unblocked window. Overlapping windows
// each count on their own.
func (e *Evaluator) PatternScore(board *domain.Board, player domain.PlayerID) float64 {
	total := 0.0
	n := board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for _, d := range domain.Directions {
				if mask, ok := e.windowMask(board, row, col, d[0], d[1], player); ok {
					total += e.table[mask]
				}
			}
		}
	}
	return total
}

// WindowWeight is the contribution of the single window starting at
// (row, col) in direction (dRow, dCol).
func (e *Evaluator) WindowWeight(board *domain.Board, row, col, dRow, dCol int, player domain.PlayerID) float64 {
	mask, ok := e.windowMask(board, row, col, dRow, dCol, player)
	if !ok {
		return 0
	}
	return e.table[mask]
}

// windowMask sets bit i when position i belongs to player. ok is false when
// any position is an opponent stone or off the board.
func (e *Evaluator) windowMask(board *domain.Board, row, col, dRow, dCol int, player domain.PlayerID) (int, bool) {
	mask := 0
	for i := 0; i < e.window; i++ {
		r, c := row+dRow*i, col+dCol*i
		if !board.InBounds(r, c) {
			return 0, false
		}
		switch board.At(r, c) {
		case player:
			mask |= 1 << i
		case domain.Empty:
		default:
			return 0, false
		}
	}
	return mask, true
}
